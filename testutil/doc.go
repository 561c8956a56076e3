// Package testutil provides testing utilities for textcluster.
//
// This package is intended for use in tests only. It provides seeded and
// scripted random sources for deterministic centroid seeding, and corpus
// generators.
//
// # Random Sources
//
//	rng := testutil.NewRNG(seed)          // reproducible math/rand
//	seq := testutil.NewSequence(0, 4, 1)  // replays fixed draws
//
// # Corpora
//
//	docs := testutil.DemoCorpus()
//	docs := rng.TopicCorpus(topics, 50, 4)
package testutil

// Package vector provides the bag-of-words representation used by the
// clustering engine.
//
// A Corpus is built once per clustering attempt and is immutable afterwards:
//
//	c := vector.Vectorize([]string{"python programming", "nlp python"})
//	c.Vocabulary.Len() // 3
//	c.Vectors[0]       // [{ID: 1, Count: 1} {ID: 2, Count: 1}]
//
// Document vectors are sparse (only observed terms). Centroids are Dense and
// always span the full vocabulary.
package vector

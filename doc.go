// Package textcluster groups short text documents into clusters with K-means
// over sparse bag-of-words vectors.
//
// # Quick Start
//
//	c, err := textcluster.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := c.Run(ctx, []string{
//	    "Java Sales",
//	    "Scala Manager",
//	    "nlp python",
//	    // ...
//	})
//	for doc, label := range res.Labels {
//	    fmt.Println(label, doc)
//	}
//
// # Pipeline
//
// Each run performs the same steps:
//
//  1. K is derived from the raw document count as floor(sqrt(floor(n/2))).
//  2. Documents are normalized (lower-case, escape sequences, special
//     characters and stop words removed) and deduplicated.
//  3. A sorted vocabulary is built and every document becomes a sparse
//     term-count vector.
//  4. K documents are sampled (with replacement) as initial dense centroids.
//  5. Assignment and mean update passes run until the iteration budget is
//     spent, or until nothing moves when the budget is zero.
//  6. If fewer than K clusters received documents, the run restarts from
//     step 3 with fresh seeds, up to WithMaxAttempts times.
//
// # Metrics
//
// Cosine similarity (the default) prefers the most similar centroid.
// Euclidean distance prefers the nearest centroid:
//
//	c, _ := textcluster.New(textcluster.WithMetric(distance.MetricEuclidean))
//
// Earlier releases compared every metric with ">", so Euclidean assignment
// chose the farthest centroid. WithLegacyEuclideanPolarity reproduces that.
//
// # Reproducibility
//
// Seeding draws from a RandSource. Inject a seeded source for stable labels:
//
//	c, _ := textcluster.New(textcluster.WithRandSource(textcluster.NewRandSource(42)))
//
// # Errors
//
// Runs fail with ErrEmptyCorpus for empty input, ErrDegenerateK when there are
// fewer than two documents, and ErrUnsatisfiableClusterCount when every
// attempt left a cluster empty. Use errors.Is and errors.As:
//
//	var unsat *textcluster.ErrUnsatisfiable
//	if errors.As(err, &unsat) {
//	    log.Printf("only %d of %d clusters filled", unsat.NonEmpty, unsat.K)
//	}
//
// # Reports
//
// Result.Encode serializes cluster membership with a codec.Codec; the corpus
// package loads inputs and saves reports through any blobstore.BlobStore.
package textcluster

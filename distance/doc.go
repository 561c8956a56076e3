// Package distance provides scoring between a sparse document vector and a
// dense centroid.
//
// # Supported Metrics
//
//   - MetricCosine: cosine similarity (higher is closer)
//   - MetricEuclidean: Euclidean distance over the sample's terms (lower is closer)
//
// # Usage
//
//	score, _ := distance.Provider(distance.MetricCosine)
//	s := score(doc, centroid)
//	if distance.Better(distance.MetricCosine.Direction(), s, best) { ... }
package distance

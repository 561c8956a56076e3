// Package kmeans implements the K-means engine over sparse document vectors.
//
// Train runs bounded attempts of seed → Lloyd passes and accepts the first
// partition in which every one of the K clusters has at least one member.
package kmeans

// Package corpus imports documents from blob stores.
//
// A corpus blob is either plain text with one document per line or CSV with
// the document in a chosen column. Compression is detected from the blob name:
//
//	jobs.txt        lines, uncompressed
//	jobs.csv.zst    CSV, zstd
//	jobs.txt.lz4    lines, LZ4 frame
//
// # Usage
//
//	store := blobstore.NewLocalStore("./data")
//	docs, err := corpus.Load(ctx, store, "jobs.csv.zst", corpus.Options{Column: 1, SkipHeader: true})
//
// LoadPrefix fetches every blob under a prefix concurrently and concatenates
// the documents in sorted blob name order, so the result does not depend on
// fetch timing.
package corpus

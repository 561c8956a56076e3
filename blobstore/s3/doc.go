// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-1"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "corpora/")
//	docs, err := corpus.Load(ctx, store, "jobs.txt.zst", corpus.Options{})
//
// # Features
//
//   - Uploads through the S3 transfer manager (multipart for large reports)
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3

package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/textcluster/blobstore"
	minioblob "github.com/hupe1980/textcluster/blobstore/minio"
	s3blob "github.com/hupe1980/textcluster/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type storeFlags struct {
	source    string
	root      string
	bucket    string
	region    string
	endpoint  string
	accessKey string
	secretKey string
	secure    bool
}

func openStore(ctx context.Context, f storeFlags) (blobstore.BlobStore, error) {
	switch f.source {
	case "local":
		return blobstore.NewLocalStore(f.root), nil
	case "s3":
		if f.bucket == "" {
			return nil, fmt.Errorf("--bucket is required for source s3")
		}
		var optFns []func(*config.LoadOptions) error
		if f.region != "" {
			optFns = append(optFns, config.WithRegion(f.region))
		}
		cfg, err := config.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		client := awss3.NewFromConfig(cfg, func(o *awss3.Options) {
			if f.endpoint != "" {
				o.BaseEndpoint = &f.endpoint
				o.UsePathStyle = true
			}
		})
		return s3blob.NewStore(client, f.bucket, ""), nil
	case "minio":
		if f.bucket == "" || f.endpoint == "" {
			return nil, fmt.Errorf("--bucket and --endpoint are required for source minio")
		}
		client, err := minio.New(f.endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(f.accessKey, f.secretKey, ""),
			Secure: f.secure,
			Region: f.region,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create MinIO client: %w", err)
		}
		return minioblob.NewStore(client, f.bucket, ""), nil
	default:
		return nil, fmt.Errorf("unknown source %q (want local, s3 or minio)", f.source)
	}
}

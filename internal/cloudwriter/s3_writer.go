package cloudwriter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Factory struct {
	client *s3.Client
	bucket string
}

func NewS3Factory(ctx context.Context, region, bucket string) (*S3Factory, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &S3Factory{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

func (f *S3Factory) NewWriter(key string) (CloudWriter, error) {
	return &s3Writer{client: f.client, bucket: f.bucket, key: key}, nil
}

// s3Writer accumulates everything in memory and issues a single PutObject on
// Close; reports are small enough that multipart upload is not worth it.
type s3Writer struct {
	client *s3.Client
	bucket string
	key    string
	buffer bytes.Buffer
}

func (w *s3Writer) Write(data []byte) (int, error) {
	return w.buffer.Write(data)
}

func (w *s3Writer) Close() error {
	_, err := w.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(w.key),
		Body:   bytes.NewReader(w.buffer.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("unable to upload %s to S3: %w", w.key, err)
	}
	return nil
}

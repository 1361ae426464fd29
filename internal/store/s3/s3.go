// Package s3 implements store.Backend on an S3-compatible bucket, one JSON
// object per slot.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/alfredjeanlab/touchgrass/internal/store"
)

// Config locates the bucket.
type Config struct {
	Bucket string
	// Prefix is prepended to every object key, e.g. "touchgrass/".
	Prefix string
	Region string
	// Endpoint switches to path-style addressing for MinIO and similar.
	Endpoint string
}

// Backend reads and writes slot objects.
type Backend struct {
	client *s3.Client
	bucket string
	prefix string
}

var _ store.Backend = (*Backend)(nil)

// New loads the default AWS credential chain and builds a client for cfg.
func New(ctx context.Context, cfg Config) (*Backend, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		// Slot objects are tiny; skip the streaming checksum trailers that
		// some S3-compatible servers reject.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})
	return NewFromClient(client, cfg.Bucket, cfg.Prefix), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client *s3.Client, bucket, prefix string) *Backend {
	return &Backend{client: client, bucket: bucket, prefix: prefix}
}

// ObjectKey returns the object key holding slot key.
func (b *Backend) ObjectKey(key string) string {
	return b.prefix + key + ".json"
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.ObjectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, classify(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read object body: %w", store.ErrBackendUnavailable, err)
	}
	return data, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(b.ObjectKey(key)),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	return classify(err)
}

// Remove deletes the object. S3 answers a delete of a missing key with
// success, so no special case is needed.
func (b *Backend) Remove(ctx context.Context, key string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.ObjectKey(key)),
	})
	if isNotFound(err) {
		return nil
	}
	return classify(err)
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "Forbidden", "AllAccessDisabled", "InvalidAccessKeyId",
			"SignatureDoesNotMatch", "AccountProblem":
			return fmt.Errorf("%w: %w", store.ErrBackendDenied, err)
		case "QuotaExceeded", "XMinioStorageFull", "EntityTooLarge":
			return fmt.Errorf("%w: %w", store.ErrBackendQuota, err)
		case "NoSuchBucket", "ServiceUnavailable", "SlowDown", "InternalError":
			return fmt.Errorf("%w: %w", store.ErrBackendUnavailable, err)
		}
	}
	var sendErr *smithyhttp.RequestSendError
	var netErr net.Error
	if errors.As(err, &sendErr) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", store.ErrBackendUnavailable, err)
	}
	return err
}

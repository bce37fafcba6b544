package facades

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
)

// ObjectPutter is the slice of the S3 client the photo store needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// PhotoStoreS3Facade stores uploaded skin photos in an S3 bucket and hands
// back the object key as the opaque handle kept on the assessment.
type PhotoStoreS3Facade struct {
	client ObjectPutter
	bucket string
}

// NewPhotoStoreS3Facade creates a photo store backed by the given bucket.
func NewPhotoStoreS3Facade(client ObjectPutter, bucket string) *PhotoStoreS3Facade {
	return &PhotoStoreS3Facade{client: client, bucket: bucket}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/bmp":
		return ".bmp"
	default:
		return ""
	}
}

// Store uploads the image and returns its object key.
func (f *PhotoStoreS3Facade) Store(ctx context.Context, userID string, image []byte, contentType string) (string, error) {
	key := fmt.Sprintf("photos/%s/%s%s", userID, uuid.NewString(), extensionFor(contentType))

	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Log.Errorw("failed to store photo", "bucket", f.bucket, "key", key, "error", err)
		return "", fmt.Errorf("storing photo: %w", err)
	}

	logger.Log.Infow("photo stored", "bucket", f.bucket, "key", key, "size", len(image))
	return key, nil
}

package utils

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Storage uploads files to an S3-compatible object store.
type S3Storage struct {
	bucket   string
	endpoint string
	client   *s3.S3
}

func NewS3Storage(bucket, region, endpoint, accessKey, secretKey string) *S3Storage {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(
			accessKey, secretKey, "",
		),
	}))
	return &S3Storage{
		bucket:   bucket,
		endpoint: endpoint,
		client:   s3.New(sess),
	}
}

// UploadFile stores the file under folder/fileName and returns its public URL.
func (s *S3Storage) UploadFile(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, filePath), nil
}

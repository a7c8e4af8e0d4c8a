package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"estateBack/utils"
)

// ImageStore decides where uploaded property images land: the S3 bucket when
// one is configured, the local uploads dir otherwise.
type ImageStore struct {
	S3         *utils.S3Storage
	UploadsDir string
}

// SaveAll persists the uploaded files and returns their serving URLs in the
// order they arrived, which the repository relies on for the primary flag.
func (s *ImageStore) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	var urls []string

	for _, fileHeader := range files {
		url, err := s.save(fileHeader)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func (s *ImageStore) save(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %v", err)
	}
	defer file.Close()

	filename := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	if s.S3 != nil {
		data, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read uploaded file: %v", err)
		}
		return s.S3.UploadFile(data, filename, "properties", fileHeader.Header.Get("Content-Type"))
	}

	if _, err := os.Stat(s.UploadsDir); os.IsNotExist(err) {
		if err := os.MkdirAll(s.UploadsDir, os.ModePerm); err != nil {
			return "", fmt.Errorf("create upload directory: %v", err)
		}
	}

	dst, err := os.Create(filepath.Join(s.UploadsDir, filename))
	if err != nil {
		return "", fmt.Errorf("create file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("save file: %v", err)
	}

	return "/uploads/" + filename, nil
}

package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAllWritesFilesInOrder(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, name := range []string{"front.jpg", "kitchen.png"} {
		part, err := writer.CreateFormFile("images", name)
		if err != nil {
			t.Fatalf("CreateFormFile failed: %v", err)
		}
		if _, err := part.Write([]byte("image bytes")); err != nil {
			t.Fatalf("writing to form file failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1024); err != nil {
		t.Fatalf("ParseMultipartForm failed: %v", err)
	}

	store := &ImageStore{UploadsDir: t.TempDir()}
	urls, err := store.SaveAll(req.MultipartForm.File["images"])
	if err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}

	if len(urls) != 2 {
		t.Fatalf("expected 2 urls, got %d", len(urls))
	}
	if !strings.HasSuffix(urls[0], ".jpg") {
		t.Fatalf("expected first url to keep the .jpg extension, got %q", urls[0])
	}
	if !strings.HasSuffix(urls[1], ".png") {
		t.Fatalf("expected second url to keep the .png extension, got %q", urls[1])
	}

	for _, url := range urls {
		if !strings.HasPrefix(url, "/uploads/") {
			t.Fatalf("expected local serving path, got %q", url)
		}
		data, err := os.ReadFile(filepath.Join(store.UploadsDir, strings.TrimPrefix(url, "/uploads/")))
		if err != nil {
			t.Fatalf("stored file missing: %v", err)
		}
		if string(data) != "image bytes" {
			t.Fatalf("stored file content mismatch: %q", data)
		}
	}
}

func TestSaveAllEmptyInput(t *testing.T) {
	store := &ImageStore{UploadsDir: t.TempDir()}

	urls, err := store.SaveAll(nil)
	if err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	if len(urls) != 0 {
		t.Fatalf("expected no urls, got %d", len(urls))
	}
}

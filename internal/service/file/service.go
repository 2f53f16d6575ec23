package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/crestfin/crm-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadPunchProof stores a check-in/check-out photo.
	UploadPunchProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, punchType string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadPunchProof re-encodes the photo as JPEG, shrinking it under
// 150KB, and stores it under attendance/{date}/.
func (s *fileServiceImpl) UploadPunchProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, punchType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	compressed, err := compressImage(buffer, 150*1024)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	dateStr := date.Format("2006-01-02")
	newFilename := fmt.Sprintf("%s-%s-%d.jpg", employeeID, punchType, time.Now().Unix())
	path := filepath.Join("attendance", dateStr, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload punch proof: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// compressImage re-encodes an image as JPEG, lowering quality until it
// fits under maxSize. Returns the input unchanged when it already fits
// and is a JPEG.
func compressImage(buffer []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	for quality := 85; quality >= 50; quality -= 5 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		if buf.Len() <= maxSize || quality == 50 {
			return buf.Bytes(), nil
		}
	}

	return buffer, nil
}

package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaveUploadedImage stores an uploaded file under uploadDir with a random
// name and returns the public path. A nil file is not an error: it returns
// an empty path so callers can keep the existing image.
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	if file == nil {
		return "", nil
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	dst := filepath.Join(uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	return "/" + filepath.ToSlash(dst), nil
}

package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaveUploadedFile stores a multipart file under <root>/<dir> with a
// UUID-prefixed name and returns the public path /uploads/<dir>/<name>.
func SaveUploadedFile(c *gin.Context, file *multipart.FileHeader, root, dir string) (string, error) {
	dstDir := filepath.Join(root, dir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + "_" + filepath.Base(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dstDir, filename)); err != nil {
		return "", err
	}

	return "/uploads/" + dir + "/" + filename, nil
}

package controllers

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/utils"
)

const maxAttachmentSize = 10 << 20

var allowedAttachmentExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".xlsx": true,
	".docx": true,
}

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// saveAttachment stores an uploaded document under the upload directory
// with a generated name and returns the public path.
func saveAttachment(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxAttachmentSize {
		return "", errors.New("file terlalu besar, maksimal 10MB")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedAttachmentExtensions[ext] {
		return "", errors.New("tipe file tidak didukung")
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := utils.GenerateUniqueFilename() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

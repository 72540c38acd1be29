package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"food-marketplace-api/config"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxUploadSize is the upload ceiling in bytes (5MB)
const MaxUploadSize = 5 << 20

// allowedImageTypes is the MIME allow-list for uploads. Checked against
// sniffed content, not the client-supplied filename or header.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Upload accepts a multipart image, stores it under a generated unique
// filename and returns the public URL.
func Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		failValidation(c, "Multipart 'file' field is required")
		return
	}
	if fileHeader.Size > MaxUploadSize {
		failValidation(c, "File exceeds the 5MB limit")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		failInternal(c, "Failed to read upload")
		return
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		failInternal(c, "Failed to read upload")
		return
	}
	if !allowedImageTypes[mtype.String()] {
		failValidation(c, "Unsupported file type. Allowed: JPEG, PNG, WebP, GIF")
		return
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		failInternal(c, "Failed to read upload")
		return
	}

	name := uuid.NewString() + mtype.Extension()
	path := filepath.Join(config.C.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		failInternal(c, "Failed to store upload")
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		failInternal(c, "Failed to store upload")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"filename": name,
		"url":      "/uploads/" + name,
		"size":     fileHeader.Size,
		"type":     mtype.String(),
	}, "File uploaded")
}

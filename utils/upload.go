package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// AllowedVideoTypes defines the allowed video file extensions
var AllowedVideoTypes = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
}

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return fmt.Errorf(ErrFileTooLarge)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return fmt.Errorf(ErrInvalidFileType)
	}
	return nil
}

// ValidateVideoFile checks if the uploaded file is a valid video.
// Videos get a larger size limit than images.
func ValidateVideoFile(file *multipart.FileHeader) error {
	if file.Size > 10*MaxFileSize {
		return fmt.Errorf("file size exceeds 50MB limit")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedVideoTypes[ext] {
		return fmt.Errorf("invalid file type. Allowed types: mp4, mov, webm")
	}
	return nil
}

// SaveUploadedFile saves an uploaded file under uploadDir with a
// generated name and returns the relative path to serve it from.
func SaveUploadedFile(file *multipart.FileHeader, uploadDir string) (string, error) {
	ext := filepath.Ext(file.Filename)
	filename := uuid.New().String() + ext
	dest := filepath.Join(uploadDir, filename)

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %v", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %v", err)
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return filepath.ToSlash(dest), nil
}

// SaveImage validates and stores an image upload
func SaveImage(file *multipart.FileHeader, uploadDir string) (string, error) {
	if err := ValidateImageFile(file); err != nil {
		return "", err
	}
	return SaveUploadedFile(file, uploadDir)
}

// SaveVideo validates and stores a video upload
func SaveVideo(file *multipart.FileHeader, uploadDir string) (string, error) {
	if err := ValidateVideoFile(file); err != nil {
		return "", err
	}
	return SaveUploadedFile(file, uploadDir)
}

// DeleteFile deletes a stored upload
func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}

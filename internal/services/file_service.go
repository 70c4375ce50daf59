package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"catalog/internal/storage"

	"github.com/google/uuid"
)

var allowedImageExtensions = []string{"jpg", "jpeg", "png", "gif"}

// FileUpload is an uploaded file as received from the client.
type FileUpload struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// FileService stores and serves product images.
type FileService struct {
	store   storage.ObjectStorage
	hostAPI string
}

// NewFileService creates a FileService. hostAPI is the public base URL of
// the API and is used to build the URLs of stored images.
func NewFileService(store storage.ObjectStorage, hostAPI string) *FileService {
	return &FileService{
		store:   store,
		hostAPI: strings.TrimRight(hostAPI, "/"),
	}
}

// extension returns the subtype of a content type, "png" for "image/png".
func extension(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	_, subtype, _ := strings.Cut(strings.TrimSpace(mediaType), "/")
	return strings.ToLower(subtype)
}

// FilterImage accepts only jpg, jpeg, png and gif content types.
func FilterImage(contentType string) error {
	if strings.TrimSpace(contentType) == "" {
		return newError(ErrBadRequest, "File is empty")
	}
	if !slices.Contains(allowedImageExtensions, extension(contentType)) {
		return newError(ErrBadRequest, "File extension is not allowed")
	}
	return nil
}

// GenerateFileName returns a random stored name keeping the content type's
// subtype as extension.
func GenerateFileName(contentType string) string {
	return fmt.Sprintf("%s.%s", uuid.New().String(), extension(contentType))
}

// UploadProductImage validates and stores an image and returns its public URL.
func (s *FileService) UploadProductImage(ctx context.Context, file *FileUpload) (string, error) {
	if file == nil || file.Body == nil {
		return "", newError(ErrBadRequest, "File is empty")
	}
	if err := FilterImage(file.ContentType); err != nil {
		return "", err
	}

	name := GenerateFileName(file.ContentType)
	if err := s.store.Put(ctx, name, file.Body, file.Size, file.ContentType); err != nil {
		return "", internalError("store product image", err)
	}
	return fmt.Sprintf("%s/files/product/%s", s.hostAPI, name), nil
}

// OpenProductImage opens a stored image by name. The caller closes the reader.
func (s *FileService) OpenProductImage(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, newError(ErrBadRequest, "No product found with image %s", name)
	}

	r, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, newError(ErrBadRequest, "No product found with image %s", name)
		}
		return nil, internalError("open product image", err)
	}
	return r, nil
}

package uploadservice

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"regexp"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=uploadservice.go -destination=mock_uploadservice.go -package=uploadservice

var (
	ErrUnsupportedType = errors.New("only images are allowed")
	ErrInvalidDataURI  = errors.New("invalid base64 format")
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

var dataURIPattern = regexp.MustCompile(`^data:image/(\w+);base64,(.+)$`)

type FileStore interface {
	Save(name string, src io.Reader) error
	Open(name string) (*os.File, fs.FileInfo, error)
}

type Service struct {
	store   FileStore
	newName func() string
}

func New(store FileStore) *Service {
	return &Service{
		store: store,
		newName: func() string {
			return ksuid.New().String()
		},
	}
}

// SaveImage stores a multipart upload. The declared content type is checked
// before anything touches the disk.
func (s *Service) SaveImage(originalName, contentType string, src io.Reader) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	if _, ok := allowedTypes[mediaType]; !ok {
		zap.L().Info("rejected upload", zap.String("content_type", contentType))
		return "", ErrUnsupportedType
	}

	filename := s.newName() + filepath.Ext(originalName)
	if err := s.store.Save(filename, src); err != nil {
		zap.L().Error("can't save uploaded file", zap.String("filename", filename), zap.Error(err))
		return "", err
	}
	zap.L().Info("file uploaded", zap.String("filename", filename))
	return filename, nil
}

// SaveBase64 stores the payload of a data:image/<ext>;base64,<payload> URI
// as <generated>.<ext>.
func (s *Service) SaveBase64(dataURI string) (string, error) {
	matches := dataURIPattern.FindStringSubmatch(dataURI)
	if matches == nil {
		return "", ErrInvalidDataURI
	}
	ext, payload := matches[1], matches[2]

	data, err := decodeBase64(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}

	filename := s.newName() + "." + ext
	if err := s.store.Save(filename, bytes.NewReader(data)); err != nil {
		zap.L().Error("can't save base64 file", zap.String("filename", filename), zap.Error(err))
		return "", err
	}
	zap.L().Info("base64 file uploaded", zap.String("filename", filename), zap.Int("bytes", len(data)))
	return filename, nil
}

func (s *Service) Open(filename string) (*os.File, fs.FileInfo, error) {
	return s.store.Open(filename)
}

// decodeBase64 accepts both padded and unpadded payloads.
func decodeBase64(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(payload); rawErr == nil {
		return raw, nil
	}
	return nil, err
}

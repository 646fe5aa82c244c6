package uploadservice

import (
	"encoding/base64"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Galina9911/test-api/internal/storage/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func newTestService(store FileStore) *Service {
	s := New(store)
	s.newName = func() string { return "fixed" }
	return s
}

func TestSaveImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockFileStore(ctrl)
	service := newTestService(store)

	tests := []struct {
		name          string
		originalName  string
		contentType   string
		prepareMock   func()
		expected      string
		expectedError error
	}{
		{
			name:         "Png saved",
			originalName: "photo.png",
			contentType:  "image/png",
			prepareMock: func() {
				store.EXPECT().Save("fixed.png", gomock.Any()).Return(nil)
			},
			expected: "fixed.png",
		},
		{
			name:         "Content type with params",
			originalName: "photo.jpg",
			contentType:  "image/jpeg; charset=binary",
			prepareMock: func() {
				store.EXPECT().Save("fixed.jpg", gomock.Any()).Return(nil)
			},
			expected: "fixed.jpg",
		},
		{
			name:         "No extension",
			originalName: "photo",
			contentType:  "image/gif",
			prepareMock: func() {
				store.EXPECT().Save("fixed", gomock.Any()).Return(nil)
			},
			expected: "fixed",
		},
		{
			name:          "Unsupported type",
			originalName:  "doc.pdf",
			contentType:   "application/pdf",
			prepareMock:   func() {},
			expectedError: ErrUnsupportedType,
		},
		{
			name:          "Webp is not allowed",
			originalName:  "photo.webp",
			contentType:   "image/webp",
			prepareMock:   func() {},
			expectedError: ErrUnsupportedType,
		},
		{
			name:         "Store error",
			originalName: "photo.png",
			contentType:  "image/png",
			prepareMock: func() {
				store.EXPECT().Save("fixed.png", gomock.Any()).Return(errors.New("disk full"))
			},
			expectedError: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			filename, err := service.SaveImage(tt.originalName, tt.contentType, strings.NewReader("data"))
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Empty(t, filename)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, filename)
			}
		})
	}
}

func TestSaveBase64(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockFileStore(ctrl)
	service := newTestService(store)

	payload := base64.StdEncoding.EncodeToString([]byte("hello"))
	rawPayload := base64.RawStdEncoding.EncodeToString([]byte("hello"))

	tests := []struct {
		name          string
		dataURI       string
		prepareMock   func()
		expected      string
		expectedError error
	}{
		{
			name:    "Padded payload",
			dataURI: "data:image/png;base64," + payload,
			prepareMock: func() {
				store.EXPECT().Save("fixed.png", gomock.Any()).DoAndReturn(func(_ string, src io.Reader) error {
					data, err := io.ReadAll(src)
					require.NoError(t, err)
					assert.Equal(t, "hello", string(data))
					return nil
				})
			},
			expected: "fixed.png",
		},
		{
			name:    "Unpadded payload",
			dataURI: "data:image/jpeg;base64," + rawPayload,
			prepareMock: func() {
				store.EXPECT().Save("fixed.jpeg", gomock.Any()).Return(nil)
			},
			expected: "fixed.jpeg",
		},
		{
			name:          "Not a data uri",
			dataURI:       "hello",
			prepareMock:   func() {},
			expectedError: ErrInvalidDataURI,
		},
		{
			name:          "Not an image",
			dataURI:       "data:text/plain;base64," + payload,
			prepareMock:   func() {},
			expectedError: ErrInvalidDataURI,
		},
		{
			name:          "Broken payload",
			dataURI:       "data:image/png;base64,***",
			prepareMock:   func() {},
			expectedError: ErrInvalidDataURI,
		},
		{
			name:    "Store error",
			dataURI: "data:image/png;base64," + payload,
			prepareMock: func() {
				store.EXPECT().Save("fixed.png", gomock.Any()).Return(errors.New("disk full"))
			},
			expectedError: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			filename, err := service.SaveBase64(tt.dataURI)
			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, ErrInvalidDataURI) {
					assert.ErrorIs(t, err, ErrInvalidDataURI)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				assert.Empty(t, filename)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, filename)
			}
		})
	}
}

func TestUploadAndOpen(t *testing.T) {
	dir := t.TempDir()
	service := New(filestore.New(dir))

	filename, err := service.SaveImage("cat.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(filename))

	f, info, err := service.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, int64(len("png-bytes")), info.Size())

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	onDisk, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(onDisk))
}

func TestGeneratedNamesAreUnique(t *testing.T) {
	service := New(filestore.New(t.TempDir()))

	first, err := service.SaveBase64("data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte("a")))
	require.NoError(t, err)
	second, err := service.SaveBase64("data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".gif"))
}

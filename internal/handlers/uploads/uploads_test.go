package uploads

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/Galina9911/test-api/internal/dto"
	"github.com/Galina9911/test-api/internal/service/uploadservice"
	"github.com/Galina9911/test-api/internal/storage/filestore"
	"github.com/Galina9911/test-api/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func NewMock(t *testing.T) (*UploadHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func multipartRequest(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func fileRequest(filename string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/uploads/x", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("filename", filename)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Error
}

func TestUploadHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		request       func(t *testing.T) *http.Request
		prepareMock   func()
		expectedCode  int
		expectedFile  string
		expectedError string
	}{
		{
			name: "Png uploaded",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "cat.png", "image/png", pngBytes)
			},
			prepareMock: func() {
				service.EXPECT().SaveImage("cat.png", "image/png", gomock.Any()).Return("abc.png", nil)
			},
			expectedCode: http.StatusOK,
			expectedFile: "abc.png",
		},
		{
			name: "Pdf rejected",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "doc.pdf", "application/pdf", []byte("%PDF-1.4"))
			},
			prepareMock: func() {
				service.EXPECT().SaveImage("doc.pdf", "application/pdf", gomock.Any()).Return("", uploadservice.ErrUnsupportedType)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Only images are allowed",
		},
		{
			name: "Wrong field name",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "image", "cat.png", "image/png", pngBytes)
			},
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "File not uploaded or invalid format",
		},
		{
			name: "Not multipart",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "File not uploaded or invalid format",
		},
		{
			name: "Store error",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "cat.png", "image/png", pngBytes)
			},
			prepareMock: func() {
				service.EXPECT().SaveImage("cat.png", "image/png", gomock.Any()).Return("", errors.New("disk full"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to save file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Upload(rr, tt.request(t))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}
			var resp dto.UploadResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "File uploaded successfully", resp.Message)
			assert.Equal(t, tt.expectedFile, resp.Filename)
		})
	}
}

func TestUploadBase64Handler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedFile  string
		expectedError string
	}{
		{
			name: "Image uploaded",
			body: `{"image_base64":"data:image/png;base64,aGVsbG8="}`,
			prepareMock: func() {
				service.EXPECT().SaveBase64("data:image/png;base64,aGVsbG8=").Return("abc.png", nil)
			},
			expectedCode: http.StatusOK,
			expectedFile: "abc.png",
		},
		{
			name:          "Missing field",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing field image_base64",
		},
		{
			name: "No data uri prefix",
			body: `{"image_base64":"aGVsbG8="}`,
			prepareMock: func() {
				service.EXPECT().SaveBase64("aGVsbG8=").Return("", uploadservice.ErrInvalidDataURI)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid Base64 format",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Store error",
			body: `{"image_base64":"data:image/png;base64,aGVsbG8="}`,
			prepareMock: func() {
				service.EXPECT().SaveBase64(gomock.Any()).Return("", errors.New("disk full"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to save file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/upload-base64", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.UploadBase64(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}
			var resp dto.UploadResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedFile, resp.Filename)
		})
	}
}

func TestGetFileHandlerErrors(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Not found", func(t *testing.T) {
		service.EXPECT().Open("missing.png").Return(nil, nil, filestore.ErrNotFound)

		rr := httptest.NewRecorder()
		handler.GetFile(rr, fileRequest("missing.png"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "File not found", decodeError(t, rr))
	})

	t.Run("Open error", func(t *testing.T) {
		service.EXPECT().Open("locked.png").Return(nil, nil, errors.New("permission denied"))

		rr := httptest.NewRecorder()
		handler.GetFile(rr, fileRequest("locked.png"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUploadRoundTrip(t *testing.T) {
	handler := New(uploadservice.New(filestore.New(t.TempDir())))

	upload := func(t *testing.T, req *http.Request, h http.HandlerFunc) string {
		t.Helper()
		rr := httptest.NewRecorder()
		h(rr, req)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var resp dto.UploadResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		return resp.Filename
	}

	t.Run("Multipart", func(t *testing.T) {
		filename := upload(t, multipartRequest(t, "file", "cat.png", "image/png", pngBytes), handler.Upload)
		assert.True(t, strings.HasSuffix(filename, ".png"))

		rr := httptest.NewRecorder()
		handler.GetFile(rr, fileRequest(filename))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
		assert.Equal(t, pngBytes, rr.Body.Bytes())
	})

	t.Run("Base64", func(t *testing.T) {
		body := `{"image_base64":"data:image/png;base64,` + base64.StdEncoding.EncodeToString(pngBytes) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/upload-base64", strings.NewReader(body))
		filename := upload(t, req, handler.UploadBase64)

		rr := httptest.NewRecorder()
		handler.GetFile(rr, fileRequest(filename))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, pngBytes, rr.Body.Bytes())
	})

	t.Run("Missing file", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.GetFile(rr, fileRequest("nope.png"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Path escape", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.GetFile(rr, fileRequest("../uploads_test.go"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

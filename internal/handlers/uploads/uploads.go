package uploads

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/Galina9911/test-api/internal/dto"
	"github.com/Galina9911/test-api/internal/service/uploadservice"
	"github.com/Galina9911/test-api/internal/storage/filestore"
	"github.com/Galina9911/test-api/pkg/utils"
	"github.com/Galina9911/test-api/pkg/validate"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=uploads.go -destination=mock_uploads.go -package=uploads

const formField = "file"

type Service interface {
	SaveImage(originalName, contentType string, src io.Reader) (string, error)
	SaveBase64(dataURI string) (string, error)
	Open(filename string) (*os.File, fs.FileInfo, error)
}

type UploadHandler struct {
	uploadService Service
}

func New(uploadService Service) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Multipart upload of a jpeg, png or gif image in the "file" field
//	@Tags			Uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file	formData	file	true	"Image"
//	@Success		200		{object}	dto.UploadResponseDTO
//	@Failure		400		{object}	utils.Response	"File not uploaded or invalid format"
//	@Failure		500		{object}	utils.Response	"Failed to save file"
//	@Router			/upload [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile(formField)
	if err != nil {
		zap.L().Debug("no file in upload", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, "File not uploaded or invalid format")
		return
	}
	defer file.Close()

	filename, err := h.uploadService.SaveImage(header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, uploadservice.ErrUnsupportedType) {
			utils.RespondWithError(w, http.StatusBadRequest, "Only images are allowed")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save file")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UploadResponseDTO{
		Message:  "File uploaded successfully",
		Filename: filename,
	})
}

// UploadBase64 godoc
//
//	@Summary		Upload a Base64 image
//	@Description	Upload an image given as a data:image/<ext>;base64,<payload> URI
//	@Tags			Uploads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.UploadBase64RequestDTO	true	"Data URI"
//	@Success		200		{object}	dto.UploadResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid Base64 format"
//	@Failure		500		{object}	utils.Response	"Failed to save file"
//	@Router			/upload-base64 [post]
func (h *UploadHandler) UploadBase64(w http.ResponseWriter, r *http.Request) {
	var req dto.UploadBase64RequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing field image_base64")
		return
	}

	filename, err := h.uploadService.SaveBase64(req.ImageBase64)
	if err != nil {
		if errors.Is(err, uploadservice.ErrInvalidDataURI) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid Base64 format")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save file")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UploadResponseDTO{
		Message:  "File uploaded successfully",
		Filename: filename,
	})
}

// GetFile godoc
//
//	@Summary		Download an uploaded file
//	@Tags			Uploads
//	@Produce		octet-stream
//	@Param			filename	path	string	true	"File name returned by upload"
//	@Success		200
//	@Failure		404	{object}	utils.Response	"File not found"
//	@Router			/uploads/{filename} [get]
func (h *UploadHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	f, info, err := h.uploadService.Open(chi.URLParam(r, "filename"))
	if err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "File not found")
			return
		}
		zap.L().Error("can't open uploaded file", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err == nil {
		w.Header().Set("Content-Type", mtype.String())
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		zap.L().Error("can't rewind uploaded file", zap.String("filename", info.Name()), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

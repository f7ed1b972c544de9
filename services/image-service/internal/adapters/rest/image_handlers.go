package rest

import (
	"errors"
	"mime/multipart"
	"net/http"
	"sort"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/image-service/internal/core/domain"
	"real-estate-platform/services/image-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

const (
	// файлы сверх этого объема ParseMultipartForm пишет во временные файлы
	multipartMemory = 8 << 20
	// с запасом на 11 файлов по 5 МБ, чтобы отказ по количеству был осмысленным
	maxUploadRequestBytes = 64 << 20

	imagesField = "images"
)

type ImageHandlers struct {
	uploadUC usecases_port.UploadImagesUseCase
	listUC   usecases_port.ListImagesUseCase
	deleteUC usecases_port.DeleteImageUseCase
}

func NewImageHandlers(uploadUC usecases_port.UploadImagesUseCase,
	listUC usecases_port.ListImagesUseCase,
	deleteUC usecases_port.DeleteImageUseCase) *ImageHandlers {
	return &ImageHandlers{
		uploadUC: uploadUC,
		listUC:   listUC,
		deleteUC: deleteUC,
	}
}

// ListImages обрабатывает GET /images/property/{id}
func (h *ImageHandlers) ListImages(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(logging.Fields{
		"handler":     "ListImages",
		"property_id": propertyID,
	})

	images, err := h.listUC.Execute(r.Context(), propertyID)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	httpkit.RespondWithJSON(w, http.StatusOK, images)
}

// UploadImages обрабатывает POST /images/upload/{id} (multipart, поле images)
func (h *ImageHandlers) UploadImages(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(logging.Fields{
		"handler":     "UploadImages",
		"property_id": propertyID,
	})

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadRequestBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpkit.WriteErrorBody(w, http.StatusRequestEntityTooLarge, httpkit.ErrorBody{
				Error:  "Upload request is too large",
				Reason: "REQUEST_TOO_LARGE",
			})
			return
		}
		logger.Warn("Failed to parse multipart form", logging.Fields{"error": err.Error()})
		httpkit.WriteErrorBody(w, http.StatusBadRequest, httpkit.ErrorBody{
			Error:  "Request must be multipart/form-data with image files",
			Reason: "MALFORMED_UPLOAD",
		})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := collectFiles(r.MultipartForm)
	files := make([]domain.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", err, logging.Fields{"original_name": fh.Filename})
			httpkit.WriteErrorBody(w, http.StatusBadRequest, httpkit.ErrorBody{
				Error:  "Uploaded file could not be read",
				Reason: "MALFORMED_UPLOAD",
			})
			return
		}
		defer f.Close()

		files = append(files, domain.UploadFile{
			OriginalName: fh.Filename,
			MimeType:     fh.Header.Get("Content-Type"),
			Size:         fh.Size,
			Content:      f,
		})
	}

	result, err := h.uploadUC.Execute(r.Context(), propertyID, files)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	httpkit.RespondWithJSON(w, http.StatusCreated, result)
}

// DeleteImage обрабатывает DELETE /images/{id}
func (h *ImageHandlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "id")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(logging.Fields{
		"handler":  "DeleteImage",
		"image_id": imageID,
	})

	if err := h.deleteUC.Execute(r.Context(), imageID); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	httpkit.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Image deleted successfully"})
}

// collectFiles файлы из поля images, затем из остальных полей по алфавиту
func collectFiles(form *multipart.Form) []*multipart.FileHeader {
	if form == nil {
		return nil
	}
	fields := make([]string, 0, len(form.File))
	for field := range form.File {
		if field != imagesField {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)

	out := append([]*multipart.FileHeader{}, form.File[imagesField]...)
	for _, field := range fields {
		out = append(out, form.File[field]...)
	}
	return out
}

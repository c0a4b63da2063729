package upload_study

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/studies"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/studies/models"
)

const (
	// FormField имя поля multipart формы с файлом
	FormField = "file"

	maxMemory = 10 << 20

	// multipartOverhead запас на границы и заголовки частей формы
	multipartOverhead = 1 << 20

	msgUnauthorized    = "требуется авторизация"
	msgMissingFile     = "файл обязателен"
	msgInvalidFileName = "некорректное имя файла"
	msgUnsupportedType = "недопустимый тип файла, разрешены jpg, jpeg, png, pdf, txt"
	msgEmptyFile       = "файл пустой"
	msgFileTooLarge    = "файл слишком большой"
)

type Handler struct {
	service     StudyService
	logger      Logger
	maxFileSize int64
}

// NewHandler создает обработчик загрузки; maxFileSize <= 0 снимает ограничение тела запроса
func NewHandler(service StudyService, logger Logger, maxFileSize int64) *Handler {
	return &Handler{
		service:     service,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// Handle POST /api/v1/users/me/studies (multipart/form-data, поле file)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /users/me/studies - Not authenticated")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.Warn("POST /users/me/studies - Request body too large: user_id=%s, limit=%d", identity.ID, maxErr.Limit)
			handlers.RespondTooLarge(w, msgFileTooLarge)
			return
		}
		h.logger.Warn("POST /users/me/studies - Invalid multipart form: user_id=%s, error=%v", identity.ID, err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}

	file, header, err := r.FormFile(FormField)
	if err != nil {
		h.logger.Warn("POST /users/me/studies - Missing file: user_id=%s, error=%v", identity.ID, err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	req := &models.UploadRequest{
		OwnerID:     identity.ID,
		FileName:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}

	study, err := h.service.Upload(r.Context(), req, file)
	if err != nil {
		switch {
		case errors.Is(err, studies.ErrInvalidFileName):
			h.logger.Warn("POST /users/me/studies - Invalid file name: user_id=%s, name=%q", identity.ID, header.Filename)
			handlers.RespondBadRequest(w, msgInvalidFileName)

		case errors.Is(err, studies.ErrUnsupportedFileType):
			h.logger.Warn("POST /users/me/studies - Unsupported type: user_id=%s, name=%q", identity.ID, header.Filename)
			handlers.RespondBadRequest(w, msgUnsupportedType)

		case errors.Is(err, studies.ErrEmptyFile):
			h.logger.Warn("POST /users/me/studies - Empty file: user_id=%s, name=%q", identity.ID, header.Filename)
			handlers.RespondBadRequest(w, msgEmptyFile)

		case errors.Is(err, studies.ErrFileTooLarge):
			h.logger.Warn("POST /users/me/studies - File too large: user_id=%s, size=%d", identity.ID, header.Size)
			handlers.RespondTooLarge(w, msgFileTooLarge)

		default:
			h.logger.Error("POST /users/me/studies - Failed to upload: user_id=%s, error=%v", identity.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/me/studies - Study uploaded: user_id=%s, path=%s", identity.ID, study.Path)
	handlers.RespondJSON(w, http.StatusCreated, study)
}

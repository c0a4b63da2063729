package studies

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/studies/models"
)

const defaultContentType = "application/octet-stream"

// Service сервис файлов медицинских исследований пользователя
type Service struct {
	blobs       BlobStore
	maxFileSize int64
	urlExpiry   time.Duration
	logger      Logger
}

// NewService создает новый экземпляр сервиса исследований
func NewService(blobs BlobStore, maxFileSize int64, urlExpiry time.Duration, logger Logger) *Service {
	return &Service{
		blobs:       blobs,
		maxFileSize: maxFileSize,
		urlExpiry:   urlExpiry,
		logger:      logger,
	}
}

// Upload сохраняет файл под studies/{ownerID}/{fileName}; одноимённый файл перезаписывается
func (s *Service) Upload(ctx context.Context, req *models.UploadRequest, content io.Reader) (*models.StudyResponse, error) {
	s.logger.Info("Upload: uploading %q for owner=%s size=%d", req.FileName, req.OwnerID, req.Size)

	// 1. Валидируем файл
	name, err := cleanFileName(req.FileName)
	if err != nil {
		return nil, err
	}
	if !domain.IsAllowedStudyFile(name) {
		s.logger.Warn("Upload: unsupported file type %q", name)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, domain.FileExtension(name))
	}
	if req.Size <= 0 {
		return nil, ErrEmptyFile
	}
	if s.maxFileSize > 0 && req.Size > s.maxFileSize {
		s.logger.Warn("Upload: file %q too large: %d > %d", name, req.Size, s.maxFileSize)
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, req.Size)
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(name))
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	// 2. Загружаем
	key := domain.StudyPath(req.OwnerID, name)
	if err := s.blobs.Put(ctx, key, content, req.Size, contentType); err != nil {
		s.logger.Error("Upload: failed to put %s: %v", key, err)
		return nil, fmt.Errorf("%w: Upload - put object: %v", ErrInternal, err)
	}

	// 3. Подписываем ссылку
	url, err := s.blobs.PresignedURL(ctx, key, s.urlExpiry)
	if err != nil {
		s.logger.Error("Upload: failed to presign %s: %v", key, err)
		return nil, fmt.Errorf("%w: Upload - presign: %v", ErrInternal, err)
	}

	s.logger.Info("Upload: stored %s", key)
	return models.FromDomainStudy(&domain.StudyFile{
		Name:        name,
		Path:        key,
		Type:        domain.ClassifyFile(name),
		Size:        req.Size,
		DownloadURL: url,
	}), nil
}

// List возвращает файлы пользователя, отсортированные по имени
func (s *Service) List(ctx context.Context, ownerID string) (*models.StudyListResponse, error) {
	objects, err := s.blobs.List(ctx, domain.StudyPrefix(ownerID))
	if err != nil {
		s.logger.Error("List: failed to list studies of owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: List - list objects: %v", ErrInternal, err)
	}

	studies := make([]*models.StudyResponse, 0, len(objects))
	for _, obj := range objects {
		// подкаталоги не показываем
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}

		url, err := s.blobs.PresignedURL(ctx, obj.Key, s.urlExpiry)
		if err != nil {
			s.logger.Error("List: failed to presign %s: %v", obj.Key, err)
			return nil, fmt.Errorf("%w: List - presign: %v", ErrInternal, err)
		}

		name := path.Base(obj.Key)
		studies = append(studies, models.FromDomainStudy(&domain.StudyFile{
			Name:        name,
			Path:        obj.Key,
			Type:        domain.ClassifyFile(name),
			Size:        obj.Size,
			UploadedAt:  obj.LastModified,
			DownloadURL: url,
		}))
	}

	sort.Slice(studies, func(i, j int) bool { return studies[i].Name < studies[j].Name })

	s.logger.Info("List: owner=%s has %d studies", ownerID, len(studies))
	return &models.StudyListResponse{Studies: studies, Total: len(studies)}, nil
}

// Delete удаляет файл пользователя
func (s *Service) Delete(ctx context.Context, ownerID, fileName string) error {
	name, err := cleanFileName(fileName)
	if err != nil {
		return err
	}

	key := domain.StudyPath(ownerID, name)
	exists, err := s.blobs.Exists(ctx, key)
	if err != nil {
		s.logger.Error("Delete: failed to stat %s: %v", key, err)
		return fmt.Errorf("%w: Delete - stat: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("Delete: %s not found", key)
		return ErrStudyNotFound
	}

	if err := s.blobs.Delete(ctx, key); err != nil {
		s.logger.Error("Delete: failed to remove %s: %v", key, err)
		return fmt.Errorf("%w: Delete - remove: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed %s", key)
	return nil
}

// cleanFileName отсекает пути: допускается только имя файла
func cleanFileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return name, nil
}

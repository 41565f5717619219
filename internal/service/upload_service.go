package service

import (
	"context"
	"mime/multipart"

	gocache "github.com/patrickmn/go-cache"

	"classico-be/internal/apperr"
	"classico-be/internal/backend"
	"classico-be/internal/dto"
	"classico-be/internal/pkg/logger"
	"classico-be/pkg/archive"
	"classico-be/pkg/formdetect"
)

type IUploadService interface {
	Process(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResult, error)
	Session(id string) (*dto.UploadResult, error)
}

type uploadService struct {
	extractor *archive.Extractor
	detector  *formdetect.Detector
	selector  *backend.Selector
	sessions  *gocache.Cache
	log       logger.ILogger
}

func NewUploadService(extractor *archive.Extractor, detector *formdetect.Detector, selector *backend.Selector, sessions *gocache.Cache, log logger.ILogger) IUploadService {
	return &uploadService{
		extractor: extractor,
		detector:  detector,
		selector:  selector,
		sessions:  sessions,
		log:       log,
	}
}

// Process runs the whole pipeline for one upload: validate, stage,
// extract, detect, decide, provision. Stages run strictly in that order;
// classification failures of individual files never surface here because
// the detector isolates them.
func (s *uploadService) Process(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResult, error) {
	contentType := file.Header.Get("Content-Type")
	if !archive.Acceptable(file.Filename, contentType, file.Size) {
		return nil, apperr.ErrUnsupportedMedia
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	stored, err := s.extractor.Save(file.Filename, src)
	if err != nil {
		return nil, err
	}

	session, err := s.extractor.Extract(stored)
	if err != nil {
		return nil, err
	}

	forms := s.detector.DetectDirectory(session.ExtractionRoot)
	s.log.Info("upload", "project scanned", map[string]interface{}{
		"session": session.Id,
		"forms":   len(forms),
	})

	facade, err := s.selector.Ensure(ctx, forms)
	if err != nil {
		return nil, err
	}

	result := &dto.UploadResult{
		SessionId:     session.Id,
		DetectedForms: forms,
		DbKind:        facade.Kind(),
		DbURL:         facade.Descriptor(),
	}
	s.sessions.Set(session.Id, result, gocache.DefaultExpiration)

	return result, nil
}

// Session replays a cached detection result by session id.
func (s *uploadService) Session(id string) (*dto.UploadResult, error) {
	cached, found := s.sessions.Get(id)
	if !found {
		return nil, apperr.ErrSessionNotFound
	}
	result, ok := cached.(*dto.UploadResult)
	if !ok {
		return nil, apperr.ErrSessionNotFound
	}
	return result, nil
}

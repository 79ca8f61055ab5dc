package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"go.uber.org/zap"

	"meter-reading-backend/internal/dedup"
	"meter-reading-backend/internal/models"
	"meter-reading-backend/internal/reading"
	"meter-reading-backend/internal/storage"
	"meter-reading-backend/internal/validation"
)

// Extractor asks the AI provider to describe the stored meter photo.
type Extractor interface {
	Extract(ctx context.Context, imagePath string) (string, error)
}

// DuplicateError signals that the customer already reported a reading of
// this type in the measurement month.
type DuplicateError struct {
	CustomerCode string
	MeasureType  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("a %s reading for customer %s was already reported this month", e.MeasureType, e.CustomerCode)
}

// StorageError wraps a filesystem failure while persisting the image.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "failed to store image: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// ExtractionError wraps any provider, transport or auth failure from the
// extraction client. The pipeline makes no distinction between them.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return "measurement extraction failed: " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// MeasurementService runs the upload pipeline: validate, duplicate check,
// persist, extract, parse, respond. Stages run strictly in that order and
// every call mints a fresh identifier, even for byte-identical input.
type MeasurementService struct {
	store     *storage.Storage
	extractor Extractor
	dedup     dedup.Checker
	logger    *zap.Logger
}

func NewMeasurementService(store *storage.Storage, extractor Extractor, checker dedup.Checker, logger *zap.Logger) *MeasurementService {
	return &MeasurementService{
		store:     store,
		extractor: extractor,
		dedup:     checker,
		logger:    logger,
	}
}

// Process handles one measurement upload. Failures after the storage stage
// leave the written file in place; orphaned blobs are accepted rather than
// rolled back.
func (s *MeasurementService) Process(ctx context.Context, req models.UploadRequest) (*models.UploadResponse, error) {
	measuredAt, verr := validation.ValidateUploadRequest(req)
	if verr != nil {
		return nil, verr
	}

	duplicate, err := s.dedup.AlreadyReported(ctx, req.CustomerCode, req.MeasureType, measuredAt.Year(), measuredAt.Month())
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if duplicate {
		return nil, &DuplicateError{CustomerCode: req.CustomerCode, MeasureType: req.MeasureType}
	}

	data, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		// Unreachable after grammar validation, classified the same way.
		return nil, &validation.FieldError{
			Code:    validation.CodeInvalidImage,
			Message: "Invalid image format. Expected base64 string.",
		}
	}

	img, err := s.store.Store(data)
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	text, err := s.extractor.Extract(ctx, img.Path)
	if err != nil {
		s.logger.Error("extraction failed",
			zap.String("measure_uuid", img.ID.String()),
			zap.Error(err))
		return nil, &ExtractionError{Err: err}
	}

	var measureValue *int
	if value, ok := reading.Parse(text); ok {
		measureValue = &value
	} else {
		s.logger.Warn("no meter reading found in model response",
			zap.String("measure_uuid", img.ID.String()))
	}

	return &models.UploadResponse{
		ImageURL:     s.store.PublicURL(img.ID),
		MeasureValue: measureValue,
		MeasureUUID:  img.ID.String(),
	}, nil
}

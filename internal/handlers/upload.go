package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meter-reading-backend/internal/config"
	"meter-reading-backend/internal/models"
	"meter-reading-backend/internal/service"
	"meter-reading-backend/internal/validation"
)

type UploadHandler struct {
	cfg     *config.Config
	service *service.MeasurementService
	logger  *zap.Logger
}

func NewUploadHandler(cfg *config.Config, svc *service.MeasurementService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		cfg:     cfg,
		service: svc,
		logger:  logger,
	}
}

// Upload godoc
// @Summary     Upload a meter photo for reading extraction
// @Description Accepts a base64-encoded water or gas meter photo, persists it
// @Description and extracts the numeric reading with the Gemini vision API.
// @Tags        upload
// @Accept      json
// @Produce     json
// @Param       request body models.UploadRequest true "Meter photo and metadata"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     409 {object} models.MeasureErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	// Operator misconfiguration beats any caller error, so this runs before
	// the body is even parsed.
	if h.cfg.GeminiAPIKey == "" {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "API key is not defined."})
		return
	}

	var req models.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.service.Process(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UploadHandler) respondError(c *gin.Context, err error) {
	var fieldErr *validation.FieldError
	var dupErr *service.DuplicateError
	var extErr *service.ExtractionError
	var storErr *service.StorageError

	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fieldErr.Message})
	case errors.As(err, &dupErr):
		c.JSON(http.StatusConflict, models.MeasureErrorResponse{
			ErrorCode:        "DOUBLE_REPORT",
			ErrorDescription: dupErr.Error(),
		})
	case errors.As(err, &extErr):
		c.JSON(http.StatusBadRequest, models.MeasureErrorResponse{
			ErrorCode:        "INVALID_DATA",
			ErrorDescription: extErr.Error(),
		})
	case errors.As(err, &storErr):
		c.JSON(http.StatusInternalServerError, models.MeasureErrorResponse{
			ErrorCode:        "STORAGE_ERROR",
			ErrorDescription: storErr.Error(),
		})
	default:
		h.logger.Error("upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
	}
}

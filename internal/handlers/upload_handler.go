package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trailfit_backend/internal/config"
	"trailfit_backend/internal/services"
	"trailfit_backend/internal/services/dto"
	"trailfit_backend/pkg/apperrors"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
	maxSize       int64
	maxMemory     int64
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService, cfg config.UploadConfig) *UploadHandler {
	maxMemory := cfg.MaxMemory
	if maxMemory <= 0 {
		maxMemory = 32 << 20
	}
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
		maxSize:       cfg.MaxSize,
		maxMemory:     maxMemory,
	}
}

// RegisterRoutes регистрирует /upload за authMiddleware
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	uploads := rg.Group("/upload")
	uploads.Use(authMiddleware)
	{
		uploads.POST("/", h.UploadFile)
		uploads.GET("/", h.ListUploads)
	}
}

// UploadFile godoc
// @Summary Upload a .fit file with session metadata
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true ".fit activity file"
// @Param session_type formData string false "race, training or recovery"
// @Param race_name formData string false "Race name"
// @Param notes formData string false "Free text"
// @Param fatigue_level formData int false "1-5"
// @Param general_sensation formData int false "1-5"
// @Param sleep_quality formData int false "1-5"
// @Param hydration_status formData string false "well_hydrated, mildly_dehydrated or uncertain"
// @Param weather_condition formData string false "sunny, cloudy, rain, fog, snow or windy"
// @Param trail_condition formData string false "dry, muddy, icy, rocky or mixed"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} apperrors.ErrorResponse "Only .fit files are allowed"
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 422 {object} apperrors.ErrorResponse
// @Router /api/upload/ [post]
func (h *UploadHandler) UploadFile(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	if h.maxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize)
	}

	// Парсим multipart form
	if err := c.Request.ParseMultipartForm(h.maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			apperrors.HandleError(c, apperrors.ErrFileTooLarge)
			return
		}
		apperrors.HandleError(c, apperrors.ErrFileRequired.WithDetails(map[string]string{"file": err.Error()}))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrFileRequired)
		return
	}

	var form dto.UploadForm
	if err := c.ShouldBind(&form); err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string{"body": err.Error()}))
		return
	}
	metadata, fieldErrs := form.Metadata()
	if fieldErrs != nil {
		apperrors.HandleError(c, apperrors.ValidationError(fieldErrs))
		return
	}
	if !h.Validate(c, metadata) {
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer src.Close()

	db := h.GetDB(c)

	upload, err := h.uploadService.Upload(c.Request.Context(), db, &dto.UploadRequest{
		UserID:      user.ID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		File:        src,
		Metadata:    *metadata,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUploadResponse(upload))
}

// ListUploads godoc
// @Summary List the caller's uploads
// @Tags uploads
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.UploadResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/upload/ [get]
func (h *UploadHandler) ListUploads(c *gin.Context) {
	user, ok := h.GetCurrentUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	uploads, err := h.uploadService.List(c.Request.Context(), db, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUploadListResponse(uploads))
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"

	"trailfit_backend/internal/logger"
	"trailfit_backend/internal/models"
	"trailfit_backend/internal/validator"
	"trailfit_backend/pkg/apperrors"
	"trailfit_backend/pkg/contextkeys"
)

// BaseHandler - общая часть хэндлеров: валидатор, доступ к БД запроса, рендер ошибок
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB возвращает *gorm.DB, положенный DBMiddleware. Отсутствие - ошибка сборки роутера, поэтому panic.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
	if !ok {
		panic("handlers: db in context is not *gorm.DB")
	}
	return db
}

// BindAndValidate_JSON декодирует JSON-тело и валидирует его. Любая ошибка - 422.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	return h.bindAndValidate(c, obj, binding.JSON)
}

// BindAndValidate_Form - то же для application/x-www-form-urlencoded
func (h *BaseHandler) BindAndValidate_Form(c *gin.Context, obj interface{}) bool {
	return h.bindAndValidate(c, obj, binding.Form)
}

func (h *BaseHandler) bindAndValidate(c *gin.Context, obj interface{}, b binding.Binding) bool {
	if err := c.ShouldBindWith(obj, b); err != nil {
		logger.CtxWarn(c.Request.Context(), "Failed to bind request", "binding", b.Name(), "error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string{"body": err.Error()}))
		return false
	}
	return h.Validate(c, obj)
}

// Validate прогоняет obj через валидатор и пишет 422 с ошибками по полям
func (h *BaseHandler) Validate(c *gin.Context, obj interface{}) bool {
	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	ctx := c.Request.Context()
	if vErr, ok := err.(*validator.ValidationError); ok {
		logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		return false
	}
	logger.CtxWithError(ctx, "Validator failure", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
	return false
}

// HandleServiceError логирует ошибку сервиса с уровнем по статусу и рендерит ее
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.InternalError(err)
	}

	if appErr.HTTPCode < 500 {
		logger.CtxWarn(ctx, "Request rejected", "code", appErr.Code, "error", appErr.Message, "path", c.Request.URL.Path)
	} else {
		logger.CtxWithError(ctx, "Request failed", err, "code", appErr.Code, "path", c.Request.URL.Path)
	}
	apperrors.HandleError(c, appErr)
}

// GetCurrentUser возвращает пользователя, положенного AuthMiddleware. Если его нет, пишет 401.
func (h *BaseHandler) GetCurrentUser(c *gin.Context) (*models.User, bool) {
	user, ok := c.Value(string(contextkeys.CurrentUserKey)).(*models.User)
	if !ok || user == nil {
		logger.CtxWarn(c.Request.Context(), "No authenticated user in context", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return nil, false
	}
	return user, true
}

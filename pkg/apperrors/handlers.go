package apperrors

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке. Detail дублирует сообщение
// в плоском виде, который ожидают существующие клиенты.
type ErrorResponse struct {
	Detail string    `json:"detail"`
	Error  *AppError `json:"error"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= http.StatusInternalServerError && !h.Debug {
		// В продакшене скрываем детали
		hidden := *appErr
		hidden.Message = "Internal server error"
		hidden.Details = nil
		appErr = &hidden
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "server error", "error", err)
	}

	if appErr.HTTPCode == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Detail: appErr.Message, Error: appErr})
}

// HandleError - быстрая функция-помощник для Gin. Детали 5xx видны только в debug-режиме gin.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.IsDebugging()}
	handler.HandleGinError(c, err)
}

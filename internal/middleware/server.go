package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"trailfit_backend/internal/logger"
	"trailfit_backend/pkg/contextkeys"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware принимает X-Request-ID клиента, только если это UUID, иначе выдает новый
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// LoggingMiddleware пишет одну строку access-лога на запрос. Уровень зависит от статуса.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level, msg := slog.LevelInfo, "HTTP Request"
		switch {
		case status >= http.StatusInternalServerError:
			level, msg = slog.LevelError, "HTTP Server Error"
		case status >= http.StatusBadRequest:
			level, msg = slog.LevelWarn, "HTTP Client Error"
		}

		// c.Request.Context() уже содержит user_id, если запрос прошел AuthMiddleware
		logger.GetLogger().LogAttrs(c.Request.Context(), level, msg,
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.Int("size_bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// DBMiddleware кладет пул соединений в gin.Context для BaseHandler.GetDB
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), db)
		c.Next()
	}
}

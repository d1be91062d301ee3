package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"trailfit_backend/internal/logger"
	"trailfit_backend/internal/services"
	"trailfit_backend/pkg/apperrors"
	"trailfit_backend/pkg/contextkeys"
)

// AuthMiddleware проверяет Bearer-токен и кладет пользователя в контекст.
// Должен стоять после DBMiddleware.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		scheme, token, found := strings.Cut(c.GetHeader("Authorization"), " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			logger.CtxDebug(ctx, "Authorization header missing or invalid", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(nil))
			return
		}

		user, err := authService.Authenticate(ctx, db, strings.TrimSpace(token))
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.Set(string(contextkeys.CurrentUserKey), user)
		c.Request = c.Request.WithContext(logger.WithUserID(ctx, user.ID))
		c.Next()
	}
}

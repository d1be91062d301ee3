package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trailfit_backend/internal/handlers"
	"trailfit_backend/internal/logger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
) {
	appHandlers.SystemHandler.RegisterRoutes(ginRouter)

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api, authMiddleware)
	}

	ginRouter.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logger.Debug("Swagger UI route /docs registered")
}

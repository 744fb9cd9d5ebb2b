package server

import (
	"tradejournal/docs"
	"tradejournal/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupSwagger serves the API docs under /swagger. The advertised host
// follows the configured port. Operations start collapsed in production.
func SetupSwagger(r *gin.Engine, cfg *config.Config) {
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	expansion := "list"
	if cfg.AppEnv == "production" {
		expansion = "none"
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.PersistAuthorization(true),
		ginSwagger.DocExpansion(expansion),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

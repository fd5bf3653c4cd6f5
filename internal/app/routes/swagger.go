package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yigit/schoolhub/docs" // registers the swagger spec
)

// SwaggerPath is the route prefix the UI is mounted under
const SwaggerPath = "/swagger/**"

// SetupSwagger mounts the Swagger UI. The caller must also open SwaggerPath
// in the authorization policy.
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(1),
	))
}

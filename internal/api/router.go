package api

import (
	"github.com/gin-gonic/gin"
	"github.com/leon37/NetoLedger/internal/api/controller"
	"github.com/leon37/NetoLedger/internal/api/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/leon37/NetoLedger/docs"
)

// NewEngine builds a gin engine with the shared middleware stack.
func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Cors())
	return r
}

// RegisterRoutes registers every route of the API.
func RegisterRoutes(r *gin.Engine, classifyCtrl *controller.ClassifyController, networthCtrl *controller.NetworthController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/classify", classifyCtrl.Classify)
	r.POST("/networthResume", networthCtrl.Resume)
}

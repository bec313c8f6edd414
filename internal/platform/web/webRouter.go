package web

import "github.com/gin-gonic/gin"

func SetupRoutes(r *gin.Engine, handler *WebHandler) {
	api := r.Group("/api")
	{
		api.POST("/analyze", handler.Analyze)
		api.POST("/analyze/batch", handler.AnalyzeBatch)
		api.POST("/impact", handler.Impact)
		api.GET("/examples", handler.Examples)
		api.GET("/passphrases", handler.Passphrases)
		api.GET("/breach-advice", handler.BreachAdvice)
		api.GET("/tips/:industry", handler.Tips)
		api.GET("/reports", handler.Reports)
		api.GET("/metrics", handler.Metrics)
	}
}

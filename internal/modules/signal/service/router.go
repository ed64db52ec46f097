package service

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"breakout_api/internal/models"
	"breakout_api/internal/modules/config"
	"breakout_api/pkg/logger"
)

func NewRouter(cfg *config.Config, h *Handler) *gin.Engine {
	if cfg.Service.GinMode != "" {
		gin.SetMode(cfg.Service.GinMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(requestLogger(), gin.CustomRecovery(recoverPanic))

	r.NoRoute(func(c *gin.Context) {
		writeJSON(c, http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		writeJSON(c, http.StatusMethodNotAllowed, models.ErrorResponse{Detail: "Method Not Allowed"})
	})

	r.GET("/", h.Root)
	r.POST("/generate-signal", h.GenerateSignal)

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func recoverPanic(c *gin.Context, recovered any) {
	logger.Error("panic in %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	writeJSON(c, http.StatusInternalServerError, models.ErrorResponse{Detail: "Internal Server Error"})
	c.Abort()
}

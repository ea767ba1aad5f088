package api

import (
	"alcyxob/training-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	exerciseService service.ExerciseService,
) {
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Tracker Routes ---
	router.GET("/", exerciseHandler.Home)
	router.POST("/add", exerciseHandler.AddExercise)
	router.GET("/get", exerciseHandler.GetExercises)
	router.GET("/favicon.ico", exerciseHandler.Favicon)
}

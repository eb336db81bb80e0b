package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine with the parse, health, and root
// endpoints. Handlers build a fresh parser per request, so the engine
// carries no state beyond its middleware.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	r.POST("/parse", handleParse)
	r.GET("/health", handleHealth)
	r.GET("/", handleRoot)

	return r
}

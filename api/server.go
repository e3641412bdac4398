package api

import (
	"github.com/gin-gonic/gin"

	"github.com/MJabarian/autotube-sub001/processor"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(proc *processor.Processor) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterTimingRoutes(r, proc)
	RegisterRenderRoutes(r, proc)
	RegisterHealthRoutes(r)
	return r
}

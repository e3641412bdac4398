package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MJabarian/autotube-sub001/processor"
	"github.com/MJabarian/autotube-sub001/types"
)

// RegisterRenderRoutes registers the synchronous render endpoint.
func RegisterRenderRoutes(r *gin.Engine, proc *processor.Processor) {
	r.POST("/api/render", handleRender(proc))
}

// RenderResponse is returned for both fresh and skipped renders.
type RenderResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Result  *types.RenderResult `json:"result,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func handleRender(proc *processor.Processor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var job types.RenderJob
		if err := c.ShouldBindJSON(&job); err != nil {
			c.JSON(http.StatusBadRequest, RenderResponse{Success: false, Error: "invalid JSON payload: " + err.Error()})
			return
		}

		if job.Status != "" && job.Status != "success" {
			c.JSON(http.StatusBadRequest, RenderResponse{Success: false, Error: "job status must be 'success'"})
			return
		}
		if job.AudioPath == "" {
			c.JSON(http.StatusBadRequest, RenderResponse{Success: false, Error: "audio_path is required"})
			return
		}
		if len(job.ImagePaths) == 0 {
			c.JSON(http.StatusBadRequest, RenderResponse{Success: false, Error: "image_paths is required"})
			return
		}

		result, err := proc.ProcessJob(c.Request.Context(), job)
		if err != nil {
			c.JSON(http.StatusInternalServerError, RenderResponse{Success: false, Error: err.Error()})
			return
		}

		msg := "video rendered"
		if result.Skipped {
			msg = "job already rendered, skipped"
		}
		c.JSON(http.StatusOK, RenderResponse{Success: true, Message: msg, Result: &result})
	}
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MJabarian/autotube-sub001/processor"
	"github.com/MJabarian/autotube-sub001/timing"
)

// RegisterTimingRoutes registers sync-map computation endpoints, exposing the
// timing calculator as a service call for the subtitle and composition
// pipelines.
func RegisterTimingRoutes(r *gin.Engine, proc *processor.Processor) {
	g := r.Group("/api/timing")
	g.POST("/sync-map", handleSyncMap(proc))
	g.POST("/image-timings", handleImageTimings(proc))
}

// SyncMapRequest asks for a sync map over an audio duration.
type SyncMapRequest struct {
	NarrationText string  `json:"narration_text"`
	AudioDuration float64 `json:"audio_duration" binding:"required"`
	ImageCount    int     `json:"image_count" binding:"required"`
}

// ImageTimingsRequest asks for the image time windows only.
type ImageTimingsRequest struct {
	AudioDuration float64 `json:"audio_duration" binding:"required"`
	ImageCount    int     `json:"image_count" binding:"required"`
}

func handleSyncMap(proc *processor.Processor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SyncMapRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m, err := proc.Calculator().BuildSyncMap(req.NarrationText, req.AudioDuration, req.ImageCount)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, timing.ErrInvalidArgument) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, m)
	}
}

func handleImageTimings(proc *processor.Processor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ImageTimingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		timings, err := proc.Calculator().ComputeImageTimings(req.AudioDuration, req.ImageCount)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, timing.ErrInvalidArgument) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"image_timings": timings})
	}
}

package types

import (
	"crypto/sha256"
	"encoding/binary"
)

// RenderJob is a request to compose one video: narration text plus the
// already-generated audio and image assets. Audio and images come from
// upstream generation steps outside this service.
type RenderJob struct {
	UUID          string   `json:"uuid"`
	NarrationText string   `json:"narration_text"`
	AudioPath     string   `json:"audio_path"`
	ImagePaths    []string `json:"image_paths"`
	Status        string   `json:"status"`
	Title         string   `json:"title,omitempty"`
	Error         *string  `json:"error,omitempty"`
}

// RenderResult describes a finished render.
type RenderResult struct {
	UUID         string  `json:"uuid"`
	VideoPath    string  `json:"video_path"`
	SubtitlePath string  `json:"subtitle_path"`
	Duration     float64 `json:"duration"`
	ImageCount   int     `json:"image_count"`
	Title        string  `json:"title,omitempty"`
	ArtifactKey  string  `json:"artifact_key,omitempty"`
	Skipped      bool    `json:"skipped,omitempty"`
}

// Seed derives a deterministic random seed from the job id, so effect
// selection is reproducible for the same job.
func (j RenderJob) Seed() int64 {
	hash := sha256.Sum256([]byte(j.UUID))
	return int64(binary.BigEndian.Uint64(hash[:8]))
}

package effects

import "math/rand"

// KenBurns describes a pan/zoom movement applied to a still image. Scales are
// relative to the source size; X/Y are the focus point as fractions of the
// frame (0.5 is center).
type KenBurns struct {
	Name        string  `json:"name"`
	StartScale  float64 `json:"start_scale"`
	EndScale    float64 `json:"end_scale"`
	StartX      float64 `json:"start_x"`
	EndX        float64 `json:"end_x"`
	StartY      float64 `json:"start_y"`
	EndY        float64 `json:"end_y"`
	Description string  `json:"description"`
}

// Static reports whether the preset moves the camera at all.
func (k KenBurns) Static() bool {
	return k.StartScale == k.EndScale && k.StartX == k.EndX && k.StartY == k.EndY
}

// KenBurnsPresets returns the preset Ken Burns effects used for variety
// across a video's images.
func KenBurnsPresets() []KenBurns {
	return []KenBurns{
		{
			Name:        "zoom_in",
			StartScale:  1.0,
			EndScale:    1.2,
			StartX:      0.5,
			EndX:        0.5,
			StartY:      0.5,
			EndY:        0.5,
			Description: "Gentle zoom in from center",
		},
		{
			Name:        "zoom_out",
			StartScale:  1.2,
			EndScale:    1.0,
			StartX:      0.5,
			EndX:        0.5,
			StartY:      0.5,
			EndY:        0.5,
			Description: "Gentle zoom out to center",
		},
		{
			Name:        "pan_left",
			StartScale:  1.1,
			EndScale:    1.1,
			StartX:      0.4,
			EndX:        0.6,
			StartY:      0.5,
			EndY:        0.5,
			Description: "Pan from left to right",
		},
		{
			Name:        "pan_right",
			StartScale:  1.1,
			EndScale:    1.1,
			StartX:      0.6,
			EndX:        0.4,
			StartY:      0.5,
			EndY:        0.5,
			Description: "Pan from right to left",
		},
		{
			Name:        "pan_up",
			StartScale:  1.1,
			EndScale:    1.1,
			StartX:      0.5,
			EndX:        0.5,
			StartY:      0.6,
			EndY:        0.4,
			Description: "Pan from bottom to top",
		},
		{
			Name:        "pan_down",
			StartScale:  1.1,
			EndScale:    1.1,
			StartX:      0.5,
			EndX:        0.5,
			StartY:      0.4,
			EndY:        0.6,
			Description: "Pan from top to bottom",
		},
		{
			Name:        "diagonal_zoom",
			StartScale:  1.0,
			EndScale:    1.15,
			StartX:      0.4,
			EndX:        0.6,
			StartY:      0.4,
			EndY:        0.6,
			Description: "Diagonal zoom with movement",
		},
		{
			Name:        "static",
			StartScale:  1.0,
			EndScale:    1.0,
			StartX:      0.5,
			EndX:        0.5,
			StartY:      0.5,
			EndY:        0.5,
			Description: "Static image (no movement)",
		},
	}
}

// RandomKenBurns picks a preset using the supplied source, so a run seeded
// from a job id produces the same sequence of effects every time.
func RandomKenBurns(rng *rand.Rand) KenBurns {
	presets := KenBurnsPresets()
	return presets[rng.Intn(len(presets))]
}

// Transition describes how consecutive images are joined.
type Transition struct {
	Name        string  `json:"name"`
	Duration    float64 `json:"duration"`
	Type        string  `json:"type"`
	Direction   string  `json:"direction,omitempty"`
	Description string  `json:"description"`
}

// TransitionPresets returns the preset transition effects.
func TransitionPresets() []Transition {
	return []Transition{
		{Name: "fade", Duration: 0.3, Type: "fade", Description: "Cross fade between images"},
		{Name: "cut", Duration: 0.0, Type: "cut", Description: "Hard cut (no transition)"},
		{Name: "slide_left", Duration: 0.4, Type: "slide", Direction: "left", Description: "Slide transition left"},
		{Name: "slide_right", Duration: 0.4, Type: "slide", Direction: "right", Description: "Slide transition right"},
	}
}

// Quality holds encoder settings for a target output profile.
type Quality struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	FPS         int    `json:"fps"`
	Bitrate     string `json:"bitrate"`
	CRF         int    `json:"crf"`
	Preset      string `json:"preset"`
	Description string `json:"description"`
}

// QualityPresets returns encoder profiles keyed by use case.
func QualityPresets() map[string]Quality {
	return map[string]Quality{
		"youtube_shorts": {
			Width:       1080,
			Height:      1920,
			FPS:         30,
			Bitrate:     "2M",
			CRF:         23,
			Preset:      "fast",
			Description: "Optimized for YouTube Shorts",
		},
		"high_quality": {
			Width:       1080,
			Height:      1920,
			FPS:         30,
			Bitrate:     "4M",
			CRF:         18,
			Preset:      "medium",
			Description: "High quality for premium content",
		},
		"fast_processing": {
			Width:       1080,
			Height:      1920,
			FPS:         30,
			Bitrate:     "1.5M",
			CRF:         28,
			Preset:      "ultrafast",
			Description: "Fast processing for testing",
		},
	}
}

// QualityPreset looks up a profile by name, falling back to youtube_shorts
// for unknown names.
func QualityPreset(name string) Quality {
	presets := QualityPresets()
	if q, ok := presets[name]; ok {
		return q
	}
	return presets["youtube_shorts"]
}

// Audio holds audio encoding parameters for the output mux.
type Audio struct {
	SampleRate  int    `json:"sample_rate"`
	Bitrate     string `json:"bitrate"`
	Channels    int    `json:"channels"`
	Normalize   bool   `json:"normalize"`
	Description string `json:"description"`
}

// AudioPresets returns audio processing presets keyed by use case.
func AudioPresets() map[string]Audio {
	return map[string]Audio{
		"youtube_optimized": {
			SampleRate:  44100,
			Bitrate:     "128k",
			Channels:    2,
			Normalize:   true,
			Description: "Optimized for YouTube",
		},
		"high_quality": {
			SampleRate:  48000,
			Bitrate:     "192k",
			Channels:    2,
			Normalize:   true,
			Description: "High quality audio",
		},
	}
}

// AudioPreset looks up an audio profile by name, falling back to
// youtube_optimized for unknown names.
func AudioPreset(name string) Audio {
	presets := AudioPresets()
	if a, ok := presets[name]; ok {
		return a
	}
	return presets["youtube_optimized"]
}

// SubtitleStyle holds subtitle rendering parameters.
type SubtitleStyle struct {
	FontSize        int    `json:"font_size"`
	FontColor       string `json:"font_color"`
	OutlineColor    string `json:"outline_color"`
	OutlineWidth    int    `json:"outline_width"`
	BackgroundColor string `json:"background_color"`
	Position        string `json:"position"`
	Margin          int    `json:"margin"`
	Description     string `json:"description"`
}

// SubtitleStylePresets returns subtitle styling presets keyed by use case.
func SubtitleStylePresets() map[string]SubtitleStyle {
	return map[string]SubtitleStyle{
		"youtube_shorts": {
			FontSize:        48,
			FontColor:       "white",
			OutlineColor:    "black",
			OutlineWidth:    2,
			BackgroundColor: "rgba(0,0,0,0.5)",
			Position:        "bottom",
			Margin:          50,
			Description:     "Optimized for YouTube Shorts readability",
		},
		"cinematic": {
			FontSize:        36,
			FontColor:       "white",
			OutlineColor:    "black",
			OutlineWidth:    1,
			BackgroundColor: "transparent",
			Position:        "bottom",
			Margin:          80,
			Description:     "Cinematic style with minimal background",
		},
		"bold": {
			FontSize:        52,
			FontColor:       "white",
			OutlineColor:    "black",
			OutlineWidth:    3,
			BackgroundColor: "rgba(0,0,0,0.7)",
			Position:        "bottom",
			Margin:          40,
			Description:     "Bold style for maximum readability",
		},
	}
}

// SubtitleStylePreset looks up a style by name, falling back to
// youtube_shorts for unknown names.
func SubtitleStylePreset(name string) SubtitleStyle {
	presets := SubtitleStylePresets()
	if s, ok := presets[name]; ok {
		return s
	}
	return presets["youtube_shorts"]
}

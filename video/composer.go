package video

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/MJabarian/autotube-sub001/config"
	"github.com/MJabarian/autotube-sub001/effects"
	"github.com/MJabarian/autotube-sub001/timing"
)

// Composer renders a slideshow video: one Ken Burns clip per image timing,
// concatenated, muxed with narration audio and burned-in subtitles.
type Composer struct {
	quality effects.Quality
	audio   effects.Audio
	calc    *timing.Calculator
}

// NewComposer builds a composer for the given encoder profile, with the
// YouTube-optimized audio profile.
func NewComposer(quality effects.Quality) (*Composer, error) {
	return NewComposerWithAudio(quality, effects.AudioPreset("youtube_optimized"))
}

// NewComposerWithAudio builds a composer with an explicit audio profile.
func NewComposerWithAudio(quality effects.Quality, audio effects.Audio) (*Composer, error) {
	calc, err := timing.NewCalculator(timing.Spec{
		FrameRate:  quality.FPS,
		ImageCount: config.DefaultImageCount,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid quality preset: %w", err)
	}
	return &Composer{quality: quality, audio: audio, calc: calc}, nil
}

// Calculator exposes the timing calculator configured for this composer's
// frame rate.
func (c *Composer) Calculator() *timing.Calculator {
	return c.calc
}

// ZoompanExpressions returns the z/x/y expressions for a Ken Burns preset
// over the given number of output frames. Zoom interpolates linearly from
// start to end scale; x/y track the focus point across the zoomed-out
// remainder of the frame.
func ZoompanExpressions(preset effects.KenBurns, frames int) (z, x, y string) {
	if frames < 1 {
		frames = 1
	}
	d := float64(frames)

	if preset.StartScale == preset.EndScale {
		z = fmt.Sprintf("%.4f", preset.StartScale)
	} else {
		z = fmt.Sprintf("%.4f+(%.4f)*on/%d", preset.StartScale, preset.EndScale-preset.StartScale, frames)
	}

	x = focusExpression("iw", preset.StartX, preset.EndX, d)
	y = focusExpression("ih", preset.StartY, preset.EndY, d)
	return z, x, y
}

// focusExpression positions the visible window so that a focus fraction of 0
// shows the left/top edge, 1 the right/bottom edge, and 0.5 the center.
func focusExpression(dim string, start, end, frames float64) string {
	if start == end {
		return fmt.Sprintf("(%s-%s/zoom)*%.4f", dim, dim, start)
	}
	return fmt.Sprintf("(%s-%s/zoom)*(%.4f+(%.4f)*on/%.0f)", dim, dim, start, end-start, frames)
}

// KenBurnsFilter builds the zoompan filter string for one image window.
func (c *Composer) KenBurnsFilter(preset effects.KenBurns, t timing.ImageTiming) string {
	frames := c.calc.SecondsToFrames(t.Duration)
	if frames < 1 {
		frames = 1
	}
	z, x, y := ZoompanExpressions(preset, frames)
	return fmt.Sprintf("zoompan=z='%s':x='%s':y='%s':d=%d:s=%dx%d:fps=%d",
		z, x, y, frames, c.quality.Width, c.quality.Height, c.quality.FPS)
}

// ClipFrames converts an image timing to its whole-frame clip length,
// clamping to at least one frame.
func (c *Composer) ClipFrames(t timing.ImageTiming) int {
	frames := c.calc.SecondsToFrames(t.Duration)
	if frames < 1 {
		frames = 1
	}
	return frames
}

// Compose renders the final video. images, timings and presets must be the
// same length; assPath may be empty to skip subtitle burn-in. Output duration
// equals the audio duration (capped at MaxVideoDuration plus end padding).
func (c *Composer) Compose(images []string, timings []timing.ImageTiming, presets []effects.KenBurns, audioPath, assPath, outputPath string) error {
	out, err := c.buildGraph(images, timings, presets, audioPath, assPath, outputPath)
	if err != nil {
		return err
	}

	if err := out.OverWriteOutput().Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}

	return nil
}

// buildGraph assembles the full ffmpeg filter graph without executing it.
// Each image input is a single frame (no loop): zoompan emits exactly d
// frames and then EOF, so concat advances segment by segment instead of
// consuming an unbounded first stream.
func (c *Composer) buildGraph(images []string, timings []timing.ImageTiming, presets []effects.KenBurns, audioPath, assPath, outputPath string) (*ffmpeg.Stream, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to compose")
	}
	if len(images) != len(timings) || len(images) != len(presets) {
		return nil, fmt.Errorf("mismatched inputs: %d images, %d timings, %d presets",
			len(images), len(timings), len(presets))
	}

	// Upscale before zoompan so sub-pixel panning stays smooth, center-crop
	// to the vertical frame, then animate.
	clips := make([]*ffmpeg.Stream, len(images))
	for i, img := range images {
		frames := c.ClipFrames(timings[i])
		z, x, y := ZoompanExpressions(presets[i], frames)

		clip := ffmpeg.Input(img, ffmpeg.KwArgs{"framerate": c.quality.FPS})
		clip = ffmpeg.Filter(
			[]*ffmpeg.Stream{clip},
			"scale",
			ffmpeg.Args{fmt.Sprintf("%d:%d", c.quality.Width*2, c.quality.Height*2)},
			ffmpeg.KwArgs{"force_original_aspect_ratio": "increase"},
		)
		clip = ffmpeg.Filter(
			[]*ffmpeg.Stream{clip},
			"crop",
			ffmpeg.Args{fmt.Sprintf("%d:%d", c.quality.Width*2, c.quality.Height*2)},
		)
		clip = ffmpeg.Filter(
			[]*ffmpeg.Stream{clip},
			"zoompan",
			ffmpeg.Args{
				fmt.Sprintf("z='%s'", z),
				fmt.Sprintf("x='%s'", x),
				fmt.Sprintf("y='%s'", y),
				fmt.Sprintf("d=%d", frames),
				fmt.Sprintf("s=%dx%d", c.quality.Width, c.quality.Height),
				fmt.Sprintf("fps=%d", c.quality.FPS),
			},
		)
		clips[i] = clip
	}

	video := ffmpeg.Filter(clips, "concat", ffmpeg.Args{
		fmt.Sprintf("n=%d", len(clips)),
		"v=1",
		"a=0",
	})

	if assPath != "" {
		video = ffmpeg.Filter([]*ffmpeg.Stream{video}, "ass", ffmpeg.Args{escapeFilterPath(assPath)})
	}

	duration := math.Min(timings[len(timings)-1].End+config.VideoEndPadding, config.MaxVideoDuration)
	audio := ffmpeg.Input(audioPath)

	return ffmpeg.Output([]*ffmpeg.Stream{video, audio}, outputPath, ffmpeg.KwArgs{
		"c:v":      config.VideoCodec,
		"c:a":      config.AudioCodec,
		"b:a":      c.audio.Bitrate,
		"ar":       c.audio.SampleRate,
		"ac":       c.audio.Channels,
		"b:v":      c.quality.Bitrate,
		"crf":      c.quality.CRF,
		"preset":   c.quality.Preset,
		"pix_fmt":  config.PixelFormat,
		"t":        fmt.Sprintf("%.2f", duration),
		"shortest": "",
	}), nil
}

// escapeFilterPath converts a path to the form ffmpeg filter arguments
// expect: forward slashes, colons escaped.
func escapeFilterPath(path string) string {
	escaped := filepath.ToSlash(path)
	return strings.ReplaceAll(escaped, ":", "\\:")
}

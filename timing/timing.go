package timing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidArgument is returned when an audio duration or image count is
// zero or negative. Check with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Spec is the immutable configuration for a Calculator. Frame rate is fixed
// for the calculator's lifetime; ImageCount is the default segmentation count
// callers can fall back to when they have no per-video override.
type Spec struct {
	FrameRate  int `json:"frame_rate"`
	ImageCount int `json:"image_count"`
}

// Calculator maps an audio duration and image count to per-image time
// windows, frame counts, and narration word-range assignments. All methods
// are pure functions; a Calculator is safe for concurrent use.
type Calculator struct {
	spec Spec
}

// NewCalculator validates the spec and returns a Calculator.
func NewCalculator(spec Spec) (*Calculator, error) {
	if spec.FrameRate <= 0 {
		return nil, fmt.Errorf("%w: frame rate must be positive, got %d", ErrInvalidArgument, spec.FrameRate)
	}
	if spec.ImageCount <= 0 {
		return nil, fmt.Errorf("%w: image count must be positive, got %d", ErrInvalidArgument, spec.ImageCount)
	}
	return &Calculator{spec: spec}, nil
}

// Spec returns the calculator's configuration.
func (c *Calculator) Spec() Spec {
	return c.spec
}

// ImageTiming is the time window a single image occupies in the final video.
type ImageTiming struct {
	Index    int     `json:"index"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

// WordTiming assigns a half-open range of narration words to an image.
// StartWord/EndWord index into the whitespace-split word sequence; the range
// may be empty when the image count does not divide the word count.
type WordTiming struct {
	ImageIndex int     `json:"image_index"`
	StartWord  int     `json:"start_word"`
	EndWord    int     `json:"end_word"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
}

// SyncPoint marks the start of a visual segment for aligning image
// transitions with narration playback.
type SyncPoint struct {
	Time       float64 `json:"time"`
	ImageIndex int     `json:"image_index"`
}

// SyncMap aggregates everything the composition and subtitle pipelines need
// to keep visuals and narration in step.
type SyncMap struct {
	ImageTimings []ImageTiming `json:"image_timings"`
	WordTimings  []WordTiming  `json:"word_timings"`
	SyncPoints   []SyncPoint   `json:"sync_points"`
}

func validate(audioDuration float64, imageCount int) error {
	if audioDuration <= 0 {
		return fmt.Errorf("%w: audio duration must be positive, got %g", ErrInvalidArgument, audioDuration)
	}
	if imageCount <= 0 {
		return fmt.Errorf("%w: image count must be positive, got %d", ErrInvalidArgument, imageCount)
	}
	return nil
}

// ComputeImageTimings divides audioDuration into imageCount equal-length
// windows. Window i spans [i*segment, (i+1)*segment); the last window ends at
// audioDuration within floating-point tolerance.
func (c *Calculator) ComputeImageTimings(audioDuration float64, imageCount int) ([]ImageTiming, error) {
	if err := validate(audioDuration, imageCount); err != nil {
		return nil, err
	}

	segment := audioDuration / float64(imageCount)
	timings := make([]ImageTiming, imageCount)
	for i := 0; i < imageCount; i++ {
		// Start and End derive from the same i*segment expression so
		// consecutive windows share an exact boundary.
		timings[i] = ImageTiming{
			Index:    i,
			Start:    float64(i) * segment,
			End:      float64(i+1) * segment,
			Duration: segment,
		}
	}
	return timings, nil
}

// TotalDuration returns the total video duration for the given inputs. Video
// length is defined to equal audio length regardless of image count: images
// are stretched or compressed to fit the audio, never the other way around.
func (c *Calculator) TotalDuration(audioDuration float64, imageCount int) (float64, error) {
	if err := validate(audioDuration, imageCount); err != nil {
		return 0, err
	}
	return audioDuration, nil
}

// FramesToSeconds converts a frame count to seconds at the configured rate.
func (c *Calculator) FramesToSeconds(frames int) float64 {
	return float64(frames) / float64(c.spec.FrameRate)
}

// SecondsToFrames converts seconds to a whole frame count, discarding any
// fractional frame. Round-tripping through FramesToSeconds loses sub-frame
// precision when seconds is not an exact multiple of the frame interval.
func (c *Calculator) SecondsToFrames(seconds float64) int {
	return int(math.Floor(seconds * float64(c.spec.FrameRate)))
}

// ComputeSyncPoints returns the start timestamp of each image window, in
// index order.
func (c *Calculator) ComputeSyncPoints(audioDuration float64, imageCount int) ([]float64, error) {
	timings, err := c.ComputeImageTimings(audioDuration, imageCount)
	if err != nil {
		return nil, err
	}

	points := make([]float64, len(timings))
	for i, t := range timings {
		points[i] = t.Start
	}
	return points, nil
}

// BuildSyncMap computes image timings and maps narration word ranges onto
// them. Narration is split on whitespace; wordsPerImage is
// max(1, wordCount/imageCount), so when imageCount does not divide the word
// count, trailing images receive empty ranges rather than redistributed
// remainder words. Empty narration yields zero words and empty ranges on
// every image; it is not an error.
func (c *Calculator) BuildSyncMap(narrationText string, audioDuration float64, imageCount int) (SyncMap, error) {
	timings, err := c.ComputeImageTimings(audioDuration, imageCount)
	if err != nil {
		return SyncMap{}, err
	}

	words := strings.Fields(narrationText)
	wordCount := len(words)

	wordsPerImage := wordCount / imageCount
	if wordsPerImage < 1 {
		wordsPerImage = 1
	}

	m := SyncMap{
		ImageTimings: timings,
		WordTimings:  make([]WordTiming, 0, imageCount),
		SyncPoints:   make([]SyncPoint, 0, imageCount),
	}

	for i, t := range timings {
		startWord := i * wordsPerImage
		if startWord > wordCount {
			startWord = wordCount
		}
		endWord := (i + 1) * wordsPerImage
		if endWord > wordCount {
			endWord = wordCount
		}
		if endWord < startWord {
			endWord = startWord
		}

		m.WordTimings = append(m.WordTimings, WordTiming{
			ImageIndex: i,
			StartWord:  startWord,
			EndWord:    endWord,
			StartTime:  t.Start,
			EndTime:    t.End,
		})
		m.SyncPoints = append(m.SyncPoints, SyncPoint{Time: t.Start, ImageIndex: i})
	}

	return m, nil
}

// Words splits narration text the same way BuildSyncMap does, so callers can
// slice the returned sequence with WordTiming ranges.
func Words(narrationText string) []string {
	return strings.Fields(narrationText)
}

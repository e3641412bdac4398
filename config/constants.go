package config

import "time"

// Video Output Constants
const (
	// VideoWidth is the output video width (9:16 aspect ratio)
	VideoWidth = 1080

	// VideoHeight is the output video height (9:16 aspect ratio)
	VideoHeight = 1920

	// FrameRate is the output frame rate in frames per second
	FrameRate = 30

	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// AudioCodec is the audio encoding codec
	AudioCodec = "aac"

	// AudioBitrate is the audio quality bitrate
	AudioBitrate = "192k"

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "fast"

	// PixelFormat keeps output playable on every player/platform
	PixelFormat = "yuv420p"
)

// Timing Constants
const (
	// DefaultImageCount is the default number of images per video
	DefaultImageCount = 12

	// MaxVideoDuration is the maximum allowed video length in seconds (3 minutes)
	MaxVideoDuration = 180.0

	// VideoEndPadding adds a delay at the end of the video in seconds
	VideoEndPadding = 0.5
)

// Processing Constants
const (
	// MaxConcurrentJobs limits the number of videos rendered simultaneously
	MaxConcurrentJobs = 2

	// JobBatchDelay is the wait time between render batches
	JobBatchDelay = 2 * time.Second

	// JobLedgerTTL is how long completed job ids stay in the ledger
	JobLedgerTTL = 24 * time.Hour
)

// Title and Metadata Constants
const (
	// MaxTitleWords is the maximum number of narration words used for a title
	MaxTitleWords = 10

	// MaxTitleLength is the maximum character length for video titles
	MaxTitleLength = 100
)

// Directory Constants
const (
	// InputDir is the directory containing render job JSON files
	InputDir = "input"

	// OutputDir is the directory for generated videos and subtitles
	OutputDir = "output"
)

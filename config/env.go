package config

import (
	"os"
	"strconv"
)

// GetRedisAddr returns the Redis address for the job ledger.
func GetRedisAddr() string {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return addr
}

// GetRedisPassword returns the Redis password, empty when unset.
func GetRedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}

// GetRedisDB returns the Redis database number, 0 when unset or invalid.
func GetRedisDB() int {
	db, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		return 0
	}
	return db
}

// GetArtifactBucket returns the S3 bucket for rendered artifacts. Empty means
// artifacts are kept on local disk only.
func GetArtifactBucket() string {
	return os.Getenv("ARTIFACT_BUCKET")
}

// GetArtifactRegion returns the AWS region for the artifact bucket.
func GetArtifactRegion() string {
	return os.Getenv("ARTIFACT_REGION")
}

// GetQualityPresetName returns the encoder profile name, defaulting to the
// YouTube Shorts profile.
func GetQualityPresetName() string {
	name := os.Getenv("QUALITY_PRESET")
	if name == "" {
		name = "youtube_shorts"
	}
	return name
}

// GetSubtitleStyleName returns the subtitle style preset name.
func GetSubtitleStyleName() string {
	name := os.Getenv("SUBTITLE_STYLE")
	if name == "" {
		name = "youtube_shorts"
	}
	return name
}

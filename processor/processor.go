package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MJabarian/autotube-sub001/config"
	"github.com/MJabarian/autotube-sub001/effects"
	"github.com/MJabarian/autotube-sub001/jobs"
	"github.com/MJabarian/autotube-sub001/media"
	"github.com/MJabarian/autotube-sub001/storage"
	"github.com/MJabarian/autotube-sub001/subtitle"
	"github.com/MJabarian/autotube-sub001/timing"
	"github.com/MJabarian/autotube-sub001/types"
	"github.com/MJabarian/autotube-sub001/video"
)

// Processor runs the full render pipeline for a job: probe the narration
// audio, build the sync map, pick effects, render subtitles, compose the
// video, and optionally upload artifacts.
type Processor struct {
	composer *video.Composer
	quality  effects.Quality
	style    effects.SubtitleStyle
	ledger   *jobs.Ledger
	store    *storage.ArtifactStore
	outDir   string
}

// Config assembles a Processor. Ledger and Store are optional; without them
// the processor renders unconditionally and keeps artifacts on local disk.
type Config struct {
	Quality       effects.Quality
	SubtitleStyle effects.SubtitleStyle
	Ledger        *jobs.Ledger
	Store         *storage.ArtifactStore
	OutputDir     string
}

// New creates a processor and ensures the output directory exists.
func New(cfg Config) (*Processor, error) {
	composer, err := video.NewComposer(cfg.Quality)
	if err != nil {
		return nil, err
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = config.OutputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Processor{
		composer: composer,
		quality:  cfg.Quality,
		style:    cfg.SubtitleStyle,
		ledger:   cfg.Ledger,
		store:    cfg.Store,
		outDir:   outDir,
	}, nil
}

// Calculator exposes the timing calculator used for composition, so the API
// layer can answer sync-map queries with the same frame rate.
func (p *Processor) Calculator() *timing.Calculator {
	return p.composer.Calculator()
}

// ProcessFromDirectory renders every job JSON in inputDir with bounded
// concurrency.
func (p *Processor) ProcessFromDirectory(ctx context.Context, inputDir string) error {
	files, err := filepath.Glob(filepath.Join(inputDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list job files: %w", err)
	}
	if len(files) == 0 {
		log.Println("No job files found in input directory")
		return nil
	}

	log.Printf("Found %d jobs to render", len(files))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, config.MaxConcurrentJobs)

	for i, file := range files {
		wg.Add(1)

		go func(idx int, file string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := p.ProcessSingleFile(ctx, file, idx+1, len(files)); err != nil {
				log.Printf("Failed to render %s: %v", file, err)
			}

			if idx < len(files)-1 {
				time.Sleep(config.JobBatchDelay)
			}
		}(i, file)
	}

	wg.Wait()
	log.Println("All jobs rendered!")
	return nil
}

// ProcessSingleFile reads one job JSON and renders it.
func (p *Processor) ProcessSingleFile(ctx context.Context, jsonFile string, current, total int) error {
	log.Printf("[%d/%d] Rendering: %s", current, total, filepath.Base(jsonFile))

	data, err := os.ReadFile(jsonFile)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	var job types.RenderJob
	if err := json.Unmarshal(data, &job); err != nil {
		return fmt.Errorf("failed to parse job file: %w", err)
	}

	if job.Status != "" && job.Status != "success" {
		return fmt.Errorf("job status is not success: %s", job.Status)
	}

	_, err = p.ProcessJob(ctx, job)
	return err
}

// ProcessJob renders a single job end to end.
func (p *Processor) ProcessJob(ctx context.Context, job types.RenderJob) (types.RenderResult, error) {
	if err := validateJob(&job); err != nil {
		return types.RenderResult{}, err
	}

	if p.ledger != nil {
		done, err := p.ledger.IsDone(ctx, job.UUID)
		if err != nil {
			log.Printf("Ledger lookup failed for %s, rendering anyway: %v", job.UUID, err)
		} else if done {
			return types.RenderResult{UUID: job.UUID, Skipped: true}, nil
		}
	}

	duration, err := media.ProbeDuration(ctx, job.AudioPath)
	if err != nil {
		return types.RenderResult{}, fmt.Errorf("failed to probe audio: %w", err)
	}
	log.Printf("Audio duration: %.2fs, %d images", duration, len(job.ImagePaths))

	calc := p.composer.Calculator()
	syncMap, err := calc.BuildSyncMap(job.NarrationText, duration, len(job.ImagePaths))
	if err != nil {
		return types.RenderResult{}, fmt.Errorf("failed to build sync map: %w", err)
	}

	presets := pickPresets(job, len(job.ImagePaths))

	words := timing.Words(job.NarrationText)
	cues := subtitle.CuesFromSyncMap(syncMap, words)

	srtPath := filepath.Join(p.outDir, fmt.Sprintf("%s.srt", job.UUID))
	if err := subtitle.WriteSRT(cues, srtPath); err != nil {
		return types.RenderResult{}, fmt.Errorf("failed to write SRT: %w", err)
	}

	assPath := filepath.Join(os.TempDir(), fmt.Sprintf("%s_subtitles.ass", job.UUID))
	if err := subtitle.WriteASS(cues, p.style, p.quality.Width, p.quality.Height, assPath); err != nil {
		return types.RenderResult{}, fmt.Errorf("failed to write ASS: %w", err)
	}
	defer os.Remove(assPath)

	outputPath := filepath.Join(p.outDir, fmt.Sprintf("%s.mp4", job.UUID))
	log.Printf("Composing video...")
	if err := p.composer.Compose(job.ImagePaths, syncMap.ImageTimings, presets, job.AudioPath, assPath, outputPath); err != nil {
		return types.RenderResult{}, fmt.Errorf("video composition failed: %w", err)
	}
	log.Printf("Video created: %s", outputPath)

	result := types.RenderResult{
		UUID:         job.UUID,
		VideoPath:    outputPath,
		SubtitlePath: srtPath,
		Duration:     duration,
		ImageCount:   len(job.ImagePaths),
		Title:        jobTitle(job, words),
	}

	if p.store != nil {
		key := fmt.Sprintf("videos/%s.mp4", job.UUID)
		if err := p.store.PutFile(ctx, key, outputPath); err != nil {
			return types.RenderResult{}, fmt.Errorf("artifact upload failed: %w", err)
		}
		if err := p.store.PutFile(ctx, fmt.Sprintf("subtitles/%s.srt", job.UUID), srtPath); err != nil {
			log.Printf("Subtitle upload failed for %s: %v", job.UUID, err)
		}
		result.ArtifactKey = key
		log.Printf("Artifacts uploaded: %s", key)
	}

	if p.ledger != nil {
		if err := p.ledger.MarkDone(ctx, job.UUID); err != nil {
			log.Printf("Failed to mark job %s done: %v", job.UUID, err)
		}
	}

	log.Printf("SUCCESS! Job %s rendered", job.UUID)
	return result, nil
}

// validateJob checks required fields and assigns a UUID when missing.
func validateJob(job *types.RenderJob) error {
	if job.AudioPath == "" {
		return fmt.Errorf("job is missing audio path")
	}
	if len(job.ImagePaths) == 0 {
		return fmt.Errorf("job has no images")
	}
	if job.UUID == "" {
		job.UUID = uuid.New().String()
		log.Printf("Job had no UUID, assigned %s", job.UUID)
	}
	return nil
}

// pickPresets chooses one Ken Burns effect per image, seeded from the job id
// so re-renders of the same job move the camera the same way.
func pickPresets(job types.RenderJob, count int) []effects.KenBurns {
	rng := rand.New(rand.NewSource(job.Seed()))
	presets := make([]effects.KenBurns, count)
	for i := range presets {
		presets[i] = effects.RandomKenBurns(rng)
	}
	return presets
}

// jobTitle uses the job's own title, or the first narration words when the
// job has none.
func jobTitle(job types.RenderJob, words []string) string {
	if job.Title != "" {
		return job.Title
	}

	title := ""
	for i, w := range words {
		if i >= config.MaxTitleWords {
			break
		}
		title += w + " "
	}

	if len(title) > config.MaxTitleLength {
		title = title[:config.MaxTitleLength-3] + "..."
	}

	return title
}

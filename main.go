package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MJabarian/autotube-sub001/api"
	"github.com/MJabarian/autotube-sub001/config"
	"github.com/MJabarian/autotube-sub001/effects"
	"github.com/MJabarian/autotube-sub001/jobs"
	"github.com/MJabarian/autotube-sub001/kafka"
	"github.com/MJabarian/autotube-sub001/processor"
	"github.com/MJabarian/autotube-sub001/storage"
)

const (
	// DefaultAPIPort is the default port for the HTTP API server
	DefaultAPIPort = ":8081"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	batchMode := flag.Bool("batch", false, "Run in batch mode (render jobs from input/ directory)")
	kafkaMode := flag.Bool("kafka", false, "Run in Kafka consumer mode (consume render jobs from topic)")
	apiPort := flag.String("port", DefaultAPIPort, "API server port (e.g., :8081)")
	flag.Parse()

	log.Println("Video Composition Service - Starting...")

	proc, err := buildProcessor()
	if err != nil {
		log.Fatalf("Failed to initialize processor: %v", err)
	}

	if *batchMode {
		log.Println("Running in BATCH mode")
		if err := proc.ProcessFromDirectory(context.Background(), config.InputDir); err != nil {
			log.Fatalf("Batch rendering failed: %v", err)
		}
		os.Exit(0)
	}

	if *kafkaMode {
		log.Println("Running in KAFKA consumer mode")

		kafkaConfig := kafka.RenderConsumerConfig{
			Brokers:   kafka.Brokers(),
			Topic:     kafka.Topic(),
			GroupID:   kafka.GroupID(),
			Processor: proc,
		}

		log.Printf("Kafka Brokers: %v", kafkaConfig.Brokers)
		log.Printf("Topic: %s", kafkaConfig.Topic)
		log.Printf("Consumer Group: %s", kafkaConfig.GroupID)

		if err := kafka.RunRenderConsumer(kafkaConfig); err != nil {
			log.Fatalf("Kafka consumer failed: %v", err)
		}
		os.Exit(0)
	}

	log.Println("Running in API mode")

	r := api.NewRouter(proc)

	log.Printf("API Server listening on %s", *apiPort)
	log.Println("Endpoints:")
	log.Println("  GET  /api/health               - Health check")
	log.Println("  POST /api/timing/sync-map      - Compute narration/image sync map")
	log.Println("  POST /api/timing/image-timings - Compute image time windows")
	log.Println("  POST /api/render               - Render a video from a job")

	if err := http.ListenAndServe(*apiPort, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildProcessor assembles the pipeline from environment settings. The job
// ledger and artifact store are optional: missing Redis degrades to
// render-always, and an unset bucket keeps artifacts local.
func buildProcessor() (*processor.Processor, error) {
	ledger := jobs.NewLedger(jobs.Config{
		Addr:     config.GetRedisAddr(),
		Password: config.GetRedisPassword(),
		DB:       config.GetRedisDB(),
		TTL:      config.JobLedgerTTL,
	})
	if ledger.Degraded() {
		log.Println("Job ledger running in degraded mode (no Redis)")
	}

	var store *storage.ArtifactStore
	if bucket := config.GetArtifactBucket(); bucket != "" {
		s, err := storage.NewArtifactStore(context.Background(), storage.StoreConfig{
			Bucket: bucket,
			Region: config.GetArtifactRegion(),
		})
		if err != nil {
			log.Printf("Artifact store not initialized: %v", err)
			log.Println("Running in LOCAL-ONLY mode (no upload)")
		} else {
			store = s
			log.Printf("Artifact store ready (bucket: %s)", bucket)
		}
	} else {
		log.Println("No artifact bucket configured, keeping renders local")
	}

	return processor.New(processor.Config{
		Quality:       effects.QualityPreset(config.GetQualityPresetName()),
		SubtitleStyle: effects.SubtitleStylePreset(config.GetSubtitleStyleName()),
		Ledger:        ledger,
		Store:         store,
		OutputDir:     config.OutputDir,
	})
}

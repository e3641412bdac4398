package kafka

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MJabarian/autotube-sub001/types"
)

// JobProcessor renders a single job. Implemented by processor.Processor.
type JobProcessor interface {
	ProcessJob(ctx context.Context, job types.RenderJob) (types.RenderResult, error)
}

// RenderConsumerConfig wires a render-job topic to a processor.
type RenderConsumerConfig struct {
	Brokers   []string
	Topic     string
	GroupID   string
	Processor JobProcessor
}

// NewRenderConsumer builds a consumer that decodes RenderJob messages,
// validates them, and hands them to the processor. Validation failures are
// marked (skipped); processing failures are retried.
func NewRenderConsumer(cfg RenderConsumerConfig) (*Consumer, error) {
	handler := &TypedHandler[types.RenderJob]{
		Validate: func(job *types.RenderJob) bool {
			if job.Status != "" && job.Status != "success" {
				log.Printf("Skipping job with status: %s", job.Status)
				return false
			}
			if job.UUID == "" {
				log.Printf("Job missing UUID, skipping")
				return false
			}
			if job.AudioPath == "" || len(job.ImagePaths) == 0 {
				log.Printf("Job %s missing audio or images, skipping", job.UUID)
				return false
			}
			return true
		},
		Process: func(ctx context.Context, job *types.RenderJob) error {
			log.Printf("Rendering job: UUID=%s", job.UUID)

			result, err := cfg.Processor.ProcessJob(ctx, *job)
			if err != nil {
				log.Printf("Failed to render job %s: %v", job.UUID, err)
				return err
			}
			if result.Skipped {
				log.Printf("Job %s already rendered, skipped", job.UUID)
				return nil
			}

			log.Printf("Rendered job %s: %s", job.UUID, result.VideoPath)
			return nil
		},
		AlwaysMark: true,
	}

	return NewConsumer(ConsumerConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
		Handler: handler,
	})
}

// RunRenderConsumer starts the consumer and blocks until SIGINT/SIGTERM,
// giving in-flight renders a moment to finish before closing.
func RunRenderConsumer(cfg RenderConsumerConfig) error {
	consumer, err := NewRenderConsumer(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		return err
	}

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigterm:
		log.Println("Received termination signal")
	case <-ctx.Done():
		log.Println("Context canceled")
	}

	cancel()
	time.Sleep(2 * time.Second)

	return consumer.Close()
}

// Brokers parses the broker list from the environment.
func Brokers() []string {
	brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	if brokers == "" {
		brokers = "localhost:9093"
	}
	return strings.Split(brokers, ",")
}

// Topic returns the render-job topic name.
func Topic() string {
	topic := os.Getenv("KAFKA_TOPIC_RENDER_JOBS")
	if topic == "" {
		topic = "video-render-jobs"
	}
	return topic
}

// GroupID returns the consumer group id.
func GroupID() string {
	groupID := os.Getenv("KAFKA_CONSUMER_GROUP_ID")
	if groupID == "" {
		groupID = "composition-service-consumer-group"
	}
	return groupID
}

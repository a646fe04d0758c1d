package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/centralcontact/forms-api/internal/config"
	"github.com/centralcontact/forms-api/internal/domain"
	"github.com/centralcontact/forms-api/internal/repository"
	"github.com/centralcontact/forms-api/internal/service/queue"
	"github.com/centralcontact/forms-api/pkg/logger"
)

// ArchiveWorker exports a form's old messages to S3, then hands the
// actual purge over to the cleanup queue.
type ArchiveWorker struct {
	sqsService   *queue.SQSService
	repository   repository.PostgresRepository
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
	s3Client     *s3.Client
	s3Config     *config.S3Config
}

func NewArchiveWorker(
	sqsService *queue.SQSService,
	repository repository.PostgresRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
	s3Client *s3.Client,
	s3Config *config.S3Config,
) *ArchiveWorker {
	return &ArchiveWorker{
		sqsService:   sqsService,
		repository:   repository,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
		s3Client:     s3Client,
		s3Config:     s3Config,
	}
}

func (w *ArchiveWorker) Start() {
	w.logger.Info("Starting Archive workers...")

	// Start multiple worker goroutines
	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *ArchiveWorker) Stop() {
	w.logger.Info("Stopping Archive workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All Archive workers stopped")
}

func (w *ArchiveWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Archive Worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Archive Worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Archive Worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *ArchiveWorker) processMessages(ctx context.Context) error {
	// Get archive queue URL from config
	config := config.DefaultSQSConfig()
	archiveQueueURL := config.ArchiveQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, archiveQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type == queue.MessageTypeArchive {
			if err := w.processArchiveMessage(ctx, msg.Message); err != nil {
				w.logger.Errorf("Failed to process archive message: %v", err)
				continue
			}

			// Only delete the message if processing was successful
			if err := w.sqsService.DeleteMessage(ctx, archiveQueueURL, msg.ReceiptHandle); err != nil {
				w.logger.Errorf("Failed to delete message: %v", err)
			}
		}
	}

	return nil
}

func (w *ArchiveWorker) processArchiveMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing archive message for form %s (before: %s)",
		msg.FormID, msg.BeforeDate.Format(time.RFC3339))

	form, err := w.repository.Form().GetByFormID(ctx, msg.FormID)
	if err != nil {
		return fmt.Errorf("failed to resolve form %s: %w", msg.FormID, err)
	}
	if form == nil {
		// Form was deleted after the archive was scheduled, nothing to do
		w.logger.Warnf("Form %s no longer exists, skipping archive", msg.FormID)
		return nil
	}

	messages, err := w.repository.Message().ListByFormIDBefore(ctx, form.ID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to fetch messages for archival for form %s: %w", msg.FormID, err)
	}

	if len(messages) == 0 {
		w.logger.Infof("No messages found for archival for form %s before %s", msg.FormID, msg.BeforeDate.Format(time.RFC3339))
		// Still enqueue cleanup message even if no messages found
		return w.enqueueCleanupMessage(ctx, msg.WebsiteUUID, msg.FormID, msg.BeforeDate)
	}

	w.logger.Infof("Found %d messages to archive for form %s before %s", len(messages), msg.FormID, msg.BeforeDate.Format(time.RFC3339))

	// Archive the messages to S3
	if err := w.archiveMessagesToS3(ctx, msg.WebsiteUUID, msg.FormID, messages, msg.BeforeDate); err != nil {
		return fmt.Errorf("failed to archive messages for form %s: %w", msg.FormID, err)
	}

	w.logger.Infof("Successfully archived %d messages for form %s to S3", len(messages), msg.FormID)

	// Enqueue cleanup message after successful archival
	return w.enqueueCleanupMessage(ctx, msg.WebsiteUUID, msg.FormID, msg.BeforeDate)
}

func (w *ArchiveWorker) archiveMessagesToS3(ctx context.Context, websiteUUID, formID string, messages []domain.Message, beforeDate time.Time) error {
	// Create S3 key with timestamp, website and form
	s3Key := fmt.Sprintf("form-messages/%s/messages_%s_before_%s.json",
		websiteUUID,
		formID,
		beforeDate.Format("2006-01-02_15-04-05"))

	// Prepare archive data
	archiveData := map[string]interface{}{
		"website_uuid":  websiteUUID,
		"form_id":       formID,
		"before_date":   beforeDate,
		"archived_at":   time.Now(),
		"message_count": len(messages),
		"messages":      messages,
	}

	// Convert to JSON
	jsonData, err := json.MarshalIndent(archiveData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal messages to JSON: %w", err)
	}

	// Upload to S3
	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &w.s3Config.BucketName,
		Key:         &s3Key,
		Body:        bytes.NewReader(jsonData),
		ContentType: &[]string{"application/json"}[0],
		Metadata: map[string]string{
			"website-uuid":  websiteUUID,
			"form-id":       formID,
			"archived-at":   time.Now().Format(time.RFC3339),
			"message-count": fmt.Sprintf("%d", len(messages)),
			"before-date":   beforeDate.Format(time.RFC3339),
		},
	})

	if err != nil {
		return fmt.Errorf("failed to upload archive to S3: %w", err)
	}

	w.logger.Infof("Successfully uploaded archive to S3: s3://%s/%s", w.s3Config.BucketName, s3Key)
	return nil
}

func (w *ArchiveWorker) enqueueCleanupMessage(ctx context.Context, websiteUUID, formID string, beforeDate time.Time) error {
	if err := w.sqsService.SendCleanupMessage(ctx, websiteUUID, formID, beforeDate); err != nil {
		return fmt.Errorf("failed to enqueue cleanup message: %w", err)
	}

	w.logger.Infof("Successfully enqueued cleanup message for form %s", formID)
	return nil
}

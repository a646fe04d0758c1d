package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/centralcontact/forms-api/internal/config"
	"github.com/centralcontact/forms-api/internal/domain"
)

type MessageType string

const (
	MessageTypeIndex   MessageType = "INDEX"
	MessageTypeArchive MessageType = "ARCHIVE"
	MessageTypeCleanup MessageType = "CLEANUP"
)

// Message is the envelope exchanged with the workers. INDEX carries the
// search documents of fresh submissions; ARCHIVE/CLEANUP identify a form by
// its public id plus a cutoff date.
type Message struct {
	Type        MessageType              `json:"type"`
	WebsiteUUID string                   `json:"website_uuid"`
	FormID      string                   `json:"form_id,omitempty"`
	Documents   []domain.MessageDocument `json:"documents,omitempty"`
	BeforeDate  time.Time                `json:"before_date,omitempty"`
	Timestamp   time.Time                `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

type SQSService struct {
	client          *sqs.Client
	indexQueueURL   string
	archiveQueueURL string
	cleanupQueueURL string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:          client,
		indexQueueURL:   config.IndexQueueURL,
		archiveQueueURL: config.ArchiveQueueURL,
		cleanupQueueURL: config.CleanupQueueURL,
	}
}

func (s *SQSService) SendIndexMessage(ctx context.Context, doc *domain.MessageDocument) error {
	msg := Message{
		Type:        MessageTypeIndex,
		WebsiteUUID: doc.WebsiteUUID,
		FormID:      doc.FormID,
		Documents:   []domain.MessageDocument{*doc},
		Timestamp:   doc.CreatedAt,
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendArchiveMessage(ctx context.Context, websiteUUID, formID string, before time.Time) error {
	msg := Message{
		Type:        MessageTypeArchive,
		WebsiteUUID: websiteUUID,
		FormID:      formID,
		BeforeDate:  before,
		Timestamp:   time.Now(),
	}

	return s.sendMessage(ctx, msg, s.archiveQueueURL)
}

func (s *SQSService) SendCleanupMessage(ctx context.Context, websiteUUID, formID string, before time.Time) error {
	msg := Message{
		Type:        MessageTypeCleanup,
		WebsiteUUID: websiteUUID,
		FormID:      formID,
		BeforeDate:  before,
		Timestamp:   time.Now(),
	}

	return s.sendMessage(ctx, msg, s.cleanupQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

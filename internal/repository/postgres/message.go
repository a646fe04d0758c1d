package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/centralcontact/forms-api/internal/domain"
)

type MessageRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewMessageRepository(writerDB, readerDB *gorm.DB) *MessageRepository {
	return &MessageRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	return r.writerDB.WithContext(ctx).Create(message).Error
}

func (r *MessageRepository) ListByFormID(ctx context.Context, formID uint) ([]domain.Message, error) {
	var messages []domain.Message
	if err := r.readerDB.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) ListByFormIDBefore(ctx context.Context, formID uint, before time.Time) ([]domain.Message, error) {
	var messages []domain.Message
	if err := r.readerDB.WithContext(ctx).
		Where("form_id = ? AND created_at < ?", formID, before).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) ListAll(ctx context.Context) ([]domain.Message, error) {
	var messages []domain.Message
	if err := r.readerDB.WithContext(ctx).
		Preload("Form").
		Preload("Form.Website").
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) DeleteByFormIDBefore(ctx context.Context, formID uint, before time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("form_id = ? AND created_at < ?", formID, before).
		Delete(&domain.Message{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

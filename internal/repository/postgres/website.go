package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/centralcontact/forms-api/internal/domain"
)

type WebsiteRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewWebsiteRepository(writerDB, readerDB *gorm.DB) *WebsiteRepository {
	return &WebsiteRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *WebsiteRepository) Create(ctx context.Context, website *domain.Website) (*domain.Website, error) {
	if err := r.writerDB.WithContext(ctx).Create(website).Error; err != nil {
		return nil, err
	}
	return website, nil
}

func (r *WebsiteRepository) GetByID(ctx context.Context, id uint) (*domain.Website, error) {
	var website domain.Website
	if err := r.readerDB.WithContext(ctx).First(&website, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &website, nil
}

func (r *WebsiteRepository) GetByUUID(ctx context.Context, uuid string) (*domain.Website, error) {
	var website domain.Website
	if err := r.readerDB.WithContext(ctx).First(&website, "uuid = ?", uuid).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &website, nil
}

func (r *WebsiteRepository) GetByUUIDAndSecret(ctx context.Context, uuid, secretKey string) (*domain.Website, error) {
	var website domain.Website
	if err := r.readerDB.WithContext(ctx).
		First(&website, "uuid = ? AND secret_key = ?", uuid, secretKey).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &website, nil
}

func (r *WebsiteRepository) GetByDomain(ctx context.Context, dom string) (*domain.Website, error) {
	var website domain.Website
	if err := r.readerDB.WithContext(ctx).First(&website, "domain = ?", dom).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &website, nil
}

func (r *WebsiteRepository) UpdateName(ctx context.Context, uuid, name string) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.Website{}).
		Where("uuid = ?", uuid).
		Update("name", name).Error
}

func (r *WebsiteRepository) Delete(ctx context.Context, uuid string) error {
	// Children before parents: the schema declares no ON DELETE CASCADE,
	// matching the explicit ordered deletes the dashboard relies on.
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var website domain.Website
		if err := tx.First(&website, "uuid = ?", uuid).Error; err != nil {
			return err
		}

		if err := tx.Where("form_id IN (?)",
			tx.Model(&domain.Form{}).Select("id").Where("website_id = ?", website.ID),
		).Delete(&domain.Message{}).Error; err != nil {
			return err
		}

		if err := tx.Where("website_id = ?", website.ID).Delete(&domain.Form{}).Error; err != nil {
			return err
		}

		return tx.Delete(&website).Error
	})
}

func (r *WebsiteRepository) List(ctx context.Context) ([]domain.Website, error) {
	var websites []domain.Website
	if err := r.readerDB.WithContext(ctx).
		Order("created_at DESC").
		Find(&websites).Error; err != nil {
		return nil, err
	}
	return websites, nil
}

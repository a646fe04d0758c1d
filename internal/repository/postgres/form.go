package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/centralcontact/forms-api/internal/domain"
)

type FormRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewFormRepository(writerDB, readerDB *gorm.DB) *FormRepository {
	return &FormRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *FormRepository) Create(ctx context.Context, form *domain.Form) (*domain.Form, error) {
	if err := r.writerDB.WithContext(ctx).Create(form).Error; err != nil {
		return nil, err
	}
	return form, nil
}

func (r *FormRepository) GetByID(ctx context.Context, id uint) (*domain.Form, error) {
	var form domain.Form
	if err := r.readerDB.WithContext(ctx).First(&form, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &form, nil
}

func (r *FormRepository) GetByFormID(ctx context.Context, formID string) (*domain.Form, error) {
	var form domain.Form
	if err := r.readerDB.WithContext(ctx).First(&form, "form_id = ?", formID).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &form, nil
}

func (r *FormRepository) GetByWebsiteAndFormID(ctx context.Context, websiteID uint, formID string) (*domain.Form, error) {
	var form domain.Form
	if err := r.readerDB.WithContext(ctx).
		First(&form, "website_id = ? AND form_id = ?", websiteID, formID).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &form, nil
}

func (r *FormRepository) ListByWebsiteID(ctx context.Context, websiteID uint) ([]domain.Form, error) {
	var forms []domain.Form
	if err := r.readerDB.WithContext(ctx).
		Where("website_id = ?", websiteID).
		Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *FormRepository) ListByWebsiteUUID(ctx context.Context, uuid string) ([]domain.Form, error) {
	var forms []domain.Form
	if err := r.readerDB.WithContext(ctx).
		Joins("JOIN websites ON websites.id = forms.website_id").
		Where("websites.uuid = ?", uuid).
		Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *FormRepository) UpdateTitle(ctx context.Context, id uint, title string) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.Form{}).
		Where("id = ?", id).
		Update("title", title).Error
}

func (r *FormRepository) Delete(ctx context.Context, id uint) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", id).Delete(&domain.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Form{}, "id = ?", id).Error
	})
}

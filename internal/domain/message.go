package domain

import (
	"encoding/json"
	"time"
)

// Message is a single submission. FormData is the raw request body exactly
// as posted; no field is stripped or coerced. Messages are immutable once
// created and only removed by cascading deletes of their parent Form or
// Website.
type Message struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	FormData  json.RawMessage `gorm:"type:jsonb;not null" json:"formData"`
	FormID    uint            `gorm:"not null;index" json:"formId"`
	CreatedAt time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"createdAt"`
	Form      *Form           `gorm:"foreignKey:FormID" json:"form,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}

// MessageDocument is the search-index projection of a Message, denormalized
// with the owning website and public form identifiers.
type MessageDocument struct {
	ID          uint            `json:"id"`
	WebsiteUUID string          `json:"website_uuid"`
	FormID      string          `json:"form_id"`
	FormData    json.RawMessage `json:"form_data"`
	CreatedAt   time.Time       `json:"created_at"`
}

type MessageSearchFilter struct {
	WebsiteUUID string `json:"website_uuid"`
	FormID      string `json:"form_id"`
	Query       string `json:"query"`
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
}

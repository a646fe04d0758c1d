package domain

import (
	"encoding/json"
)

// Form belongs to exactly one Website. FormID is the opaque public
// identifier used in submission URLs and read-side lookups; it is unique
// across the whole system, distinct from the numeric primary key.
// FormSchema is advisory only and never enforced against submissions.
type Form struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	FormID     string          `gorm:"type:uuid;uniqueIndex;not null" json:"formId"`
	Title      string          `gorm:"type:text;not null" json:"title"`
	FormSchema json.RawMessage `gorm:"type:jsonb" json:"formSchema,omitempty"`
	WebsiteID  uint            `gorm:"not null;index" json:"websiteId"`
	Website    *Website        `gorm:"foreignKey:WebsiteID" json:"website,omitempty"`
}

func (Form) TableName() string {
	return "forms"
}

package domain

import (
	"time"
)

// Website is a registered tenant site. Its UUID is the public identifier
// used in submission URLs; SecretKey is the literal bearer credential a
// site's backend must present (stored and compared as plaintext). Domain is
// the only origin allowed to submit against this website's forms.
type Website struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UUID      string    `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Domain    string    `gorm:"type:text;uniqueIndex;not null" json:"domain"`
	AppKey    string    `gorm:"type:text;not null" json:"appKey"`
	SecretKey string    `gorm:"type:text;not null" json:"secretKey"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (Website) TableName() string {
	return "websites"
}

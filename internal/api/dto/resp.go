package dto

import (
	"encoding/json"
	"time"
)

// WebsiteResponse is returned from registration and listing. The secret key
// is the literal bearer credential; it is shown to the operator here and
// never re-derivable elsewhere.
type WebsiteResponse struct {
	ID        uint      `json:"id" example:"1"`
	UUID      string    `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Acme"`
	Domain    string    `json:"domain" example:"acme.com"`
	AppKey    string    `json:"appKey" example:"3f2a9c1b4d8e7f60"`
	SecretKey string    `json:"secretKey" example:"3f2a9c1b4d8e7f603f2a9c1b4d8e7f60"`
	CreatedAt time.Time `json:"createdAt" example:"2025-07-17T21:20:48Z"`
}

type FormResponse struct {
	ID         uint            `json:"id" example:"1"`
	FormID     string          `json:"formId" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title      string          `json:"title" example:"Contact"`
	FormSchema json.RawMessage `json:"formSchema,omitempty" swaggertype:"string" example:"{\"name\":\"text\"}"`
	WebsiteID  uint            `json:"websiteId" example:"1"`
}

// MessageResponse is the created-message body echoed back by the public
// submission endpoint and used by the dashboard listings.
type MessageResponse struct {
	ID        uint            `json:"id" example:"1"`
	FormData  json.RawMessage `json:"formData" swaggertype:"string" example:"{\"name\":\"A\",\"email\":\"a@x.com\"}"`
	FormID    uint            `json:"formId" example:"1"`
	CreatedAt time.Time       `json:"createdAt" example:"2025-07-17T21:20:48Z"`
}

// MessageDetailResponse joins the owning form and website for the global
// dashboard listing.
type MessageDetailResponse struct {
	MessageResponse
	Form    *FormResponse    `json:"form,omitempty"`
	Website *WebsiteResponse `json:"website,omitempty"`
}

// MessageEvent is published to the live feed when a submission is stored.
type MessageEvent struct {
	WebsiteUUID string          `json:"website_uuid"`
	FormID      string          `json:"form_id"`
	Message     MessageResponse `json:"message"`
}

// SearchMessageResponse is a search hit from the message index.
type SearchMessageResponse struct {
	ID        uint            `json:"id" example:"1"`
	FormID    string          `json:"formId" example:"550e8400-e29b-41d4-a716-446655440000"`
	FormData  json.RawMessage `json:"formData" swaggertype:"string" example:"{\"name\":\"A\"}"`
	CreatedAt time.Time       `json:"createdAt" example:"2025-07-17T21:20:48Z"`
}

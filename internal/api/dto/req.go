package dto

import (
	"encoding/json"
)

type RegisterWebsiteRequest struct {
	Name   string `json:"name" binding:"required" example:"Acme"`
	Domain string `json:"domain" binding:"required" example:"acme.com"`
}

type RenameWebsiteRequest struct {
	Name string `json:"name" binding:"required" example:"Acme Corp"`
}

type CreateFormRequest struct {
	WebsiteID uint            `json:"websiteId" binding:"required" example:"1"`
	Title     string          `json:"title" binding:"required" example:"Contact"`
	Fields    json.RawMessage `json:"fields" binding:"required" swaggertype:"string" example:"{\"name\":\"text\",\"email\":\"email\"}"`
}

type RenameFormRequest struct {
	Title string `json:"title" binding:"required" example:"Contact us"`
}

type ArchiveFormRequest struct {
	// Before accepts RFC3339 or YYYY-MM-DD.
	Before string `json:"before" binding:"required" example:"2025-01-31"`
}

package dto

import (
	"github.com/centralcontact/forms-api/internal/domain"
)

func FromWebsite(website *domain.Website) *WebsiteResponse {
	return &WebsiteResponse{
		ID:        website.ID,
		UUID:      website.UUID,
		Name:      website.Name,
		Domain:    website.Domain,
		AppKey:    website.AppKey,
		SecretKey: website.SecretKey,
		CreatedAt: website.CreatedAt,
	}
}

func FromWebsites(websites []domain.Website) []WebsiteResponse {
	responses := make([]WebsiteResponse, len(websites))
	for i, website := range websites {
		responses[i] = *FromWebsite(&website)
	}
	return responses
}

func FromForm(form *domain.Form) *FormResponse {
	return &FormResponse{
		ID:         form.ID,
		FormID:     form.FormID,
		Title:      form.Title,
		FormSchema: form.FormSchema,
		WebsiteID:  form.WebsiteID,
	}
}

func FromForms(forms []domain.Form) []FormResponse {
	responses := make([]FormResponse, len(forms))
	for i, form := range forms {
		responses[i] = *FromForm(&form)
	}
	return responses
}

func FromMessage(message *domain.Message) *MessageResponse {
	return &MessageResponse{
		ID:        message.ID,
		FormData:  message.FormData,
		FormID:    message.FormID,
		CreatedAt: message.CreatedAt,
	}
}

func FromMessages(messages []domain.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = *FromMessage(&message)
	}
	return responses
}

func FromMessageDetail(message *domain.Message) *MessageDetailResponse {
	resp := &MessageDetailResponse{
		MessageResponse: *FromMessage(message),
	}
	if message.Form != nil {
		resp.Form = FromForm(message.Form)
		if message.Form.Website != nil {
			resp.Website = FromWebsite(message.Form.Website)
		}
	}
	return resp
}

func FromMessageDetails(messages []domain.Message) []MessageDetailResponse {
	responses := make([]MessageDetailResponse, len(messages))
	for i := range messages {
		responses[i] = *FromMessageDetail(&messages[i])
	}
	return responses
}

func FromMessageDocument(doc *domain.MessageDocument) *SearchMessageResponse {
	return &SearchMessageResponse{
		ID:        doc.ID,
		FormID:    doc.FormID,
		FormData:  doc.FormData,
		CreatedAt: doc.CreatedAt,
	}
}

func FromMessageDocuments(docs []domain.MessageDocument) []SearchMessageResponse {
	responses := make([]SearchMessageResponse, len(docs))
	for i := range docs {
		responses[i] = *FromMessageDocument(&docs[i])
	}
	return responses
}

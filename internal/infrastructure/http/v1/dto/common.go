// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// Envelope is the uniform response shape for CRUD endpoints.
// Search and sale deletion deliberately bypass it.
type Envelope struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Data     any    `json:"data,omitempty"`
	Metadata any    `json:"metadata,omitempty"`
}

// ListMetadata describes one page of a paginated listing.
type ListMetadata struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

// MessageResponse is the bare shape sale deletion answers with.
type MessageResponse struct {
	Message string `json:"message"`
}

package models

import "github.com/google/uuid"

// Category is an append-only tagging record. Names are unique across all
// categories; there are no update or delete operations.
type Category struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt int64     `json:"createdAt"`
	CreatorID int64     `json:"_creator"`
}

// CategoryInput is the request body accepted by the category create endpoint.
type CategoryInput struct {
	Name string `json:"name"`
}

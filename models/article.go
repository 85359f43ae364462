package models

import "github.com/google/uuid"

// Article is a content record owned by the user who created it. The owner
// reference never changes after creation; the category reference is optional
// and must resolve to an existing category at write time.
type Article struct {
	ID    uuid.UUID `json:"_id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`

	// CreatedAt and UpdatedAt are epoch milliseconds.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`

	CreatorID  int64      `json:"_creator"`
	CategoryID *uuid.UUID `json:"_category,omitempty"`
}

// TableName returns the name of the database table
// associated with the Article model.
func (a Article) TableName() string {
	return "articles"
}

// ArticleInput is the request body accepted by the article create endpoint.
// Category carries the raw category id string exactly as received; it is
// parsed and resolved by the service layer.
type ArticleInput struct {
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	Category *string `json:"_category"`
}

// ArticlePatch is the request body accepted by the article update endpoint.
// Nil fields are left unchanged.
type ArticlePatch struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Category *string `json:"_category"`
}

// ArticleUpdate is the persistence-layer description of a partial article
// update. It is always owner-scoped: the update applies only to the record
// matching both ID and CreatorID.
type ArticleUpdate struct {
	ID        uuid.UUID
	CreatorID int64

	Title      *string
	Body       *string
	CategoryID *uuid.UUID

	// UpdatedAt is the new modification stamp in epoch milliseconds.
	UpdatedAt int64
}

package models

// ArticlesResponse wraps the article collection returned by the list
// endpoint.
type ArticlesResponse struct {
	Articles []Article `json:"articles"`
}

// ArticleResponse wraps a single article returned by the get, update, and
// delete endpoints.
type ArticleResponse struct {
	Article Article `json:"article"`
}

// UsersResponse wraps the user collection returned by the list endpoint.
// Password hashes are excluded by the User JSON tags.
type UsersResponse struct {
	Users []User `json:"users"`
}

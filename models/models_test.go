package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// The wire format uses Mongo-style field names; clients depend on them.

func TestUser_JSONShape(t *testing.T) {
	u := User{
		UserID:       42,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    1700000000000,
	}

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(b)

	for _, field := range []string{`"_id":42`, `"email":"alice@example.com"`, `"createdAt":1700000000000`} {
		if !strings.Contains(body, field) {
			t.Errorf("expected %s in %s", field, body)
		}
	}
	if strings.Contains(body, "secret") || strings.Contains(body, "assword") {
		t.Errorf("password hash must never be serialized, got: %s", body)
	}
}

func TestArticle_JSONShape(t *testing.T) {
	catID := uuid.New()
	a := Article{
		ID:         uuid.New(),
		Title:      "Hello",
		Body:       "World",
		CreatedAt:  1700000000000,
		CreatorID:  7,
		CategoryID: &catID,
	}

	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(b)

	for _, field := range []string{`"_id"`, `"_creator":7`, `"_category":"` + catID.String() + `"`} {
		if !strings.Contains(body, field) {
			t.Errorf("expected %s in %s", field, body)
		}
	}
}

func TestArticle_OmitsEmptyCategoryAndUpdatedAt(t *testing.T) {
	b, err := json.Marshal(Article{ID: uuid.New(), Title: "Hello"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if strings.Contains(string(b), "_category") {
		t.Errorf("nil category must be omitted, got: %s", b)
	}
	if strings.Contains(string(b), "updatedAt") {
		t.Errorf("zero updatedAt must be omitted, got: %s", b)
	}
}

func TestCredentials_Normalize(t *testing.T) {
	c := Credentials{Email: "  bob@example.com  ", Password: "  spaced  "}
	c.Normalize()

	if c.Email != "bob@example.com" {
		t.Errorf("expected trimmed email, got %q", c.Email)
	}
	if c.Password != "  spaced  " {
		t.Errorf("password must be left untouched, got %q", c.Password)
	}
}

func TestToken_GetUserID(t *testing.T) {
	tok := Token{RegisteredClaims: jwt.RegisteredClaims{Subject: "42"}}

	userID, err := tok.GetUserID()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
}

func TestToken_GetUserID_BadSubject(t *testing.T) {
	tok := Token{RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"}}

	if _, err := tok.GetUserID(); err == nil {
		t.Error("expected error for a non-numeric subject, got nil")
	}
}

func TestArticle_TableName(t *testing.T) {
	if got := (Article{}).TableName(); got != "articles" {
		t.Errorf("expected 'articles', got %q", got)
	}
}

package utils

import (
	"context"
	"testing"

	"github.com/bkdev/go-blog-api/models"
)

func TestGetUserFromContext_Success(t *testing.T) {
	want := models.User{UserID: 42, Email: "alice@example.com"}
	ctx := context.WithValue(context.Background(), UserCtxKey, want)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected ok == true when a user is stored")
	}
	if got.UserID != want.UserID || got.Email != want.Email {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	if _, ok := GetUserFromContext(context.Background()); ok {
		t.Error("expected ok == false for an empty context")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")
	if _, ok := GetUserFromContext(ctx); ok {
		t.Error("expected ok == false for a value of the wrong type")
	}
}

func TestGetTokenFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), TokenCtxKey, "raw-token")

	got, ok := GetTokenFromContext(ctx)
	if !ok {
		t.Fatal("expected ok == true when a token is stored")
	}
	if got != "raw-token" {
		t.Errorf("expected 'raw-token', got %q", got)
	}
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	if _, ok := GetTokenFromContext(context.Background()); ok {
		t.Error("expected ok == false for an empty context")
	}
}

func TestContextKey_String(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("expected 'user', got %q", UserCtxKey.String())
	}
	if TokenCtxKey.String() != "token" {
		t.Errorf("expected 'token', got %q", TokenCtxKey.String())
	}
}

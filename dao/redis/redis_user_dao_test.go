package redis

import (
	"context"
	"testing"
	"time"

	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/models"
)

func TestRedisUserDAO_RoundTrip(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisUserDAO(mockClient)

	user := models.User{
		ID:        "5f0b9f9a-3a3e-4a5b-9a3f-1c2d3e4f5a6b",
		Name:      "Bryan",
		Email:     "bryan@example.com",
		SurfLevel: models.LevelIntermediario,
		Stance:    "regular",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := dao.UpsertUser(user); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	got, err := dao.GetUser(user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got == nil || got.Email != user.Email || got.SurfLevel != models.LevelIntermediario {
		t.Errorf("Expected stored user back, got %+v", got)
	}
}

func TestRedisUserDAO_MissAndDelete(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisUserDAO(mockClient)

	got, err := dao.GetUser("unknown")
	if err != nil {
		t.Fatalf("Expected no error on a miss, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for an unknown user, got %+v", got)
	}

	_ = dao.UpsertUser(models.User{ID: "u-1"})
	if err := dao.DeleteUser("u-1"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	deleted, err := dao.GetUser("u-1")
	if err != nil {
		t.Fatalf("Expected no error after delete, got %v", err)
	}
	if deleted != nil {
		t.Errorf("Expected user gone, got %+v", deleted)
	}
}

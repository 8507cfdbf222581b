package repository

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/jengzang/geolife-backend-go/internal/database"
	"github.com/jengzang/geolife-backend-go/internal/models"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.ResetSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return NewSQLStore(db)
}

func strptr(s string) *string { return &s }

func TestGetUsersAttachesActivityIDs(t *testing.T) {
	store := newTestStore(t)

	if err := store.PutUser(models.User{ID: "000", HasLabels: true}); err != nil {
		t.Fatalf("PutUser failed: %v", err)
	}
	if err := store.PutUser(models.User{ID: "001"}); err != nil {
		t.Fatalf("PutUser failed: %v", err)
	}

	err := store.PutActivities([]models.Activity{
		{ID: 1, UserID: "000", TransportationMode: strptr("walk")},
		{ID: 2, UserID: "000"},
		{ID: 3, UserID: "001"},
	})
	if err != nil {
		t.Fatalf("PutActivities failed: %v", err)
	}

	users, total, err := store.GetUsers(models.UserFilter{})
	if err != nil {
		t.Fatalf("GetUsers failed: %v", err)
	}
	if total != 2 || len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d (total %d)", len(users), total)
	}

	if len(users[0].ActivityIDs) != 2 || users[0].ActivityIDs[0] != 1 || users[0].ActivityIDs[1] != 2 {
		t.Errorf("Expected user 000 to own [1 2], got %v", users[0].ActivityIDs)
	}
	if len(users[1].ActivityIDs) != 1 || users[1].ActivityIDs[0] != 3 {
		t.Errorf("Expected user 001 to own [3], got %v", users[1].ActivityIDs)
	}
}

func TestGetUsersWithoutActivities(t *testing.T) {
	store := newTestStore(t)

	if err := store.PutUser(models.User{ID: "000"}); err != nil {
		t.Fatalf("PutUser failed: %v", err)
	}

	users, _, err := store.GetUsers(models.UserFilter{})
	if err != nil {
		t.Fatalf("GetUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].ActivityIDs != nil {
		t.Errorf("Expected one user with no owned activities, got %+v", users)
	}
}

package app

import (
	"errors"
	"testing"

	"trekkit/internal/model"
	"trekkit/internal/repository"
)

func TestBookmarkAddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService(repository.NewBookmarkRepository(db), repository.NewMountainRepository(db))
	user := createTestUser(t, db, "marker01", "password-one1", "marker", model.RoleUser)

	mountain := &model.Mountain{Name: "Jirisan", Region: "Gyeongnam", Height: 1915}
	if err := db.Create(mountain).Error; err != nil {
		t.Fatalf("seed mountain: %v", err)
	}

	if err := svc.Add(user.ID, mountain.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(user.ID, mountain.ID); err != nil {
		t.Fatalf("repeat add: %v", err)
	}

	var count int64
	if err := db.Model(&model.MountainBookmark{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count bookmarks: %v", err)
	}
	if count != 1 {
		t.Errorf("bookmark rows = %d, want 1", count)
	}

	bookmarked, err := svc.IsBookmarked(user.ID, mountain.ID)
	if err != nil {
		t.Fatalf("is bookmarked: %v", err)
	}
	if !bookmarked {
		t.Error("mountain not reported as bookmarked")
	}
}

func TestBookmarkAddUnknownMountain(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService(repository.NewBookmarkRepository(db), repository.NewMountainRepository(db))
	user := createTestUser(t, db, "marker02", "password-one1", "marker2", model.RoleUser)

	if err := svc.Add(user.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBookmarkRemoveAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService(repository.NewBookmarkRepository(db), repository.NewMountainRepository(db))
	user := createTestUser(t, db, "marker03", "password-one1", "marker3", model.RoleUser)

	jirisan := &model.Mountain{Name: "Jirisan", Height: 1915}
	seorak := &model.Mountain{Name: "Seoraksan", Height: 1708}
	for _, m := range []*model.Mountain{jirisan, seorak} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed mountain: %v", err)
		}
		if err := svc.Add(user.ID, m.ID); err != nil {
			t.Fatalf("add bookmark: %v", err)
		}
	}

	if err := svc.Remove(user.ID, jirisan.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	mountains, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mountains) != 1 || mountains[0].Name != "Seoraksan" {
		t.Errorf("remaining bookmarks = %v, want only Seoraksan", mountains)
	}

	// Removing a bookmark that is already gone is not an error.
	if err := svc.Remove(user.ID, jirisan.ID); err != nil {
		t.Errorf("repeat remove err = %v, want nil", err)
	}
}

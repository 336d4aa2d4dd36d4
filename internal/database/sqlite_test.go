package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/codyseavey/gingerdex/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), logger.Silent)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return db
}

func TestOpenMigratesPackOpenings(t *testing.T) {
	db := openTestDB(t)
	if !db.Migrator().HasTable(&models.PackOpening{}) {
		t.Fatal("pack_openings table not created")
	}

	want := models.PackOpening{ID: "p1", Trainer: "ash", CardKeys: []string{"gingersnap", "Tundra:Frostbite"}, Count: 2}
	if err := db.Create(&want).Error; err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	var got models.PackOpening
	if err := db.First(&got, "id = ?", "p1").Error; err != nil {
		t.Fatalf("First() error: %v", err)
	}
	if len(got.CardKeys) != 2 || got.CardKeys[1] != "Tundra:Frostbite" {
		t.Errorf("CardKeys = %v, want round-tripped keys", got.CardKeys)
	}
}

func TestBackfillPackCounts(t *testing.T) {
	db := openTestDB(t)
	legacy := models.PackOpening{ID: "old", CardKeys: []string{"a", "b", "c"}}
	if err := db.Create(&legacy).Error; err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		t.Fatalf("RunMigrations() error: %v", err)
	}
	var got models.PackOpening
	db.First(&got, "id = ?", "old")
	if got.Count != 3 {
		t.Errorf("Count = %d, want 3", got.Count)
	}
}

func TestPruneOpenings(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c", "d"} {
		o := models.PackOpening{ID: id, CardKeys: []string{"x"}, Count: 1, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := db.Create(&o).Error; err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	tests := []struct {
		keep     int
		deleted  int64
		expected []string
	}{
		{0, 0, []string{"d", "c", "b", "a"}},
		{2, 2, []string{"d", "c"}},
		{5, 0, []string{"d", "c"}},
	}
	for _, tt := range tests {
		n, err := PruneOpenings(db, tt.keep)
		if err != nil {
			t.Fatalf("PruneOpenings(%d) error: %v", tt.keep, err)
		}
		if n != tt.deleted {
			t.Errorf("PruneOpenings(%d) = %d, want %d", tt.keep, n, tt.deleted)
		}
		var ids []string
		db.Model(&models.PackOpening{}).Order("created_at DESC").Pluck("id", &ids)
		if len(ids) != len(tt.expected) {
			t.Errorf("after keep=%d ids = %v, want %v", tt.keep, ids, tt.expected)
			continue
		}
		for i := range ids {
			if ids[i] != tt.expected[i] {
				t.Errorf("after keep=%d ids = %v, want %v", tt.keep, ids, tt.expected)
				break
			}
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected logger.LogLevel
	}{
		{"silent", logger.Silent},
		{"ERROR", logger.Error},
		{" info ", logger.Info},
		{"warn", logger.Warn},
		{"", logger.Warn},
		{"verbose", logger.Warn},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

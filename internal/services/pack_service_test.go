package services

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/codyseavey/gingerdex/internal/database"
	"github.com/codyseavey/gingerdex/internal/dex"
	"github.com/codyseavey/gingerdex/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "packs.db"), logger.Silent)
	if err != nil {
		t.Fatalf("database.Open() error: %v", err)
	}
	return db
}

func newTestPackService(t *testing.T, cfg PackConfig) *PackService {
	t.Helper()
	if cfg.Source == nil {
		cfg.Source = rand.NewSource(1)
	}
	return NewPackService(loadedDexService(t), openTestDB(t), cfg)
}

func TestOpenPackDefaultSize(t *testing.T) {
	p := newTestPackService(t, PackConfig{Size: 5})
	ctx := context.Background()

	res, err := p.Open(ctx, models.OpenPackRequest{Trainer: "ash"})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if len(res.Cards) != 5 {
		t.Errorf("len(Cards) = %d, want 5", len(res.Cards))
	}
	for _, c := range res.Cards {
		if !c.Owned || c.DisplayName == models.HiddenName {
			t.Errorf("drawn card %q not revealed", c.Key)
		}
	}
	if res.ID == "" || res.Trainer != "ash" {
		t.Errorf("result = %+v, want id and trainer", res)
	}

	recent, err := p.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != res.ID || recent[0].Count != 5 || len(recent[0].CardKeys) != 5 {
		t.Errorf("Recent() = %+v, want the opened pack", recent)
	}
}

func TestOpenPackRejectsBadRequests(t *testing.T) {
	p := newTestPackService(t, PackConfig{})
	ctx := context.Background()

	tests := []struct {
		name     string
		req      models.OpenPackRequest
		expected error
	}{
		{"Too many cards", models.OpenPackRequest{Count: MaxPackSize + 1}, dex.ErrInvalidCount},
		{"Negative count", models.OpenPackRequest{Count: -1}, dex.ErrInvalidCount},
		{"Unknown trainer", models.OpenPackRequest{Trainer: "gary", Count: 1}, dex.ErrTrainerNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.Open(ctx, tt.req); !errors.Is(err, tt.expected) {
				t.Errorf("Open(%+v) error = %v, want %v", tt.req, err, tt.expected)
			}
		})
	}

	recent, _ := p.Recent(ctx, 10)
	if len(recent) != 0 {
		t.Errorf("rejected requests recorded %d openings", len(recent))
	}
}

func TestOpenPackRateLimited(t *testing.T) {
	p := newTestPackService(t, PackConfig{RatePerMinute: 1, Burst: 2})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := p.Open(ctx, models.OpenPackRequest{Count: 1}); err != nil {
			t.Fatalf("Open() #%d error: %v", i, err)
		}
	}
	if _, err := p.Open(ctx, models.OpenPackRequest{Count: 1}); !errors.Is(err, ErrRateLimited) {
		t.Errorf("third Open() error = %v, want ErrRateLimited", err)
	}
}

func TestOpenPackBeforeLoad(t *testing.T) {
	s, _ := NewDexService(4)
	p := NewPackService(s, nil, PackConfig{})
	if _, err := p.Open(context.Background(), models.OpenPackRequest{}); !errors.Is(err, ErrSnapshotNotLoaded) {
		t.Errorf("Open() error = %v, want ErrSnapshotNotLoaded", err)
	}
}

func TestOpenPackEmptyPool(t *testing.T) {
	s, _ := NewDexService(4)
	snap := &models.Snapshot{Cards: []models.Card{{Name: "dud", PullRate: 0}}, TotalCards: 1}
	if err := s.SetSnapshot(snap); err != nil {
		t.Fatalf("SetSnapshot() error: %v", err)
	}
	p := NewPackService(s, nil, PackConfig{RatePerMinute: 1, Burst: 1})
	for i := 0; i < 3; i++ {
		if _, err := p.Open(context.Background(), models.OpenPackRequest{}); !errors.Is(err, dex.ErrEmptyPullPool) {
			t.Errorf("Open() #%d error = %v, want ErrEmptyPullPool", i, err)
		}
	}
	if tokens := p.limiter.Tokens(); tokens < 1 {
		t.Errorf("limiter tokens = %.2f after refused draws, want the burst untouched", tokens)
	}
}

func TestOpenPackSeededIsReproducible(t *testing.T) {
	ctx := context.Background()
	draw := func() []string {
		p := NewPackService(loadedDexService(t), nil, PackConfig{Source: rand.NewSource(2024)})
		res, err := p.Open(ctx, models.OpenPackRequest{Count: 10})
		if err != nil {
			t.Fatalf("Open() error: %v", err)
		}
		keys := make([]string, len(res.Cards))
		for i, c := range res.Cards {
			keys[i] = c.Key
		}
		return keys
	}

	a, b := draw(), draw()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded packs differ: %v vs %v", a, b)
		}
	}
}

func TestRecentWithoutDatabase(t *testing.T) {
	p := NewPackService(loadedDexService(t), nil, PackConfig{})
	recent, err := p.Recent(context.Background(), 5)
	if err != nil || recent == nil || len(recent) != 0 {
		t.Errorf("Recent() = %v, %v, want empty slice", recent, err)
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	p := newTestPackService(t, PackConfig{})
	ctx := context.Background()
	var ids []string
	for i := 0; i < 3; i++ {
		res, err := p.Open(ctx, models.OpenPackRequest{Count: 1})
		if err != nil {
			t.Fatalf("Open() error: %v", err)
		}
		ids = append(ids, res.ID)
	}

	recent, err := p.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != ids[2] || recent[1].ID != ids[1] {
		t.Errorf("Recent(2) = %+v, want newest two of %v", recent, ids)
	}
}

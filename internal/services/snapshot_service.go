package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codyseavey/gingerdex/internal/models"
)

// SnapshotFormat selects the decoder for a snapshot file.
type SnapshotFormat int

const (
	FormatJSON SnapshotFormat = iota
	FormatYAML
)

// SnapshotError reports every problem found in a snapshot. Err is the
// errors.Join of the individual violations.
type SnapshotError struct {
	Source string
	Err    error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("invalid snapshot %s: %v", e.Source, e.Err)
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// rawSnapshot mirrors models.Snapshot with pointers on the required fields
// so a missing field can be told apart from an empty one.
type rawSnapshot struct {
	Cards         *[]models.Card               `json:"cards" yaml:"cards"`
	Leaderboard   *[]models.Trainer            `json:"leaderboard" yaml:"leaderboard"`
	Regions       []string                     `json:"regions" yaml:"regions"`
	RegionOrder   []string                     `json:"regionOrder" yaml:"regionOrder"`
	RegionInfo    map[string]models.RegionInfo `json:"regionInfo" yaml:"regionInfo"`
	Types         []string                     `json:"types" yaml:"types"`
	Rarities      []string                     `json:"rarities" yaml:"rarities"`
	RarityDisplay map[string]string            `json:"rarityDisplay" yaml:"rarityDisplay"`
	TotalCards    *int                         `json:"totalCards" yaml:"totalCards"`
	TotalTrainers *int                         `json:"totalTrainers" yaml:"totalTrainers"`
}

// FormatForPath picks YAML for .yaml/.yml files and JSON for everything else.
func FormatForPath(path string) SnapshotFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadSnapshot reads, decodes and validates the snapshot file at path.
func LoadSnapshot(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	s, err := DecodeSnapshot(data, FormatForPath(path), path)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded snapshot %s: %d cards, %d trainers", path, len(s.Cards), len(s.Leaderboard))
	return s, nil
}

// DecodeSnapshot decodes and validates a snapshot. source names the input in
// error messages.
func DecodeSnapshot(data []byte, format SnapshotFormat, source string) (*models.Snapshot, error) {
	var raw rawSnapshot
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, &SnapshotError{Source: source, Err: fmt.Errorf("decode: %w", err)}
	}

	s, errs := raw.validate()
	if len(errs) > 0 {
		return nil, &SnapshotError{Source: source, Err: errors.Join(errs...)}
	}
	return s, nil
}

func (r *rawSnapshot) validate() (*models.Snapshot, []error) {
	var errs []error
	required := []struct {
		name    string
		present bool
	}{
		{"cards", r.Cards != nil},
		{"leaderboard", r.Leaderboard != nil},
		{"totalCards", r.TotalCards != nil},
		{"totalTrainers", r.TotalTrainers != nil},
	}
	for _, f := range required {
		if !f.present {
			errs = append(errs, fmt.Errorf("missing required field %q", f.name))
		}
	}

	s := &models.Snapshot{
		Regions:       r.Regions,
		RegionOrder:   r.RegionOrder,
		RegionInfo:    r.RegionInfo,
		Types:         r.Types,
		Rarities:      r.Rarities,
		RarityDisplay: r.RarityDisplay,
	}
	if r.Cards != nil {
		s.Cards = *r.Cards
	}
	if r.Leaderboard != nil {
		s.Leaderboard = *r.Leaderboard
	}
	if r.TotalCards != nil {
		s.TotalCards = *r.TotalCards
		if r.Cards != nil && s.TotalCards != len(s.Cards) {
			errs = append(errs, fmt.Errorf("totalCards is %d but %d cards are listed", s.TotalCards, len(s.Cards)))
		}
	}
	if r.TotalTrainers != nil {
		s.TotalTrainers = *r.TotalTrainers
		if r.Leaderboard != nil && s.TotalTrainers != len(s.Leaderboard) {
			errs = append(errs, fmt.Errorf("totalTrainers is %d but the leaderboard has %d entries", s.TotalTrainers, len(s.Leaderboard)))
		}
	}

	keys := make(map[string]int, len(s.Cards))
	for i := range s.Cards {
		c := &s.Cards[i]
		if c.Name == "" && c.DisplayName == "" {
			errs = append(errs, fmt.Errorf("card %d has neither name nor displayName", i))
			continue
		}
		key := c.Key()
		if prev, ok := keys[key]; ok {
			errs = append(errs, fmt.Errorf("cards %d and %d share identity key %q", prev, i, key))
			continue
		}
		keys[key] = i
	}

	usernames := make(map[string]bool, len(s.Leaderboard))
	for i := range s.Leaderboard {
		t := &s.Leaderboard[i]
		switch {
		case t.Username == "":
			errs = append(errs, fmt.Errorf("leaderboard entry %d has no username", i))
		case usernames[t.Username]:
			errs = append(errs, fmt.Errorf("duplicate trainer username %q", t.Username))
		default:
			usernames[t.Username] = true
		}
	}

	return s, errs
}

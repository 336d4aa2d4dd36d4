package database

import (
	"log"

	"gorm.io/gorm"
)

// RunMigrations runs any custom data migrations after schema changes
func RunMigrations(db *gorm.DB) error {
	return backfillPackCounts(db)
}

// backfillPackCounts fills the count column for openings recorded before it
// existed. Safe to run repeatedly; only rows with a zero count are touched.
func backfillPackCounts(db *gorm.DB) error {
	if !db.Migrator().HasColumn("pack_openings", "count") {
		return nil
	}

	result := db.Exec(`
		UPDATE pack_openings
		SET count = json_array_length(card_keys)
		WHERE (count IS NULL OR count = 0) AND json_valid(card_keys)
	`)
	if result.Error != nil {
		log.Printf("Warning: failed to backfill pack_openings count: %v", result.Error)
		return nil
	}
	if result.RowsAffected > 0 {
		log.Printf("Backfilled count on %d pack_openings rows", result.RowsAffected)
	}
	return nil
}

// PruneOpenings deletes all but the newest keep pack openings. A keep of zero
// or less disables pruning.
func PruneOpenings(db *gorm.DB, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	result := db.Exec(`
		DELETE FROM pack_openings
		WHERE id NOT IN (
			SELECT id FROM pack_openings
			ORDER BY created_at DESC
			LIMIT ?
		)
	`, keep)
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("Pruned %d old pack_openings entries", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

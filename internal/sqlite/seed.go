package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/farmstock/pkg/types"
)

// seedCommodities creates a row for every key in types.CommodityKeys when the
// Commodity table is empty (first run). Prices come from prices and default
// to 0. Existing rows are never overwritten.
func seedCommodities(db *sql.DB, prices map[string]float64) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM Commodity").Scan(&count); err != nil {
		return fmt.Errorf("counting commodities: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, item := range types.CommodityKeys {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO Commodity (Item, Price) VALUES (?, ?)",
			item, prices[item],
		); err != nil {
			return fmt.Errorf("seeding commodity %s: %w", item, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}

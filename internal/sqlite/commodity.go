package sqlite

import (
	"database/sql"
	"errors"

	"go.uber.org/zap"
)

// PriceOf returns the unit price stored for the named commodity. A missing
// row, a NULL price, a detached backend or a query failure all read as 0;
// failures are logged and never returned so reports still run on partial
// price data.
func (b *Backend) PriceOf(name string) float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		b.log.Warn("price lookup on detached store", zap.String("item", name))
		return 0
	}

	var price sql.NullFloat64
	err = db.QueryRow("SELECT Price FROM Commodity WHERE Item = ?", name).Scan(&price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			b.log.Debug("commodity price not set", zap.String("item", name))
			return 0
		}
		b.log.Warn("commodity price lookup failed", zap.String("item", name), zap.Error(err))
		return 0
	}
	return price.Float64
}

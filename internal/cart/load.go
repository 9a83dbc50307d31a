package cart

import (
	"context"
	"errors"

	"github.com/joeynweke/restaurant-dashboard/internal/domain"
	"github.com/joeynweke/restaurant-dashboard/internal/port"
	"go.uber.org/zap"
)

// Load reads the stored cart. A missing, unreadable or malformed snapshot
// yields an empty cart; the caller never sees an error.
func Load(ctx context.Context, kv port.KeyValueStore, logger *zap.Logger) domain.Cart {
	data, err := kv.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			logger.Debug("no stored cart", zap.String("key", StorageKey))
		} else {
			logger.Warn("read stored cart", zap.String("key", StorageKey), zap.Error(err))
		}
		return domain.Cart{}
	}

	cart, err := Decode(data)
	if err != nil {
		logger.Warn("discard stored cart", zap.String("key", StorageKey), zap.Int("bytes", len(data)), zap.Error(err))
		return domain.Cart{}
	}

	logger.Debug("stored cart loaded", zap.Int("lines", len(cart.Lines)), zap.Int64("total", cart.Total()))

	return cart
}

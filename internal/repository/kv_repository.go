package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joeynweke/restaurant-dashboard/internal/db"
	"github.com/joeynweke/restaurant-dashboard/internal/port"
)

type kvRepository struct {
	q        *db.Queries
	deviceID uuid.UUID
}

// NewKeyValue scopes every entry to deviceID, the way browser storage is
// scoped to one device.
func NewKeyValue(pool *pgxpool.Pool, deviceID uuid.UUID) (port.KeyValueStore, error) {
	if deviceID == uuid.Nil {
		return nil, fmt.Errorf("deviceID is empty")
	}

	return &kvRepository{
		q:        db.New(pool),
		deviceID: deviceID,
	}, nil
}

func NewKeyValueWithTx(tx pgx.Tx, deviceID uuid.UUID) (port.KeyValueStore, error) {
	if deviceID == uuid.Nil {
		return nil, fmt.Errorf("deviceID is empty")
	}

	return &kvRepository{
		q:        db.New(tx),
		deviceID: deviceID,
	}, nil
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	row, err := r.q.GetEntry(ctx, db.GetEntryParams{
		DeviceID: r.deviceID,
		Key:      key,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, fmt.Errorf("q.GetEntry: %w", err)
	}

	return row.Value, nil
}

func (r *kvRepository) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if value == nil {
		value = []byte{}
	}

	err := r.q.UpsertEntry(ctx, db.UpsertEntryParams{
		DeviceID: r.deviceID,
		Key:      key,
		Value:    value,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertEntry: %w", err)
	}

	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("key is empty")
	}

	rowsAffected, err := r.q.DeleteEntry(ctx, db.DeleteEntryParams{
		DeviceID: r.deviceID,
		Key:      key,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteEntry: %w", err)
	}

	return rowsAffected > 0, nil
}

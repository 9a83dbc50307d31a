package cart_test

import (
	"errors"
	"testing"

	"github.com/joeynweke/restaurant-dashboard/internal/cart"
	"github.com/joeynweke/restaurant-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		stored   *string
		getErr   error
		want     domain.Cart
		wantWarn string
	}{
		{
			name:   "stored cart: ok",
			stored: ptr(`[{"id":6,"name":"Zobo","price":500,"category":"drinks","qty":2}]`),
			want:   domain.Cart{Lines: []domain.CartLine{{Item: zobo, Quantity: 2}}},
		},
		{
			name: "nothing stored: empty cart",
		},
		{
			name:     "malformed snapshot: empty cart",
			stored:   ptr(`[{"id":6,"qty":-1}]`),
			wantWarn: "discard stored cart",
		},
		{
			name:     "unparsable snapshot: empty cart",
			stored:   ptr(`not json`),
			wantWarn: "discard stored cart",
		},
		{
			name:     "read failure: empty cart",
			getErr:   errors.New("storage unavailable"),
			wantWarn: "read stored cart",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)

			kv := newFakeKV()
			kv.getErr = tt.getErr
			if tt.stored != nil {
				kv.values[cart.StorageKey] = []byte(*tt.stored)
			}

			got := cart.Load(t.Context(), kv, zap.New(core))
			assertCart(t, tt.want, got)

			if tt.wantWarn == "" {
				assert.Zero(t, logs.Len())
				return
			}
			assert.Equal(t, 1, logs.FilterMessage(tt.wantWarn).Len())
		})
	}
}

func ptr(s string) *string {
	return &s
}

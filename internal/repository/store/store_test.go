package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/heritage-archive/content-service/internal/config"
	"github.com/heritage-archive/content-service/internal/repository/store"
)

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}

	s, err := store.Open(context.Background(), cfg, zap.NewNop())
	assert.Nil(t, s)
	assert.ErrorContains(t, err, `unknown store driver "sqlite"`)
}

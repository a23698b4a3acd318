package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPgxPool_EmptyURL(t *testing.T) {
	pool, err := NewPgxPool(context.Background(), "", false)
	assert.Nil(t, pool)
	assert.EqualError(t, err, "database URL cannot be empty")
}

func TestNewPgxPool_InvalidURL(t *testing.T) {
	pool, err := NewPgxPool(context.Background(), "postgres://%zz", false)
	assert.Nil(t, pool)
	assert.ErrorContains(t, err, "failed to parse database config")
}

func TestClosePgxPool_Nil(t *testing.T) {
	assert.NotPanics(t, func() { ClosePgxPool(nil) })
}

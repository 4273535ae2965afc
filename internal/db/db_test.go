package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_BadURL(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://%zz")
	assert.Error(t, err)
}

func TestNewPool_Live(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := NewPool(context.Background(), url)
	require.NoError(t, err)
	defer pool.Close()

	var name string
	require.NoError(t, pool.QueryRow(context.Background(), "SHOW application_name").Scan(&name))
	assert.Equal(t, "employee-directory", name)
}

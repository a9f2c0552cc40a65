package migrations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/migrations"
)

func TestSource(t *testing.T) {
	found, err := migrations.Source().FindMigrations()
	require.NoError(t, err)
	require.Len(t, found, 1)

	assert.Equal(t, "20241001120000-create-flows.sql", found[0].Id)
	assert.NotEmpty(t, found[0].Up)
	assert.NotEmpty(t, found[0].Down)
}

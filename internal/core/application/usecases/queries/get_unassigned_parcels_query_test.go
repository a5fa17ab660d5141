package queries_test

import (
	"testing"

	"delivery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnassignedParcelsQuery_Valid(t *testing.T) {
	query := queries.NewGetUnassignedParcelsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUnassignedParcelsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnassignedParcelsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnassignedParcelsQueryIsNotConstructed)
}

package queries_test

import (
	"testing"

	"resale/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery(t *testing.T) {
	query := queries.NewGetActiveOrdersQuery()

	assert.NoError(t, query.Validate())
}

func TestGetActiveOrdersQuery_DefaultConstructedFailsValidation(t *testing.T) {
	var query queries.GetActiveOrdersQuery

	require.ErrorIs(t, query.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

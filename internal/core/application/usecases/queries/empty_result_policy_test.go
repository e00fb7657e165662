package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyResultPolicy(t *testing.T) {
	tests := []struct {
		in       string
		expected queries.EmptyResultPolicy
	}{
		{"not_found", queries.EmptyAsNotFound},
		{" NOT_FOUND ", queries.EmptyAsNotFound},
		{"list", queries.EmptyAsList},
		{"empty", queries.EmptyAsList},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := queries.ParseEmptyResultPolicy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}

	_, err := queries.ParseEmptyResultPolicy("maybe")
	require.Error(t, err)
}

func TestPolicyFromFlag(t *testing.T) {
	assert.Equal(t, queries.EmptyAsNotFound, queries.PolicyFromFlag(true))
	assert.Equal(t, queries.EmptyAsList, queries.PolicyFromFlag(false))
	assert.Equal(t, "list", queries.EmptyAsList.String())
	assert.Equal(t, "not_found", queries.EmptyAsNotFound.String())
}

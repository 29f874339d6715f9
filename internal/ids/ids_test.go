package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIsSortableAndValid(t *testing.T) {
	prev := New()
	for i := 0; i < 100; i++ {
		next := New()
		require.NoError(t, Validate(next))
		require.Less(t, prev, next)
		prev = next
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	for _, id := range []string{"", "abc", "663fbc13417b6c8df00c0ae3", "01HZZZZZZZZZZZZZZZZZZZZZZ!"} {
		require.ErrorIs(t, Validate(id), ErrMalformed, id)
	}
}

func TestValidateRejectsNonCanonicalCase(t *testing.T) {
	id := New()
	require.NoError(t, Validate(id))
	require.ErrorIs(t, Validate(strings.ToLower(id)), ErrMalformed)
}

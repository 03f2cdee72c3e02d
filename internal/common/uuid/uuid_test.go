package uuid

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	gen := New()
	a, b := gen.NewUUID(), gen.NewUUID()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestNewWithPrefix(t *testing.T) {
	id := NewWithPrefix("tkt_").NewUUID()

	require.True(t, strings.HasPrefix(id, "tkt_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "tkt_"))
	require.NoError(t, err)
}

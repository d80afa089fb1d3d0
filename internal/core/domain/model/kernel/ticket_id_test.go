package kernel_test

import (
	"testing"

	"resto/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketID(t *testing.T) {
	t.Run("should create ticket from displayed form", func(t *testing.T) {
		id, err := kernel.NewTicketID("ORD-0101")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "ORD-0101", id.String())
	})

	t.Run("should normalize case and whitespace", func(t *testing.T) {
		id, err := kernel.NewTicketID("  ord-101 ")

		require.NoError(t, err)
		assert.Equal(t, "ORD-101", id.String())
	})

	t.Run("should accept three to six digit suffixes", func(t *testing.T) {
		for _, raw := range []string{"ORD-123", "ORD-1234", "ORD-12345", "ORD-123456"} {
			_, err := kernel.NewTicketID(raw)
			require.NoError(t, err, raw)
		}
	})

	t.Run("should reject malformed identifiers", func(t *testing.T) {
		invalid := []string{
			"",
			"ORD-",
			"ORD-12",
			"ORD-1234567",
			"ORD-12A4",
			"XYZ-1234",
			"1234",
			"ORD 1234",
		}

		for _, raw := range invalid {
			_, err := kernel.NewTicketID(raw)
			require.Error(t, err, raw)
			assert.Contains(t, err.Error(), "ticket id")
		}
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var id kernel.TicketID
		require.Error(t, id.Validate())
	})
}

func TestNextTicketID(t *testing.T) {
	t.Run("should zero-pad small sequences", func(t *testing.T) {
		id, err := kernel.NextTicketID(101)

		require.NoError(t, err)
		assert.Equal(t, "ORD-0101", id.String())
	})

	t.Run("should keep wide sequences unpadded", func(t *testing.T) {
		id, err := kernel.NextTicketID(123456)

		require.NoError(t, err)
		assert.Equal(t, "ORD-123456", id.String())
	})

	t.Run("should reject non-positive sequences", func(t *testing.T) {
		for _, seq := range []int64{0, -1} {
			_, err := kernel.NextTicketID(seq)
			require.Error(t, err)
		}
	})
}

func TestTicketID_Matches(t *testing.T) {
	id, err := kernel.NewTicketID("ORD-0101")
	require.NoError(t, err)

	t.Run("should confirm exact operator input", func(t *testing.T) {
		assert.True(t, id.Matches("ORD-0101"))
	})

	t.Run("should confirm case-insensitively with surrounding space", func(t *testing.T) {
		assert.True(t, id.Matches("  ord-0101 "))
	})

	t.Run("should reject near-misses", func(t *testing.T) {
		for _, input := range []string{"ORD-0102", "ORD-101", "0101", ""} {
			assert.False(t, id.Matches(input), input)
		}
	})
}

func TestTicketID_IsEqual(t *testing.T) {
	a, _ := kernel.NewTicketID("ORD-0101")
	b, _ := kernel.NewTicketID("ord-0101")
	c, _ := kernel.NewTicketID("ORD-0102")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

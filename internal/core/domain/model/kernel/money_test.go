package kernel_test

import (
	"testing"

	"resto/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create amount from cents", func(t *testing.T) {
		m, err := kernel.NewMoney(14000)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(14000), m.Cents())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var m kernel.Money
		require.Error(t, m.Validate())
	})
}

func TestParseMoney(t *testing.T) {
	t.Run("should parse operator text", func(t *testing.T) {
		cases := []struct {
			raw   string
			cents int64
		}{
			{"200", 20000},
			{"$140", 14000},
			{"12.50", 1250},
			{"12.5", 1250},
			{"$0.05", 5},
			{"0", 0},
			{" 140 ", 14000},
		}

		for _, tc := range cases {
			m, err := kernel.ParseMoney(tc.raw)
			require.NoError(t, err, tc.raw)
			assert.Equal(t, tc.cents, m.Cents(), tc.raw)
		}
	})

	t.Run("should reject malformed and negative text", func(t *testing.T) {
		invalid := []string{"", "-5", "abc", "12.505", "12.", "$", "1,200", "$-3"}

		for _, raw := range invalid {
			_, err := kernel.ParseMoney(raw)
			require.Error(t, err, raw)
		}
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.NewMoney(4500)
	total, _ := kernel.NewMoney(14000)
	received, _ := kernel.NewMoney(20000)

	t.Run("should report coverage", func(t *testing.T) {
		assert.True(t, received.Covers(total))
		assert.True(t, total.Covers(total))
		assert.False(t, total.Covers(received))
	})

	t.Run("should add amounts", func(t *testing.T) {
		assert.Equal(t, int64(18500), price.Add(total).Cents())
	})

	t.Run("should subtract with change semantics", func(t *testing.T) {
		change, err := received.Sub(total)

		require.NoError(t, err)
		assert.Equal(t, int64(6000), change.Cents())
	})

	t.Run("should reject negative differences", func(t *testing.T) {
		_, err := total.Sub(received)
		require.Error(t, err)
	})

	t.Run("should compute line extensions", func(t *testing.T) {
		ext, err := price.MulQuantity(3)

		require.NoError(t, err)
		assert.Equal(t, int64(13500), ext.Cents())
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		for _, q := range []int{0, -2} {
			_, err := price.MulQuantity(q)
			require.Error(t, err)
		}
	})
}

func TestMoney_String(t *testing.T) {
	cases := []struct {
		cents    int64
		expected string
	}{
		{14000, "$140.00"},
		{1250, "$12.50"},
		{5, "$0.05"},
		{0, "$0.00"},
	}

	for _, tc := range cases {
		m, _ := kernel.NewMoney(tc.cents)
		assert.Equal(t, tc.expected, m.String())
	}
}

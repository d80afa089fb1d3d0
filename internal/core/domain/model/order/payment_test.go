package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

func TestMethodFromString(t *testing.T) {
	t.Run("should parse known methods case-insensitively", func(t *testing.T) {
		tests := map[string]order.Method{
			"cash":     order.MethodCash,
			"Cash":     order.MethodCash,
			" CARD ":   order.MethodCard,
			"transfer": order.MethodTransfer,
			"Transfer": order.MethodTransfer,
		}

		for raw, want := range tests {
			got, err := order.MethodFromString(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, got, raw)
		}
	})

	t.Run("should reject unknown methods", func(t *testing.T) {
		for _, raw := range []string{"", "check", "crypto"} {
			_, err := order.MethodFromString(raw)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "Cash", order.MethodCash.String())
	assert.Equal(t, "Card", order.MethodCard.String())
	assert.Equal(t, "Transfer", order.MethodTransfer.String())
	assert.Equal(t, "Unknown", order.MethodUnknown.String())
}

func TestPaymentStatusString(t *testing.T) {
	assert.Equal(t, "Pending", order.PaymentPending.String())
	assert.Equal(t, "Paid", order.PaymentPaid.String())
	assert.Equal(t, "Unknown", order.PaymentStatusUnknown.String())
}

package notification_test

import (
	"encoding/json"
	"testing"

	"ordersync/internal/core/domain/model/notification"
	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	t.Run("keeps required fields and payload", func(t *testing.T) {
		n, err := notification.NewNotification("R100", "shipped", map[string]any{"carrier": "UPS"})

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.Equal(t, "R100", n.OrderNumber())
		assert.Equal(t, order.Status("shipped"), n.Status())
		assert.Equal(t, map[string]any{
			"order_number": "R100",
			"status":       "shipped",
			"carrier":      "UPS",
		}, n.Payload())
	})

	t.Run("required fields override payload keys", func(t *testing.T) {
		n, err := notification.NewNotification("R100", "shipped", map[string]any{"status": "paid"})

		require.NoError(t, err)
		v, ok := n.Field("status")
		assert.True(t, ok)
		assert.Equal(t, "shipped", v)
	})

	t.Run("reports every missing field", func(t *testing.T) {
		_, err := notification.NewNotification("", " ", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order_number")
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("is immutable", func(t *testing.T) {
		payload := map[string]any{"carrier": "UPS"}
		n, err := notification.NewNotification("R100", "shipped", payload)
		require.NoError(t, err)

		payload["carrier"] = "DHL"
		n.Payload()["carrier"] = "FedEx"

		v, _ := n.Field("carrier")
		assert.Equal(t, "UPS", v)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var n notification.Notification
		require.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
	})
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: `{"order_number":"R100","status":"shipped","amount":12.50}`},
		{name: "malformed json", input: `{"order_number":`, wantErr: errs.ErrValueIsInvalid},
		{name: "json null", input: `null`, wantErr: errs.ErrValueIsInvalid},
		{name: "array", input: `[]`, wantErr: errs.ErrValueIsInvalid},
		{name: "missing order number", input: `{"status":"shipped"}`, wantErr: errs.ErrValueIsRequired},
		{name: "missing status", input: `{"order_number":"R100"}`, wantErr: errs.ErrValueIsRequired},
		{name: "numeric order number", input: `{"order_number":100,"status":"shipped"}`, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := notification.Parse([]byte(tc.input))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "R100", n.OrderNumber())
			amount, ok := n.Field("amount")
			require.True(t, ok)
			assert.Equal(t, json.Number("12.50"), amount)
		})
	}
}

func TestNotification_MarshalJSON(t *testing.T) {
	n, err := notification.Parse([]byte(`{"order_number":"R100","status":"shipped","amount":12.50,"buyer":{"id":7}}`))
	require.NoError(t, err)

	out, err := json.Marshal(n)

	require.NoError(t, err)
	assert.JSONEq(t, `{"order_number":"R100","status":"shipped","amount":12.50,"buyer":{"id":7}}`, string(out))
}

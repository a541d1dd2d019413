package guard_test

import (
	"errors"
	"testing"

	"ordersync/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command must be created via its constructor")

	testCases := []struct {
		name     string
		guard    guard.ConstructorGuard
		given    error
		expected error
	}{
		{
			name:     "constructed_guard_with_custom_error",
			guard:    guard.NewConstructorGuard(),
			given:    errNotConstructed,
			expected: nil,
		},
		{
			name:     "constructed_guard_with_nil_error",
			guard:    guard.NewConstructorGuard(),
			given:    nil,
			expected: nil,
		},
		{
			name:     "zero_value_returns_custom_error",
			guard:    guard.ConstructorGuard{},
			given:    errNotConstructed,
			expected: errNotConstructed,
		},
		{
			name:     "zero_value_returns_default_error",
			guard:    guard.ConstructorGuard{},
			given:    nil,
			expected: guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.guard.Validate(tc.given)
			if tc.expected == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.expected, err)
		})
	}
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type orderNumber struct {
		value string
		guard guard.ConstructorGuard
	}

	errOrderNumberNotConstructed := errors.New("orderNumber must be created via newOrderNumber")

	newOrderNumber := func(v string) (orderNumber, error) {
		if v == "" {
			return orderNumber{}, errors.New("order number is required")
		}
		return orderNumber{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		n, err := newOrderNumber("R100")
		require.NoError(t, err)
		require.NoError(t, n.guard.Validate(errOrderNumberNotConstructed))
		assert.Equal(t, "R100", n.value)
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		n, err := newOrderNumber("")
		require.Error(t, err)
		assert.Equal(t, errOrderNumberNotConstructed, n.guard.Validate(errOrderNumberNotConstructed))
	})

	t.Run("copy_keeps_constructed_state", func(t *testing.T) {
		n, err := newOrderNumber("R200")
		require.NoError(t, err)
		cp := n
		require.NoError(t, cp.guard.Validate(errOrderNumberNotConstructed))
	})
}

func TestConstructorGuard_DefaultErrorMessage(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}

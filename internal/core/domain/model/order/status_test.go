package order_test

import (
	"testing"

	"dragontea/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("defined statuses are valid", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.InProgress, order.Delivering,
			order.Completed, order.Canceled, order.Closed,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown status is invalid", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "in_progress", order.InProgress.String())
	assert.Equal(t, "delivering", order.Delivering.String())
	assert.Equal(t, "completed", order.Completed.String())
	assert.Equal(t, "canceled", order.Canceled.String())
	assert.Equal(t, "closed", order.Closed.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips all valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.InProgress, order.Delivering,
			order.Completed, order.Canceled, order.Closed,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)

		_, err = order.StatusFromString("unknown")
		require.Error(t, err)
	})
}

func TestStatus_ConfirmPayment(t *testing.T) {
	t.Run("pending becomes in_progress", func(t *testing.T) {
		next, err := order.Pending.ConfirmPayment()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, next)
	})

	t.Run("rejected from any other status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.InProgress, order.Delivering, order.Completed, order.Canceled, order.Closed,
		} {
			_, err := s.ConfirmPayment()
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition, s.String())
		}
	})
}

func TestStatus_AssignCourier(t *testing.T) {
	t.Run("allowed from pending and in_progress", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.InProgress} {
			next, err := s.AssignCourier()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Delivering, next)
		}
	})

	t.Run("rejected from later statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Delivering, order.Completed, order.Canceled, order.Closed,
		} {
			_, err := s.AssignCourier()
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition, s.String())
		}
	})
}

func TestStatus_Close(t *testing.T) {
	t.Run("active orders become completed", func(t *testing.T) {
		for _, s := range []order.Status{order.InProgress, order.Delivering} {
			next, err := s.Close()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Completed, next)
		}
	})

	t.Run("completed becomes closed", func(t *testing.T) {
		next, err := order.Completed.Close()

		require.NoError(t, err)
		assert.Equal(t, order.Closed, next)
	})

	t.Run("rejected from pending and final statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Canceled, order.Closed} {
			_, err := s.Close()
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition, s.String())
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("pending becomes canceled", func(t *testing.T) {
		next, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Canceled, next)
	})

	t.Run("paid orders cannot be canceled", func(t *testing.T) {
		for _, s := range []order.Status{
			order.InProgress, order.Delivering, order.Completed, order.Canceled, order.Closed,
		} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition, s.String())
		}
	})
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, order.Canceled.IsFinal())
	assert.True(t, order.Closed.IsFinal())
	assert.False(t, order.Pending.IsFinal())
	assert.False(t, order.Completed.IsFinal())
}

func TestInvalidTransitionError_Message(t *testing.T) {
	err := order.NewInvalidTransitionError(order.Closed, "close")

	assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	assert.Equal(t, "invalid status transition: cannot close order in status closed", err.Error())
}

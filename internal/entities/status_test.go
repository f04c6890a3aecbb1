package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Transitions(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusShipped, StatusCancelled},
		StatusShipped:   {StatusDelivered},
		StatusDelivered: nil,
		StatusCancelled: nil,
	}

	for _, from := range OrderStatuses() {
		for _, to := range OrderStatuses() {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s → %s", from, to)

			err := from.CheckTransition(to)
			if want {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s → %s", from, to)
			}
		}
	}
}

func TestOrderStatus_IsFinal(t *testing.T) {
	for _, s := range OrderStatuses() {
		assert.Equal(t, s == StatusDelivered || s == StatusCancelled, s.IsFinal(), s)
		assert.NotEmpty(t, s.Description(), s)
	}
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus(" shipped ")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, s)

	_, err = ParseOrderStatus("LOST")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, KindInvalidInput, KindOf(err))

	assert.ErrorIs(t, StatusPending.CheckTransition("LOST"), ErrInvalidInput)
}

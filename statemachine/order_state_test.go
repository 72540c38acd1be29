package statemachine

import (
	"testing"

	"food-marketplace-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionHappyPath(t *testing.T) {
	steps := []struct {
		from models.OrderStatus
		to   models.OrderStatus
	}{
		{models.StatusNew, models.StatusAccepted},
		{models.StatusAccepted, models.StatusPreparing},
		{models.StatusPreparing, models.StatusDelivering},
		{models.StatusDelivering, models.StatusCompleted},
	}
	for _, s := range steps {
		assert.NoError(t, CanTransition(s.from, s.to, "restaurator"))
	}
}

func TestCustomerCanOnlyCancelNew(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusNew, models.StatusCancelled, "customer"))

	assert.Error(t, CanTransition(models.StatusAccepted, models.StatusCancelled, "customer"))
	assert.Error(t, CanTransition(models.StatusNew, models.StatusAccepted, "customer"))
	assert.Error(t, CanTransition(models.StatusDelivering, models.StatusCompleted, "customer"))
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	assert.Empty(t, ValidTransitionsFrom(models.StatusCompleted))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestCannotSkipStates(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusNew, models.StatusPreparing, "restaurator"))
	assert.Error(t, CanTransition(models.StatusNew, models.StatusCompleted, "restaurator"))
	assert.Error(t, CanTransition(models.StatusPreparing, models.StatusCancelled, "restaurator"))
}

package statemachine

import (
	"fmt"

	"pizza-storefront-api/errs"
	"pizza-storefront-api/models"
)

// Transition defines a valid state change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition:
//
//	pending -> preparing -> on_the_way -> delivered
//	pending|preparing|on_the_way -> cancelled
//
// delivered and cancelled are terminal.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusOnTheWay},
	{From: models.StatusOnTheWay, To: models.StatusDelivered},
	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	{From: models.StatusOnTheWay, To: models.StatusCancelled},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// AllStatuses lists every status the workflow knows about
var AllStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusOnTheWay,
	models.StatusDelivered,
	models.StatusCancelled,
}

// IsValidStatus reports whether s is one of the known statuses
func IsValidStatus(s models.OrderStatus) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves the given status
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("%w: %s → %s (valid from %s: %s)",
		errs.ErrInvalidTransition, from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}

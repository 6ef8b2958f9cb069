package services

import "github.com/LINMINXUAN/aphelion-apollo-pos/entity"

// TransitionPolicy decides whether an order may move from one status to
// another. The policy is injected into OrderService so a stricter machine can
// be swapped in without touching the engine.
type TransitionPolicy interface {
	Allowed(from, to entity.OrderStatus) bool
}

// AnyTransition permits every status change, including moves out of terminal
// states. This matches the historical behaviour of the terminal software.
type AnyTransition struct{}

func (AnyTransition) Allowed(from, to entity.OrderStatus) bool { return true }

// ForwardOnly enforces the kitchen workflow: orders only advance, and
// terminal states are final.
type ForwardOnly struct{}

var forwardTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPending:   {entity.OrderPreparing, entity.OrderCancelled},
	entity.OrderPreparing: {entity.OrderServed, entity.OrderCancelled},
	entity.OrderServed:    {entity.OrderCompleted},
}

func (ForwardOnly) Allowed(from, to entity.OrderStatus) bool {
	for _, next := range forwardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

package entities

import (
	"fmt"
	"slices"
	"strings"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
}

var statusDescriptions = map[OrderStatus]string{
	StatusPending:   "awaiting confirmation",
	StatusConfirmed: "confirmed by an administrator",
	StatusShipped:   "on its way to the customer",
	StatusDelivered: "delivered to the customer",
	StatusCancelled: "cancelled",
}

// ParseOrderStatus accepts a status name in any letter case.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

func (s OrderStatus) Valid() bool {
	_, ok := statusDescriptions[s]
	return ok
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Description() string {
	return statusDescriptions[s]
}

// IsFinal reports whether no further transitions are possible.
func (s OrderStatus) IsFinal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether target is directly reachable from s.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return slices.Contains(statusTransitions[s], target)
}

// CheckTransition returns ErrInvalidTransition unless s → target is an edge of the workflow.
func (s OrderStatus) CheckTransition(target OrderStatus) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, target)
	}
	if !s.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, s, target)
	}
	return nil
}

// OrderStatuses lists every status in workflow order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled}
}

package domain

import "github.com/google/uuid"

// DeliveryFailure records one recipient that did not receive a broadcast.
type DeliveryFailure struct {
	Recipient ChatID
	Cause     error
}

// DeliveryReport summarizes one broadcast. Failed follows the recipients order.
type DeliveryReport struct {
	ID        uuid.UUID
	Succeeded int
	Failed    []DeliveryFailure
}

func (r DeliveryReport) Attempted() int {
	return r.Succeeded + len(r.Failed)
}

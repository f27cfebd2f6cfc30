package notification

import "github.com/sanjanb/k-tech-nain/internal/domain/entity"

// Classify maps a (previous, current) deal snapshot pair to the notification
// event the transition produces, if any. DEAL_CONFIRMED fires exactly at the
// moment both confirmations first become true. Every other transition yields
// no event, including redundant invocations on an already-completed deal, so
// double-firing the classifier never double-counts.
func Classify(previous, current entity.Deal) (entity.EventType, bool) {
	if !previous.Completed() && current.Completed() {
		return entity.EventDealConfirmed, true
	}

	return "", false
}

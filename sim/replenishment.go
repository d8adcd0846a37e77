package sim

// OutstandingOrder is one replenishment order in flight: a positive
// quantity scheduled to arrive on ArrivalDay.
type OutstandingOrder struct {
	Quantity   int // units ordered, always > 0
	ArrivalDay int // simulation day the full quantity is delivered
}

// ReplenishmentTracker is a two-state machine over the replenishment
// pipeline: idle (no outstanding order) or awaiting-arrival (exactly one).
//
// The single-outstanding-order discipline is deliberate: while an order is
// in flight no further order may be placed, even if inventory falls much
// further below the reorder point. That mirrors the reference system's
// economics exactly and must not be relaxed to a multi-order pipeline.
type ReplenishmentTracker struct {
	order *OutstandingOrder
}

// Outstanding reports whether an order is currently in flight.
func (t *ReplenishmentTracker) Outstanding() bool {
	return t.order != nil
}

// Order returns the order in flight, or nil when the pipeline is idle.
func (t *ReplenishmentTracker) Order() *OutstandingOrder {
	return t.order
}

// Place transitions idle → awaiting-arrival. The caller (the reorder rule)
// guarantees the pipeline is idle and quantity > 0.
func (t *ReplenishmentTracker) Place(quantity, arrivalDay int) {
	t.order = &OutstandingOrder{Quantity: quantity, ArrivalDay: arrivalDay}
}

// Arrive transitions awaiting-arrival → idle once day reaches the
// scheduled arrival day, returning the delivered quantity. The full
// quantity is delivered atomically; there are no partial arrivals. Returns
// (0, false) while the pipeline is idle or the order is still in transit.
func (t *ReplenishmentTracker) Arrive(day int) (int, bool) {
	if t.order == nil || day < t.order.ArrivalDay {
		return 0, false
	}
	quantity := t.order.Quantity
	t.order = nil
	return quantity, true
}

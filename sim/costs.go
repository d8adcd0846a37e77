package sim

// CostTotals accumulates the three cost components of a run. Each total is
// monotonically non-decreasing: costs only accumulate, never decrease.
type CostTotals struct {
	Holding  float64 // inventory carrying cost, accrued daily on the post-demand level
	Ordering float64 // fixed cost per order event, independent of quantity
	Stockout float64 // penalty for unmet demand, accrued per shortage unit
}

// AddHolding accrues one day of carrying cost for level units.
func (c *CostTotals) AddHolding(level int, ratePerUnitDay float64) {
	c.Holding += float64(level) * ratePerUnitDay
}

// AddOrdering accrues the fixed cost of one order event.
func (c *CostTotals) AddOrdering(costPerOrder float64) {
	c.Ordering += costPerOrder
}

// AddStockout accrues the penalty for shortage units of unmet demand.
func (c *CostTotals) AddStockout(shortage int, ratePerUnit float64) {
	c.Stockout += float64(shortage) * ratePerUnit
}

// Total returns the sum of the three components.
func (c *CostTotals) Total() float64 {
	return c.Holding + c.Ordering + c.Stockout
}

package sim

import "fmt"

// Result aggregates the cost metrics of one completed run. It is
// constructed once, at the end of the day loop, and never mutated; callers
// searching over (s, S) treat it as the objective value of one policy.
type Result struct {
	TotalCost       float64 `json:"total_cost" yaml:"total_cost"`             // holding + ordering + stockout, exactly
	HoldingCost     float64 `json:"holding_cost" yaml:"holding_cost"`         // cost of keeping units in stock
	OrderingCost    float64 `json:"ordering_cost" yaml:"ordering_cost"`       // fixed cost per placed order
	StockoutCost    float64 `json:"stockout_cost" yaml:"stockout_cost"`       // penalty for unmet demand
	EndingInventory int     `json:"ending_inventory" yaml:"ending_inventory"` // on-hand level after the final day
}

// newResult freezes the final accumulated state into a Result.
func newResult(costs *CostTotals, endingInventory int) Result {
	return Result{
		TotalCost:       costs.Total(),
		HoldingCost:     costs.Holding,
		OrderingCost:    costs.Ordering,
		StockoutCost:    costs.Stockout,
		EndingInventory: endingInventory,
	}
}

// Print displays the aggregated cost metrics at the end of the simulation.
func (r Result) Print() {
	fmt.Println("=== Simulation Result ===")
	fmt.Printf("Total Cost       : %.2f\n", r.TotalCost)
	fmt.Printf("Holding Cost     : %.2f\n", r.HoldingCost)
	fmt.Printf("Ordering Cost    : %.2f\n", r.OrderingCost)
	fmt.Printf("Stockout Cost    : %.2f\n", r.StockoutCost)
	fmt.Printf("Ending Inventory : %d units\n", r.EndingInventory)
}

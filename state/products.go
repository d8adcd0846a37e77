package state

import (
	"fmt"
	"sort"
	"strings"
)

// ProductRoute describes one product flowing through the production
// graph: an ordered list of station ids and a display color.
type ProductRoute struct {
	Label string   `json:"label"`
	Route []string `json:"route"`
	Color string   `json:"color"`
}

// MissingNodesError reports graph operations referencing stations that do
// not exist, so callers can surface which ids to create first.
type MissingNodesError struct {
	Missing   []string // station ids absent from the graph
	Available []string // station ids that do exist, sorted
}

func (e *MissingNodesError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("stations do not exist in the graph: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("stations do not exist in the graph: %s (available: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

// validateRoute checks every station of a route against the graph.
func validateRoute(g *Graph, route []string) error {
	var missing []string
	for _, station := range route {
		if !g.HasNode(station) {
			missing = append(missing, station)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	available := g.NodeIDs()
	sort.Strings(available)
	return &MissingNodesError{Missing: missing, Available: available}
}

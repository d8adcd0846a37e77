// Package state stores the modelled production topology shared by the
// simulation tooling: a directed station graph and the product routes
// flowing through it, both persisted as JSON documents with atomic writes.
package state

// Node is one station or process in the production graph. The label
// doubles as the node id; X and Y position the node on a layout canvas.
type Node struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// Link is a directed edge between two stations.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Graph is the node-link JSON document describing the production topology.
type Graph struct {
	Directed bool   `json:"directed"`
	Nodes    []Node `json:"nodes"`
	Links    []Link `json:"links"`
}

// NewGraph returns an empty directed graph.
func NewGraph() *Graph {
	return &Graph{Directed: true}
}

// HasNode reports whether a station with the given id exists.
func (g *Graph) HasNode(id string) bool {
	for _, n := range g.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// HasEdge reports whether a directed edge source→target exists.
func (g *Graph) HasEdge(source, target string) bool {
	for _, l := range g.Links {
		if l.Source == source && l.Target == target {
			return true
		}
	}
	return false
}

const defaultNodeColor = "#4C78A8"

// AddNode adds a station, or updates its position when the id already
// exists.
func (g *Graph) AddNode(label string, x, y float64) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == label {
			g.Nodes[i].X = x
			g.Nodes[i].Y = y
			return
		}
	}
	g.Nodes = append(g.Nodes, Node{ID: label, Label: label, X: x, Y: y, Color: defaultNodeColor})
}

// RemoveNode removes a station and every edge incident to it. Removing an
// unknown station is a no-op.
func (g *Graph) RemoveNode(id string) {
	nodes := g.Nodes[:0]
	for _, n := range g.Nodes {
		if n.ID != id {
			nodes = append(nodes, n)
		}
	}
	g.Nodes = nodes

	links := g.Links[:0]
	for _, l := range g.Links {
		if l.Source != id && l.Target != id {
			links = append(links, l)
		}
	}
	g.Links = links
}

// MoveNode changes a station's layout position without touching its
// connections. Moving an unknown station is a no-op.
func (g *Graph) MoveNode(id string, x, y float64) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			g.Nodes[i].X = x
			g.Nodes[i].Y = y
			return
		}
	}
}

// AddEdge adds a directed edge between two existing stations. Both ends
// must already exist; a *MissingNodesError names the absent ones. Adding
// an existing edge is a no-op.
func (g *Graph) AddEdge(source, target string) error {
	var missing []string
	if !g.HasNode(source) {
		missing = append(missing, source)
	}
	if !g.HasNode(target) {
		missing = append(missing, target)
	}
	if len(missing) > 0 {
		return &MissingNodesError{Missing: missing}
	}
	if g.HasEdge(source, target) {
		return nil
	}
	g.Links = append(g.Links, Link{Source: source, Target: target, Color: "rgba(90,90,90,0.8)"})
	return nil
}

// RemoveEdge removes a directed edge. Removing an unknown edge is a no-op.
func (g *Graph) RemoveEdge(source, target string) {
	links := g.Links[:0]
	for _, l := range g.Links {
		if l.Source != source || l.Target != target {
			links = append(links, l)
		}
	}
	g.Links = links
}

// NodeIDs returns the ids of all stations, in insertion order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

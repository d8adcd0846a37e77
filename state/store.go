package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	graphFile    = "graph.json"
	productsFile = "products.json"
)

// Store persists the production graph and product routes under one
// directory, as graph.json and products.json.
//
// Reads tolerate missing, empty, or torn files by returning empty state,
// so a half-initialized directory never takes the tooling down. Writes go
// through a temp file and an atomic rename: readers observe either the
// old complete document or the new one, never a partial JSON blob.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created on the
// first write, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LoadGraph reads graph.json, returning an empty directed graph when the
// file is missing, empty, or corrupted.
func (s *Store) LoadGraph() *Graph {
	graph := NewGraph()
	s.loadJSON(graphFile, graph)
	// The topology is always directed; older hand-edited files may omit the flag.
	graph.Directed = true
	return graph
}

// SaveGraph atomically persists the graph to graph.json.
func (s *Store) SaveGraph(g *Graph) error {
	return s.saveJSON(graphFile, g)
}

// ResetGraph replaces the stored graph with an empty directed graph.
func (s *Store) ResetGraph() error {
	return s.SaveGraph(NewGraph())
}

// LoadProducts reads products.json, returning an empty list when the file
// is missing, empty, or corrupted.
func (s *Store) LoadProducts() []ProductRoute {
	var products []ProductRoute
	s.loadJSON(productsFile, &products)
	return products
}

// SaveProducts atomically persists the product route list.
func (s *Store) SaveProducts(products []ProductRoute) error {
	if products == nil {
		products = []ProductRoute{}
	}
	return s.saveJSON(productsFile, products)
}

// AddProductRoute adds a product route, or overwrites the route and color
// of an existing label. Every station of the route must exist in the
// stored graph; absent ones are reported in a *MissingNodesError.
func (s *Store) AddProductRoute(label string, route []string, color string) error {
	graph := s.LoadGraph()
	if err := validateRoute(graph, route); err != nil {
		return err
	}

	products := s.LoadProducts()
	updated := false
	for i := range products {
		if products[i].Label == label {
			products[i].Route = append([]string(nil), route...)
			products[i].Color = color
			updated = true
			break
		}
	}
	if !updated {
		products = append(products, ProductRoute{
			Label: label,
			Route: append([]string(nil), route...),
			Color: color,
		})
	}
	return s.SaveProducts(products)
}

// RemoveProductRoute removes the route with the given label. Removing an
// unknown label is a no-op.
func (s *Store) RemoveProductRoute(label string) error {
	products := s.LoadProducts()
	kept := products[:0]
	for _, p := range products {
		if p.Label != label {
			kept = append(kept, p)
		}
	}
	return s.SaveProducts(kept)
}

// ResetProductRoutes clears all configured product routes.
func (s *Store) ResetProductRoutes() error {
	return s.SaveProducts(nil)
}

// loadJSON decodes the named file into out, leaving out untouched on any
// read or decode failure.
func (s *Store) loadJSON(name string, out any) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		// A partially written or hand-edited file must not take the
		// caller down; it is replaced wholesale on the next save.
		logrus.Warnf("ignoring corrupted state file %s: %v", path, err)
	}
}

// saveJSON writes out as indented JSON via a unique temp file in the same
// directory, then renames it over the target.
func (s *Store) saveJSON(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}

// Package graphfile reads a pattern or host graph for vf2ctl from a YAML
// definition file and builds the corresponding *core.Graph, and renders a
// vf2.Match result back out as YAML.
//
// This is deliberately outside the vf2 package: spec.md scopes graph
// (de)serialization out of the matching engine itself (it is a concern of
// the concrete graph collaborator, not of the search), so it lives only
// in the CLI that consumes the engine's public surface.
package graphfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vf2/core"
	"github.com/katalvlaran/vf2/vf2"
)

// Definition is the on-disk shape of one graph definition file.
type Definition struct {
	// Directed defaults to true: every graph the matching engine
	// operates on is directed per spec.md §1.
	Directed *bool `yaml:"directed"`
	Loops    bool  `yaml:"loops"`
	Multi    bool  `yaml:"multi"`
	Weighted bool  `yaml:"weighted"`
	Nodes    []Node `yaml:"nodes"`
	Edges    []Edge `yaml:"edges"`
}

// Node is one node entry: an ID and an optional attribute compared by the
// default semantic predicate.
type Node struct {
	ID        string      `yaml:"id"`
	Attribute interface{} `yaml:"attribute,omitempty"`
}

// Edge is one directed edge entry, optionally weighted.
type Edge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight,omitempty"`
}

// Load reads path and builds the *core.Graph it describes.
func Load(path string) (*core.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: reading %s: %w", path, err)
	}

	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("graphfile: parsing %s: %w", path, err)
	}

	return Build(&def)
}

// Build constructs a *core.Graph from a parsed Definition.
func Build(def *Definition) (*core.Graph, error) {
	directed := true
	if def.Directed != nil {
		directed = *def.Directed
	}

	opts := []core.GraphOption{core.WithDirected(directed)}
	if def.Loops {
		opts = append(opts, core.WithLoops())
	}
	if def.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	if def.Weighted {
		opts = append(opts, core.WithWeighted())
	}

	g := core.NewGraph(opts...)

	for _, n := range def.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("graphfile: node with empty id")
		}
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("graphfile: adding node %q: %w", n.ID, err)
		}
		if n.Attribute != nil {
			if err := g.SetAttribute(n.ID, n.Attribute); err != nil {
				return nil, fmt.Errorf("graphfile: setting attribute on %q: %w", n.ID, err)
			}
		}
	}

	for _, e := range def.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("graphfile: edge with empty endpoint")
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: adding edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// Pair mirrors vf2.Pair for YAML output, giving the two fields lowercase
// keys instead of vf2.Pair's exported Go names.
type Pair struct {
	Pattern string `yaml:"pattern"`
	Host    string `yaml:"host"`
}

// Result is the document vf2ctl prints: one entry per mapping discovered.
type Result struct {
	Mappings [][]Pair `yaml:"mappings"`
}

// FromMappings converts engine output into the CLI's YAML result shape.
func FromMappings(ms []vf2.Mapping) Result {
	out := Result{Mappings: make([][]Pair, 0, len(ms))}
	for _, m := range ms {
		pairs := make([]Pair, 0, len(m))
		for _, p := range m {
			pairs = append(pairs, Pair{Pattern: p.PatternKey, Host: p.HostKey})
		}
		out.Mappings = append(out.Mappings, pairs)
	}

	return out
}

// WriteTo encodes r as YAML to w.
func (r Result) WriteTo(w *os.File) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(r)
}

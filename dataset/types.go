package dataset

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/urbanplan/planerr"
)

// Sentinel errors returned while decoding a snapshot.
var (
	// ErrUnknownFormat indicates an unsupported file extension or Format value.
	ErrUnknownFormat = planerr.New(planerr.InvalidInput, "dataset: unknown format")

	// ErrMalformedEdge indicates an edge that is neither an object nor a [u, v, w] triple.
	ErrMalformedEdge = planerr.New(planerr.InvalidInput, "dataset: malformed edge")
)

// Snapshot is one decoded dataset document.
type Snapshot struct {
	Name        string          `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Nodes       []NodeRecord    `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges       []EdgeRecord    `json:"edges" yaml:"edges" toml:"edges"`
	Projects    []ProjectRecord `json:"projects" yaml:"projects" toml:"projects"`
	Localities  []PointRecord   `json:"localities" yaml:"localities" toml:"localities"`
	Emergency   []PointRecord   `json:"emergency" yaml:"emergency" toml:"emergency"`
	Underserved []PointRecord   `json:"underserved" yaml:"underserved" toml:"underserved"`
	Flows       []FlowRecord    `json:"flows" yaml:"flows" toml:"flows"`
}

// NodeRecord is a road network node.
type NodeRecord struct {
	ID   string `json:"id" yaml:"id" toml:"id"`
	Name string `json:"name" yaml:"name" toml:"name"`
}

// EdgeRecord is an undirected road segment.
type EdgeRecord struct {
	From   string `json:"from" yaml:"from" toml:"from"`
	To     string `json:"to" yaml:"to" toml:"to"`
	Weight int64  `json:"weight" yaml:"weight" toml:"weight"`
}

// ProjectRecord is a candidate investment.
type ProjectRecord struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Cost    int    `json:"cost" yaml:"cost" toml:"cost"`
	Benefit int    `json:"benefit" yaml:"benefit" toml:"benefit"`
}

// PointRecord is a named planar location.
type PointRecord struct {
	Name string  `json:"name" yaml:"name" toml:"name"`
	X    float64 `json:"x" yaml:"x" toml:"x"`
	Y    float64 `json:"y" yaml:"y" toml:"y"`
}

// FlowRecord is a maintenance window attached to a network node. An empty
// Name is filled from the node with the same ID.
type FlowRecord struct {
	ID     string `json:"id" yaml:"id" toml:"id"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Start  int64  `json:"start" yaml:"start" toml:"start"`
	Finish int64  `json:"finish" yaml:"finish" toml:"finish"`
}

// edgeObject has EdgeRecord's fields without its decoding methods.
type edgeObject EdgeRecord

// UnmarshalJSON accepts both the object and the triple form.
func (e *EdgeRecord) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return json.Unmarshal(data, (*edgeObject)(e))
	}

	var triple []json.RawMessage
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("%w: triple has %d elements", ErrMalformedEdge, len(triple))
	}
	if err := json.Unmarshal(triple[0], &e.From); err != nil {
		return fmt.Errorf("%w: from: %v", ErrMalformedEdge, err)
	}
	if err := json.Unmarshal(triple[1], &e.To); err != nil {
		return fmt.Errorf("%w: to: %v", ErrMalformedEdge, err)
	}
	if err := json.Unmarshal(triple[2], &e.Weight); err != nil {
		return fmt.Errorf("%w: weight: %v", ErrMalformedEdge, err)
	}

	return nil
}

// UnmarshalYAML accepts both the mapping and the sequence form.
func (e *EdgeRecord) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		return value.Decode((*edgeObject)(e))
	case yaml.SequenceNode:
		if len(value.Content) != 3 {
			return fmt.Errorf("%w: line %d: triple has %d elements", ErrMalformedEdge, value.Line, len(value.Content))
		}
		if err := value.Content[0].Decode(&e.From); err != nil {
			return fmt.Errorf("%w: line %d: from: %v", ErrMalformedEdge, value.Line, err)
		}
		if err := value.Content[1].Decode(&e.To); err != nil {
			return fmt.Errorf("%w: line %d: to: %v", ErrMalformedEdge, value.Line, err)
		}
		if err := value.Content[2].Decode(&e.Weight); err != nil {
			return fmt.Errorf("%w: line %d: weight: %v", ErrMalformedEdge, value.Line, err)
		}

		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrMalformedEdge, value.Line)
	}
}

// UnmarshalTOML accepts an inline table or a mixed array.
func (e *EdgeRecord) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case map[string]any:
		from, okFrom := v["from"].(string)
		to, okTo := v["to"].(string)
		weight, okWeight := v["weight"].(int64)
		if !okFrom || !okTo || !okWeight {
			return fmt.Errorf("%w: table %v", ErrMalformedEdge, v)
		}
		e.From, e.To, e.Weight = from, to, weight
	case []any:
		if len(v) != 3 {
			return fmt.Errorf("%w: triple has %d elements", ErrMalformedEdge, len(v))
		}
		from, okFrom := v[0].(string)
		to, okTo := v[1].(string)
		weight, okWeight := v[2].(int64)
		if !okFrom || !okTo || !okWeight {
			return fmt.Errorf("%w: triple %v", ErrMalformedEdge, v)
		}
		e.From, e.To, e.Weight = from, to, weight
	default:
		return fmt.Errorf("%w: %T", ErrMalformedEdge, data)
	}

	return nil
}

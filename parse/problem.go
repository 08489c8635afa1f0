// File: problem.go
// Role: YAML problem files.

package parse

import (
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathsearch/core"
)

// ErrInvalidProblem indicates a problem file that decoded but is incomplete.
var ErrInvalidProblem = errors.New("parse: invalid problem")

// Problem is one search request: a graph plus start, goals and an optional
// algorithm name.
type Problem struct {
	Directed  bool          `yaml:"directed"`
	Edges     []ProblemEdge `yaml:"edges"`
	Start     string        `yaml:"start"`
	Goals     []string      `yaml:"goals"`
	Algorithm string        `yaml:"algorithm,omitempty"`
}

// ProblemEdge is the YAML form of core.Edge. Weight is a pointer so a missing
// weight can be told apart from zero.
type ProblemEdge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight *int64 `yaml:"weight"`
}

// LoadProblem reads and decodes the YAML problem file at path.
func LoadProblem(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := DecodeProblem(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// DecodeProblem decodes one YAML document from r and validates it.
// Unknown keys are rejected so typos do not silently drop fields.
func DecodeProblem(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	p := &Problem{}
	if err := dec.Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidProblem)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the fields that decoding cannot. It does not check that
// start and goals exist in the graph; the search does that.
func (p *Problem) Validate() error {
	if len(p.Edges) == 0 {
		return fmt.Errorf("%w: no edges", ErrInvalidProblem)
	}
	for i, e := range p.Edges {
		switch {
		case e.From == "" || e.To == "":
			return fmt.Errorf("%w: edge %d: missing endpoint", ErrInvalidProblem, i+1)
		case e.Weight == nil:
			return fmt.Errorf("%w: edge %d (%s,%s): missing weight", ErrInvalidProblem, i+1, e.From, e.To)
		case *e.Weight < 0:
			return fmt.Errorf("%w: edge %d (%s,%s): negative weight %d", ErrInvalidProblem, i+1, e.From, e.To, *e.Weight)
		}
	}
	if _, err := Start(p.Start); err != nil {
		return err
	}
	if len(p.Goals) == 0 {
		return ErrEmptyGoals
	}
	for _, g := range p.Goals {
		if g == "" {
			return fmt.Errorf("%w: blank entry", ErrEmptyGoals)
		}
	}

	return nil
}

// CoreEdges converts the problem's edges to core.Edge values in file order.
// Call Validate first; a missing weight becomes zero.
func (p *Problem) CoreEdges() []core.Edge {
	out := make([]core.Edge, len(p.Edges))
	for i, e := range p.Edges {
		out[i] = core.Edge{From: e.From, To: e.To}
		if e.Weight != nil {
			out[i].Weight = *e.Weight
		}
	}

	return out
}

// Graph builds the problem's graph with the problem's orientation.
func (p *Problem) Graph() (*core.Graph, error) {
	return core.FromEdges(p.CoreEdges(), core.WithDirected(p.Directed))
}

// Encode writes p as YAML to w.
func (p *Problem) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}

	return enc.Close()
}

// NewProblem assembles a Problem from already parsed parts.
func NewProblem(edges []core.Edge, directed bool, start string, goals []string, algorithm string) *Problem {
	p := &Problem{
		Directed:  directed,
		Edges:     make([]ProblemEdge, len(edges)),
		Start:     start,
		Goals:     goals,
		Algorithm: algorithm,
	}
	for i, e := range edges {
		w := e.Weight
		p.Edges[i] = ProblemEdge{From: e.From, To: e.To, Weight: &w}
	}

	return p
}

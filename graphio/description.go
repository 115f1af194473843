// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fuzzytwin/core"
)

// ErrInvalidDescription wraps every validation failure of a Description.
var ErrInvalidDescription = errors.New("graphio: invalid graph description")

// DefaultDegree is used when a membership or weight is omitted.
const DefaultDegree = 1.0

// Node describes one vertex.
type Node struct {
	Name       string  `json:"name" yaml:"name" validate:"required,vertexname"`
	Membership float64 `json:"membershipFunction" yaml:"membershipFunction" validate:"gte=0,lte=1"`
}

// Edge describes one undirected edge.
type Edge struct {
	Source string  `json:"source" yaml:"source" validate:"required"`
	Target string  `json:"target" yaml:"target" validate:"required,nefield=Source"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gte=0,lte=1"`
}

// Description is the external form of a graph.
type Description struct {
	Nodes []Node `json:"nodes" yaml:"nodes" validate:"unique=Name,dive"`
	Edges []Edge `json:"edges" yaml:"edges" validate:"dive"`
}

// nodeWire accepts both membership spellings and detects omission.
type nodeWire struct {
	Name               string   `json:"name" yaml:"name"`
	MembershipFunction *float64 `json:"membershipFunction" yaml:"membershipFunction"`
	Membership         *float64 `json:"membership" yaml:"membership"`
}

func (w nodeWire) node() Node {
	n := Node{Name: w.Name, Membership: DefaultDegree}
	switch {
	case w.MembershipFunction != nil:
		n.Membership = *w.MembershipFunction
	case w.Membership != nil:
		n.Membership = *w.Membership
	}

	return n
}

// UnmarshalJSON defaults an omitted membership to DefaultDegree.
func (n *Node) UnmarshalJSON(data []byte) error {
	var w nodeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*n = w.node()

	return nil
}

// UnmarshalYAML accepts "membershipFunction" or "membership".
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var w nodeWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*n = w.node()

	return nil
}

type edgeWire struct {
	Source string   `json:"source" yaml:"source"`
	Target string   `json:"target" yaml:"target"`
	Weight *float64 `json:"weight" yaml:"weight"`
}

func (w edgeWire) edge() Edge {
	e := Edge{Source: w.Source, Target: w.Target, Weight: DefaultDegree}
	if w.Weight != nil {
		e.Weight = *w.Weight
	}

	return e
}

// UnmarshalJSON defaults an omitted weight to DefaultDegree.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var w edgeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = w.edge()

	return nil
}

// UnmarshalYAML defaults an omitted weight to DefaultDegree.
func (e *Edge) UnmarshalYAML(value *yaml.Node) error {
	var w edgeWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*e = w.edge()

	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("vertexname", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), core.ReservedNameChars)
	})
	v.RegisterStructValidation(validateEndpoints, Description{})

	return v
}

// validateEndpoints reports edges whose endpoints are not declared nodes.
func validateEndpoints(sl validator.StructLevel) {
	d := sl.Current().Interface().(Description)
	names := make(map[string]struct{}, len(d.Nodes))
	for _, n := range d.Nodes {
		names[n.Name] = struct{}{}
	}
	for i, e := range d.Edges {
		if _, ok := names[e.Source]; !ok && e.Source != "" {
			sl.ReportError(e.Source, fmt.Sprintf("Edges[%d].Source", i), "Source", "node", e.Source)
		}
		if _, ok := names[e.Target]; !ok && e.Target != "" {
			sl.ReportError(e.Target, fmt.Sprintf("Edges[%d].Target", i), "Target", "node", e.Target)
		}
	}
}

// Validate checks names, degree ranges, uniqueness, endpoints and loops.
// Every failure wraps ErrInvalidDescription.
func (d Description) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidDescription, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Description.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte", "lte":
		return fmt.Sprintf("%s=%v must be in [0,1]", field, fe.Value())
	case "unique":
		return field + " must have unique names"
	case "nefield":
		return fmt.Sprintf("%s: self-loop on %v", field, fe.Value())
	case "vertexname":
		return fmt.Sprintf("%s=%q must not contain any of %q", field, fe.Value(), core.ReservedNameChars)
	case "node":
		return fmt.Sprintf("%s: unknown node %q", field, fe.Param())
	}

	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

// Build validates d and constructs the graph. Every edge gets red weight 0.
func (d Description) Build() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := core.NewGraph()
	for _, n := range d.Nodes {
		if err := g.AddVertex(n.Name, n.Membership); err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.Source, e.Target, core.Weight{Black: e.Weight}); err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
	}

	return g, nil
}

// Describe returns the description of g, naming vertices by label.
// Red weights are not represented, and a description of a merged graph
// does not Build because composite labels are reserved.
func Describe(g *core.Graph) Description {
	var d Description
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		d.Nodes = append(d.Nodes, Node{Name: id.String(), Membership: v.Membership})
	}
	for _, e := range g.Edges() {
		d.Edges = append(d.Edges, Edge{Source: e.U.String(), Target: e.V.String(), Weight: e.Weight.Black})
	}

	return d
}

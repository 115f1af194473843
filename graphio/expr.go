// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// ErrInvalidExpr wraps parse failures of the text expression form.
var ErrInvalidExpr = errors.New("graphio: invalid graph expression")

type graphExpr struct {
	Nodes []*nodeExpr `parser:"@@*"`
	Edges []*edgeExpr `parser:"( \";\" @@* )?"`
}

type nodeExpr struct {
	Name   string `parser:"@(Ident | Int)"`
	Degree string `parser:"( \":\" @(Float | Int) )?"`
}

type edgeExpr struct {
	Source string `parser:"@(Ident | Int) \"-\""`
	Target string `parser:"@(Ident | Int)"`
	Weight string `parser:"( \":\" @(Float | Int) )?"`
}

var parseGraphExpr = participle.MustBuild[graphExpr]()

// ParseExpr parses the text form "A:0.5 B ; A-B:0.25". Edges may introduce
// undeclared nodes, which get membership DefaultDegree. The result is not
// validated; call Validate or Build.
func ParseExpr(s string) (Description, error) {
	x, err := parseGraphExpr.ParseString("", s)
	if err != nil {
		return Description{}, fmt.Errorf("%w: %v", ErrInvalidExpr, err)
	}

	var d Description
	declared := make(map[string]bool)
	addNode := func(name string, m float64) {
		if !declared[name] {
			declared[name] = true
			d.Nodes = append(d.Nodes, Node{Name: name, Membership: m})
		}
	}
	for _, n := range x.Nodes {
		m, err := degree(n.Degree)
		if err != nil {
			return Description{}, err
		}
		if declared[n.Name] {
			return Description{}, fmt.Errorf("%w: node %q declared twice", ErrInvalidExpr, n.Name)
		}
		addNode(n.Name, m)
	}
	for _, e := range x.Edges {
		w, err := degree(e.Weight)
		if err != nil {
			return Description{}, err
		}
		addNode(e.Source, DefaultDegree)
		addNode(e.Target, DefaultDegree)
		d.Edges = append(d.Edges, Edge{Source: e.Source, Target: e.Target, Weight: w})
	}

	return d, nil
}

func degree(s string) (float64, error) {
	if s == "" {
		return DefaultDegree, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidExpr, err)
	}

	return x, nil
}

// FormatExpr renders d in the text form. The output parses back only when
// every name is an identifier or an integer, so composite labels do not
// round trip.
func FormatExpr(d Description) string {
	var b strings.Builder
	for i, n := range d.Nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.Name)
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(n.Membership, 'g', -1, 64))
	}
	b.WriteString(" ;")
	for _, e := range d.Edges {
		b.WriteByte(' ')
		b.WriteString(e.Source)
		b.WriteByte('-')
		b.WriteString(e.Target)
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return b.String()
}

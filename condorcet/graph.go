// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package condorcet

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-tally/ballot"
)

// ErrCycle is returned by Graph.AddArc when the arc would close a cycle.
var ErrCycle = errors.New("arc would close a cycle")

// Visitation states for the cycle check.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// Graph is a directed preference graph over candidate indices that never
// holds a cycle: AddArc refuses any arc that would create one.
type Graph struct {
	out  [][]Arc
	in   []int
	arcs []Arc
}

// NewGraph returns a graph with n candidates and no arcs.
func NewGraph(n int) *Graph {
	return &Graph{
		out: make([][]Arc, n),
		in:  make([]int, n),
	}
}

// Size returns the number of candidates.
func (g *Graph) Size() int { return len(g.out) }

func (g *Graph) check(v int) error {
	if v < 0 || v >= len(g.out) {
		return fmt.Errorf("candidate %d outside %d: %w", v, len(g.out), ballot.ErrIndexOutOfRange)
	}
	return nil
}

// AddArc locks a into the graph unless a.To already reaches a.From.
func (g *Graph) AddArc(a Arc) error {
	if err := g.check(a.From); err != nil {
		return err
	}
	if err := g.check(a.To); err != nil {
		return err
	}
	if g.Reachable(a.To, a.From) {
		return fmt.Errorf("%d -> %d: %w", a.From, a.To, ErrCycle)
	}

	g.out[a.From] = append(g.out[a.From], a)
	g.in[a.To]++
	g.arcs = append(g.arcs, a)
	return nil
}

// Reachable reports whether a directed path leads from one candidate to
// another. Every candidate reaches itself.
func (g *Graph) Reachable(from, to int) bool {
	if g.check(from) != nil || g.check(to) != nil {
		return false
	}
	if from == to {
		return true
	}

	seen := make([]bool, len(g.out))
	stack := []int{from}
	seen[from] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range g.out[v] {
			if a.To == to {
				return true
			}
			if !seen[a.To] {
				seen[a.To] = true
				stack = append(stack, a.To)
			}
		}
	}
	return false
}

// OutDegree returns the number of arcs leaving v. It panics when v is out
// of range.
func (g *Graph) OutDegree(v int) int { return len(g.out[v]) }

// InDegree returns the number of arcs entering v. It panics when v is out
// of range.
func (g *Graph) InDegree(v int) int { return g.in[v] }

// Arcs returns the locked arcs in insertion order.
func (g *Graph) Arcs() []Arc { return append([]Arc(nil), g.arcs...) }

// Acyclic runs a three-colour DFS over the whole graph and reports whether
// no back edge exists.
func (g *Graph) Acyclic() bool {
	state := make([]int, len(g.out))
	var visit func(v int) bool
	visit = func(v int) bool {
		state[v] = gray
		for _, a := range g.out[v] {
			switch state[a.To] {
			case gray:
				return false
			case white:
				if !visit(a.To) {
					return false
				}
			}
		}
		state[v] = black
		return true
	}

	for v := range g.out {
		if state[v] == white && !visit(v) {
			return false
		}
	}
	return true
}

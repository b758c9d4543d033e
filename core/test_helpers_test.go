// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for hamilton/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/hamilton/core"
)

// matrix builds a symmetric adjacency matrix of size n from an edge list.
func matrix(n int, edges ...[2]int) [][]bool {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}

	return adj
}

// mustGraph builds a graph from adj or fails the test.
func mustGraph(t *testing.T, adj [][]bool) *core.Graph {
	t.Helper()
	g, err := core.NewFromAdjacency(adj)
	if err != nil {
		t.Fatalf("NewFromAdjacency: unexpected error: %v", err)
	}

	return g
}

// mustErrorIs fails the test unless errors.Is(err, target).
func mustErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}

// statusVector captures the status of every edge in g.
func statusVector(g *core.Graph) []core.EdgeStatus {
	out := make([]core.EdgeStatus, g.NumEdges())
	for e := range out {
		out[e] = g.Status(e)
	}

	return out
}

// checkCounters verifies RequiredDegree/DeletedDegree against edge status and
// the invariant RequiredDegree + DeletedDegree <= Degree.
func checkCounters(t *testing.T, g *core.Graph) {
	t.Helper()
	for v := 0; v < g.N(); v++ {
		var req, del int
		for _, e := range g.Incident(v) {
			switch g.Status(e) {
			case core.Required:
				req++
			case core.Deleted:
				del++
			}
		}
		vx := g.Vertex(v)
		if vx.RequiredDegree != req || vx.DeletedDegree != del {
			t.Fatalf("vertex %d: counters (%d,%d), edges say (%d,%d)",
				v, vx.RequiredDegree, vx.DeletedDegree, req, del)
		}
		if req+del > vx.Degree {
			t.Fatalf("vertex %d: required+deleted=%d > degree=%d", v, req+del, vx.Degree)
		}
	}
}

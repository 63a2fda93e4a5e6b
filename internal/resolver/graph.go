// Package resolver provides opt-in alias resolution for token
// collections. References are never resolved during import or export;
// callers that want literal values ask for them explicitly.
package resolver

import (
	"sort"

	"bennypowers.dev/dtx/internal/tokens"
)

// DependencyGraph is a directed graph of token alias dependencies.
type DependencyGraph struct {
	// adjacency list: token name -> names of tokens it references
	dependencies map[string][]string
	// all token names in the graph, sorted for deterministic walks
	nodes []string
}

// BuildGraph builds a dependency graph from a token list using each
// token's Reference field.
func BuildGraph(tokenList []*tokens.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
	}
	for _, tok := range tokenList {
		graph.nodes = append(graph.nodes, tok.Name)
		if tok.Reference != "" {
			graph.dependencies[tok.Name] = []string{tok.Reference}
		}
	}
	sort.Strings(graph.nodes)
	return graph
}

// Dependencies returns the names the given token references.
func (g *DependencyGraph) Dependencies(name string) []string {
	return g.dependencies[name]
}

// HasCycle reports whether the graph contains a reference cycle.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns one reference cycle as a name chain (first and
// last entries equal), or nil when the graph is acyclic.
func (g *DependencyGraph) FindCycle() []string {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(g.nodes))
	var stack []string
	var cycle []string

	var visit func(name string) bool
	visit = func(name string) bool {
		state[name] = visiting
		stack = append(stack, name)
		for _, dep := range g.dependencies[name] {
			switch state[dep] {
			case visiting:
				// Slice the cycle out of the current stack.
				for i, n := range stack {
					if n == dep {
						cycle = append(append([]string{}, stack[i:]...), dep)
						return true
					}
				}
			case unvisited:
				if visit(dep) {
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[name] = done
		return false
	}

	for _, name := range g.nodes {
		if state[name] == unvisited && visit(name) {
			return cycle
		}
	}
	return nil
}

// TopologicalSort returns the node names ordered so that every token
// appears after the tokens it references.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, NewCircularReferenceError(cycle)
	}

	visited := make(map[string]bool, len(g.nodes))
	var order []string

	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		for _, dep := range g.dependencies[name] {
			visit(dep)
		}
		order = append(order, name)
	}

	for _, name := range g.nodes {
		visit(name)
	}
	return order, nil
}

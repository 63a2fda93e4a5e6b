package resolver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/dtx/internal/resolver"
	"bennypowers.dev/dtx/internal/tokens"
)

func collect(toks ...*tokens.Token) *tokens.Collection {
	return &tokens.Collection{Name: "test", Version: "1.0.0", Tokens: toks}
}

func TestResolve(t *testing.T) {
	t.Run("single alias", func(t *testing.T) {
		c := collect(
			&tokens.Token{Name: "colors/base", Value: "#0066CC", Type: tokens.TypeColor},
			&tokens.Token{Name: "colors/link", Value: "{colors.base}", Type: tokens.TypeColor, Reference: "colors/base"},
		)
		resolved, err := resolver.Resolve(c)
		require.NoError(t, err)

		link := resolved.Lookup("colors/link")
		assert.Equal(t, "#0066CC", link.Value)
		assert.Empty(t, link.Reference)
	})

	t.Run("chained aliases resolve through", func(t *testing.T) {
		c := collect(
			&tokens.Token{Name: "c", Value: "{b}", Type: tokens.TypeColor, Reference: "b"},
			&tokens.Token{Name: "a", Value: "#111111", Type: tokens.TypeColor},
			&tokens.Token{Name: "b", Value: "{a}", Type: tokens.TypeColor, Reference: "a"},
		)
		resolved, err := resolver.Resolve(c)
		require.NoError(t, err)

		assert.Equal(t, "#111111", resolved.Lookup("b").Value)
		assert.Equal(t, "#111111", resolved.Lookup("c").Value)
	})

	t.Run("input collection is untouched", func(t *testing.T) {
		c := collect(
			&tokens.Token{Name: "colors/base", Value: "#0066CC", Type: tokens.TypeColor},
			&tokens.Token{Name: "colors/link", Value: "{colors.base}", Type: tokens.TypeColor, Reference: "colors/base"},
		)
		_, err := resolver.Resolve(c)
		require.NoError(t, err)

		assert.Equal(t, "{colors.base}", c.Lookup("colors/link").Value)
		assert.Equal(t, "colors/base", c.Lookup("colors/link").Reference)
	})

	t.Run("cycle fails", func(t *testing.T) {
		c := collect(
			&tokens.Token{Name: "a", Value: "{b}", Type: tokens.TypeColor, Reference: "b"},
			&tokens.Token{Name: "b", Value: "{a}", Type: tokens.TypeColor, Reference: "a"},
		)
		_, err := resolver.Resolve(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, resolver.ErrCircularReference))
	})

	t.Run("dangling reference fails", func(t *testing.T) {
		c := collect(
			&tokens.Token{Name: "colors/link", Value: "{colors.missing}", Type: tokens.TypeColor, Reference: "colors/missing"},
		)
		_, err := resolver.Resolve(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, resolver.ErrDanglingReference))
		assert.Contains(t, err.Error(), "colors/missing")
	})
}

func TestFindCycle(t *testing.T) {
	t.Run("self reference", func(t *testing.T) {
		graph := resolver.BuildGraph([]*tokens.Token{
			{Name: "a", Reference: "a"},
		})
		cycle := graph.FindCycle()
		require.NotNil(t, cycle)
		assert.Equal(t, []string{"a", "a"}, cycle)
	})

	t.Run("two-node cycle reports the chain", func(t *testing.T) {
		graph := resolver.BuildGraph([]*tokens.Token{
			{Name: "a", Reference: "b"},
			{Name: "b", Reference: "a"},
		})
		require.True(t, graph.HasCycle())
		cycle := graph.FindCycle()
		assert.Equal(t, cycle[0], cycle[len(cycle)-1])
		assert.Len(t, cycle, 3)
	})

	t.Run("acyclic graph", func(t *testing.T) {
		graph := resolver.BuildGraph([]*tokens.Token{
			{Name: "a", Reference: "b"},
			{Name: "b"},
			{Name: "c", Reference: "b"},
		})
		assert.False(t, graph.HasCycle())
		assert.Nil(t, graph.FindCycle())
	})
}

func TestTopologicalSort(t *testing.T) {
	graph := resolver.BuildGraph([]*tokens.Token{
		{Name: "c", Reference: "b"},
		{Name: "b", Reference: "a"},
		{Name: "a"},
	})
	order, err := graph.TopologicalSort()
	require.NoError(t, err)
	require.Len(t, order, 3)

	position := map[string]int{}
	for i, name := range order {
		position[name] = i
	}
	assert.Less(t, position["a"], position["b"])
	assert.Less(t, position["b"], position["c"])
}

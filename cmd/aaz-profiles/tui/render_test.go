package tui

import (
	"testing"

	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	tree := testTree(t)
	tree = cmdtree.UpdatePath(tree, []string{"network", "vnet", "create"}, true)

	t.Run("full", func(t *testing.T) {
		out := RenderTree(tree, 0, false)
		assert.Contains(t, out, "latest")
		assert.Contains(t, out, "[-]")
		assert.Contains(t, out, "network")
		assert.Contains(t, out, "(1/3)")
		assert.Contains(t, out, "vnet")
		assert.Contains(t, out, "2022-03-01")
		assert.Contains(t, out, "Preview")
		assert.Contains(t, out, "delete")
		assert.Contains(t, out, "extension")
	})

	t.Run("depth", func(t *testing.T) {
		out := RenderTree(tree, 1, false)
		assert.Contains(t, out, "network")
		assert.NotContains(t, out, "vnet")
	})

	t.Run("only selected", func(t *testing.T) {
		out := RenderTree(tree, 0, true)
		assert.Contains(t, out, "create")
		assert.NotContains(t, out, "delete")
		assert.NotContains(t, out, "extension")
	})
}

func TestCommandLabel(t *testing.T) {
	tree := testTree(t)
	_, c := cmdtree.Find(tree, []string{"network", "list"})
	assert.Equal(t, "list", CommandLabel(c))

	tree = cmdtree.UpdatePath(tree, []string{"network", "list"}, true, cmdtree.WithRegistered(false))
	_, c = cmdtree.Find(tree, []string{"network", "list"})
	label := CommandLabel(c)
	assert.Contains(t, label, "2021-01-01")
	assert.Contains(t, label, "unregistered")
	assert.NotContains(t, label, "Stable")
}

package commands_test

import (
	"testing"

	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
	"github.com/ruminaider/aaz-profiles/internal/commands"
	"github.com/ruminaider/aaz-profiles/internal/config"
	"github.com/ruminaider/aaz-profiles/internal/git"
	"github.com/ruminaider/aaz-profiles/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestResolveProfile(t *testing.T) {
	ws := setupWorkspace(t)
	cfg, err := commands.LoadConfig(ws)
	require.NoError(t, err)

	name, err := commands.ResolveProfile(ws, cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "latest", name)

	require.NoError(t, profiles.WriteActiveProfile(ws, "2020-09-01-hybrid"))
	name, err = commands.ResolveProfile(ws, cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "2020-09-01-hybrid", name)

	name, err = commands.ResolveProfile(ws, cfg, "latest")
	require.NoError(t, err)
	assert.Equal(t, "latest", name)

	_, err = commands.ResolveProfile(ws, cfg, "nope")
	assert.ErrorContains(t, err, "available: latest, 2020-09-01-hybrid")

	t.Run("active profile no longer configured", func(t *testing.T) {
		require.NoError(t, profiles.WriteActiveProfile(ws, "removed"))
		name, err := commands.ResolveProfile(ws, cfg, "")
		require.NoError(t, err)
		assert.Equal(t, "latest", name)
	})
}

func TestParseTarget(t *testing.T) {
	assert.Equal(t, []string{"network", "vnet"}, commands.ParseTarget([]string{"network/vnet"}))
	assert.Equal(t, []string{"network", "vnet"}, commands.ParseTarget([]string{"/network/vnet/"}))
	assert.Equal(t, []string{"network", "vnet", "create"}, commands.ParseTarget([]string{"network", "vnet", "create"}))
	assert.Equal(t, []string{"network", "vnet"}, commands.ParseTarget([]string{"network vnet"}))
	assert.Nil(t, commands.ParseTarget(nil))
}

func TestLoadTree_Unsaved(t *testing.T) {
	ws := setupWorkspace(t)
	require.NoError(t, profiles.DeleteProfile(ws, "latest"))

	tree, err := commands.LoadTree(ws, "latest")
	require.NoError(t, err)
	assert.Equal(t, "latest", tree.Name)
	assert.Equal(t, 0, cmdtree.Count(tree).Selected)
}

func TestSelect_Command(t *testing.T) {
	ws := setupWorkspace(t)

	result, err := commands.Select(ws, "", []string{"network", "list"}, commands.SelectOptions{})
	require.NoError(t, err)
	assert.Equal(t, "latest", result.Profile)
	assert.Equal(t, []string{"network list"}, result.Diff.Added)
	assert.True(t, result.Committed)

	p, err := profiles.ReadProfile(ws, "latest")
	require.NoError(t, err)
	cmds := profiles.Commands(p)
	require.Contains(t, cmds, "network list")
	assert.Equal(t, "2021-01-01", cmds["network list"].Version)
	assert.True(t, cmds["network list"].Registered)

	log, err := git.Log(ws, profiles.ProfilePath(ws, "latest"), 1)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Contains(t, log[0], "Select network list in latest")
}

func TestSelect_VersionAndRegistration(t *testing.T) {
	ws := setupWorkspace(t)

	_, err := commands.Select(ws, "latest", []string{"network", "list"}, commands.SelectOptions{
		Version:    "2020-06-01",
		Registered: boolPtr(false),
	})
	require.NoError(t, err)

	tree, err := commands.LoadTree(ws, "latest")
	require.NoError(t, err)
	_, c := cmdtree.Find(tree, []string{"network", "list"})
	require.NotNil(t, c)
	assert.Equal(t, "2020-06-01", c.SelectedVersion)
	assert.False(t, c.IsRegistered())

	// Re-selecting without options keeps the pinned version.
	result, err := commands.Select(ws, "latest", []string{"network", "list"}, commands.SelectOptions{})
	require.NoError(t, err)
	assert.True(t, result.Diff.IsEmpty())
	assert.False(t, result.Committed)
}

func TestSelect_Group(t *testing.T) {
	ws := setupWorkspace(t)

	result, err := commands.Select(ws, "latest", []string{"network", "vnet"}, commands.SelectOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"network vnet create", "network vnet delete", "network vnet subnet list"}, result.Diff.Added)

	g, _ := cmdtree.Find(result.Tree, []string{"network"})
	require.NotNil(t, g)
	assert.Equal(t, 3, g.SelectedCommands)
	assert.True(t, g.Indeterminate())
}

func TestSelect_Errors(t *testing.T) {
	ws := setupWorkspace(t)

	tests := []struct {
		name    string
		names   []string
		opts    commands.SelectOptions
		wantErr string
	}{
		{"unknown node", []string{"network", "nope"}, commands.SelectOptions{}, "`az network nope` not found"},
		{"empty group", []string{"extension"}, commands.SelectOptions{}, "has no commands"},
		{"unknown version", []string{"network", "show"}, commands.SelectOptions{Version: "1999-01-01"}, "available: 2021-01-01"},
		{"unknown version in group", []string{"network"}, commands.SelectOptions{Version: "1999-01-01"}, `has no version "1999-01-01"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.Select(ws, "latest", tt.names, tt.opts)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	view, err := profiles.ReadProfile(ws, "latest")
	require.NoError(t, err)
	assert.Empty(t, profiles.Commands(view), "failed selections are not saved")
}

func TestDeselect(t *testing.T) {
	ws := setupWorkspace(t)
	_, err := commands.Select(ws, "latest", []string{"network"}, commands.SelectOptions{})
	require.NoError(t, err)

	result, err := commands.Deselect(ws, "latest", []string{"network", "vnet", "subnet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"network vnet subnet list"}, result.Diff.Removed)

	tree, err := commands.LoadTree(ws, "latest")
	require.NoError(t, err)
	assert.Equal(t, 4, cmdtree.Count(tree).Selected)

	_, err = commands.Deselect(ws, "latest", []string{"compute"})
	assert.ErrorContains(t, err, "not found")
}

func TestReset(t *testing.T) {
	ws := setupWorkspace(t)
	_, err := commands.Select(ws, "latest", []string{"network"}, commands.SelectOptions{})
	require.NoError(t, err)
	_, err = commands.Select(ws, "latest", []string{"storage"}, commands.SelectOptions{})
	require.NoError(t, err)

	result, err := commands.Reset(ws, "latest")
	require.NoError(t, err)
	assert.Len(t, result.Diff.Removed, 6)

	p, err := profiles.ReadProfile(ws, "latest")
	require.NoError(t, err)
	assert.Empty(t, p.CommandGroups)
}

func TestProfilesAreIndependent(t *testing.T) {
	ws := setupWorkspace(t)
	_, err := commands.Select(ws, "2020-09-01-hybrid", []string{"storage"}, commands.SelectOptions{})
	require.NoError(t, err)

	latest, err := commands.LoadTree(ws, config.DefaultProfile)
	require.NoError(t, err)
	assert.Equal(t, 0, cmdtree.Count(latest).Selected)

	hybrid, err := commands.LoadTree(ws, "2020-09-01-hybrid")
	require.NoError(t, err)
	assert.Equal(t, 1, cmdtree.Count(hybrid).Selected)
}

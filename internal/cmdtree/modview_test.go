package cmdtree_test

import (
	"errors"
	"testing"

	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
	"github.com/ruminaider/aaz-profiles/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func networkView() *profiles.Profile {
	return &profiles.Profile{
		Name: "latest",
		CommandGroups: map[string]*profiles.CommandGroup{
			"network": {
				Names: []string{"network"},
				Commands: map[string]*profiles.Command{
					"list": {Names: []string{"network", "list"}, Version: "2020-06-01", Registered: false},
				},
				CommandGroups: map[string]*profiles.CommandGroup{
					"vnet": {
						Names: []string{"network", "vnet"},
						CommandGroups: map[string]*profiles.CommandGroup{
							"subnet": {
								Names: []string{"network", "vnet", "subnet"},
								Commands: map[string]*profiles.Command{
									"list": {Names: []string{"network", "vnet", "subnet", "list"}, Version: "2021-05-01", Registered: true},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestApplyModView(t *testing.T) {
	t.Run("applies versions and registration", func(t *testing.T) {
		tree, err := cmdtree.ApplyModView(loadTree(t), networkView())
		require.NoError(t, err)

		list := command(t, tree, "network/list")
		assert.Equal(t, "2020-06-01", list.SelectedVersion)
		require.NotNil(t, list.Registered)
		assert.False(t, *list.Registered)

		subnetList := command(t, tree, "network/vnet/subnet/list")
		assert.Equal(t, "2021-05-01", subnetList.SelectedVersion)
		assert.True(t, subnetList.IsRegistered())

		assert.Equal(t, 2, group(t, tree, "network").SelectedCommands)
		assert.Equal(t, 1, group(t, tree, "network/vnet").SelectedCommands)
		assert.Equal(t, 1, group(t, tree, "network/vnet/subnet").SelectedCommands)
		require.NoError(t, cmdtree.Check(tree))
	})

	t.Run("leaves unmentioned nodes untouched", func(t *testing.T) {
		base := cmdtree.Update(loadTree(t), "storage", true)
		base = cmdtree.Update(base, "network/vnet/create", true)

		tree, err := cmdtree.ApplyModView(base, networkView())
		require.NoError(t, err)

		assert.Same(t, base.CommandGroups[0], tree.CommandGroups[0])
		assert.True(t, command(t, tree, "network/vnet/create").Selected())
		assert.Equal(t, 3, group(t, tree, "network").SelectedCommands)
	})

	t.Run("clear then apply matches the view exactly", func(t *testing.T) {
		base := cmdtree.Update(loadTree(t), "network", true)

		tree, err := cmdtree.ApplyModView(cmdtree.Clear(base), networkView())
		require.NoError(t, err)
		assert.Equal(t, networkView(), cmdtree.Export(tree))
	})

	t.Run("nil view returns the tree", func(t *testing.T) {
		base := loadTree(t)
		tree, err := cmdtree.ApplyModView(base, nil)
		require.NoError(t, err)
		assert.Same(t, base, tree)
	})

	t.Run("empty version deselects", func(t *testing.T) {
		base := cmdtree.Update(loadTree(t), "network/show", true)
		view := &profiles.Profile{CommandGroups: map[string]*profiles.CommandGroup{
			"network": {
				Names: []string{"network"},
				Commands: map[string]*profiles.Command{
					"show": {Names: []string{"network", "show"}},
				},
			},
		}}
		tree, err := cmdtree.ApplyModView(base, view)
		require.NoError(t, err)
		show := command(t, tree, "network/show")
		assert.False(t, show.Selected())
		assert.Nil(t, show.Registered)
		assert.Zero(t, group(t, tree, "network").SelectedCommands)
	})

	t.Run("entries without names take their path", func(t *testing.T) {
		view := &profiles.Profile{CommandGroups: map[string]*profiles.CommandGroup{
			"network": {
				Commands: map[string]*profiles.Command{
					"show": {Version: "2021-01-01", Registered: true},
				},
			},
		}}
		tree, err := cmdtree.ApplyModView(loadTree(t), view)
		require.NoError(t, err)
		assert.Equal(t, "2021-01-01", command(t, tree, "network/show").SelectedVersion)
	})

	t.Run("keeps the tree name", func(t *testing.T) {
		view := networkView()
		view.Name = "2019-03-01-hybrid"
		tree, err := cmdtree.ApplyModView(loadTree(t), view)
		require.NoError(t, err)
		assert.Equal(t, "latest", tree.Name)
	})
}

func TestApplyModView_Missing(t *testing.T) {
	t.Run("unknown top-level group", func(t *testing.T) {
		view := networkView()
		view.CommandGroups["nope"] = &profiles.CommandGroup{Names: []string{"nope"}}

		_, err := cmdtree.ApplyModView(loadTree(t), view)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cmdtree.ErrMissingInBaseTree))

		var missing *cmdtree.MissingError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "command group", missing.Kind)
		assert.Equal(t, [][]string{{"nope"}}, missing.Names)
		assert.Contains(t, err.Error(), "`az nope`")
	})

	t.Run("nested group reports its full path", func(t *testing.T) {
		view := networkView()
		view.CommandGroups["network"].CommandGroups["nope"] = nil

		_, err := cmdtree.ApplyModView(loadTree(t), view)
		var missing *cmdtree.MissingError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, [][]string{{"network", "nope"}}, missing.Names)
		assert.Contains(t, err.Error(), "`az network nope`")
	})

	t.Run("lists every missing command of the level", func(t *testing.T) {
		view := networkView()
		cmds := view.CommandGroups["network"].Commands
		cmds["purge"] = &profiles.Command{Names: []string{"network", "purge"}, Version: "1"}
		cmds["audit"] = &profiles.Command{Names: []string{"network", "audit"}, Version: "1"}

		_, err := cmdtree.ApplyModView(loadTree(t), view)
		var missing *cmdtree.MissingError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "command", missing.Kind)
		assert.Equal(t, [][]string{{"network", "audit"}, {"network", "purge"}}, missing.Names)
		assert.Equal(t, "commands missing in base command tree: `az network audit`, `az network purge`", err.Error())
	})

	t.Run("commands under a group without commands", func(t *testing.T) {
		view := &profiles.Profile{CommandGroups: map[string]*profiles.CommandGroup{
			"storage": {
				Names: []string{"storage"},
				Commands: map[string]*profiles.Command{
					"create": {Names: []string{"storage", "create"}, Version: "1"},
				},
			},
		}}
		_, err := cmdtree.ApplyModView(loadTree(t), view)
		assert.ErrorIs(t, err, cmdtree.ErrMissingInBaseTree)
	})
}

func TestApplyModView_NameMismatch(t *testing.T) {
	view := networkView()
	view.CommandGroups["network"].Commands["list"].Names = []string{"network", "lst"}

	_, err := cmdtree.ApplyModView(loadTree(t), view)
	require.Error(t, err)
	assert.ErrorIs(t, err, cmdtree.ErrNameMismatch)

	var mismatch *cmdtree.NameMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "command", mismatch.Kind)
	assert.Equal(t, []string{"network", "list"}, mismatch.Want)
	assert.Equal(t, []string{"network", "lst"}, mismatch.Got)
}

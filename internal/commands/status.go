package commands

import (
	"fmt"
	"strings"

	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
	"github.com/ruminaider/aaz-profiles/internal/git"
	"github.com/ruminaider/aaz-profiles/internal/profiles"
)

// ProfileStatus summarizes one configured profile.
type ProfileStatus struct {
	Name   string
	Active bool
	Saved  bool // profiles/<name>.yaml exists
	Stats  cmdtree.Stats
}

// StatusResult describes the whole workspace.
type StatusResult struct {
	Module   string
	Profiles []ProfileStatus
	Clean    bool // false when the git working tree has uncommitted edits
	IsRepo   bool
}

// Status loads every configured profile and counts its selection.
func Status(ws string) (*StatusResult, error) {
	cfg, err := LoadConfig(ws)
	if err != nil {
		return nil, err
	}
	active, err := ResolveProfile(ws, cfg, "")
	if err != nil {
		return nil, err
	}
	saved, err := profiles.ListProfiles(ws)
	if err != nil {
		return nil, err
	}
	savedSet := make(map[string]bool, len(saved))
	for _, name := range saved {
		savedSet[name] = true
	}

	result := &StatusResult{Module: cfg.Module, Clean: true}
	for _, name := range cfg.Profiles {
		tree, err := LoadTree(ws, name)
		if err != nil {
			return nil, err
		}
		result.Profiles = append(result.Profiles, ProfileStatus{
			Name:   name,
			Active: name == active,
			Saved:  savedSet[name],
			Stats:  cmdtree.Count(tree),
		})
	}

	if git.IsRepo(ws) {
		result.IsRepo = true
		clean, err := git.IsClean(ws)
		if err != nil {
			return nil, err
		}
		result.Clean = clean
	}
	return result, nil
}

// SetActive makes name the profile used when none is given.
func SetActive(ws, name string) error {
	cfg, err := LoadConfig(ws)
	if err != nil {
		return err
	}
	if _, err := ResolveProfile(ws, cfg, name); err != nil {
		return err
	}
	return profiles.WriteActiveProfile(ws, name)
}

// History returns the most recent commits touching a profile.
func History(ws, profile string, n int) ([]string, error) {
	cfg, err := LoadConfig(ws)
	if err != nil {
		return nil, err
	}
	name, err := ResolveProfile(ws, cfg, profile)
	if err != nil {
		return nil, err
	}
	if !git.IsRepo(ws) {
		return nil, nil
	}
	return git.Log(ws, profiles.ProfilePath(ws, name), n)
}

// Prune deletes saved views of profiles no longer listed in config.yaml and
// commits the removal. Returns the pruned profile names.
func Prune(ws string) ([]string, error) {
	cfg, err := LoadConfig(ws)
	if err != nil {
		return nil, err
	}
	saved, err := profiles.ListProfiles(ws)
	if err != nil {
		return nil, err
	}

	var pruned, removed []string
	for _, name := range saved {
		if cfg.HasProfile(name) {
			continue
		}
		if err := profiles.DeleteProfile(ws, name); err != nil {
			return nil, err
		}
		pruned = append(pruned, name)
		removed = append(removed, profiles.ProfilePath(ws, name))
	}
	if len(pruned) == 0 || !git.IsRepo(ws) {
		return pruned, nil
	}

	if err := git.Remove(ws, removed...); err != nil {
		return nil, fmt.Errorf("staging removal: %w", err)
	}
	staged, err := git.HasStagedChanges(ws)
	if err != nil {
		return nil, err
	}
	if staged {
		if err := git.Commit(ws, fmt.Sprintf("Prune %s", strings.Join(pruned, ", "))); err != nil {
			return nil, fmt.Errorf("committing: %w", err)
		}
	}
	return pruned, nil
}

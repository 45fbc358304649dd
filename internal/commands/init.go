package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ruminaider/aaz-profiles/internal/cmdtree"
	"github.com/ruminaider/aaz-profiles/internal/config"
	"github.com/ruminaider/aaz-profiles/internal/git"
	"github.com/ruminaider/aaz-profiles/internal/paths"
	"github.com/ruminaider/aaz-profiles/internal/profiles"
)

// InitOptions configures a new workspace.
type InitOptions struct {
	Workspace   string
	CommandTree string   // path of the command tree payload to copy in
	Module      string   // CLI module name, informational
	Profiles    []string // nil = config.DefaultProfile
}

// InitResult describes what Init wrote.
type InitResult struct {
	Profiles       []string
	TotalCommands  int
	GitInitialized bool
}

// Init creates a workspace: config.yaml, a copy of the command tree payload,
// an empty module view per profile, and a git repository recording them.
func Init(opts InitOptions) (*InitResult, error) {
	ws := opts.Workspace
	if _, err := os.Stat(paths.ConfigFile(ws)); err == nil {
		return nil, fmt.Errorf("workspace already initialized at %s", ws)
	}

	cfg := config.Default(opts.Module, opts.Profiles...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(opts.CommandTree)
	if err != nil {
		return nil, fmt.Errorf("reading command tree: %w", err)
	}
	resp, err := cmdtree.DecodeResponse(payload)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(ws, 0755); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	if err := os.WriteFile(cfg.CommandTreePath(ws), payload, 0644); err != nil {
		return nil, fmt.Errorf("writing command tree: %w", err)
	}

	cfgData, err := config.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(paths.ConfigFile(ws), cfgData, 0644); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}
	// The active profile is per machine.
	if err := os.WriteFile(filepath.Join(ws, ".gitignore"), []byte("active-profile\n"), 0644); err != nil {
		return nil, fmt.Errorf("writing .gitignore: %w", err)
	}

	result := &InitResult{Profiles: cfg.Profiles}
	for _, name := range cfg.Profiles {
		tree := cmdtree.Build(name, resp)
		if err := profiles.WriteProfile(ws, cmdtree.Export(tree)); err != nil {
			return nil, err
		}
		result.TotalCommands = cmdtree.Count(tree).Commands
	}

	if !git.IsRepo(ws) {
		if err := git.Init(ws); err != nil {
			return nil, fmt.Errorf("initializing git repo: %w", err)
		}
		result.GitInitialized = true
	}
	if _, err := git.CommitPaths(ws, "Initialize aaz-profiles workspace",
		".gitignore", "config.yaml", cfg.CommandTree, "profiles"); err != nil {
		return nil, err
	}

	return result, nil
}

// LoadConfig reads <workspace>/config.yaml.
func LoadConfig(ws string) (config.Config, error) {
	data, err := os.ReadFile(paths.ConfigFile(ws))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Config{}, fmt.Errorf("no workspace at %s. Run 'aaz-profiles init' first", ws)
		}
		return config.Config{}, fmt.Errorf("reading config: %w", err)
	}
	return config.Parse(data)
}

// LoadCommandTree decodes the workspace's command tree payload.
func LoadCommandTree(ws string, cfg config.Config) (*cmdtree.Response, error) {
	data, err := os.ReadFile(cfg.CommandTreePath(ws))
	if err != nil {
		return nil, fmt.Errorf("reading command tree: %w", err)
	}
	return cmdtree.DecodeResponse(data)
}

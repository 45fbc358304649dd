package paths

import (
	"os"
	"path/filepath"
)

// WorkspaceEnv overrides the default workspace location.
const WorkspaceEnv = "AAZ_PROFILES_DIR"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// WorkspaceDir returns $AAZ_PROFILES_DIR, or ~/.aaz-profiles when unset.
func WorkspaceDir() string {
	if dir := os.Getenv(WorkspaceEnv); dir != "" {
		return dir
	}
	return filepath.Join(home(), ".aaz-profiles")
}

// ConfigFile returns <workspace>/config.yaml.
func ConfigFile(workspace string) string {
	return filepath.Join(workspace, "config.yaml")
}

// ProfilesDir returns <workspace>/profiles.
func ProfilesDir(workspace string) string {
	return filepath.Join(workspace, "profiles")
}

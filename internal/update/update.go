// Package update checks for and installs new tally releases.
package update

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
)

// repoSlug is the GitHub repository releases are published to.
const repoSlug = "pengelbrecht/tally"

// InstallMethod describes how the running binary was installed.
type InstallMethod int

const (
	InstallBinary InstallMethod = iota
	InstallHomebrew
)

// Release describes a published release.
type Release struct {
	Version   string
	AssetURL  string
	AssetName string
}

// DetectInstallMethod reports how the running binary was installed.
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallBinary
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	if isHomebrewPath(exe) {
		return InstallHomebrew
	}
	return InstallBinary
}

func isHomebrewPath(path string) bool {
	for _, marker := range []string{"/Cellar/", "/homebrew/", "/linuxbrew/"} {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

// CheckForUpdate looks up the latest published release and reports whether
// it is newer than current.
func CheckForUpdate(current string) (*Release, bool, error) {
	latest, found, err := selfupdate.DetectLatest(context.Background(), selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	release := &Release{
		Version:   latest.Version(),
		AssetURL:  latest.AssetURL,
		AssetName: latest.AssetName,
	}
	if latest.LessOrEqual(current) {
		return release, false, nil
	}
	return release, true, nil
}

// Update replaces the running binary with the latest release.
func Update(current string) error {
	latest, found, err := selfupdate.DetectLatest(context.Background(), selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", repoSlug)
	}
	if latest.LessOrEqual(current) {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(context.Background(), latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("update to %s: %w", latest.Version(), err)
	}
	return nil
}

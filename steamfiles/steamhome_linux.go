package steamfiles

import (
	"os"
	"path/filepath"
)

// findSteamHome is the system-dependent function that FindSteamHome is a
// wrapper for.
//
// On Linux, Steam may live in several places depending on how it was
// installed: the classic ~/.steam symlink farm, a Flatpak sandbox, a Snap
// sandbox, or a plain XDG data directory.  We take the first candidate
// that has a "steamapps" subdirectory.
//
func findSteamHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", cannotFind("user home directory(!?)", err)
	}

	candidates := []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".steam", "root"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam",
			".steam", "steam"),
		filepath.Join(home, "snap", "steam", "common",
			".local", "share", "Steam"),
	}
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		candidates = append(candidates, filepath.Join(xdgData, "Steam"))
	}

	for _, dir := range candidates {
		if _, err := DirectoryExists(dir, "steamapps"); err == nil {
			return dir, nil
		}
	}
	return "", cannotFind("a Steam installation for the current user", nil)
}

//go:build !windows

package steamfiles

import "os"

// appDataDirs returns the user's AppData directories, which only exist
// off-Windows if the environment provides them (eg. under Wine).
//
func appDataDirs() (localDir, roamingDir string) {
	return os.Getenv("LOCALAPPDATA"), os.Getenv("APPDATA")
}

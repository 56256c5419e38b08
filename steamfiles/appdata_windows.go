package steamfiles

import (
	"os"

	"golang.org/x/sys/windows"
)

// appDataDirs returns the user's local and roaming AppData directories,
// preferring the shell's known-folder record over environment variables.
//
func appDataDirs() (localDir, roamingDir string) {
	localDir, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0)
	if err != nil {
		localDir = os.Getenv("LOCALAPPDATA")
	}
	roamingDir, err = windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, 0)
	if err != nil {
		roamingDir = os.Getenv("APPDATA")
	}
	return localDir, roamingDir
}

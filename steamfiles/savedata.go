// Functions for locating an installed app's files and save data.

package steamfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stafel/steamlocate/acf"
)

/*--------------------------- GameInstallPath --------------------------------*/

// GameInstallPath returns the directory an app's files are installed
// under: <library>/steamapps/common/<installdir>, with the library and
// installdir taken from libraryfolders.vdf and the app's manifest.
//
func GameInstallPath(appNum AppNum) (string, error) {
	steamDir, err := FindSteamHome()
	if err != nil {
		return "", err
	}
	return gameInstallPath(steamDir, appNum)
}

// gameInstallPath does the work of GameInstallPath for a given Steam home,
// so tests can point it at a fabricated one.
//
func gameInstallPath(steamDir string, appNum AppNum) (string, error) {
	basePath, installDir, err := appBaseAndInstallDir(steamDir, appNum)
	if err != nil {
		return "", err
	}
	installsDir := filepath.Join(basePath, "steamapps", "common")
	appDir := filepath.Join(installsDir, installDir)
	if _, err := os.Stat(appDir); err != nil && os.IsNotExist(err) {
		// Some DLC manifests carry a wrongly-cased "installdir"
		// (eg. "x3 terran conflict" for "X3 Terran Conflict"),
		// which matters on case-sensitive file systems.
		if fixed, err := findIgnoringCase(installsDir, installDir); err == nil {
			return fixed, nil
		}
	}
	return appDir, nil
}

// findIgnoringCase looks in dirPath for an entry equal to wrongName up to
// letter case.
//
func findIgnoringCase(dirPath, wrongName string) (string, error) {
	dh, err := os.Open(dirPath)
	if err != nil {
		return "", cannot("open", "directory", dirPath, err)
	}
	names, err := dh.Readdirnames(-1)
	dh.Close()
	if err != nil {
		return "", cannot("read", "directory", dirPath, err)
	}

	for _, n := range names {
		if strings.EqualFold(n, wrongName) {
			return filepath.Join(dirPath, n), nil
		}
	}
	return "", cannot("find app, even ignoring case", "",
		filepath.Join(dirPath, wrongName), os.ErrNotExist)
}

/*--------------------------- GameSaveDataPath -------------------------------*/

// GameSaveDataPath returns the directory an app keeps its save data in.
//
// It probes the app's Proton compatibility prefix first and the user's
// native AppData directories second, returning the first directory that
// exists.  installDirOverride replaces the manifest's "installdir" as the
// searched folder name, for apps whose manifests carry wrong data; pass ""
// to use the manifest value.
//
// It fails with a *NotFoundError if no candidate directory exists.
//
func GameSaveDataPath(appNum AppNum, installDirOverride string) (string, error) {
	steamDir, err := FindSteamHome()
	if err != nil {
		return "", err
	}
	return gameSaveDataPath(steamDir, appNum, installDirOverride)
}

// gameSaveDataPath does the work of GameSaveDataPath for a given Steam
// home.
//
func gameSaveDataPath(steamDir string, appNum AppNum, installDirOverride string,
) (string, error) {
	basePath, installDir, err := appBaseAndInstallDir(steamDir, appNum)
	if err != nil {
		return "", err
	}
	if installDirOverride != "" {
		installDir = installDirOverride
	}

	for _, candidate := range saveDataCandidates(basePath, appNum, installDir) {
		if p, err := DirectoryExists(candidate); err == nil {
			return p, nil
		}
	}
	return "", cannotFind(
		fmt.Sprintf("save data for app %d (%q)", appNum, installDir), nil)
}

// saveDataCandidates lists the directories a Windows game's save data can
// live in, most specific first: the app's Proton prefix, then the user's
// own AppData directories.
//
func saveDataCandidates(basePath string, appNum AppNum, installDir string,
) []string {
	prefixAppData := filepath.Join(basePath, "steamapps", "compatdata",
		strconv.Itoa(int(appNum)),
		"pfx", "drive_c", "users", "steamuser", "AppData")
	candidates := []string{
		filepath.Join(prefixAppData, "Local", installDir),
		filepath.Join(prefixAppData, "LocalLow", installDir),
	}

	localDir, roamingDir := appDataDirs()
	if localDir != "" {
		candidates = append(candidates,
			filepath.Join(localDir, installDir))
	}
	if roamingDir != "" {
		candidates = append(candidates,
			filepath.Join(roamingDir, installDir))
	}
	if localDir != "" {
		// "LocalLow" has no environment variable of its own; it is
		// a sibling of "Local".
		candidates = append(candidates,
			filepath.Join(filepath.Dir(localDir), "LocalLow", installDir))
	}
	return candidates
}

/*--------------------------- Shared plumbing --------------------------------*/

// appBaseAndInstallDir finds the library folder an app is installed in and
// the app's "installdir" from its manifest there.
//
func appBaseAndInstallDir(steamDir string, appNum AppNum) (string, string, error) {
	libraryFoldersFilePath :=
		filepath.Join(steamDir, "steamapps", "libraryfolders.vdf")
	libraryFoldersInfo, err :=
		acf.FromFile(libraryFoldersFilePath, "libraryfolders")
	if err != nil {
		return "", "", err
	}
	basePath, err :=
		GameBasePath(libraryFoldersInfo.Root, strconv.Itoa(int(appNum)))
	if err != nil {
		return "", "", err
	}

	mfPath := filepath.Join(basePath, "steamapps",
		fmt.Sprintf("appmanifest_%d.acf", appNum))
	mfInfo, err := acf.FromFile(mfPath, "AppState")
	if err != nil {
		return "", "", err
	}
	installDir, err := ManifestField(mfInfo.Root, "installdir")
	if err != nil {
		return "", "", cannot(`get "installdir" from`, "", mfPath, err)
	}
	return basePath, installDir, nil
}

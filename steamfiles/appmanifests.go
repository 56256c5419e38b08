// Functions etc for scanning appmanifest_<AppNum>.acf files.

package steamfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/stafel/steamlocate/acf"
)

/*--------------------------- ManifestField ----------------------------------*/

// ManifestField returns one field of a parsed appmanifest tree, such as
// "name", "appid" or "installdir".
//
// It fails with a *acf.SchemaError if the tree has no "AppState" root
// block, and with a *NotFoundError if the field is absent.
//
func ManifestField(manifestTree acf.Block, field string) (string, error) {
	state, err := manifestTree.BlockAt("AppState")
	if err != nil {
		return "", &acf.SchemaError{ExpectedRootKeys: []string{"AppState"}}
	}
	if _, haveField := state.Get(field); !haveField {
		return "", cannotFind(
			fmt.Sprintf("field %q in app manifest", field), nil)
	}
	return state.Lookup(field)
}

/*--------------------------- Scanning manifests -----------------------------*/

// An InstalledApp value holds details of a Steam app as found on a local
// file system, taken from its appmanifest_<N>.acf file.
//
// If ScanSteamLibDir is used on multiple Steam library folders with the
// same map, it may find the same app installed multiple times.  In that
// case, ScanSteamLibDir uses the most recent appmanifest_<AppNum>.acf file
// it finds, and ensures that .LibraryFolders[0] is the directory holding
// that file.
//
type InstalledApp struct {
	AppNumber      AppNum    // The app's identifier
	AppName        string    // The app's name
	LibraryFolders []string  // Which Steam library folders the app was found in
	InstallDir     string    // Its files go in/under <LibraryDir>/common/<InstallDir>
	ModTime        time.Time // When the manifest file was last modified
}

// ScanSteamLibDir adds InstalledApp values to a map indexed by AppNum.
//
type InstalledAppForAppNum map[AppNum]*InstalledApp

// An OldManifestReporter is a callback for reporting multiple manifests
// for the same app.
//
// If ScanSteamLibDir finds more than one manifest for an app (eg., if a
// caller scans multiple Steam library folders), it uses the most recently
// modified file, and calls the OldManifestReporter, passing in the
// previous InstalledApp value, the value just extracted from the manifest
// and a flag saying whether it will use the latter.
//
type OldManifestReporter func(prev, curr *InstalledApp, usingCurr bool)

// ScanSteamLibDir finds and parses all the appmanifest_<app#>.acf files in
// a Steam library directory, and records them in a caller-supplied map.
//
// If handleDiff is nil, ScanSteamLibDir will handle duplicate manifests by
// silently using the most recent one.
//
func ScanSteamLibDir(
	libPath string, theMap InstalledAppForAppNum, handleDiff OldManifestReporter,
) error {
	if handleDiff == nil {
		handleDiff = ignoreDiff
	}
	dh, err := os.Open(libPath)
	if err != nil {
		return cannot("open", "Steam library folder", libPath, err)
	}

	allNames, err := dh.Readdirnames(-1)
	dh.Close()
	if err != nil {
		return cannot("read", "directory", libPath, err)
	}

	for _, n := range allNames {
		match := reManifestFile.FindStringSubmatch(n)
		if match == nil {
			continue
		}
		currInfo, err := parseManifest(filepath.Join(libPath, n))
		if err != nil {
			return err
		}
		appNum := currInfo.AppNumber
		if strconv.Itoa(int(appNum)) != match[1] {
			return fileError(n, "appid",
				"wrong appid %d for file name", appNum)
		}
		currInfo.LibraryFolders = []string{libPath}

		prev, havePrev := theMap[appNum]
		if havePrev {
			usingCurr := !currInfo.ModTime.Before(prev.ModTime)
			handleDiff(prev, currInfo, usingCurr)
			if usingCurr {
				currInfo.LibraryFolders = append(
					[]string{libPath}, prev.LibraryFolders...)
			} else {
				prev.LibraryFolders =
					append(prev.LibraryFolders, libPath)
				currInfo = prev
			}
		}
		theMap[appNum] = currInfo
	}
	return nil
}

// ignoreDiff is the default OldManifestReporter.
//
func ignoreDiff(prev, curr *InstalledApp, usingCurr bool) {}

var reManifestFile = regexp.MustCompile(`^appmanifest_(\d+)\.acf$`)

// parseManifest carefully (ie., with lots of checking) extracts details
// from an appmanifest_<app#>.acf file.
//
func parseManifest(mfPath string) (*InstalledApp, error) {
	mfInfo, err := acf.FromFile(mfPath, "AppState")
	if err != nil {
		return nil, err
	}

	idText, err := ManifestField(mfInfo.Root, "appid")
	if err != nil {
		return nil, cannot("get app ID from", "", mfPath, err)
	}
	appNum, err := parseAppNum(idText, mfPath)
	if err != nil {
		return nil, err
	}

	appName, err := ManifestField(mfInfo.Root, "name")
	if err != nil {
		return nil, cannot("get app name from", "", mfPath, err)
	}

	installDir, err := ManifestField(mfInfo.Root, "installdir")
	if err != nil {
		return nil, cannot(`get "installdir" from`, "", mfPath, err)
	}

	return &InstalledApp{
		AppNumber: appNum,
		AppName:   appName,
		// .LibraryFolders is set by the caller, ScanSteamLibDir.
		InstallDir: installDir,
		ModTime:    mfInfo.ModTime}, nil
}

/*--------------------------- Whole-installation scans -----------------------*/

// InstalledApps finds every installed app in every Steam library folder of
// the current user's Steam installation.
//
func InstalledApps(reportBadSLF BadSteamLibraryDirReporter,
) (InstalledAppForAppNum, error) {
	_, libraryDirs, err := FindSteamLibraryDirs(reportBadSLF)
	if err != nil {
		return nil, err
	}
	theMap := make(InstalledAppForAppNum)
	for _, libDir := range libraryDirs {
		if err := ScanSteamLibDir(libDir, theMap, nil); err != nil {
			return nil, err
		}
	}
	return theMap, nil
}

// AppNumForName searches the manifests of every installed app for one
// whose name is exactly the given string, and returns its app ID.
//
// It fails with a *NotFoundError if no installed app has that name.
//
func AppNumForName(gameName string) (AppNum, error) {
	theMap, err := InstalledApps(nil)
	if err != nil {
		return 0, err
	}
	for appNum, app := range theMap {
		if app.AppName == gameName {
			return appNum, nil
		}
	}
	return 0, cannotFind(
		fmt.Sprintf("an installed Steam app named %q", gameName), nil)
}

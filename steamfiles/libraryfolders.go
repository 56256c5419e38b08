package steamfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/stafel/steamlocate/acf"
)

var notFoundErr = fmt.Errorf("no such entry")
var notADirErr = syscall.ENOTDIR

/*--------------------------- Tree accessors ---------------------------------*/

// InstalledAppIDs returns, for each library entry in a parsed
// libraryfolders.vdf tree, the (sorted) app IDs installed there, indexed
// by the entry's number.
//
// It fails with a *acf.SchemaError if the tree has no "libraryfolders"
// root block.  Library entries without an "apps" block are skipped, as
// are stray string entries.
//
func InstalledAppIDs(libraryTree acf.Block) (map[string][]string, error) {
	folders, err := libraryTree.BlockAt("libraryfolders")
	if err != nil {
		return nil, &acf.SchemaError{ExpectedRootKeys: []string{"libraryfolders"}}
	}
	ret := make(map[string][]string, len(folders))
	for _, index := range folders.Names() {
		apps, err := folders.BlockAt(index, "apps")
		if err != nil {
			continue
		}
		ret[index] = apps.Names()
	}
	return ret, nil
}

// GameBasePath scans each library entry of a parsed libraryfolders.vdf
// tree for the given app ID and returns the "path" of the library that
// has it installed.
//
// It fails with a *acf.SchemaError if the tree has no "libraryfolders"
// root block, and with a *NotFoundError if no library contains the app.
//
func GameBasePath(libraryTree acf.Block, appID string) (string, error) {
	folders, err := libraryTree.BlockAt("libraryfolders")
	if err != nil {
		return "", &acf.SchemaError{ExpectedRootKeys: []string{"libraryfolders"}}
	}
	for _, index := range folders.Names() {
		apps, err := folders.BlockAt(index, "apps")
		if err != nil {
			continue
		}
		if _, installedHere := apps.Get(appID); !installedHere {
			continue
		}
		return folders.Lookup(index, "path")
	}
	return "", cannotFind(
		fmt.Sprintf("a Steam library containing app %s", appID), nil)
}

/*--------------------------- FindSteamHome ----------------------------------*/

// FindSteamHome returns the directory where Steam is installed for the
// current user (or an error).  The lookup is system-dependent: candidate
// directories under $HOME on Linux, the registry on Windows.
//
func FindSteamHome() (string, error) {
	return findSteamHome()
}

/*--------------------------- FindSteamLibraryDirs ---------------------------*/

// A BadSteamLibraryDirReporter is a callback that FindSteamLibraryDirs can
// use to report that a Steam Library Folder is not valid, a situation that
// is unlikely but not impossible.
//
type BadSteamLibraryDirReporter func(slfDir string, err error)

// FindSteamLibraryDirs returns (1) the user's Steam installation directory
// plus (2) a list of Steam's library directories, or (3) an error.
// (Directories are returned as pathnames in the local OS's syntax.)
//
// The list it returns contains the pathnames of the "steamapps" directory
// in each Steam Library Folder, not those of the Steam Library Folders
// themselves.
//
// Callers can supply a callback to report any invalid SLF; the default is
// to silently ignore them.
//
func FindSteamLibraryDirs(reportBadSLF BadSteamLibraryDirReporter,
) (string, []string, error) {
	steamDir, err := FindSteamHome()
	if err != nil {
		return "", nil, err
	}
	libraryDirs, err := findLibraryDirsUnder(steamDir, reportBadSLF)
	if err != nil {
		return steamDir, nil, err
	}
	return steamDir, libraryDirs, nil
}

// findLibraryDirsUnder does the work of FindSteamLibraryDirs for a given
// Steam home, so tests can point it at a fabricated one.
//
func findLibraryDirsUnder(steamDir string, reportBadSLF BadSteamLibraryDirReporter,
) ([]string, error) {
	homeLibDir := filepath.Join(steamDir, "steamapps")
	libraryFoldersFilePath := filepath.Join(homeLibDir, "libraryfolders.vdf")
	libraryFoldersInfo, err :=
		acf.FromFile(libraryFoldersFilePath, "libraryfolders")
	if err != nil {
		return nil, cannotFind("Steam library folders", err)
	}
	folders, err := libraryFoldersInfo.Root.BlockAt("libraryfolders")
	if err != nil {
		return nil, cannotFind("Steam library folders", err)
	}

	libraryDirs := make([]string, 0, len(folders))
	for _, index := range folders.Names() {
		slf, err := folders.Lookup(index, "path")
		if err != nil {
			continue
		}
		p, err := DirectoryExists(slf, "steamapps")
		if err != nil {
			if reportBadSLF != nil {
				reportBadSLF(slf, err)
			}
			continue
		}
		libraryDirs = append(libraryDirs, p)
	}
	if len(libraryDirs) == 0 {
		// A libraryfolders.vdf with no usable entries; the home
		// library itself is still there.
		libraryDirs = append(libraryDirs, homeLibDir)
	}
	return libraryDirs, nil
}

//
/*----------------------------- DirectoryExists ------------------------------*/
//

// DirectoryExists is used in this package, and is useful for callers of
// FindSteamLibraryDirs.
//

// DirectoryExists reports whether a directory exists.  The directory is
// specified as a base B (which probably should be an absolute path) plus
// zero or more child names C[i].  The function checks that B, B/C[0],
// B/C[0]/C[1], etc are directories.  (It follows any symbolic links.)  If
// so, it returns the pathname B/C[0]/C[1]/…/C[n] (in the target system's
// syntax, of course).  If not, it returns an empty string and an error.
//
func DirectoryExists(base string, childNames ...string) (string, error) {
	p := base
	for i := -1; i < len(childNames); i++ {
		if i >= 0 {
			p = filepath.Join(p, childNames[i])
		}
		nodeinfo, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				return "", cannot("find", "", p, notFoundErr)
			}
			return "", cannot("examine", "directory", p, err)
		}
		if !nodeinfo.IsDir() {
			return "", cannot("lookup in", "", p, notADirErr)
		}
	}
	return p, nil
}

// Package steamfiles locates locally-installed Steam apps and their data.
//
// It finds the current user's Steam installation, reads the metadata files
// Steam keeps there (parsed by this module's sibling package acf), and
// answers questions like "where is app 881100 installed?" and "where does
// it keep its save data?".
//
//
// Steam Library Folders
//
// Steam can use multiple "Steam Library Folders".  (Many users prefer to
// keep their installed Steam games on separate partitions, allowing them
// to reinstall or replace their OS without having to reinstall their
// games.)
//
// Each Steam Library Folder has a subdirectory named "steamapps", which
// holds (among other things) the manifests and files for the apps
// installed there.  Steam keeps its list of SLFs in a text file at
//	<steam-home>/steamapps/libraryfolders.vdf
// whose root block "libraryfolders" maps a number to each library entry;
// each entry records the library's "path" and an "apps" block whose names
// are the app IDs installed there.
//
//
// Installed Apps
//
// Each app installed in a Steam Library Folder has a text file at
//	<SLF>/steamapps/appmanifest_<AppNum>.acf
// where <AppNum> is the (decimal form of) Steam's numeric identifier for
// that app.  A manifest's root block is "AppState"; it specifies (among
// other things) the app's proper name and its "installdir", where
//	<SLF>/steamapps/common/<installdir>
// is the (root of the) directory tree holding all the app's files.
//
//
// Save Data
//
// Windows games keep their save data under the user's AppData directory.
// When a game runs on Linux through Proton, that directory lives inside
// the app's compatibility prefix at
//	<SLF>/steamapps/compatdata/<AppNum>/pfx/drive_c/users/steamuser/AppData
// GameSaveDataPath probes the prefix first and the native AppData
// directories second.
//
//
// Login Users
//
// Steam records its known accounts in <steam-home>/config/loginusers.vdf,
// whose root block "users" maps a numeric Steam ID to each account's
// details ("AccountName", "PersonaName", "MostRecent", ...).
//
package steamfiles // import "github.com/stafel/steamlocate/steamfiles"

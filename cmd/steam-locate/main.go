package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/stafel/steamlocate/steamfiles"
)

/*=================================== CLI ====================================*/

const VERSION = "0.1"

const USAGE = `Usage:
  steam-locate installed [-v]
  steam-locate path <app>
  steam-locate savedata [-i=<installdir>] <app>
  steam-locate user [-a]
  steam-locate (-h | --help  |  --version)

Locate installed Steam apps and their data on the local machine.
<app> is a numeric Steam app ID, or the exact name of an installed app
(which triggers a scan of every manifest in every library folder).

Options:
  -a, --account    Report the login user's account name, not the persona name
  -i=<installdir>  Override the install directory name from the app's manifest
  -v, --verbose    Report Steam library folders that cannot be used
`

func main() {
	parsedArgs, err :=
		docopt.ParseArgs(USAGE, os.Args[1:], VERSION)
	DieIf2(err, "BUG", "docopt failed: %s", err)

	// docopt records an option that has a long form under the long
	// name only, so that is what we must query.
	switch {
	case optSpecified("installed", parsedArgs):
		listInstalled(optSpecified("--verbose", parsedArgs))
	case optSpecified("path", parsedArgs):
		showInstallPath(getArg("<app>", parsedArgs))
	case optSpecified("savedata", parsedArgs):
		showSaveDataPath(getArg("<app>", parsedArgs),
			getArgMaybe("-i", parsedArgs))
	case optSpecified("user", parsedArgs):
		showLoginUser(optSpecified("--account", parsedArgs))
	}
}

func optSpecified(key string, parsedArgs docopt.Opts) bool {
	val, err := parsedArgs.Bool(key)
	if err != nil {
		Die2("BUG", "no key %q in docopt result %+#v", key, parsedArgs)
	}
	return val
}

func getArg(key string, parsedArgs docopt.Opts) string {
	val, err := parsedArgs.String(key)
	if err != nil {
		Die2("BUG", "no key %q in docopt result %+#v", key, parsedArgs)
	}
	return val
}

func getArgMaybe(key string, parsedArgs docopt.Opts) string {
	argsItem, haveItem := parsedArgs[key]
	if !haveItem {
		Die2("BUG", "no key %q in docopt result %+#v", key, parsedArgs)
	}
	if argsItem == nil {
		return ""
	}
	text, haveString := argsItem.(string)
	if !haveString {
		Die2("BUG", "weird value %#v for %q in docopt result", argsItem, key)
	}
	return text
}

/*=============================== Subcommands ================================*/

func listInstalled(verbose bool) {
	var reporter steamfiles.BadSteamLibraryDirReporter
	if verbose {
		reporter = func(slfDir string, err error) {
			Warn("skipping library folder %q: %s", slfDir, err)
		}
	}
	theMap, err := steamfiles.InstalledApps(reporter)
	DieIf(err, "")

	apps := make([]*steamfiles.InstalledApp, 0, len(theMap))
	for _, app := range theMap {
		apps = append(apps, app)
	}
	sort.Slice(apps,
		func(i, j int) bool {
			return apps[i].AppName < apps[j].AppName
		})

	for _, app := range apps {
		fmt.Printf("%8d %s\n", app.AppNumber, app.AppName)
	}
}

func showInstallPath(appArg string) {
	p, err := steamfiles.GameInstallPath(resolveApp(appArg))
	DieIf(err, "")
	fmt.Println(p)
}

func showSaveDataPath(appArg, installDirOverride string) {
	p, err := steamfiles.GameSaveDataPath(resolveApp(appArg), installDirOverride)
	DieIf(err, "")
	fmt.Println(p)
}

func showLoginUser(wantAccountName bool) {
	var name string
	var err error
	if wantAccountName {
		name, err = steamfiles.AccountName()
	} else {
		name, err = steamfiles.PersonaName()
	}
	DieIf(err, "")
	fmt.Println(name)
}

// resolveApp turns the <app> argument into an AppNum: directly for a
// decimal number, via a manifest scan for an app name.
//
func resolveApp(appArg string) steamfiles.AppNum {
	if n, err := strconv.Atoi(appArg); err == nil {
		if n <= 0 {
			Die("app ID %d!?", n)
		}
		return steamfiles.AppNum(n)
	}
	appNum, err := steamfiles.AppNumForName(appArg)
	DieIf(err, "")
	return appNum
}

package steamfiles

import (
	"golang.org/x/sys/windows/registry"
)

// findSteamHome is the system-dependent function that FindSteamHome is a
// wrapper for.
//
// On Windows, the Steam installer records its location in the registry.
// The key lives under Wow6432Node on 64-bit systems (Steam is a 32-bit
// program); we check the plain key as a fallback.
//
func findSteamHome() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Wow6432Node\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		key, err = registry.OpenKey(registry.LOCAL_MACHINE,
			`SOFTWARE\Valve\Steam`, registry.QUERY_VALUE)
		if err != nil {
			return "", cannotFind("Steam registry key", err)
		}
	}
	defer key.Close()

	installPath, _, err := key.GetStringValue("InstallPath")
	if err != nil {
		return "", cannotFind(`"InstallPath" in Steam registry key`, err)
	}
	return installPath, nil
}

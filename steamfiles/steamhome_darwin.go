package steamfiles

// findSteamHome is the system-dependent function that FindSteamHome is a
// wrapper for.
//
// macOS is not supported (yet); Steam's metadata files there follow the
// same format, but nobody has needed the lookup.
//
func findSteamHome() (string, error) {
	return "", cannotFind("a Steam installation (macOS is not supported)", nil)
}

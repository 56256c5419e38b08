// Functions for reading config/loginusers.vdf.

package steamfiles

import (
	"fmt"
	"path/filepath"

	"github.com/stafel/steamlocate/acf"
)

// LoginUser returns one field ("PersonaName", "AccountName", ...) of the
// current Steam login user's record in loginusers.vdf.
//
// The file can record several accounts; the one marked "MostRecent" wins,
// falling back to the first record.
//
func LoginUser(field string) (string, error) {
	steamDir, err := FindSteamHome()
	if err != nil {
		return "", err
	}
	loginPath := filepath.Join(steamDir, "config", "loginusers.vdf")
	loginInfo, err := acf.FromFile(loginPath, "users")
	if err != nil {
		return "", err
	}
	return loginUserField(loginInfo.Root, field)
}

// loginUserField does the work of LoginUser on an already-parsed tree.
//
func loginUserField(usersTree acf.Block, field string) (string, error) {
	users, err := usersTree.BlockAt("users")
	if err != nil {
		return "", &acf.SchemaError{ExpectedRootKeys: []string{"users"}}
	}
	steamIDs := users.Names()
	if len(steamIDs) == 0 {
		return "", cannotFind("any user in loginusers.vdf", nil)
	}

	chosen := steamIDs[0]
	for _, id := range steamIDs {
		if flag, err := users.Lookup(id, "MostRecent"); err == nil && flag == "1" {
			chosen = id
			break
		}
	}
	value, err := users.Lookup(chosen, field)
	if err != nil {
		return "", cannotFind(
			fmt.Sprintf("field %q for login user %s", field, chosen), err)
	}
	return value, nil
}

// PersonaName returns the (currently displayed) name of the latest Steam
// account.
func PersonaName() (string, error) {
	return LoginUser("PersonaName")
}

// AccountName returns the name the latest Steam account was created with.
func AccountName() (string, error) {
	return LoginUser("AccountName")
}

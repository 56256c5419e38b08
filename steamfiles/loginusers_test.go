package steamfiles

import (
	"errors"
	"testing"

	"github.com/stafel/steamlocate/acf"
)

const loginUsersText = `"users"
{
	"76561197990000001"
	{
		"AccountName"		"oldaccount"
		"PersonaName"		"Old Persona"
		"RememberPassword"	"1"
		"MostRecent"		"0"
	}
	"76561197990000002"
	{
		"AccountName"		"rafael"
		"PersonaName"		"Rafael S"
		"RememberPassword"	"1"
		"MostRecent"		"1"
	}
}
`

func TestLoginUserField(t *testing.T) {
	tree := parseTree(t, loginUsersText)

	for field, want := range map[string]string{
		"AccountName": "rafael",
		"PersonaName": "Rafael S",
	} {
		got, err := loginUserField(tree, field)
		if err != nil {
			t.Errorf("loginUserField(tree, %q) failed: %v", field, err)
		} else if got != want {
			t.Errorf("loginUserField(tree, %q) = %q, want %q",
				field, got, want)
		}
	}
}

func TestLoginUserFieldNoMostRecent(t *testing.T) {
	tree := parseTree(t, `
		"users"
		{
			"76561197990000001"
			{
				"AccountName"	"onlyaccount"
			}
		}
	`)

	got, err := loginUserField(tree, "AccountName")
	if err != nil {
		t.Fatalf("loginUserField failed: %v", err)
	}
	if got != "onlyaccount" {
		t.Errorf("got %q, want %q", got, "onlyaccount")
	}
}

func TestLoginUserFieldMissing(t *testing.T) {
	tree := parseTree(t, loginUsersText)

	_, err := loginUserField(tree, "NoSuchField")
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("got %T (%v), want *NotFoundError", err, err)
	}
}

func TestLoginUserFieldWrongSchema(t *testing.T) {
	tree := parseTree(t, `"AppState" { "appid" "881100" }`)

	_, err := loginUserField(tree, "AccountName")
	var schemaErr *acf.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got %T (%v), want *acf.SchemaError", err, err)
	}
}

func TestLoginUserFieldNoUsers(t *testing.T) {
	tree := parseTree(t, `"users" { }`)

	_, err := loginUserField(tree, "AccountName")
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("got %T (%v), want *NotFoundError", err, err)
	}
}

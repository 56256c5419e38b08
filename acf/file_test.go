package acf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const manifestText = `"AppState"
{
	"appid"		"881100"
	"name"		"Noita"
	"StateFlags"	"4"
	"installdir"	"Noita"
}
`

func writeTestFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0666); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}

func TestFromFile(t *testing.T) {
	path := writeTestFile(t, "appmanifest_881100.acf", manifestText)

	f, err := FromFile(path, "AppState")
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if f.Path != path {
		t.Errorf("f.Path = %q, want %q", f.Path, path)
	}
	if f.Size != int64(len(manifestText)) {
		t.Errorf("f.Size = %d, want %d", f.Size, len(manifestText))
	}
	if got, err := f.Lookup("AppState", "name"); err != nil || got != "Noita" {
		t.Errorf(`Lookup("AppState", "name") = %q, %v; want "Noita"`, got, err)
	}
	if !f.HaveString("AppState", "installdir") {
		t.Error(`HaveString("AppState", "installdir") = false, want true`)
	}
}

func TestFromFileWrongRootName(t *testing.T) {
	path := writeTestFile(t, "appmanifest_881100.acf", manifestText)

	_, err := FromFile(path, "libraryfolders")
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got %T (%v), want *SchemaError", err, err)
	}
	if schemaErr.Path != path {
		t.Errorf("schemaErr.Path = %q, want %q", schemaErr.Path, path)
	}
}

func TestFromFileAlternateRootNames(t *testing.T) {
	path := writeTestFile(t, "sku.sis", `"sku" { "name" "Noita" }`)

	if _, err := FromFile(path, "SKU", "sku"); err != nil {
		t.Errorf("FromFile with alternate root names failed: %v", err)
	}
}

func TestFromFileMalformed(t *testing.T) {
	path := writeTestFile(t, "broken.acf", `"AppState" { "appid" }`)

	_, err := FromFile(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %T (%v), want a wrapped *ParseError", err, err)
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "no-such-file.acf"))
	var cannotErr *CannotError
	if !errors.As(err, &cannotErr) {
		t.Fatalf("got %T (%v), want *CannotError", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error does not unwrap to os.ErrNotExist: %v", err)
	}
}

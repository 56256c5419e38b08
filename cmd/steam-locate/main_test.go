package main

import (
	"testing"

	"github.com/docopt/docopt-go"
)

// Every key that main() queries must exist in the docopt result for the
// subcommand that uses it; an option declared with a long form is stored
// under the long name only.
func TestUsageKeys(t *testing.T) {
	for _, tc := range []struct {
		name     string
		argv     []string
		boolKeys []string
	}{
		{"installed", []string{"installed"},
			[]string{"installed", "--verbose"}},
		{"installed verbose", []string{"installed", "-v"},
			[]string{"installed", "--verbose"}},
		{"path", []string{"path", "881100"},
			[]string{"path"}},
		{"savedata", []string{"savedata", "-i=Noita", "881100"},
			[]string{"savedata"}},
		{"user", []string{"user", "-a"},
			[]string{"user", "--account"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			parsedArgs, err := docopt.ParseArgs(USAGE, tc.argv, "")
			if err != nil {
				t.Fatalf("docopt rejected %v: %v", tc.argv, err)
			}
			for _, key := range tc.boolKeys {
				if _, err := parsedArgs.Bool(key); err != nil {
					t.Errorf("no key %q in docopt result for %v",
						key, tc.argv)
				}
			}
		})
	}
}

func TestUsageFlagValues(t *testing.T) {
	parsedArgs, err := docopt.ParseArgs(USAGE,
		[]string{"installed", "-v"}, "")
	if err != nil {
		t.Fatalf("docopt rejected argv: %v", err)
	}
	if verbose, err := parsedArgs.Bool("--verbose"); err != nil || !verbose {
		t.Errorf(`Bool("--verbose") = %v, %v; want true`, verbose, err)
	}

	parsedArgs, err = docopt.ParseArgs(USAGE,
		[]string{"savedata", "-i=Noita", "881100"}, "")
	if err != nil {
		t.Fatalf("docopt rejected argv: %v", err)
	}
	if app, err := parsedArgs.String("<app>"); err != nil || app != "881100" {
		t.Errorf(`String("<app>") = %q, %v; want "881100"`, app, err)
	}
	if installDir := getArgMaybe("-i", parsedArgs); installDir != "Noita" {
		t.Errorf(`getArgMaybe("-i") = %q, want "Noita"`, installDir)
	}

	parsedArgs, err = docopt.ParseArgs(USAGE,
		[]string{"savedata", "881100"}, "")
	if err != nil {
		t.Fatalf("docopt rejected argv: %v", err)
	}
	if installDir := getArgMaybe("-i", parsedArgs); installDir != "" {
		t.Errorf(`getArgMaybe("-i") = %q, want ""`, installDir)
	}

	parsedArgs, err = docopt.ParseArgs(USAGE,
		[]string{"user", "--account"}, "")
	if err != nil {
		t.Fatalf("docopt rejected argv: %v", err)
	}
	if account, err := parsedArgs.Bool("--account"); err != nil || !account {
		t.Errorf(`Bool("--account") = %v, %v; want true`, account, err)
	}
}

package acf

import (
	"fmt"
	"strings"
)

/*=========================== Tree-walking errors ============================*/

// An IsStringError reports that a name on a lookup path led to a string
// value where a nested Block was needed.
type IsStringError struct {
	NamePath []string
	String   string
}

// A NotStringError reports that the final name of a lookup path led to a
// nested Block where a string value was needed.
type NotStringError struct {
	NamePath []string
	Block    Block
}

// An UnknownNameError reports that a name on a lookup path was absent.
type UnknownNameError struct {
	NamePath []string
}

func (e *IsStringError) Error() string {
	return fmt.Sprintf("name %s has value %q, not a nested block",
		namesPath(e.NamePath), e.String)
}
func (e *NotStringError) Error() string {
	text := "{}"
	if len(e.Block) > 0 {
		for k, v := range e.Block {
			text = fmt.Sprintf("{%q %v", k, v)
			break
		}
		if len(e.Block) > 1 {
			text += " ..."
		}
		text += "}"
	}
	return fmt.Sprintf("name %s has nested block %s, not a string",
		namesPath(e.NamePath), text)
}
func (e *UnknownNameError) Error() string {
	last := len(e.NamePath) - 1
	return fmt.Sprintf("unknown name %q at %s",
		e.NamePath[last], namesPath(e.NamePath[:last]))
}

func namesPath(names []string) string {
	if len(names) == 0 {
		return "(root)"
	}
	text := ""
	for _, n := range names {
		text += fmt.Sprintf("→%q", n)
	}
	return text[len("→"):]
}

/*=============================== SchemaError ================================*/

// A SchemaError reports that a well-formed file does not have the root
// name(s) a caller expected: for example, asking for library folders in
// an app-manifest file.
//
type SchemaError struct {
	Path             string // The file, if known
	ExpectedRootKeys []string
}

func (e *SchemaError) Error() string {
	keys := make([]string, len(e.ExpectedRootKeys))
	for i, k := range e.ExpectedRootKeys {
		keys[i] = fmt.Sprintf("%q", k)
	}
	text := fmt.Sprintf("root name %s not found", strings.Join(keys, " or "))
	if e.Path != "" {
		text += fmt.Sprintf(" in file %q", e.Path)
	}
	return text + ": wrong kind of file?"
}

/*=============================== CannotError ================================*/

type CannotError struct {
	Verb      string
	Noun      string
	QuoteNoun bool
	BaseErr   error
}

func cannot(baseErr error, verb, filespec string) error {
	return &CannotError{
		Verb:      verb,
		Noun:      filespec,
		QuoteNoun: true,
		BaseErr:   baseErr}
}
func (e *CannotError) Error() string {
	noun := e.Noun
	if e.QuoteNoun {
		noun = fmt.Sprintf("%q", noun)
	}
	return fmt.Sprintf("cannot %s %s: %s", e.Verb, noun, e.BaseErr)
}
func (e *CannotError) Unwrap() error {
	return e.BaseErr
}

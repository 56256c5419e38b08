package acf

import (
	"io"
	"os"
	"time"
)

/*==================== Types and Functions for ACF Files =====================*/

// A File represents an ACF/VDF file that has been parsed successfully.
//
// (Note that this package can only parse the all-quoted-strings text
// form of VDF; it cannot parse binary VDF files.)
//
type File struct {
	Path    string    // The (or at least a) path of the file
	ModTime time.Time // When the file was last modified
	Size    int64     // The current size of the file in bytes
	Root    Block     // The document's top-level names and values
}

// FromFile opens, reads and parses an ACF/VDF file.
//
// If any rootNames are given, the file's root block must contain at least
// one of them; otherwise FromFile fails with a *SchemaError.  Callers use
// this to check they were given the right kind of file before trusting
// its contents.
//
func FromFile(filespec string, rootNames ...string) (*File, error) {
	fh, err := os.Open(filespec)
	if err != nil {
		return nil, cannot(err, "open", filespec)
	}
	defer fh.Close()
	fileInfo, err := fh.Stat()
	if err != nil {
		return nil, cannot(err, "examine", filespec)
	}
	data, err := io.ReadAll(fh)
	if err != nil {
		return nil, cannot(err, "read", filespec)
	}

	root, err := Parse(Tokenize(string(data)))
	if err != nil {
		return nil, cannot(err, "parse", filespec)
	}
	if len(rootNames) > 0 {
		found := false
		for _, n := range rootNames {
			if _, ok := root[n]; ok {
				found = true
				break
			}
		}
		if !found {
			return nil, &SchemaError{
				Path:             filespec,
				ExpectedRootKeys: rootNames}
		}
	}

	return &File{
		Path:    filespec,
		ModTime: fileInfo.ModTime(),
		Size:    fileInfo.Size(),
		Root:    root}, nil
}

// Lookup returns the string value, if any, from nested blocks in a parsed
// file; see Block.Lookup.
func (f *File) Lookup(names ...string) (string, error) {
	return f.Root.Lookup(names...)
}

// HaveString reports whether f.Lookup(names...) would succeed.
func (f *File) HaveString(names ...string) bool {
	return f.Root.HaveString(names...)
}

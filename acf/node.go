// Package acf parses the ‘simple Valve Data Format’ text files (ACF/VDF)
// that Steam uses to record its library folders, installed apps and login
// users: double-quoted keys and values, with nested sections delimited by
// curly braces.
package acf

import "sort"

/*======================== Types for Names and Values ========================*/

// A Value is a datum parsed from an ACF/VDF file.
//    Possible actual types:
//	- a string	(a quoted leaf value)
//	- a Block	(a { ... } section)
type Value interface{}

// A Block represents one { ... } section, or the document root, as a
// mapping from names to values.
//
// If a source file repeats a name within one block, the last occurrence
// wins, as with ordinary map assignment.  (Steam is not known to ever
// write such files.)
type Block map[string]Value

// b.Names() returns the names in a Block, sorted into Unicodal order.
func (b Block) Names() []string {
	ret := make([]string, 0, len(b))
	for n := range b {
		ret = append(ret, n)
	}
	sort.Strings(ret)
	return ret
}

// b.Get(n) returns the value, if any, for a name in a Block.
func (b Block) Get(n string) (Value, bool) {
	val, ok := b[n]
	return val, ok
}

/*=============================== Tree walking ===============================*/

// Lookup returns the string value, if any, reached by walking nested
// blocks with the given names.
//
// (That is, it takes the name of an entry in this block, then the name of
// an entry in that entry, and so on.  Hence all the names except the last
// should correspond to nested blocks, and the last to a string value.)
//
func (b Block) Lookup(names ...string) (string, error) {
	var v Value = b
	iLastName := len(names) - 1
	for i := 0; i < iLastName; i++ {
		vv, ok := v.(Block)
		if !ok {
			return "", &IsStringError{
				NamePath: names[:i],
				String:   v.(string)}
		}
		valForName, ok := vv[names[i]]
		if !ok {
			return "", &UnknownNameError{
				NamePath: names[:i+1]}
		}
		v = valForName
	}
	vv, ok := v.(Block)
	if !ok {
		return "", &IsStringError{
			NamePath: names[:iLastName],
			String:   v.(string)}
	}
	valForName, ok := vv[names[iLastName]]
	if !ok {
		return "", &UnknownNameError{
			NamePath: names}
	}
	s, ok := valForName.(string)
	if !ok {
		return "", &NotStringError{
			NamePath: names,
			Block:    valForName.(Block)}
	}
	return s, nil
}

// BlockAt returns the nested Block, if any, reached by walking the given
// names.  With no names it returns b itself.
//
func (b Block) BlockAt(names ...string) (Block, error) {
	v := Value(b)
	for i, n := range names {
		vv, ok := v.(Block)
		if !ok {
			return nil, &IsStringError{
				NamePath: names[:i],
				String:   v.(string)}
		}
		valForName, ok := vv[n]
		if !ok {
			return nil, &UnknownNameError{
				NamePath: names[:i+1]}
		}
		v = valForName
	}
	ret, ok := v.(Block)
	if !ok {
		return nil, &IsStringError{
			NamePath: names,
			String:   v.(string)}
	}
	return ret, nil
}

// HaveString reports whether Lookup would succeed for the given names.
func (b Block) HaveString(names ...string) bool {
	_, err := b.Lookup(names...)
	return err == nil
}

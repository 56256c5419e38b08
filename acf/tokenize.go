package acf

import "strings"

// Tokenize splits raw ACF/VDF file text into whitespace-delimited
// fragments, trimming leading and trailing whitespace first.
//
// A quoted value containing whitespace comes out as several fragments
// (only the first and last carry a quote character); Parse reassembles
// those.  An empty document yields no fragments.
//
func Tokenize(text string) []string {
	return strings.Fields(text)
}

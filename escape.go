// Copyright 2024 The Twitter-Text-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twittertext

import "strings"

// An EscapeMode selects how [Escape] encodes reserved markup characters.
type EscapeMode int

const (
	// EscapeMinimal encodes only the five reserved ASCII characters:
	// & < > " '.
	EscapeMinimal EscapeMode = iota

	// EscapeFull encodes the reserved ASCII characters plus the HTML 4.0
	// Latin-1 named entities (U+00A0 through U+00FF). Runes outside both
	// sets pass through unchanged.
	EscapeFull
)

var minimalEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
)

// Escape encodes reserved markup characters in s. Callers escape once, at
// input time, before extraction or annotation; the library never re-escapes
// whole texts (see [escapeURL] for the single per-token exception).
func Escape(s string, mode EscapeMode) string {
	if mode == EscapeMinimal {
		return minimalEscaper.Replace(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '&':
			b.WriteString("&amp;")
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '"':
			b.WriteString("&quot;")
		case r == '\'':
			b.WriteString("&#39;")
		case r >= 0xa0 && r <= 0xff:
			b.WriteByte('&')
			b.WriteString(latin1Names[r-0xa0])
			b.WriteByte(';')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeURL escapes reserved markup characters in a matched URL immediately
// before wrapping. The URL grammar can capture a literal '&' inside a query
// string even when the whole input was escaped up front, so this guard runs
// in both escaped and raw pipelines, without double-encoding references the
// input pass already produced.
func escapeURL(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			if n := entityLen(s[i:]); n > 0 {
				b.WriteString(s[i : i+n])
				i += n - 1
			} else {
				b.WriteString("&amp;")
			}
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// entityLen returns the length of the character reference at the start of s
// (which begins with '&'), or 0 if s does not look like one. "Looks like"
// means an ampersand, then letters, digits, or '#', then a semicolon, within
// a reasonable length bound.
func entityLen(s string) int {
	const maxRef = 32
	for j := 1; j < len(s) && j <= maxRef; j++ {
		c := s[j]
		if c == ';' {
			if j > 1 {
				return j + 1
			}
			return 0
		}
		if !isLetterDigit(c) && c != '#' {
			return 0
		}
	}
	return 0
}

// latin1Names lists the HTML 4.0 entity names for U+00A0 through U+00FF.
var latin1Names = [96]string{
	"nbsp", "iexcl", "cent", "pound", "curren", "yen", "brvbar", "sect",
	"uml", "copy", "ordf", "laquo", "not", "shy", "reg", "macr",
	"deg", "plusmn", "sup2", "sup3", "acute", "micro", "para", "middot",
	"cedil", "sup1", "ordm", "raquo", "frac14", "frac12", "frac34", "iquest",
	"Agrave", "Aacute", "Acirc", "Atilde", "Auml", "Aring", "AElig", "Ccedil",
	"Egrave", "Eacute", "Ecirc", "Euml", "Igrave", "Iacute", "Icirc", "Iuml",
	"ETH", "Ntilde", "Ograve", "Oacute", "Ocirc", "Otilde", "Ouml", "times",
	"Oslash", "Ugrave", "Uacute", "Ucirc", "Uuml", "Yacute", "THORN", "szlig",
	"agrave", "aacute", "acirc", "atilde", "auml", "aring", "aelig", "ccedil",
	"egrave", "eacute", "ecirc", "euml", "igrave", "iacute", "icirc", "iuml",
	"eth", "ntilde", "ograve", "oacute", "ocirc", "otilde", "ouml", "divide",
	"oslash", "ugrave", "uacute", "ucirc", "uuml", "yacute", "thorn", "yuml",
}

// Copyright 2024 The Twitter-Text-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twittertext

import (
	"strings"
	"unicode/utf8"
)

// scanURLs collects every URL candidate in s.
//
// A candidate is an http:// or https:// scheme (ASCII case-insensitive)
// followed by a valid dotted domain, or, when protocolLess is true, a bare
// valid domain. After the domain, zero or more non-space characters may
// follow, with balanced-paren accounting and trailing-punctuation trimming;
// a bare domain additionally requires that anything following it begin with
// '/', or the match is cut back to the domain itself.
func scanURLs(s string, protocolLess bool) []candidate {
	var out []candidate
	for i := 0; i < len(s); {
		c := s[i]
		if !isLetterDigit(c) {
			i++
			continue
		}
		if !protocolLess && c != 'h' && c != 'H' {
			i++
			continue
		}
		if !precedesURL(prevRune(s, i)) {
			i++
			continue
		}

		scheme := matchScheme(s[i:])
		ds := i + scheme // domain start
		dn, ok := parseDomain(s, ds)
		if !ok {
			if scheme > 0 {
				i += scheme
			} else {
				i++
			}
			continue
		}
		if scheme == 0 && !protocolLess {
			i++
			continue
		}
		domEnd := ds + dn

		// "After a valid domain, zero or more non-space characters may
		// follow." Quotes and angle brackets end the scan: they are markup
		// delimiters in both raw and escaped input.
		j := domEnd
		paren := 0
		for j < len(s) {
			r, n := utf8.DecodeRuneInString(s[j:])
			if isSpaceRune(r) || r == '<' || r == '>' || r == '"' || r == '\'' {
				break
			}
			if r == '(' {
				paren++
			}
			if r == ')' {
				paren--
			}
			j += n
		}

		j = trimURLTail(s, domEnd, j, paren)

		// A bare domain may only carry a path: "example.com$x" or
		// "example.com:8080" would make the domain grammar meaningless,
		// so anything but '/' cuts the match back to the domain.
		if scheme == 0 && j > domEnd && s[domEnd] != '/' {
			j = domEnd
		}

		out = append(out, candidate{
			prio:  prioURL,
			start: i,
			end:   j,
			ent:   &URL{Span: Span{i, j}, URL: s[i:j]},
		})
		i = j
	}
	return out
}

// matchScheme returns the byte length of an http:// or https:// prefix of s,
// matched ASCII case-insensitively, or 0.
func matchScheme(s string) int {
	for _, p := range []string{"https://", "http://"} {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return len(p)
		}
	}
	return 0
}

// parseDomain parses a valid domain at s[i:], returning its byte length and
// whether one was found.
//
// A valid domain is dotted labels of letters, digits, hyphens, and
// underscores, with at least one dot, no underscore in the last two labels,
// and a final label of two or more letters. Trailing dots, hyphens, and
// underscores belong to the surrounding prose, not the domain.
func parseDomain(s string, i int) (int, bool) {
	j := i
	for j < len(s) && (isLDH(s[j]) || s[j] == '_' || s[j] == '.') {
		j++
	}
	for j > i && (s[j-1] == '.' || s[j-1] == '-' || s[j-1] == '_') {
		j--
	}
	if j == i {
		return 0, false
	}

	labels := strings.Split(s[i:j], ".")
	if len(labels) < 2 {
		return 0, false
	}
	for _, l := range labels {
		if l == "" {
			return 0, false
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return 0, false
	}
	for k := 0; k < len(tld); k++ {
		if !isLetter(tld[k]) {
			return 0, false
		}
	}
	if strings.Contains(labels[len(labels)-2], "_") {
		return 0, false
	}
	return j - i, true
}

// trimURLTail trims trailing punctuation from a URL match ending at i
// (exclusive), whose non-domain part starts at start. paren is the count of
// unmatched parentheses inside the match: closing parens beyond the ones
// opened inside the URL belong to the surrounding prose, as in
// "(see example.com/a)".
func trimURLTail(s string, start, i int, paren int) int {
Trim:
	for i > start {
		switch s[i-1] {
		case '?', '!', '.', ',', ':', '@', '_', '~':
			i--
			continue Trim

		case ')':
			if paren < 0 {
				for s[i-1] == ')' && paren < 0 {
					paren++
					i--
				}
				continue Trim
			}

		case ';':
			// Trim a trailing character reference such as &quot; or &#39;
			// left over from input escaping. The '&' may sit at start
			// itself, when the reference directly follows the domain.
			// Either the scan finds the '&' and cuts the whole reference,
			// or trimming stops here; it never re-scans the same bytes.
			for j := i - 2; j >= start; j-- {
				if j < i-2 && s[j] == '&' {
					i = j
					continue Trim
				}
				if !isLetterDigit(s[j]) && s[j] != '#' {
					i--
					break Trim
				}
			}
		}
		break Trim
	}
	return i
}

// Copyright 2024 The Twitter-Text-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twittertext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/rangetable"
)

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isLetterDigit reports whether c is an ASCII letter or digit.
func isLetterDigit(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// isLDH reports whether c is an ASCII letter, digit, or hyphen.
func isLDH(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-'
}

// isWordByte reports whether c is an ASCII word byte: letter, digit, or underscore.
func isWordByte(c byte) bool {
	return isLetterDigit(c) || c == '_'
}

// isSpaceRune reports whether r is whitespace for the purposes of the
// cashtag boundary rule: the ASCII space characters plus Unicode space
// separators.
func isSpaceRune(r rune) bool {
	if r < 0x80 {
		return r == ' ' || r == '\t' || r == '\n' || r == '\v' || r == '\f' || r == '\r'
	}
	return unicode.In(r, unicode.Zs)
}

// Zero-width joiners are permitted inside hashtag bodies; several scripts
// (Devanagari, emoji sequences) need them between word-forming runes.
const (
	zwnj = '‌'
	zwj  = '‍'
)

// hashtagAlpha holds the runes that satisfy the "at least one letter-like
// rune" requirement of a hashtag body: letters and combining marks.
var hashtagAlpha = rangetable.Merge(unicode.L, unicode.M)

// hashtagWord holds every rune a hashtag body may contain, minus the
// underscore and joiner special cases handled in isHashtagRune.
var hashtagWord = rangetable.Merge(unicode.L, unicode.M, unicode.Nd)

// isHashtagRune reports whether r may appear inside a hashtag body.
func isHashtagRune(r rune) bool {
	return r == '_' || r == zwnj || r == zwj || unicode.Is(hashtagWord, r)
}

// isHashtagAlpha reports whether r counts as a letter-like hashtag rune.
// A body consisting only of digits and underscores is not a hashtag.
func isHashtagAlpha(r rune) bool {
	return unicode.Is(hashtagAlpha, r)
}

// hashSigil returns the byte width of the hashtag sigil at s[i:], either '#'
// or the fullwidth '＃', or 0 if there is none.
func hashSigil(s string, i int) int {
	if i >= len(s) {
		return 0
	}
	if s[i] == '#' {
		return 1
	}
	if strings.HasPrefix(s[i:], "＃") {
		return len("＃")
	}
	return 0
}

// atSigil returns the byte width of the mention sigil at s[i:], either '@'
// or the fullwidth '＠', or 0 if there is none.
func atSigil(s string, i int) int {
	if i >= len(s) {
		return 0
	}
	if s[i] == '@' {
		return 1
	}
	if strings.HasPrefix(s[i:], "＠") {
		return len("＠")
	}
	return 0
}

// precedesHashtag reports whether a hashtag sigil may follow r.
// A hashtag may not continue a word, and may not follow '&' (which would
// misread the tail of an entity reference like &#39; as a hashtag).
func precedesHashtag(r rune) bool {
	return r != '&' && !isHashtagRune(r)
}

// precedesMention reports whether a mention sigil may follow r.
// The excluded set keeps mentions from matching the tail of an email-like
// string ("bob@example") or a doubled sigil ("@@user").
func precedesMention(r rune) bool {
	if r < utf8.RuneSelf {
		c := byte(r)
		if isWordByte(c) {
			return false
		}
		switch c {
		case '!', '#', '$', '%', '&', '*', '@':
			return false
		}
		return true
	}
	return r != '＠' && r != '＃'
}

// precedesURL reports whether a URL may start immediately after r.
// URLs must not continue a word and must not follow an entity sigil or a
// directional formatting character.
func precedesURL(r rune) bool {
	if r < utf8.RuneSelf {
		c := byte(r)
		return !isLetterDigit(c) && c != '@' && c != '$' && c != '#'
	}
	if r == '＠' || r == '＃' {
		return false
	}
	return r < 0x202a || r > 0x202e
}

// prevRune returns the rune immediately before byte offset i in s.
// At the start of the text it returns a space, which every boundary rule
// accepts.
func prevRune(s string, i int) rune {
	if i == 0 {
		return ' '
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}

// containsRTL reports whether s contains any right-to-left runes
// (bidirectional classes R and AL). Used only as a styling hint; it never
// affects matching.
func containsRTL(s string) bool {
	for _, r := range s {
		if r < utf8.RuneSelf {
			continue
		}
		p, _ := bidi.LookupRune(r)
		if c := p.Class(); c == bidi.R || c == bidi.AL {
			return true
		}
	}
	return false
}

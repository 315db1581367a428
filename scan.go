// Copyright 2024 The Twitter-Text-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twittertext

import (
	"strings"
	"unicode/utf8"
)

// Kind priorities for overlap resolution: when two candidates start at the
// same offset, the lower priority wins.
const (
	prioURL = iota
	prioHashtag
	prioCashtag
	prioMention
)

// A candidate is a grammar match that has passed its kind's boundary and
// terminator rules but has not yet survived overlap resolution.
//
// start and end are byte offsets of the full match, sigil included; ent's
// Span holds byte offsets of the value text until the extractor converts
// them to codepoint offsets.
type candidate struct {
	prio  int
	start int
	end   int
	ent   Entity
}

// scanHashtags collects every hashtag candidate in s.
//
// A hashtag is '#' or '＃', not preceded by a word rune or '&', followed by
// one or more hashtag runes of which at least one is a letter or mark.
// A match immediately followed by another sigil or by "://" is discarded:
// "#a#b" links nothing, and a sigil glued to a scheme is part of some
// larger fragment we should not touch.
func scanHashtags(s string) []candidate {
	var out []candidate
	for i := 0; i < len(s); {
		sig := hashSigil(s, i)
		if sig == 0 {
			i++
			continue
		}
		if !precedesHashtag(prevRune(s, i)) {
			i += sig
			continue
		}

		j := i + sig
		alpha := false
		for j < len(s) {
			r, n := utf8.DecodeRuneInString(s[j:])
			if !isHashtagRune(r) {
				break
			}
			if isHashtagAlpha(r) {
				alpha = true
			}
			j += n
		}
		if j == i+sig || !alpha {
			i = j
			continue
		}
		if hashSigil(s, j) != 0 || strings.HasPrefix(s[j:], "://") {
			i = j
			continue
		}

		out = append(out, candidate{
			prio:  prioHashtag,
			start: i,
			end:   j,
			ent:   &Hashtag{Span: Span{i + sig, j}, Tag: s[i+sig : j]},
		})
		i = j
	}
	return out
}

// maxCashtagLen bounds the alphanumeric cashtag body ($AAPL, $BRK.A).
const maxCashtagLen = 6

// scanCashtags collects every cashtag candidate in s.
//
// A cashtag is '$' at the start of the text or after whitespace, followed by
// up to six alphanumerics containing at least one letter ("$123" is a price,
// not a symbol), optionally followed by '.' or '_' and one or two letters.
// A match immediately followed by a further alphanumeric is discarded.
func scanCashtags(s string) []candidate {
	var out []candidate
	for i := 0; i < len(s); i++ {
		if s[i] != '$' {
			continue
		}
		if !isSpaceRune(prevRune(s, i)) {
			continue
		}

		j := i + 1
		letters := false
		for j < len(s) && j-(i+1) < maxCashtagLen && isLetterDigit(s[j]) {
			if isLetter(s[j]) {
				letters = true
			}
			j++
		}
		if j == i+1 || !letters {
			continue
		}

		// Optional exchange suffix: '.' or '_' plus one or two letters,
		// itself not glued to further alphanumerics.
		if j < len(s) && (s[j] == '.' || s[j] == '_') && j+1 < len(s) && isLetter(s[j+1]) {
			k := j + 1
			for k < len(s) && k-(j+1) < 2 && isLetter(s[k]) {
				k++
			}
			if k >= len(s) || !isLetterDigit(s[k]) {
				j = k
			}
		}

		if j < len(s) && isLetterDigit(s[j]) {
			i = j
			continue
		}

		out = append(out, candidate{
			prio:  prioCashtag,
			start: i,
			end:   j,
			ent:   &Cashtag{Span: Span{i + 1, j}, Tag: s[i+1 : j]},
		})
		i = j - 1
	}
	return out
}

// Username and list-slug length bounds.
const (
	maxScreenNameLen = 20
	maxListSlugLen   = 25 // leading letter plus up to 24 more
)

// scanMentions collects every mention and mention-with-list candidate in s.
//
// A mention is '@' or '＠', not preceded by a word rune or by one of
// !#$%&*@, followed by 1–20 word bytes, optionally followed by '/', a
// letter, and up to 24 further slug bytes (letters, digits, underscore,
// hyphen). A match immediately followed by another sigil, a word byte, or
// "://" is discarded; that rejects over-long handles and email-like tails.
func scanMentions(s string) []candidate {
	var out []candidate
	for i := 0; i < len(s); {
		sig := atSigil(s, i)
		if sig == 0 {
			i++
			continue
		}
		if !precedesMention(prevRune(s, i)) {
			i += sig
			continue
		}

		j := i + sig
		for j < len(s) && j-(i+sig) < maxScreenNameLen && isWordByte(s[j]) {
			j++
		}
		if j == i+sig {
			i += sig
			continue
		}
		name := s[i+sig : j]

		// Optional list slug.
		end := j
		var slug string
		if j < len(s) && s[j] == '/' && j+1 < len(s) && isLetter(s[j+1]) {
			k := j + 2
			for k < len(s) && k-(j+1) < maxListSlugLen && (isWordByte(s[k]) || s[k] == '-') {
				k++
			}
			end = k
			slug = s[j+1 : k]
		}

		if atSigil(s, end) != 0 ||
			(end < len(s) && isWordByte(s[end])) ||
			strings.HasPrefix(s[end:], "://") {
			i = end
			continue
		}

		if slug != "" {
			out = append(out, candidate{
				prio:  prioMention,
				start: i,
				end:   end,
				ent:   &MentionList{Span: Span{i + sig, end}, ScreenName: name, ListSlug: slug},
			})
		} else {
			out = append(out, candidate{
				prio:  prioMention,
				start: i,
				end:   end,
				ent:   &Mention{Span: Span{i + sig, end}, ScreenName: name},
			})
		}
		i = end
	}
	return out
}

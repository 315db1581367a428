// Copyright 2024 The Twitter-Text-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twittertext

import (
	"cmp"
	"errors"
	"slices"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when the input text is not valid UTF-8.
// The failure is total: no partial entity list accompanies it.
var ErrInvalidUTF8 = errors.New("twittertext: invalid UTF-8 input")

// An Extractor converts text into an ordered, non-overlapping sequence of
// entities. The zero value matches only scheme-qualified URLs.
//
// Extraction is a pure function of the input and the option fields; an
// Extractor may be shared across goroutines as long as its fields are not
// mutated during a call.
type Extractor struct {
	// ProtocolLessURLs also matches bare-domain URLs with no http:// or
	// https:// scheme, such as "example.com/page".
	ProtocolLessURLs bool
}

// Extract returns the entities of text, sorted by start offset and pairwise
// non-overlapping. Spans are measured in codepoints. Empty input yields an
// empty list; input that is not valid UTF-8 yields [ErrInvalidUTF8].
func (x *Extractor) Extract(text string) ([]Entity, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	if text == "" {
		return nil, nil
	}

	cands := scanURLs(text, x.ProtocolLessURLs)
	cands = append(cands, scanHashtags(text)...)
	cands = append(cands, scanCashtags(text)...)
	cands = append(cands, scanMentions(text)...)
	if len(cands) == 0 {
		return nil, nil
	}
	cands = resolveOverlaps(cands)

	// The scanners work in byte offsets; normalize every span to codepoint
	// offsets in one forward pass over the text.
	ents := make([]Entity, len(cands))
	pos, runes := 0, 0
	advance := func(to int) int {
		runes += utf8.RuneCountInString(text[pos:to])
		pos = to
		return runes
	}
	for i, c := range cands {
		sp := c.ent.Indices()
		start := advance(sp.Start)
		end := advance(sp.End)
		setSpan(c.ent, Span{start, end})
		ents[i] = c.ent
	}
	return ents, nil
}

// resolveOverlaps removes overlapping candidates: the earlier-starting match
// wins, and a tie on start offset goes to the kind with higher scan priority
// (URL, then hashtag, then cashtag, then mention). Overlap is judged on the
// full match including the sigil, so a hashtag inside a URL fragment loses
// to the URL even though their value spans do not touch.
//
// Returns the survivors sorted by start offset.
func resolveOverlaps(cands []candidate) []candidate {
	slices.SortFunc(cands, func(a, b candidate) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}
		return cmp.Compare(a.prio, b.prio)
	})

	out := cands[:0]
	maxEnd := 0
	for _, c := range cands {
		if c.start >= maxEnd {
			out = append(out, c)
			maxEnd = c.end
		}
	}
	return out
}

// setSpan rewrites e's span in place. Entities are freshly allocated per
// extraction, so the rewrite cannot be observed by another caller.
func setSpan(e Entity, sp Span) {
	switch e := e.(type) {
	case *URL:
		e.Span = sp
	case *Hashtag:
		e.Span = sp
	case *Cashtag:
		e.Span = sp
	case *Mention:
		e.Span = sp
	case *MentionList:
		e.Span = sp
	}
}

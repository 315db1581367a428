// Copyright 2024 The Twitter-Text-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twittertext

// A Span is a half-open range [Start, End) of Unicode codepoint offsets into
// the original text. Offsets are measured in codepoints, not bytes, so that
// they survive multi-byte scripts.
type Span struct {
	Start int
	End   int
}

// Indices returns the span itself, satisfying the [Entity] interface for
// every type that embeds a Span.
func (s Span) Indices() Span { return s }

// An Entity is a recognized token, one of
// [URL], [Hashtag], [Cashtag], [Mention], and [MentionList].
//
// An entity's span never includes its sigil: a Hashtag for "#go" spans only
// "go", a Mention for "@alice" spans only "alice". A URL has no sigil and
// spans the whole matched URL. Slicing the original text at Indices always
// reproduces Value exactly.
type Entity interface {
	Entity()

	// Indices returns the entity's codepoint-offset span.
	Indices() Span

	// Value returns the matched token text, excluding any leading sigil.
	Value() string
}

// A URL is an [Entity] representing a matched URL, scheme-qualified or
// (when the extractor permits it) a bare domain.
type URL struct {
	Span
	URL string
}

func (*URL) Entity() {}

func (u *URL) Value() string { return u.URL }

// A Hashtag is an [Entity] representing a #hashtag. Tag excludes the sigil.
type Hashtag struct {
	Span
	Tag string
}

func (*Hashtag) Entity() {}

func (h *Hashtag) Value() string { return h.Tag }

// A Cashtag is an [Entity] representing a $cashtag. Tag excludes the sigil.
type Cashtag struct {
	Span
	Tag string
}

func (*Cashtag) Entity() {}

func (c *Cashtag) Value() string { return c.Tag }

// A Mention is an [Entity] representing an @mention with no list suffix.
// ScreenName excludes the sigil.
type Mention struct {
	Span
	ScreenName string
}

func (*Mention) Entity() {}

func (m *Mention) Value() string { return m.ScreenName }

// A MentionList is an [Entity] representing an @mention with a /list suffix.
// ListSlug is always non-empty; a mention without a slug is a [Mention].
type MentionList struct {
	Span
	ScreenName string
	ListSlug   string
}

func (*MentionList) Entity() {}

func (m *MentionList) Value() string { return m.ScreenName + "/" + m.ListSlug }

// Copyright 2024 The Twitter-Text-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twittertext

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyURLBase is returned by [Autolinker.Validate] when a URL-base
// template is empty. Autolink itself does not validate: an empty base is
// reflected verbatim into the generated href.
var ErrEmptyURLBase = errors.New("twittertext: empty URL base")

// An Autolinker rewrites text so that each recognized entity is wrapped in
// an HTML anchor. All fields are plain configuration; they must not be
// mutated while a call is in flight.
//
// [New] returns an Autolinker with the reference defaults. The zero value is
// usable but produces anchors with no class and empty href bases.
type Autolinker struct {
	// Per-kind CSS classes. An empty class omits the attribute.
	URLClass      string
	UsernameClass string
	ListClass     string
	HashtagClass  string
	CashtagClass  string

	// Per-kind href bases. The entity value is appended to the base:
	// mention → URLBaseUser + screen name,
	// list → URLBaseList + screen name + "/" + slug,
	// hashtag → URLBaseHash + tag, cashtag → URLBaseCash + tag.
	URLBaseUser string
	URLBaseList string
	URLBaseHash string
	URLBaseCash string

	// NoFollow and External compose the rel attribute; Target sets the
	// target attribute and is omitted when empty.
	NoFollow bool
	External bool
	Target   string

	// ProtocolLessURLs is forwarded to the extractor and to the loose URL
	// pass.
	ProtocolLessURLs bool
}

// New returns an Autolinker configured with the reference defaults.
func New() *Autolinker {
	return &Autolinker{
		URLClass:      "url",
		UsernameClass: "username",
		ListClass:     "list",
		HashtagClass:  "hashtag",
		CashtagClass:  "cashtag",
		URLBaseUser:   "https://twitter.com/",
		URLBaseList:   "https://twitter.com/",
		URLBaseHash:   "https://twitter.com/search?q=%23",
		URLBaseCash:   "https://twitter.com/search?q=%24",
		NoFollow:      true,
	}
}

// Validate reports a configuration error for any empty URL base. It is meant
// to run at configuration time; Autolink does not call it.
func (a *Autolinker) Validate() error {
	bases := []struct {
		name string
		v    string
	}{
		{"URLBaseUser", a.URLBaseUser},
		{"URLBaseList", a.URLBaseList},
		{"URLBaseHash", a.URLBaseHash},
		{"URLBaseCash", a.URLBaseCash},
	}
	for _, b := range bases {
		if b.v == "" {
			return fmt.Errorf("%w: %s", ErrEmptyURLBase, b.name)
		}
	}
	return nil
}

// Autolink rewrites text in entity mode: it extracts the authoritative,
// non-overlapping entity list and substitutes each entity's anchor in a
// single cursor pass over the original text. The error is the extractor's
// ([ErrInvalidUTF8]); on error the output is empty and must not be used.
func (a *Autolinker) Autolink(text string) (string, error) {
	x := Extractor{ProtocolLessURLs: a.ProtocolLessURLs}
	ents, err := x.Extract(text)
	if err != nil {
		return "", err
	}
	return a.AutolinkEntities(text, ents), nil
}

// AutolinkEntities rewrites text using an entity list previously produced by
// an [Extractor] run over the same text.
//
// Unmatched spans are copied verbatim. A mention's sigil sits outside its
// anchor ("@" then the link); hashtag and cashtag sigils are re-emitted
// inside theirs ("#go" wholly linked). Entity spans exclude the sigil, so
// the mention copy runs one rune further than the hashtag copy.
func (a *Autolinker) AutolinkEntities(text string, entities []Entity) string {
	if len(entities) == 0 {
		return text
	}
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text) + len(entities)*64)

	cursor := 0
	for _, e := range entities {
		sp := e.Indices()
		switch e := e.(type) {
		case *URL:
			b.WriteString(string(runes[cursor:sp.Start]))
			u := escapeURL(e.URL)
			b.WriteString(a.anchor(a.URLClass, u, u))
		case *Hashtag:
			b.WriteString(string(runes[cursor : sp.Start-1]))
			sigil := string(runes[sp.Start-1 : sp.Start])
			b.WriteString(a.tagAnchor(a.HashtagClass, a.URLBaseHash+e.Tag, sigil+e.Tag))
		case *Cashtag:
			b.WriteString(string(runes[cursor : sp.Start-1]))
			sigil := string(runes[sp.Start-1 : sp.Start])
			b.WriteString(a.tagAnchor(a.CashtagClass, a.URLBaseCash+e.Tag, sigil+e.Tag))
		case *Mention:
			b.WriteString(string(runes[cursor:sp.Start]))
			b.WriteString(a.anchor(a.UsernameClass, a.URLBaseUser+e.ScreenName, e.ScreenName))
		case *MentionList:
			b.WriteString(string(runes[cursor:sp.Start]))
			path := e.ScreenName + "/" + e.ListSlug
			b.WriteString(a.anchor(a.ListClass, a.URLBaseList+path, path))
		}
		cursor = sp.End
	}
	b.WriteString(string(runes[cursor:]))
	return b.String()
}

// AutolinkLoose rewrites text in loose mode: four independent passes, each
// re-scanning the output of the previous one. It is weaker than entity mode
// (a later pass can in principle re-match inside markup inserted by an
// earlier one) and exists for callers that feed already-partially-marked-up
// text through individual passes.
func (a *Autolinker) AutolinkLoose(text string) string {
	text = a.AutolinkURLs(text)
	text = a.AutolinkHashtags(text)
	text = a.AutolinkCashtags(text)
	return a.AutolinkMentions(text)
}

// AutolinkURLs wraps every URL match in text, leaving other token kinds
// untouched.
func (a *Autolinker) AutolinkURLs(text string) string {
	cands := scanURLs(text, a.ProtocolLessURLs)
	if len(cands) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, c := range cands {
		u := escapeURL(c.ent.(*URL).URL)
		b.WriteString(text[prev:c.start])
		b.WriteString(a.anchor(a.URLClass, u, u))
		prev = c.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// AutolinkHashtags wraps every hashtag match in text, sigil included.
func (a *Autolinker) AutolinkHashtags(text string) string {
	cands := scanHashtags(text)
	if len(cands) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, c := range cands {
		h := c.ent.(*Hashtag)
		display := text[c.start:c.end]
		b.WriteString(text[prev:c.start])
		b.WriteString(a.tagAnchor(a.HashtagClass, a.URLBaseHash+h.Tag, display))
		prev = c.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// AutolinkCashtags wraps every cashtag match in text, sigil included.
func (a *Autolinker) AutolinkCashtags(text string) string {
	cands := scanCashtags(text)
	if len(cands) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, c := range cands {
		ct := c.ent.(*Cashtag)
		display := text[c.start:c.end]
		b.WriteString(text[prev:c.start])
		b.WriteString(a.tagAnchor(a.CashtagClass, a.URLBaseCash+ct.Tag, display))
		prev = c.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// AutolinkMentions wraps every mention and mention-with-list match in text.
// The sigil stays outside the anchor.
func (a *Autolinker) AutolinkMentions(text string) string {
	cands := scanMentions(text)
	if len(cands) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, c := range cands {
		sp := c.ent.Indices() // byte offsets at scan level
		b.WriteString(text[prev:sp.Start])
		switch e := c.ent.(type) {
		case *Mention:
			b.WriteString(a.anchor(a.UsernameClass, a.URLBaseUser+e.ScreenName, e.ScreenName))
		case *MentionList:
			path := e.ScreenName + "/" + e.ListSlug
			b.WriteString(a.anchor(a.ListClass, a.URLBaseList+path, path))
		}
		prev = c.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// anchor assembles the standard anchor element. Attribute order is fixed:
// class (omitted when empty), href, rel (omitted when empty), target
// (omitted when empty).
func (a *Autolinker) anchor(class, href, display string) string {
	var b strings.Builder
	b.WriteString("<a")
	if class != "" {
		b.WriteString(` class="`)
		b.WriteString(class)
		b.WriteString(`"`)
	}
	b.WriteString(` href="`)
	b.WriteString(href)
	b.WriteString(`"`)
	a.relTarget(&b)
	b.WriteString(">")
	b.WriteString(display)
	b.WriteString("</a>")
	return b.String()
}

// tagAnchor assembles the hashtag/cashtag anchor form: href first, then a
// title equal to the display text, then class. Display text containing
// right-to-left runes appends " rtl" to the class as a styling hint.
func (a *Autolinker) tagAnchor(class, href, display string) string {
	if containsRTL(display) {
		class += " rtl"
	}
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(href)
	b.WriteString(`" title="`)
	b.WriteString(display)
	b.WriteString(`"`)
	if class != "" {
		b.WriteString(` class="`)
		b.WriteString(class)
		b.WriteString(`"`)
	}
	a.relTarget(&b)
	b.WriteString(">")
	b.WriteString(display)
	b.WriteString("</a>")
	return b.String()
}

// relTarget appends the rel and target attributes shared by both anchor
// forms.
func (a *Autolinker) relTarget(b *strings.Builder) {
	var rel string
	switch {
	case a.External && a.NoFollow:
		rel = "external nofollow"
	case a.External:
		rel = "external"
	case a.NoFollow:
		rel = "nofollow"
	}
	if rel != "" {
		b.WriteString(` rel="`)
		b.WriteString(rel)
		b.WriteString(`"`)
	}
	if a.Target != "" {
		b.WriteString(` target="`)
		b.WriteString(a.Target)
		b.WriteString(`"`)
	}
}

// Copyright 2024 The Twitter-Text-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twittertext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func autolink(t *testing.T, a *Autolinker, text string) string {
	t.Helper()
	out, err := a.Autolink(text)
	require.NoError(t, err)
	return out
}

func TestAutolinkURL(t *testing.T) {
	got := autolink(t, New(), "Check https://example.com/path?a=1 now")
	assert.Equal(t,
		`Check <a class="url" href="https://example.com/path?a=1" rel="nofollow">https://example.com/path?a=1</a> now`,
		got)
}

func TestAutolinkHashtag(t *testing.T) {
	got := autolink(t, New(), "Great talk #devops2024!")
	assert.Equal(t,
		`Great talk <a href="https://twitter.com/search?q=%23devops2024" title="#devops2024" class="hashtag" rel="nofollow">#devops2024</a>!`,
		got)
}

func TestAutolinkMention(t *testing.T) {
	// The sigil stays outside the anchor.
	got := autolink(t, New(), "hello @alice!")
	assert.Equal(t,
		`hello @<a class="username" href="https://twitter.com/alice" rel="nofollow">alice</a>!`,
		got)
}

func TestAutolinkMentionList(t *testing.T) {
	got := autolink(t, New(), "cc @alice/team-x")
	assert.Equal(t,
		`cc @<a class="list" href="https://twitter.com/alice/team-x" rel="nofollow">alice/team-x</a>`,
		got)
}

func TestAutolinkCashtag(t *testing.T) {
	got := autolink(t, New(), "$AAPL up 2%")
	assert.Equal(t,
		`<a href="https://twitter.com/search?q=%24AAPL" title="$AAPL" class="cashtag" rel="nofollow">$AAPL</a> up 2%`,
		got)
}

func TestAutolinkRTLClass(t *testing.T) {
	got := autolink(t, New(), "#שלום")
	assert.Equal(t,
		`<a href="https://twitter.com/search?q=%23שלום" title="#שלום" class="hashtag rtl" rel="nofollow">#שלום</a>`,
		got)
}

func TestAutolinkUnicodeText(t *testing.T) {
	// Multi-byte runes before an entity must not shift the splice point.
	got := autolink(t, New(), "héllo @bob")
	assert.Equal(t,
		`héllo @<a class="username" href="https://twitter.com/bob" rel="nofollow">bob</a>`,
		got)
}

func TestAutolinkRelTarget(t *testing.T) {
	for _, tc := range []struct {
		nofollow bool
		external bool
		target   string
		want     string
	}{
		{false, false, "", `hi @<a class="username" href="https://twitter.com/bob">bob</a>`},
		{true, false, "", `hi @<a class="username" href="https://twitter.com/bob" rel="nofollow">bob</a>`},
		{false, true, "", `hi @<a class="username" href="https://twitter.com/bob" rel="external">bob</a>`},
		{true, true, "", `hi @<a class="username" href="https://twitter.com/bob" rel="external nofollow">bob</a>`},
		{true, false, "_blank", `hi @<a class="username" href="https://twitter.com/bob" rel="nofollow" target="_blank">bob</a>`},
		{false, false, "_blank", `hi @<a class="username" href="https://twitter.com/bob" target="_blank">bob</a>`},
	} {
		a := New()
		a.NoFollow = tc.nofollow
		a.External = tc.external
		a.Target = tc.target
		assert.Equal(t, tc.want, autolink(t, a, "hi @bob"),
			"nofollow=%v external=%v target=%q", tc.nofollow, tc.external, tc.target)
	}
}

func TestAutolinkEmptyClass(t *testing.T) {
	a := New()
	a.URLClass = ""
	got := autolink(t, a, "https://example.com")
	assert.Equal(t,
		`<a href="https://example.com" rel="nofollow">https://example.com</a>`,
		got)
}

func TestAutolinkURLEscaping(t *testing.T) {
	got := autolink(t, New(), "go https://example.com/?a=1&b=2")
	assert.Equal(t,
		`go <a class="url" href="https://example.com/?a=1&amp;b=2" rel="nofollow">https://example.com/?a=1&amp;b=2</a>`,
		got)
}

func TestAutolinkEscapedInput(t *testing.T) {
	// The normal pipeline: escape once, then annotate. References produced
	// by the escape pass flow through untouched.
	esc := Escape(`"#tag"`, EscapeMinimal)
	require.Equal(t, `&quot;#tag&quot;`, esc)

	got := autolink(t, New(), esc)
	assert.Equal(t,
		`&quot;<a href="https://twitter.com/search?q=%23tag" title="#tag" class="hashtag" rel="nofollow">#tag</a>&quot;`,
		got)
}

func TestAutolinkCustomBases(t *testing.T) {
	a := New()
	a.URLBaseUser = "https://example.org/u/"
	a.URLBaseHash = "https://example.org/t/"
	got := autolink(t, a, "@bob #go")
	assert.Equal(t,
		`@<a class="username" href="https://example.org/u/bob" rel="nofollow">bob</a> <a href="https://example.org/t/go" title="#go" class="hashtag" rel="nofollow">#go</a>`,
		got)
}

func TestAutolinkInvalidUTF8(t *testing.T) {
	out, err := New().Autolink("bad \xff input")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Empty(t, out)
}

func TestAutolinkEntitiesEmpty(t *testing.T) {
	text := "nothing to link here"
	assert.Equal(t, text, New().AutolinkEntities(text, nil))
}

func TestAutolinkLooseEquivalence(t *testing.T) {
	// On text where no pass can re-match inside inserted markup, loose mode
	// agrees with entity mode.
	for _, text := range []string{
		"Check https://example.com/path?a=1 now",
		"Great talk #devops2024!",
		"cc @alice/team-x",
		"$AAPL up 2%",
		"hello @alice!",
	} {
		a := New()
		want := autolink(t, a, text)
		assert.Equal(t, want, a.AutolinkLoose(text), "text %q", text)
	}
}

func TestAutolinkLoosePasses(t *testing.T) {
	a := New()

	// Each pass touches only its own kind.
	got := a.AutolinkMentions("see #tag @bob")
	assert.Equal(t,
		`see #tag @<a class="username" href="https://twitter.com/bob" rel="nofollow">bob</a>`,
		got)

	got = a.AutolinkHashtags("see #tag @bob")
	assert.Equal(t,
		`see <a href="https://twitter.com/search?q=%23tag" title="#tag" class="hashtag" rel="nofollow">#tag</a> @bob`,
		got)

	got = a.AutolinkCashtags("buy $TSLA now")
	assert.Equal(t,
		`buy <a href="https://twitter.com/search?q=%24TSLA" title="$TSLA" class="cashtag" rel="nofollow">$TSLA</a> now`,
		got)

	got = a.AutolinkURLs("at https://example.com/x")
	assert.Equal(t,
		`at <a class="url" href="https://example.com/x" rel="nofollow">https://example.com/x</a>`,
		got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, New().Validate())

	a := New()
	a.URLBaseHash = ""
	err := a.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyURLBase)
	assert.Contains(t, err.Error(), "URLBaseHash")

	// Autolink itself never rejects the configuration.
	a.NoFollow = false
	got, err := a.Autolink("#go")
	require.NoError(t, err)
	assert.Equal(t, `<a href="go" title="#go" class="hashtag">#go</a>`, got)
}

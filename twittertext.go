// Copyright 2024 The Twitter-Text-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package twittertext recognizes the entities embedded in short social-media
// posts (URLs, @mentions optionally carrying a /list suffix, #hashtags, and
// $cashtags) and rewrites such posts with each entity wrapped in an HTML
// anchor.
//
// An [Extractor] produces an ordered, non-overlapping list of typed entities
// with half-open codepoint-offset spans into the original text. An
// [Autolinker] turns a post into markup, either driven by the extractor's
// entity list ([Autolinker.Autolink]) or by four independent per-kind rewrite
// passes ([Autolinker.AutolinkLoose]). The entity-driven mode is
// authoritative; the loose mode re-scans the output of each pass and offers
// no cross-pass conflict resolution.
//
// The package is a pure text-to-text transform: no I/O, no shared state
// across calls. Callers that want reserved markup characters escaped do so
// once, before extraction or annotation, with [Escape].
package twittertext

// Copyright 2024 The Twitter-Text-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twittertext

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestGolden runs the txtar corpora under testdata. Each archive holds
// name.txt/name.html pairs: the input text and the annotated output. The
// archive comment may set Autolinker options, one "Key: value" per line;
// "Loose: true" switches the archive to loose-mode annotation.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata archives")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			al := New()
			loose, err := setOptions(al, a.Comment)
			if err != nil {
				t.Fatal(err)
			}
			if len(a.Files)%2 != 0 {
				t.Fatalf("%s: odd number of archive files", file)
			}
			for i := 0; i+2 <= len(a.Files); i += 2 {
				in, want := a.Files[i], a.Files[i+1]
				name := strings.TrimSuffix(in.Name, ".txt")
				if name != strings.TrimSuffix(want.Name, ".html") {
					t.Fatalf("%s: mismatched pair %s, %s", file, in.Name, want.Name)
				}
				t.Run(name, func(t *testing.T) {
					text := strings.TrimSuffix(string(in.Data), "\n")
					var got string
					if loose {
						got = al.AutolinkLoose(text)
					} else {
						var err error
						got, err = al.Autolink(text)
						if err != nil {
							t.Fatal(err)
						}
					}
					if w := strings.TrimSuffix(string(want.Data), "\n"); got != w {
						t.Errorf("input: %q\nhave: %s\nwant: %s", text, got, w)
					}
				})
			}
		})
	}
}

// setOptions applies "Key: value" option lines from an archive comment.
// It reports whether the archive requested loose mode.
func setOptions(a *Autolinker, comment []byte) (loose bool, err error) {
	for _, line := range strings.Split(string(comment), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "ProtocolLessURLs":
			a.ProtocolLessURLs, err = strconv.ParseBool(value)
		case "NoFollow":
			a.NoFollow, err = strconv.ParseBool(value)
		case "External":
			a.External, err = strconv.ParseBool(value)
		case "Target":
			a.Target = value
		case "Loose":
			loose, err = strconv.ParseBool(value)
		default:
			return false, fmt.Errorf("unknown option %q", key)
		}
		if err != nil {
			return false, err
		}
	}
	return loose, nil
}

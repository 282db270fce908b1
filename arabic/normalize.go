//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

package arabic

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var spaceRun = regexp.MustCompile(" +")

// Normalize prepares text for language model scoring. It merges Unicode
// compatibility forms (presentation ligatures, combined forms) via NFKC,
// deletes tashkeel and tatweel, replaces every character outside the Arabic
// alphabet and the space with a space, and collapses space runs.
//
// The result is only ever fed to the scorer; output returned to callers is
// never normalized.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFKC.String(text) {
		switch {
		case r == Tatweel || IsTashkeel(r):
			// dropped
		case r == ' ' || IsLetter(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return spaceRun.ReplaceAllString(b.String(), " ")
}

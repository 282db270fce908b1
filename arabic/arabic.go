//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

// Package arabic provides the character vocabularies and scoring-side text
// normalization used by the segmentation engine.
package arabic

import "strings"

// Tatweel is the Arabic elongation character (U+0640).
const Tatweel = 'ـ'

// SentencePunctuation is the recognized punctuation set. A character from
// this set closes a raw segment during punctuation-aware splitting and
// forces a sentence boundary during merging.
const SentencePunctuation = "،؛؟.,!:"

// LatinPunctuation mirrors the ASCII punctuation characters. It is only
// used when estimating the word length of markup spans.
const LatinPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsLetter reports whether r is an Arabic letter (hamza through yeh,
// excluding the tatweel and the harakat block).
func IsLetter(r rune) bool {
	return (r >= 0x0621 && r <= 0x063a) || (r >= 0x0641 && r <= 0x064a)
}

// IsTashkeel reports whether r is a diacritic mark: the harakat range
// (U+064B-U+065F), the superscript alef (U+0670) or the Quranic annotation
// range (U+06D6-U+06ED).
func IsTashkeel(r rune) bool {
	return (r >= 0x064b && r <= 0x065f) ||
		r == 0x0670 ||
		(r >= 0x06d6 && r <= 0x06ed)
}

// IsPunct reports whether r belongs to the recognized punctuation set.
func IsPunct(r rune) bool {
	return strings.ContainsRune(SentencePunctuation, r)
}

//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

// Package ssml validates and splits a constrained SSML-like markup dialect.
// The recognized elements are p, s, prosody and break; validity is a
// structural property beyond mere well-formedness.
package ssml

import (
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/sawtlabs/uttseg/arabic"
	"github.com/sawtlabs/uttseg/internal/reclass"
)

// Recognized markup tags.
const (
	TagSpeak     = "speak"
	TagParagraph = "p"
	TagSentence  = "s"
	TagProsody   = "prosody"
	TagBreak     = "break"
)

// Validation failure reasons. They are stable strings suitable for direct
// display to the caller.
const (
	ReasonInvalidXML      = "invalid XML"
	ReasonBreakNotOuter   = "break tag not in outer level"
	ReasonProsodyNotOuter = "prosody tag not in outer level"
	ReasonSentenceNested  = "s tags can only contain text"
	ReasonParagraphMixed  = "p tags can only contain text or s tags"
	ReasonProsodyMixed    = "prosody tags can only contain text, s tags or p tags"
)

// Verdict is the outcome of structural validation. Reason is empty when
// Valid is true.
type Verdict struct {
	Valid  bool
	Reason string
}

var (
	breakSpanRe        = regexp.MustCompile(`<break[^>]*>[^>]*</break>|<break[^>]*>`)
	prosodyEdgeRe      = regexp.MustCompile(`<prosody[^>]*>|</prosody>`)
	sentenceBoundaryRe = regexp.MustCompile(`<p>|</p>|<s>|</s>`)
)

// node is a minimal XML element tree; character data is irrelevant to the
// structural predicates.
type node struct {
	XMLName  xml.Name
	Children []node `xml:",any"`
}

// Validate checks text against the dialect's structural constraints and
// returns the first failing predicate's reason. Bare speak tags are
// stripped and the document is wrapped in a synthetic root first, so
// multi-rooted input such as "<p><s>x</s></p><break/>" is accepted.
func Validate(text string) Verdict {
	wrapped := "<" + TagSpeak + ">" + RemoveTag(text, TagSpeak) + "</" + TagSpeak + ">"

	var root node
	if err := xml.Unmarshal([]byte(wrapped), &root); err != nil {
		return Verdict{Valid: false, Reason: ReasonInvalidXML}
	}

	switch {
	case !outerOnly(root, TagBreak):
		return Verdict{Valid: false, Reason: ReasonBreakNotOuter}
	case !outerOnly(root, TagProsody):
		return Verdict{Valid: false, Reason: ReasonProsodyNotOuter}
	case !every(root, TagSentence, func(n node) bool { return len(n.Children) == 0 }):
		return Verdict{Valid: false, Reason: ReasonSentenceNested}
	case !every(root, TagParagraph, childrenIn(TagSentence)):
		return Verdict{Valid: false, Reason: ReasonParagraphMixed}
	case !every(root, TagProsody, childrenIn(TagSentence, TagParagraph)):
		return Verdict{Valid: false, Reason: ReasonProsodyMixed}
	}
	return Verdict{Valid: true}
}

// outerOnly reports whether every element named tag sits directly under
// the document root.
func outerOnly(root node, tag string) bool {
	outer := 0
	for _, ch := range root.Children {
		if ch.XMLName.Local == tag {
			outer++
		}
	}
	return countDescendants(root, tag) == outer
}

func countDescendants(n node, tag string) int {
	total := 0
	for _, ch := range n.Children {
		if ch.XMLName.Local == tag {
			total++
		}
		total += countDescendants(ch, tag)
	}
	return total
}

// every reports whether pred holds for each descendant element named tag.
func every(n node, tag string, pred func(node) bool) bool {
	for _, ch := range n.Children {
		if ch.XMLName.Local == tag && !pred(ch) {
			return false
		}
		if !every(ch, tag, pred) {
			return false
		}
	}
	return true
}

// childrenIn builds a predicate requiring all child elements to be one of
// the allowed tags.
func childrenIn(allowed ...string) func(node) bool {
	return func(n node) bool {
		for _, ch := range n.Children {
			ok := false
			for _, tag := range allowed {
				if ch.XMLName.Local == tag {
					ok = true
					break
				}
			}
			if !ok {
				return false
			}
		}
		return true
	}
}

// SplitSpans splits text into per-sentence spans. Break and prosody
// boundaries are treated as implicit sentence boundaries; the document is
// then cut at every p/s boundary, with the p/s tags themselves stripped
// from each span and all other markup preserved verbatim. Spans may be
// empty; callers filter as needed.
func SplitSpans(text string) []string {
	text = breakSpanRe.ReplaceAllString(text, "<s>${0}</s>")
	text = prosodyEdgeRe.ReplaceAllString(text, "<s>${0}</s>")
	text = sentenceBoundaryRe.ReplaceAllString(text, "${0}~~")

	parts := strings.Split(text, "~~")
	spans := make([]string, len(parts))
	for i, part := range parts {
		spans[i] = RemoveTag(RemoveTag(part, TagSentence), TagParagraph)
	}
	return spans
}

// RemoveTag deletes bare (attribute-free) opening and closing tags of the
// given name, leaving the content in place.
func RemoveTag(text, tag string) string {
	re := regexp.MustCompile(`</?` + regexp.QuoteMeta(tag) + `>`)
	return re.ReplaceAllString(text, "")
}

var wordBoundaryRe = regexp.MustCompile(
	"[" + reclass.Class(arabic.SentencePunctuation+arabic.LatinPunctuation) + `\s]+`,
)

// SentenceLength estimates the word count of a span by splitting on runs
// of punctuation and whitespace. Boundary splits produce empty fragments
// that are counted too, matching the splitting behavior the merger's word
// cap was tuned against.
func SentenceLength(text string) int {
	return len(wordBoundaryRe.Split(text, -1))
}

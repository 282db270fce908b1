//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

// Package reclass builds regexp character classes from literal rune sets.
package reclass

import "strings"

// Class escapes chars for use inside a regexp character class and returns
// the class body (without the surrounding brackets). Only `\`, `]`, `^` and
// `-` carry meaning inside a class; everything else is literal.
func Class(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

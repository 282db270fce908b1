//
// Sawt Labs is pleased to support the open source community by making uttseg available.
//
// Copyright (C) 2026 Sawt Labs.  All rights reserved.
//
// uttseg is licensed under the Apache License Version 2.0.
//
//

package reclass

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClass(t *testing.T) {
	re := regexp.MustCompile("[" + Class(`a-z]\^`) + "]+")

	require.True(t, re.MatchString("a"))
	require.True(t, re.MatchString("-"))
	require.True(t, re.MatchString("]"))
	require.True(t, re.MatchString(`\`))
	require.True(t, re.MatchString("^"))
	// "-" must be literal, not a range: "b" is not in the set.
	require.False(t, re.MatchString("b"))
}

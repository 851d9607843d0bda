// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/url"
	"strings"
)

// componentUnescaper restores the characters url.QueryEscape escapes but a
// URI component keeps as-is, and writes spaces as %20 instead of '+'.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s for use as a single query parameter value or
// path segment. Letters, digits and -_.!~*'() are kept, everything else is
// percent-encoded as UTF-8.
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// Selector option sets. The empty option means "not set".
var (
	sortFieldOptions     = []string{"", "title", "content"}
	sortDirectionOptions = []string{"", "asc", "desc"}
)

// selector is a cycling single-choice field.
type selector struct {
	options []string
	idx     int
}

func newSelector(options []string, value string) selector {
	s := selector{options: options}
	s.set(value)
	return s
}

func (s selector) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.idx]
}

// set selects value, or the first option when value is not offered.
func (s *selector) set(value string) {
	s.idx = 0
	for i, o := range s.options {
		if o == value {
			s.idx = i
			return
		}
	}
}

func (s *selector) next() {
	if len(s.options) > 0 {
		s.idx = (s.idx + 1) % len(s.options)
	}
}

func (s *selector) prev() {
	if len(s.options) > 0 {
		s.idx = (s.idx - 1 + len(s.options)) % len(s.options)
	}
}

func (s selector) View(focused bool) string {
	parts := make([]string, 0, len(s.options))
	for i, o := range s.options {
		label := o
		if label == "" {
			label = "none"
		}
		if i == s.idx {
			label = "[" + label + "]"
			if focused {
				label = focusedStyle.Render(label)
			}
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

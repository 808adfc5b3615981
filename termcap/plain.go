// Copyright © 2025 Texeltext contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package termcap

// Plain swallows every attribute, leaving only visible text. Useful for
// logs, pipes and width measurements over rendered output.
type Plain struct{}

func init() {
	Register("plain", func() (Backend, error) { return Plain{}, nil })
}

// Normal returns the empty string.
func (Plain) Normal() string { return "" }

// Sequence accepts any attribute and renders nothing.
func (Plain) Sequence(string, []int, string) (string, error) { return "", nil }

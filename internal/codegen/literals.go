// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import "strconv"

// Literal formatters shared by languages whose syntax coincides.

// StringLiteral renders a text value as a double-quoted string.
func StringLiteral(v Value) string {
	return Quote(v.Text)
}

// IntLiteral renders an integer in decimal. The spelling is the same in every language.
func IntLiteral(v Value) string {
	return strconv.Itoa(v.Int)
}

// BoolLiteral renders a boolean as lowercase true/false.
func BoolLiteral(v Value) string {
	return strconv.FormatBool(v.Bool)
}

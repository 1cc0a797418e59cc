// Released under an MIT license. See LICENSE.

// Package validate provides the wording shared by arity checks.
package validate

import (
	"fmt"
)

// Count returns "n label" with the plural suffix p added when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Fixed returns an error if actual is not expected.
func Fixed(what string, actual, expected int) error {
	if actual == expected {
		return nil
	}

	return fmt.Errorf("%s: expected %s, passed %d", what, Count(expected, "argument", "s"), actual)
}

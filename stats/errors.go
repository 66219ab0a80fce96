// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "strings"

// A ValidationError reports every constraint violated by a model or
// range. Problems holds one human-readable message per violation.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "invalid input"
	case 1:
		return e.Problems[0]
	}
	return strings.Join(e.Problems, "; ")
}

// validationError returns a *ValidationError for problems, or nil if
// there are none.
func validationError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

// Validate checks m and r and returns a *ValidationError listing
// every violation, or nil if both are valid.
func Validate(m Model, r Range) error {
	var problems []string
	problems = append(problems, r.Validate()...)
	if m == nil {
		problems = append(problems, "No distribution selected.")
	} else {
		problems = append(problems, m.Validate()...)
	}
	return validationError(problems)
}

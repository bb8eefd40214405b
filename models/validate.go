// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/go-playground/validator/v10"

// Validate is the shared validator instance.
var Validate = validator.New()

// IsValidEmail reports whether email has a plausible mailbox shape.
// Normalization (lowercasing) happens in the store, not here.
func IsValidEmail(email string) bool {
	return Validate.Var(email, "required,email") == nil
}

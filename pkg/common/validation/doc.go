// Package validation provides common validation utilities for the gobag library.
package validation

// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// result mismatch, timeout) and for mapping each class to an exit code.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapped errors remain inspectable with errors.Is() and errors.As().
package apperrors

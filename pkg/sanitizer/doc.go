// Package sanitizer provides input normalization functions for customer data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// typically by returning empty strings rather than errors.
//
// Normalization is applied before validation and storage:
//   - Names and destinations: collapse whitespace, trim leading/trailing spaces
//   - Emails: trim and lowercase
//   - Categories: lowercase, collapse whitespace
package sanitizer

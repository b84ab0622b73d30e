// Package utils provides common utility functions for nbcli.
// It includes helpers for rendering loosely typed API values (nullable strings,
// numbers and nested objects) as display text.
package utils

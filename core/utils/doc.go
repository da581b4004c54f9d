// Package utils provides common utility functions for the reconciliation service.
// It currently holds helpers for the 8-digit ordinal date format (YYYYMMDD)
// used throughout the operational schema.
package utils

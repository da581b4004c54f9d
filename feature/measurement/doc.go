// Package measurement serves the warehouse-day measurement detail: the
// opening and closing events with their tank and pump readings, plus the
// field-captured photo evidence fetched from object storage and inlined
// base64-encoded. It is a read-only review surface over the same snapshot
// reader the reconciliation engine uses.
package measurement

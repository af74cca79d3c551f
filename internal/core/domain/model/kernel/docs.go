// Package kernel provides the value objects shared by every delivery aggregate.
//
// The package includes:
//   - UUID: identifier of engine-owned records (schedules, couriers)
//   - Date: a zone-less calendar day, the unit of delivery capacity
//
// Both are immutable and safe for concurrent use. Their zero values are invalid
// and are rejected by Validate.
package kernel

// Package courier provides the read-only courier reference entity.
//
// Couriers are owned by another part of the system. The delivery engine
// validates that an assigned courier exists and shows its name, phone and
// vehicle on the delivery calendar.
package courier

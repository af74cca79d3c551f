// Package calendar models delivery days and their capacity.
//
// Bookings of a day are never stored on the Day itself. They are always counted
// from delivery schedules inside the transaction that is about to add one, and
// compared against EffectiveMax.
package calendar

// Package delivery provides the delivery schedule aggregate and its lifecycle.
//
// The package includes:
//   - Schedule: the aggregate root binding a deliverable to a date, slot and courier
//   - Status: the state machine every schedule moves through, plus the mapping
//     from legacy delivery_status spellings found on source rows
//   - HistoryEntry: the append-only audit record of each status change
//
// Key business rules:
//   - Delivered and Cancelled are terminal for non-privileged actors
//   - admin and staff actors may force any transition; the forced change is audited with a warning
//   - a schedule in transit cannot be rescheduled
package delivery

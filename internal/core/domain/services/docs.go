// Package services provides domain services of the delivery engine that do not
// belong to a single aggregate.
//
// The package includes:
//   - Normalizer: maps the three source record kinds onto one Deliverable shape
//     and decides delivery eligibility
package services

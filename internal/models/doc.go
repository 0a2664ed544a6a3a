// Package models defines the core domain models for the tip pool.
//
// # Models
//
//   - Employee: a bartender or expo who can be scheduled on shifts
//   - Shift: one calendar day of tip activity (cash/credit totals, staff, hours)
//
// Payout results (distributions, weekly breakdowns) are never persisted; they are
// computed on demand by the calculator package from Employee and Shift snapshots.
//
// # Design Principles
//
//  1. **Weak references**: shifts reference employees by ID string only; a shift may
//     outlive the employees it names and consumers must tolerate the gap.
//  2. **Closed roles**: Role is a two-value enum, switches over it are exhaustive.
//  3. **Dates as strings**: shift dates are calendar dates in YYYY-MM-DD form, which is
//     also the uniqueness key in the store.
package models

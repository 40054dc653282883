// Package domain contains the core domain entities and value objects for heattally.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (file formats, logging, CLI) and
// contains only the competition's data model and invariants.
//
// # Entities
//
//   - [Rules]: The heat's point-allocation rules (legal point set, required sum,
//     advancement boundaries)
//   - [Ballot]: One voter's complete point allocation across all songs in a heat
//   - [ValidationResult]: The outcome of checking a Ballot against the Rules
//   - [SongTally]: Aggregated points and vote provenance for one song
//   - [Placement]: One song's final position in the ranked result
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain

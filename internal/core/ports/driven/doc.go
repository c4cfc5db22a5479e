// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ContentSource: Loads the static content corpus
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil or failing - the application degrades gracefully:
//
//   - Ephemeris: Transiting longitudes. Without it, selection runs on
//     a quiet (signal-free) activation context.
//   - PatternDetector: Chart patterns. Without it, the stellium list
//     is empty.
//   - MoonPhaseProvider: Phase names. Without it, the phase bucket is
//     unknown.
//   - ShownStore: Anti-repetition records. Without it, selection runs
//     without exclusions.
//   - JournalStore: Journal entries. Without it, journaling commands
//     are disabled and prompt selection loses the reflective boost.
//   - SchedulerStore: Task state for the background refresh.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

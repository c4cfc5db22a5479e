// Package domain defines the core business entities for mysky.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - NatalChart: The fixed reference frame for a subject
//   - SimpleAspect: A transiting point matched against a natal point
//   - ActivationContext: What is astrologically active today
//   - ContentItem: One pre-written piece of prose in a pool
//   - ShownItemRecord: The anti-repetition ledger row
//
// It also holds the pure angle arithmetic (normalization, angular
// separation, aspect classification) everything downstream builds on.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

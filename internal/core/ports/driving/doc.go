// Package driving defines the interfaces external actors use to drive
// the application. The CLI and the background scheduler both talk to
// the core through these ports and nothing else.
//
// Implementations live in internal/core/services.
package driving

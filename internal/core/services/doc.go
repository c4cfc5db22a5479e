// Package services implements the driving port interfaces.
// Services contain the core business logic (aspect computation,
// activation context building, content scoring and selection) and
// orchestrate calls to driven ports (adapters).
//
// Every collaborator port is treated as optional: the user-facing
// contract is "you always get content for today", so collaborator
// failures degrade to weaker selections, never to errors.
package services

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - ObjectStore: read access to one hierarchical object file (ROOT file)
//   - ConfigStore: persisted user defaults
package driven

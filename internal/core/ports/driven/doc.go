// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentReader: Turns a file on disk into a domain.Document
//   - ReaderRegistry: Selects the reader for a path and discovers input files
//   - ArtifactSink: Persists cards, chunks and the manifest
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or reader package
package driven

// Package domain defines the core business entities for docdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A loaded source document (text or page-structured)
//   - KnowledgeCard: A structured per-document summary record
//   - Chunk: An overlapping word window used as a retrieval unit
//   - Manifest: A run-level summary of everything processed
//   - DocumentResult: The per-document outcome (processed or skipped)
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

// Package services implements the core use cases of docdex: the
// deterministic identity scheme, heuristic card extraction, the
// overlapping word-window chunk engine, the pipeline orchestrator,
// manifest aggregation and the completeness evaluator.
//
// Services depend on domain entities and driven ports only. The
// extraction and chunking services are pure functions over their
// inputs so they stay unit-testable without any file or pipeline
// context.
package services

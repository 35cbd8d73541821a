// Package readers provides implementations of the DocumentReader
// interface for the supported input formats, plus the extension-keyed
// registry that selects among them and discovers input files.
//
// Readers are registered with the Registry at startup.
package readers

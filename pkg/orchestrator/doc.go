// Package orchestrator wires the document loader → transformer → view builder
// → renderer pipeline behind a single entry point with injectable stages.
package orchestrator

// Package processor wires the command-line flags into a configured
// assistant and runs single-sentence or batch translation.
package processor

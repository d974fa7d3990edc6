// Package worddist defines the word-distance collaborator contract the
// assistant depends on, together with a dictionary-backed reference
// implementation. The Matcher interface mirrors the DarijaDistance utility:
// punctuation stripping, approximate per-word lookup and exact per-word
// lookup. Deployments with a richer matching engine can provide their own
// Matcher; the assistant only talks to the interface.
package worddist

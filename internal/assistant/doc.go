// Package assistant orchestrates Darija to English translation assistance:
// sentence normalization, per-word dictionary lookup with memoization, prompt
// construction and the final LLM call. Lookup results are cached for the
// assistant's lifetime; approximate and exact lookups keep separate caches.
//
// The assistant is not safe for concurrent use. Callers sharing one instance
// across goroutines must serialize access.
package assistant

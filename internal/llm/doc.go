// Package llm provides the transport layer for sentence translation. Three
// backends are supported behind one Translator interface: a self-hosted HTTP
// JSON endpoint, the OpenAI chat-completion API and the Gemini API. Unlike
// the assistant layer, this package propagates every failure to the caller.
package llm

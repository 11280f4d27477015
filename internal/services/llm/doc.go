// Package llm wraps an OpenRouter-compatible chat completion API for
// structured JSON generation.
//
// The client always requests json_object responses, retries transient
// failures with exponential backoff, and tolerates the usual provider quirks
// (code fences, streaming-schema replies, prose around the JSON payload).
// Callers that need a model hold a *Client explicitly; there is no ambient
// global client.
package llm

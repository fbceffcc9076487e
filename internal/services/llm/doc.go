// Package llm provides a minimal OpenRouter chat completion client used for
// document classification. Requests are JSON-only; transient failures (429,
// 5xx, timeouts, empty completions) are retried with capped exponential
// backoff, honoring Retry-After when the server supplies one.
package llm

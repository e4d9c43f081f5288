// Package providers implements the Generator interface for each supported
// LLM provider.
//
// Supported providers: Anthropic (Claude), OpenAI (GPT), Google (Gemini),
// and Ollama / LMStudio for local models.
//
// A generation exchange is message-based: the request carries a system
// prompt, the conversation so far, and the tool definitions the model may
// invoke; the response message holds either final text content or tool
// calls. The caller resolves tool calls and resubmits their results as
// tool-role messages, looping until the model produces content.
//
// All providers share a common retry helper with exponential back-off for
// rate limits and server errors. Base URLs are overridable via environment
// variables so tests can redirect calls to local httptest servers without
// making live API requests. Missing credentials surface as a
// ConfigurationError at construction time, before any request is processed.
//
// Use [New] to obtain a Generator by provider name and model string.
package providers

// Package review contains the core types and engine for structured question
// review.
//
// It defines the QuestionReview output contract, assembles the rubric
// prompt, validates and coerces untrusted candidate records from LLM
// providers (score clamping, word-boundary truncation, list dedupe and
// caps), and merges generation-asserted flags with the deterministic PII
// scanner's findings so the final flag set is always a superset of the
// scan.
//
// The engine drives one request through an explicit state machine
// (scan -> generate -> validate -> merge) with a bounded retry budget;
// corrective feedback from failed attempts is appended to the next
// attempt's prompt. Tool invocations requested mid-generation are dispatched
// synchronously to the scanner and resubmitted, bounded by a round cap.
//
// Rubric packs (rubric.go) let callers steer focus areas, scoring guidance,
// and classification vocabularies without changing the output contract.
package review

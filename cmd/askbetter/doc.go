// Askbetter is a CLI that reviews a natural-language question with an LLM
// provider and emits a strict, machine-verifiable QuestionReview JSON
// document: classification, 0-10 quality scores, missing-information and
// assumption lists, follow-up questions, two bounded rewrites, and
// safety/PII flags.
//
// Usage:
//
//	askbetter ask "How do I speed up my Postgres query?"
//	askbetter ask                      # prompts for the question
//	askbetter ask --format text ...    # human-readable summary
//	askbetter config init              # create a default config file
//	askbetter models doctor            # validate provider credentials
//
// A deterministic PII scanner always runs locally; its findings are merged
// into the final record regardless of what the provider returns.
package main

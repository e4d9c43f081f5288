// Package output renders a finalized review result in json, text, or
// markdown form.
//
// The json format is the compatibility contract: exactly the QuestionReview
// document, nothing else. The text and markdown formats are human-oriented
// summaries and include request stats.
package output

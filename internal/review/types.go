package review

// Contract bounds for every finalized QuestionReview.
const (
	MaxRewriteLen  = 280
	MaxMissingInfo = 6
	MaxAssumptions = 6
	MaxFollowups   = 5
)

// Flag tags in the known vocabulary. PII flags come from the deterministic
// scanner; advisory flags are asserted by the generation step.
const (
	FlagEmail  = "email"
	FlagPhone  = "phone"
	FlagCard   = "card-ish"
	FlagVague  = "vague"
	FlagUnsafe = "unsafe"
)

// flagRank orders the known vocabulary: PII flags first, advisory flags
// after, so downstream consumers can treat the head of the list as
// safety-critical. Unknown tags rank 0 and are dropped during validation.
var flagRank = map[string]int{
	FlagEmail:  1,
	FlagPhone:  2,
	FlagCard:   3,
	FlagVague:  4,
	FlagUnsafe: 5,
}

// KnownFlag reports whether tag belongs to the flag vocabulary.
func KnownFlag(tag string) bool {
	_, ok := flagRank[tag]
	return ok
}

// Classification carries short categorical tags for the question. The
// vocabulary is open, but both fields are always non-empty in a finalized
// record.
type Classification struct {
	Domain string `json:"domain"`
	Type   string `json:"type"`
}

// Scores are the four quality scores, each an integer in [0,10].
type Scores struct {
	Clarity       int `json:"clarity"`
	Specificity   int `json:"specificity"`
	Answerability int `json:"answerability"`
	Safety        int `json:"safety"`
}

// Rewrites holds the two rewritten versions of the question, each capped at
// MaxRewriteLen characters.
type Rewrites struct {
	Minimal string `json:"minimal"`
	Ideal   string `json:"ideal"`
}

// QuestionReview is the single output record. Once finalized it is
// immutable; it is constructed exactly once per request and has no further
// lifecycle.
type QuestionReview struct {
	OriginalQuestion string         `json:"original_question"`
	Classification   Classification `json:"classification"`
	Scores           Scores         `json:"scores"`
	MissingInfo      []string       `json:"missing_info"`
	Assumptions      []string       `json:"assumptions"`
	Followups        []string       `json:"followups"`
	Rewrites         Rewrites       `json:"rewrites"`
	Flags            []string       `json:"flags"`
}

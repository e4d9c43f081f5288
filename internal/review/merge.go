package review

import "sort"

// MergeFlags unions generation-asserted flags with the deterministic
// scanner's flags. Duplicates collapse and PII flags (email, phone,
// card-ish) order before advisory flags (vague, unsafe), so the head of the
// list is safety-critical. Tags outside the known vocabulary are dropped.
func MergeFlags(generated, local []string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, set := range [][]string{generated, local} {
		for _, tag := range set {
			if !KnownFlag(tag) || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return flagRank[out[i]] < flagRank[out[j]]
	})
	return out
}

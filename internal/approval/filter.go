package approval

import (
	"sort"
	"strings"
)

// FilterWorkflows combines the status tab, free-text search, and priority
// filter into one read-side view. Pure function of its inputs; safe to re-run
// on every render or request.
func FilterWorkflows(workflows []Workflow, tab Status, query string, priority Priority) []Workflow {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Workflow, 0, len(workflows))
	for _, w := range workflows {
		if tab != "" && tab != StatusAll && w.Status != tab {
			continue
		}
		if priority != "" && w.Priority != priority {
			continue
		}
		if query != "" && !matchesQuery(&w, query) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// matchesQuery does a case-insensitive substring match against the content
// snapshot and the submitter's name.
func matchesQuery(w *Workflow, query string) bool {
	if strings.Contains(strings.ToLower(w.Content), query) {
		return true
	}
	return strings.Contains(strings.ToLower(w.SubmittedBy.DisplayName()), query)
}

// SortByPriority orders workflows most urgent first, breaking ties by
// submission time (oldest first). The input slice is not modified.
func SortByPriority(workflows []Workflow) []Workflow {
	out := make([]Workflow, len(workflows))
	copy(out, workflows)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := priorityRank(out[i].Priority), priorityRank(out[j].Priority)
		if pi != pj {
			return pi < pj
		}
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out
}

package approval

import "time"

// ComputeStats derives Stats from a workflow set in a single pass.
// Average review time covers every workflow with a recorded review
// (terminal and changes-requested items alike) and is 0 when none exist.
func ComputeStats(workflows []*Workflow, now time.Time) Stats {
	var s Stats
	for _, w := range workflows {
		switch w.Status {
		case StatusPending:
			s.Pending++
		case StatusApproved:
			s.Approved++
		case StatusRejected:
			s.Rejected++
		case StatusChangesRequested:
			s.ChangesRequested++
		}

		if w.Overdue(now) {
			s.Overdue++
		}

		if w.ReviewedAt != nil {
			s.reviewedCount++
			s.reviewedHours += w.ReviewedAt.Sub(w.SubmittedAt).Hours()
		}
	}

	if s.reviewedCount > 0 {
		s.AvgReviewHours = s.reviewedHours / float64(s.reviewedCount)
	}
	return s
}

// bucket returns a pointer to the counter for the given status.
func (s *Stats) bucket(status Status) *int {
	switch status {
	case StatusApproved:
		return &s.Approved
	case StatusRejected:
		return &s.Rejected
	case StatusChangesRequested:
		return &s.ChangesRequested
	default:
		return &s.Pending
	}
}

// applyTransition adjusts the stats for one workflow moving between buckets.
// wasOverdue must report whether the workflow is counted in the current
// Overdue bucket, i.e. evaluated at the timestamp the stats were derived at.
// prevHours carries the workflow's previous review duration when it had
// already been reviewed once (changes_requested items), so its contribution
// is replaced rather than double-counted. Kept numerically identical to a
// full ComputeStats over the resulting set.
func (s *Stats) applyTransition(from, to Status, wasOverdue bool, prevHours *float64, hours float64) {
	*s.bucket(from)--
	*s.bucket(to)++

	if wasOverdue {
		s.Overdue--
	}

	if prevHours != nil {
		s.reviewedHours -= *prevHours
	} else {
		s.reviewedCount++
	}
	s.reviewedHours += hours
	s.AvgReviewHours = s.reviewedHours / float64(s.reviewedCount)
}

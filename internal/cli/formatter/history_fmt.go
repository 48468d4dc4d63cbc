package formatter

import (
	"fmt"
	"time"

	"greenlight/internal/repository"
)

// RenderHistory renders saved assessments as a table, newest first.
func RenderHistory(summaries []repository.AssessmentSummary) string {
	if len(summaries) == 0 {
		return Dim("No saved assessments.") + "\n"
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		created := s.CreatedAt
		if t, err := time.Parse(time.RFC3339, s.CreatedAt); err == nil {
			created = t.Format("Jan 2 15:04")
		}
		title := s.Title
		if title == "" {
			title = Dim("(untitled)")
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			title,
			string(s.Context),
			VerdictBadge(s.Verdict),
			fmt.Sprintf("%.1f", s.RiskScore),
			string(s.Confidence),
			Dim(created),
		})
	}

	return RenderTable([]string{"ID", "Title", "Ctx", "Verdict", "Risk", "Confidence", "When"}, rows)
}

package score

import (
	"fmt"
	"sort"

	"veritas/internal/aggregate"
)

// Category score below this threshold escalates its gaps to high priority.
const attentionThreshold = 70

// Recommend derives the remediation list from category gaps and aggregate
// statistics. Categories contribute their first incomplete items (two as
// high priority below the attention threshold, otherwise one as medium);
// record-driven findings are appended after. The final list is sorted stably
// by priority and capped at five, so later findings that do not make the cut
// are dropped deterministically.
func Recommend(categories []CategoryScore, summary *aggregate.Summary) []Recommendation {
	var recs []Recommendation

	for _, cat := range categories {
		incomplete := incompleteItems(cat)
		if len(incomplete) == 0 {
			continue
		}

		priority, take := PriorityMedium, 1
		if cat.Score < attentionThreshold {
			priority, take = PriorityHigh, 2
		}
		if take > len(incomplete) {
			take = len(incomplete)
		}
		for _, item := range incomplete[:take] {
			recs = append(recs, Recommendation{
				Priority:        priority,
				Category:        cat.ID,
				Title:           item.Name,
				Description:     item.Description,
				Action:          fmt.Sprintf("Complete: %s", item.Name),
				EstimatedImpact: fmt.Sprintf("+%d points", item.Points),
			})
		}
	}

	recs = append(recs, statRecommendations(summary)...)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.rank() < recs[j].Priority.rank()
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// statRecommendations inject findings driven by aggregate statistics rather
// than category items.
func statRecommendations(summary *aggregate.Summary) []Recommendation {
	if summary == nil {
		return nil
	}
	var recs []Recommendation

	if expired := summary.Safeguarding.ExpiredChecks; expired > 0 {
		impact := expired * 5
		if impact > 20 {
			impact = 20
		}
		recs = append(recs, Recommendation{
			Priority:        PriorityHigh,
			Category:        CategorySafeguarding,
			Title:           "Renew expired vetting checks",
			Description:     fmt.Sprintf("%d people are working on expired checks", expired),
			Action:          "Arrange renewals for everyone with a lapsed check",
			EstimatedImpact: fmt.Sprintf("+%d points", impact),
		})
	}

	if summary.Fundraising.RecordsNeedingReview > 0 {
		recs = append(recs, Recommendation{
			Priority:        PriorityHigh,
			Category:        CategoryFundraising,
			Title:           "Complete compliance reviews",
			Description:     fmt.Sprintf("%d income records require a compliance review", summary.Fundraising.RecordsNeedingReview),
			Action:          "Review all high-value, corporate, and related-party income",
			EstimatedImpact: "+10 points",
		})
	}

	if summary.Overseas.HasHighRiskActivity() {
		recs = append(recs, Recommendation{
			Priority:        PriorityMedium,
			Category:        CategoryRegulatory,
			Title:           "Strengthen high-risk country controls",
			Description:     "Overseas spend includes countries flagged high risk",
			Action:          "Document enhanced due diligence for high-risk destinations",
			EstimatedImpact: "+5 points",
		})
	}

	return recs
}

func incompleteItems(cat CategoryScore) []Item {
	var out []Item
	for _, item := range cat.Items {
		if !item.Completed {
			out = append(out, item)
		}
	}
	return out
}

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veritas/internal/aggregate"
)

func categoryWithGaps(catID CategoryID, score int, incomplete int) CategoryScore {
	cs := CategoryScore{ID: catID, Name: string(catID), Score: score}
	for i := 0; i < incomplete; i++ {
		cs.Items = append(cs.Items, Item{
			ID:     string(rune('a' + i)),
			Name:   "item",
			Points: 10,
		})
	}
	return cs
}

func TestRecommendCapsAtFive(t *testing.T) {
	cats := []CategoryScore{
		categoryWithGaps(CategoryGovernance, 10, 4),
		categoryWithGaps(CategoryFinancial, 10, 4),
		categoryWithGaps(CategoryRegulatory, 10, 4),
		categoryWithGaps(CategoryDataProtection, 10, 4),
	}

	recs := Recommend(cats, &aggregate.Summary{})
	assert.Len(t, recs, 5)
}

func TestRecommendPriorityOrderIsStable(t *testing.T) {
	cats := []CategoryScore{
		// Healthy category first: its gap is medium priority.
		categoryWithGaps(CategoryGovernance, 85, 1),
		// Failing category second: high priority, but must sort first.
		categoryWithGaps(CategorySafeguarding, 40, 2),
	}

	recs := Recommend(cats, &aggregate.Summary{})
	require.Len(t, recs, 3)
	assert.Equal(t, PriorityHigh, recs[0].Priority)
	assert.Equal(t, CategorySafeguarding, recs[0].Category)
	assert.Equal(t, PriorityHigh, recs[1].Priority)
	assert.Equal(t, PriorityMedium, recs[2].Priority)
	assert.Equal(t, CategoryGovernance, recs[2].Category)
}

func TestRecommendCategoryThreshold(t *testing.T) {
	t.Run("below 70 emits two high priority items", func(t *testing.T) {
		recs := Recommend([]CategoryScore{categoryWithGaps(CategoryGovernance, 69, 3)}, &aggregate.Summary{})
		require.Len(t, recs, 2)
		assert.Equal(t, PriorityHigh, recs[0].Priority)
		assert.Equal(t, PriorityHigh, recs[1].Priority)
	})

	t.Run("at 70 emits one medium priority item", func(t *testing.T) {
		recs := Recommend([]CategoryScore{categoryWithGaps(CategoryGovernance, 70, 3)}, &aggregate.Summary{})
		require.Len(t, recs, 1)
		assert.Equal(t, PriorityMedium, recs[0].Priority)
	})

	t.Run("complete category emits nothing", func(t *testing.T) {
		recs := Recommend([]CategoryScore{categoryWithGaps(CategoryGovernance, 100, 0)}, &aggregate.Summary{})
		assert.Empty(t, recs)
	})
}

func TestStatDrivenRecommendations(t *testing.T) {
	t.Run("expired checks capped at 20 points", func(t *testing.T) {
		summary := &aggregate.Summary{
			Safeguarding: aggregate.SafeguardingSummary{ExpiredChecks: 7},
		}
		recs := Recommend(nil, summary)
		require.Len(t, recs, 1)
		assert.Equal(t, PriorityHigh, recs[0].Priority)
		assert.Equal(t, "+20 points", recs[0].EstimatedImpact)
	})

	t.Run("expired checks below cap scale by five", func(t *testing.T) {
		summary := &aggregate.Summary{
			Safeguarding: aggregate.SafeguardingSummary{ExpiredChecks: 2},
		}
		recs := Recommend(nil, summary)
		require.Len(t, recs, 1)
		assert.Equal(t, "+10 points", recs[0].EstimatedImpact)
	})

	t.Run("review backlog is high priority with fixed impact", func(t *testing.T) {
		summary := &aggregate.Summary{
			Fundraising: aggregate.FundraisingSummary{RecordsNeedingReview: 3},
		}
		recs := Recommend(nil, summary)
		require.Len(t, recs, 1)
		assert.Equal(t, PriorityHigh, recs[0].Priority)
		assert.Equal(t, "+10 points", recs[0].EstimatedImpact)
	})

	t.Run("high risk overseas activity is medium priority", func(t *testing.T) {
		summary := &aggregate.Summary{
			Overseas: aggregate.OverseasSummary{
				HasOperations: true,
				Countries:     []aggregate.CountrySpend{{Code: "SS", HighRisk: true}},
			},
		}
		recs := Recommend(nil, summary)
		require.Len(t, recs, 1)
		assert.Equal(t, PriorityMedium, recs[0].Priority)
		assert.Equal(t, "+5 points", recs[0].EstimatedImpact)
	})

	t.Run("nil summary yields no stat recommendations", func(t *testing.T) {
		assert.Empty(t, Recommend(nil, nil))
	})
}

// Package score computes the weighted compliance score, grade, and
// remediation recommendations. The engine is a pure function of the category
// definitions, the configured weights and thresholds, and whatever data
// provider each category is wired to.
package score

import "time"

// CategoryID identifies one of the six fixed compliance categories.
type CategoryID string

const (
	CategoryGovernance     CategoryID = "governance"
	CategoryFinancial      CategoryID = "financial_management"
	CategoryRegulatory     CategoryID = "regulatory_compliance"
	CategorySafeguarding   CategoryID = "safeguarding"
	CategoryFundraising    CategoryID = "fundraising_standards"
	CategoryDataProtection CategoryID = "data_protection"
)

// ItemDef is one obligation within a category.
// Invariant: Points >= 0.
type ItemDef struct {
	ID          string
	Name        string
	Description string
	Points      int
}

// CategoryDef is the immutable definition of a category: identity, weight in
// the overall score, and its ordered items. Weights are not assumed to sum to
// 100; the engine always normalizes by the actual sum.
type CategoryDef struct {
	ID          CategoryID
	Name        string
	Description string
	Weight      int
	Items       []ItemDef
}

// Item is an ItemDef resolved against completion data.
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Points      int        `json:"points"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// CategoryScore is one category's computed result.
type CategoryScore struct {
	ID            CategoryID `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Weight        int        `json:"weight"`
	MaxPoints     int        `json:"max_points"`
	CurrentPoints int        `json:"current_points"`
	Score         int        `json:"score"`
	Grade         Grade      `json:"grade"`
	Items         []Item     `json:"items"`
}

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// rank orders priorities for the stable recommendation sort.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Recommendation is one remediation action.
type Recommendation struct {
	Priority        Priority   `json:"priority"`
	Category        CategoryID `json:"category"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Action          string     `json:"action"`
	EstimatedImpact string     `json:"estimated_impact"`
}

// Result is the immutable outcome of one score computation. It is recomputed
// on demand and never mutated in place.
type Result struct {
	OverallScore    int              `json:"overall_score"`
	OverallGrade    Grade            `json:"overall_grade"`
	Categories      []CategoryScore  `json:"categories"`
	Recommendations []Recommendation `json:"recommendations"`
	LastUpdated     time.Time        `json:"last_updated"`
	NextReviewDate  time.Time        `json:"next_review_date"`
}

// Grade is the letter grade derived from a 0-100 score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// gradeTable maps inclusive lower bounds to grades, highest first. An ordered
// lookup keeps the boundaries in one place instead of scattered comparisons.
var gradeTable = []struct {
	min   int
	grade Grade
}{
	{90, GradeA},
	{80, GradeB},
	{70, GradeC},
	{60, GradeD},
	{0, GradeF},
}

// GradeFor returns the letter grade for a 0-100 score.
func GradeFor(score int) Grade {
	for _, entry := range gradeTable {
		if score >= entry.min {
			return entry.grade
		}
	}
	return GradeF
}

// reviewCadence sets NextReviewDate relative to computation time.
const reviewCadence = 30 * 24 * time.Hour

// maxRecommendations caps the recommendation list after priority sorting.
const maxRecommendations = 5

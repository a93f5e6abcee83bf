package risk

import (
	"reflect"
	"testing"

	"github.com/hyperjump/clausewise/internal/models"
)

func clausesWith(levels ...models.RiskLevel) models.ClauseSet {
	var cs models.ClauseSet
	for i, l := range levels {
		cs = append(cs, models.Clause{
			ID:        "clause_" + string(rune('1'+i)),
			Type:      "general",
			RiskLevel: l,
		})
	}
	return cs
}

func TestReport_Empty(t *testing.T) {
	r := Report(nil)
	if r.TotalClauses != 0 {
		t.Errorf("TotalClauses = %d", r.TotalClauses)
	}
	if r.RiskDetails.High == nil || r.RiskDetails.Medium == nil || r.RiskDetails.Low == nil {
		t.Error("buckets should be empty, not nil")
	}
	if !reflect.DeepEqual(r.Recommendations, []string{RecommendManageable}) {
		t.Errorf("recommendations: %q", r.Recommendations)
	}
	if Overall(r) != models.RiskLow {
		t.Errorf("overall: %q", Overall(r))
	}
}

func TestReport_Buckets(t *testing.T) {
	cs := clausesWith(models.RiskHigh, models.RiskLow, models.RiskMedium, models.RiskLow)
	cs[0].KeyTerms = []string{"liable"}
	r := Report(cs)

	want := models.RiskDistribution{High: 1, Medium: 1, Low: 2}
	if r.RiskDistribution != want {
		t.Errorf("distribution = %+v, want %+v", r.RiskDistribution, want)
	}
	if r.TotalClauses != 4 {
		t.Errorf("total = %d", r.TotalClauses)
	}
	if r.RiskDetails.High[0].Clause != "clause_1" || r.RiskDetails.High[0].KeyTerms[0] != "liable" {
		t.Errorf("high details: %+v", r.RiskDetails.High)
	}
	if r.RiskDetails.Low[0].Clause != "clause_2" || r.RiskDetails.Low[1].Clause != "clause_4" {
		t.Errorf("low details should keep clause order: %+v", r.RiskDetails.Low)
	}
	if Overall(r) != models.RiskHigh {
		t.Errorf("overall: %q", Overall(r))
	}
}

func TestRecommend(t *testing.T) {
	h, m, l := models.RiskHigh, models.RiskMedium, models.RiskLow
	tests := []struct {
		name   string
		levels []models.RiskLevel
		want   []string
	}{
		{"all low", []models.RiskLevel{l, l}, []string{RecommendManageable}},
		{"two medium", []models.RiskLevel{m, m}, []string{RecommendManageable}},
		{"three medium", []models.RiskLevel{m, m, m}, []string{}},
		{"four medium", []models.RiskLevel{m, m, m, m}, []string{RecommendReviewCareful}},
		{"high", []models.RiskLevel{h}, []string{RecommendLegalReview}},
		{"high and many medium", []models.RiskLevel{h, m, m, m, m}, []string{RecommendLegalReview, RecommendReviewCareful}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Report(clausesWith(tt.levels...)).Recommendations
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

package backend

import (
	"context"
	"net/http"

	"jobguard/internal/records"
)

// RankedAnalysis is one analysis echoed back by the scorer, enriched with
// authenticity/relevance scoring. CVMatchScore shadows the stored record's
// field because the scorer reports it with decimal precision.
type RankedAnalysis struct {
	records.Analysis
	CVMatchScore      *float64 `json:"cvMatchScore"`
	BaseRealScore     float64  `json:"base_real_score"`
	PersonalizedScore float64  `json:"personalized_score"`
	CompositeScore    float64  `json:"composite_score"`
	IsRelevant        bool     `json:"is_relevant"`
	IsSafe            bool     `json:"is_safe"`
	RiskLevel         string   `json:"risk_level"`
	RelevanceAlert    *string  `json:"relevance_alert"`
	UserProfession    string   `json:"user_profession"`
}

type rankRequest struct {
	Analyses []records.Analysis `json:"analyses"`
}

// RankJobs submits analyses as one batch and returns the scorer's enriched,
// already-sorted entries, one per input.
func (c *Client) RankJobs(ctx context.Context, token string, analyses []records.Analysis) ([]RankedAnalysis, error) {
	if len(analyses) == 0 {
		return []RankedAnalysis{}, nil
	}
	var ranked []RankedAnalysis
	if err := c.doJSON(ctx, http.MethodPost, "/api/rank_jobs", token, rankRequest{Analyses: analyses}, &ranked); err != nil {
		return nil, err
	}
	return ranked, nil
}

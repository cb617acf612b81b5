package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"jobguard/internal/backend"
	"jobguard/internal/records"
	"jobguard/internal/session"
	"jobguard/internal/shared/metrics"
	"jobguard/internal/shared/telemetry"
)

// Classifier produces a verdict and an explanation for a job description.
type Classifier interface {
	Predict(ctx context.Context, text string) (records.Confidence, string, error)
}

// Scorer enriches analyses with CV match and risk scoring.
type Scorer interface {
	RankJobs(ctx context.Context, token string, analyses []records.Analysis) ([]backend.RankedAnalysis, error)
}

// Service runs the full analysis flow: classify, apply the scam-phrase
// safety net, score against the active resume, persist. A record is written
// only after every remote step succeeded.
type Service struct {
	Records    *records.Store
	Classifier Classifier
	Scorer     Scorer
}

// Input is one analyze request. ResumeText and ResumeFileName are optional
// and copied onto the record verbatim.
type Input struct {
	JobDescription string
	ResumeText     *string
	ResumeFileName *string
}

// Analyze runs the submission flow for the given session and returns the
// persisted record.
func (s *Service) Analyze(ctx context.Context, sess session.Session, in Input) (records.Analysis, error) {
	if strings.TrimSpace(in.JobDescription) == "" {
		return records.Analysis{}, ErrDescriptionRequired
	}
	if !sess.LoggedIn() {
		return records.Analysis{}, ErrNotLoggedIn
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	confidence, explanation, err := s.Classifier.Predict(ctx, in.JobDescription)
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.classify.failed", map[string]any{"err": err.Error()})
		return records.Analysis{}, fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}

	if phrase, ok := matchScamPhrase(in.JobDescription); ok {
		telemetry.Info("analysis.override.applied", map[string]any{
			"phrase":     phrase,
			"modelLabel": confidence.Label,
		})
		confidence = forcedFakeConfidence()
	}

	candidate := records.Analysis{
		UserEmail:       sess.User.Email,
		Confidence:      confidence,
		ShapExplanation: explanation,
		JobDescription:  in.JobDescription,
		ResumeText:      in.ResumeText,
		ResumeFileName:  in.ResumeFileName,
	}
	ranked, err := s.Scorer.RankJobs(ctx, sess.Token, []records.Analysis{candidate})
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.rank.failed", map[string]any{"err": err.Error()})
		return records.Analysis{}, fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	if len(ranked) == 0 {
		metrics.IncAnalysisFailed()
		return records.Analysis{}, fmt.Errorf("%w: scoring returned no result", ErrRemoteCall)
	}

	var cvMatch *int
	if score := ranked[0].CVMatchScore; score != nil {
		rounded := int(math.Round(*score))
		cvMatch = &rounded
	}

	saved, err := s.Records.Add(records.NewAnalysis{
		Confidence:      confidence,
		ShapExplanation: explanation,
		JobDescription:  in.JobDescription,
		ResumeText:      in.ResumeText,
		ResumeFileName:  in.ResumeFileName,
		CVMatchScore:    cvMatch,
	}, sess.User.Email)
	if err != nil {
		metrics.IncAnalysisFailed()
		return records.Analysis{}, fmt.Errorf("persist analysis: %w", err)
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	return saved, nil
}

// Rankings scores the user's full history in one batch. An empty history
// returns an empty slice without a remote call.
func (s *Service) Rankings(ctx context.Context, sess session.Session) ([]backend.RankedAnalysis, error) {
	if !sess.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	history := s.Records.GetAll(sess.User.Email)
	if len(history) == 0 {
		return []backend.RankedAnalysis{}, nil
	}
	ranked, err := s.Scorer.RankJobs(ctx, sess.Token, history)
	if err != nil {
		telemetry.Error("analysis.rank.failed", map[string]any{"err": err.Error()})
		return nil, fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	return ranked, nil
}

package records

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"jobguard/internal/shared/kvstore"
	"jobguard/internal/shared/telemetry"
)

const (
	analysesKey = "jobDescriptionAnalyses"
	resumesKey  = "activeResumes"
)

// Store is the partitioned CRUD layer over analyses and active résumés.
// All analyses across all users live under one storage key as a single
// newest-first list; reads filter by user email. Active résumés live under a
// second key as a per-email map, so résumé lifecycle stays independent of
// analysis lifecycle.
//
// Read-modify-write cycles are not atomic across processes; the last writer
// wins, matching the original storage medium.
type Store struct {
	storage kvstore.Storage

	mu     sync.Mutex
	lastID int64
	now    func() time.Time
}

// NewStore constructs a Store over the given storage.
func NewStore(storage kvstore.Storage) *Store {
	return &Store{storage: storage, now: time.Now}
}

// GetAll returns the user's analyses in stored order, newest first. It never
// fails: an absent or unparseable collection, a storage error, or an empty
// email all yield an empty slice.
func (s *Store) GetAll(userEmail string) []Analysis {
	if userEmail == "" {
		return []Analysis{}
	}
	all, err := s.loadAnalyses()
	if err != nil {
		telemetry.Error("records.read.failed", map[string]any{"err": err.Error()})
		return []Analysis{}
	}
	out := make([]Analysis, 0, len(all))
	for _, a := range all {
		if a.UserEmail == userEmail {
			out = append(out, a)
		}
	}
	return out
}

// GetLatest returns the user's most recent analysis, or nil.
func (s *Store) GetLatest(userEmail string) *Analysis {
	all := s.GetAll(userEmail)
	if len(all) == 0 {
		return nil
	}
	return &all[0]
}

// GetByID returns the user's analysis with the given ID, or nil.
func (s *Store) GetByID(id int64, userEmail string) *Analysis {
	for _, a := range s.GetAll(userEmail) {
		if a.ID == id {
			return &a
		}
	}
	return nil
}

// Add constructs a new record for the user, prepends it to the full stored
// collection and persists. The record ID is derived from the creation
// timestamp and bumped when needed so IDs stay unique within a process run.
func (s *Store) Add(data NewAnalysis, userEmail string) (Analysis, error) {
	if userEmail == "" {
		return Analysis{}, ErrEmailRequired
	}

	all, err := s.loadAnalyses()
	if err != nil {
		return Analysis{}, fmt.Errorf("add analysis: %w", err)
	}

	now := s.timeNow()
	record := Analysis{
		ID:              s.nextID(now),
		UserEmail:       userEmail,
		Timestamp:       now.Format("1/2/2006, 3:04:05 PM"),
		Confidence:      data.Confidence,
		ShapExplanation: data.ShapExplanation,
		JobDescription:  data.JobDescription,
		ResumeText:      data.ResumeText,
		ResumeFileName:  data.ResumeFileName,
		CVMatchScore:    data.CVMatchScore,
	}

	updated := make([]Analysis, 0, len(all)+1)
	updated = append(updated, record)
	updated = append(updated, all...)

	if err := s.saveAnalyses(updated); err != nil {
		return Analysis{}, fmt.Errorf("add analysis: %w", err)
	}
	return record, nil
}

// Delete removes the first record with the given ID from the full collection
// regardless of owner; callers are trusted to have authorized the deletion.
// It reports true on completion, including when no record matched, and false
// only on a storage failure.
func (s *Store) Delete(id int64) bool {
	all, err := s.loadAnalyses()
	if err != nil {
		telemetry.Error("records.delete.failed", map[string]any{"id": id, "err": err.Error()})
		return false
	}
	for i, a := range all {
		if a.ID == id {
			updated := append(all[:i:i], all[i+1:]...)
			if err := s.saveAnalyses(updated); err != nil {
				telemetry.Error("records.delete.failed", map[string]any{"id": id, "err": err.Error()})
				return false
			}
			return true
		}
	}
	return true
}

// ClearAll removes all records belonging to the user and retains everyone
// else's. It reports false on a storage failure.
func (s *Store) ClearAll(userEmail string) bool {
	all, err := s.loadAnalyses()
	if err != nil {
		telemetry.Error("records.clear.failed", map[string]any{"err": err.Error()})
		return false
	}
	remaining := make([]Analysis, 0, len(all))
	for _, a := range all {
		if a.UserEmail != userEmail {
			remaining = append(remaining, a)
		}
	}
	if err := s.saveAnalyses(remaining); err != nil {
		telemetry.Error("records.clear.failed", map[string]any{"err": err.Error()})
		return false
	}
	return true
}

// GetStats counts the user's Fake/Real verdicts case-insensitively.
func (s *Store) GetStats(userEmail string) Stats {
	all := s.GetAll(userEmail)
	stats := Stats{Total: len(all)}
	if stats.Total == 0 {
		return stats
	}
	for _, a := range all {
		switch strings.ToLower(a.Confidence.Label) {
		case "fake":
			stats.Fake++
		case "real":
			stats.Real++
		}
	}
	stats.FakePercentage = roundPercent(stats.Fake, stats.Total)
	stats.RealPercentage = roundPercent(stats.Real, stats.Total)
	return stats
}

func roundPercent(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*1000) / 10
}

func (s *Store) loadAnalyses() ([]Analysis, error) {
	raw, ok, err := s.storage.Get(analysesKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []Analysis{}, nil
	}
	var all []Analysis
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		return nil, fmt.Errorf("parse stored analyses: %w", err)
	}
	return all, nil
}

func (s *Store) saveAnalyses(all []Analysis) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("serialize analyses: %w", err)
	}
	return s.storage.Set(analysesKey, string(raw))
}

func (s *Store) timeNow() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// nextID derives an ID from the creation time in milliseconds; concurrent
// tabs in the original could collide, so only same-run uniqueness is kept.
func (s *Store) nextID(now time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

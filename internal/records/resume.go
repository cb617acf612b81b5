package records

import (
	"encoding/json"
	"fmt"
	"time"

	"jobguard/internal/shared/telemetry"
)

// SaveActiveResume upserts the user's cached résumé, overwriting any
// previous upload. Storage failures are logged and swallowed; losing the
// cache only means the next analysis starts without a pre-filled résumé.
func (s *Store) SaveActiveResume(userEmail, resumeText, fileName string) {
	if userEmail == "" {
		return
	}
	resumes, err := s.loadResumes()
	if err != nil {
		telemetry.Error("records.resume.save.failed", map[string]any{"err": err.Error()})
		return
	}
	resumes[userEmail] = ActiveResume{
		ResumeText: resumeText,
		FileName:   fileName,
		SavedAt:    s.timeNow().UTC().Format(time.RFC3339),
	}
	if err := s.saveResumes(resumes); err != nil {
		telemetry.Error("records.resume.save.failed", map[string]any{"err": err.Error()})
	}
}

// GetActiveResume returns the user's cached résumé, or nil when there is
// none or the cache is unreadable.
func (s *Store) GetActiveResume(userEmail string) *ActiveResume {
	if userEmail == "" {
		return nil
	}
	resumes, err := s.loadResumes()
	if err != nil {
		telemetry.Error("records.resume.read.failed", map[string]any{"err": err.Error()})
		return nil
	}
	resume, ok := resumes[userEmail]
	if !ok {
		return nil
	}
	return &resume
}

// ClearActiveResume deletes the user's entry only; other users' cached
// résumés are untouched.
func (s *Store) ClearActiveResume(userEmail string) {
	if userEmail == "" {
		return
	}
	resumes, err := s.loadResumes()
	if err != nil {
		telemetry.Error("records.resume.clear.failed", map[string]any{"err": err.Error()})
		return
	}
	if _, ok := resumes[userEmail]; !ok {
		return
	}
	delete(resumes, userEmail)
	if err := s.saveResumes(resumes); err != nil {
		telemetry.Error("records.resume.clear.failed", map[string]any{"err": err.Error()})
	}
}

func (s *Store) loadResumes() (map[string]ActiveResume, error) {
	raw, ok, err := s.storage.Get(resumesKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return map[string]ActiveResume{}, nil
	}
	var resumes map[string]ActiveResume
	if err := json.Unmarshal([]byte(raw), &resumes); err != nil {
		return nil, fmt.Errorf("parse stored resumes: %w", err)
	}
	if resumes == nil {
		resumes = map[string]ActiveResume{}
	}
	return resumes, nil
}

func (s *Store) saveResumes(resumes map[string]ActiveResume) error {
	raw, err := json.Marshal(resumes)
	if err != nil {
		return fmt.Errorf("serialize resumes: %w", err)
	}
	return s.storage.Set(resumesKey, string(raw))
}

package records

// ConfidenceScore is one class probability from the classifier.
type ConfidenceScore struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Confidence is the classifier verdict plus the per-class breakdown.
type Confidence struct {
	Label       string            `json:"label"`
	Confidences []ConfidenceScore `json:"confidences"`
}

// Analysis is one persisted job-description analysis result owned by a
// single user. Records are immutable once created except for deletion.
// ShapExplanation is opaque pre-rendered markup from the remote explainer;
// it is stored and displayed verbatim, never parsed.
type Analysis struct {
	ID              int64      `json:"id"`
	UserEmail       string     `json:"userEmail"`
	Timestamp       string     `json:"timestamp"`
	Confidence      Confidence `json:"confidence"`
	ShapExplanation string     `json:"shapExplanation"`
	JobDescription  string     `json:"jobDescription"`
	ResumeText      *string    `json:"resumeText"`
	ResumeFileName  *string    `json:"resumeFileName"`
	CVMatchScore    *int       `json:"cvMatchScore"`
}

// NewAnalysis carries the caller-supplied fields for Add. Nil optional
// fields persist as null.
type NewAnalysis struct {
	Confidence      Confidence
	ShapExplanation string
	JobDescription  string
	ResumeText      *string
	ResumeFileName  *string
	CVMatchScore    *int
}

// ActiveResume is the most recently uploaded résumé cached per user,
// independent of any single analysis.
type ActiveResume struct {
	ResumeText string `json:"resumeText"`
	FileName   string `json:"fileName"`
	SavedAt    string `json:"savedAt"`
}

// Stats summarizes one user's analysis history. Percentages are rounded to
// one decimal and are all zero when Total is zero.
type Stats struct {
	Total          int     `json:"total"`
	Fake           int     `json:"fake"`
	Real           int     `json:"real"`
	FakePercentage float64 `json:"fakePercentage"`
	RealPercentage float64 `json:"realPercentage"`
}

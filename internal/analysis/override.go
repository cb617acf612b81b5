package analysis

import (
	"regexp"
	"strings"

	"jobguard/internal/records"
)

// scamPhrases force a Fake verdict when they appear in a job description,
// regardless of what the remote model said. The backend keeps an equivalent
// list; the two are not synchronized automatically.
var scamPhrases = []string{
	"registration fee",
	"application fee",
	"processing fee",
	"training fee",
	"security deposit",
	"refundable deposit",
	"upfront payment",
	"pay to apply",
	"send money",
	"wire transfer",
	"western union",
	"moneygram",
	"bank account details",
	"credit card details",
}

var scamPatterns = compileScamPatterns()

func compileScamPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(scamPhrases))
	for _, phrase := range scamPhrases {
		expr := `(?i)\b` + strings.ReplaceAll(regexp.QuoteMeta(phrase), " ", `\s+`) + `\b`
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}

// matchScamPhrase reports the first scam indicator found in the text as a
// whole word, case-insensitively.
func matchScamPhrase(text string) (string, bool) {
	for i, pattern := range scamPatterns {
		if pattern.MatchString(text) {
			return scamPhrases[i], true
		}
	}
	return "", false
}

// forcedFakeConfidence is the verdict substituted when the safety net fires.
func forcedFakeConfidence() records.Confidence {
	return records.Confidence{
		Label: "Fake",
		Confidences: []records.ConfidenceScore{
			{Label: "Fake", Confidence: 0.99},
			{Label: "Real", Confidence: 0.01},
		},
	}
}

package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

// recordingRe matches the wire format submitted by the audio client:
// "recorded_12s" or "recorded_12s|optional transcript text".
var recordingRe = regexp.MustCompile(`^recorded_(\d+)s?`)

// speakingStrategy scores a recorded spoken response by keyword coverage of
// the transcript. The answer arrives as "recorded_<seconds>s|<transcript>".
// A response with no transcript still earns a floor score for having
// spoken at all; the duration is captured for reporting but does not gate
// the score.
type speakingStrategy struct{}

func (speakingStrategy) score(q *models.Question, rawAnswer string) (bool, int) {
	transcript, ok := parseRecording(rawAnswer)
	if !ok {
		return false, 0
	}

	frac, correct := keywordCoverage(transcript, q.ExpectedKeywords)
	points := int(math.Round(float64(q.Points) * frac))
	return correct, points
}

func (speakingStrategy) correctValue(*models.Question) string { return "" }

// parseRecording splits the recording envelope from the transcript. ok is
// false when the answer is not in the recorded_<n>s format at all.
func parseRecording(rawAnswer string) (transcript string, ok bool) {
	rawAnswer = strings.TrimSpace(rawAnswer)
	if !recordingRe.MatchString(rawAnswer) {
		return "", false
	}
	if idx := strings.Index(rawAnswer, "|"); idx >= 0 {
		return strings.TrimSpace(rawAnswer[idx+1:]), true
	}
	return "", true
}

// keywordCoverage maps the matched-keyword ratio onto a score fraction.
// Half the keywords is a full-credit pass; below that, partial bands step
// down to a participation floor of 0.2.
func keywordCoverage(transcript string, keywords []string) (frac float64, correct bool) {
	if transcript == "" || len(keywords) == 0 {
		return 0.2, false
	}

	folded := strings.ToLower(transcript)
	matched := 0
	for _, kw := range keywords {
		if keywordMatched(folded, strings.ToLower(strings.TrimSpace(kw))) {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(keywords))
	switch {
	case ratio >= 0.5:
		return 1.0, true
	case ratio >= 0.3:
		return 0.7, false
	case ratio >= 0.2:
		return 0.5, false
	case ratio >= 0.1:
		return 0.3, false
	default:
		return 0.2, false
	}
}

// keywordMatched reports whether a keyword occurs in the folded transcript.
// Multi-word keywords also match when every constituent word appears
// somewhere in the transcript; single words additionally match on a shared
// stem of at least 4 characters so "apologize" catches "apologized" and
// "apologizing".
func keywordMatched(folded, keyword string) bool {
	if keyword == "" {
		return false
	}
	if strings.Contains(folded, keyword) {
		return true
	}
	if strings.ContainsRune(keyword, ' ') {
		for _, part := range strings.Fields(keyword) {
			if !strings.Contains(folded, part) {
				return false
			}
		}
		return true
	}
	if len(keyword) < 4 {
		return false
	}
	return strings.Contains(folded, keyword[:4])
}

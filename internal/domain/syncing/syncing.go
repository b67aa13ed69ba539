package syncing

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/RenatoLagos/Create-video/internal/types"
)

// Method selects how planned phrases are matched to transcribed cues.
type Method string

const (
	// MethodSimilarity pairs each phrase with the best unused cue by text
	// similarity.
	MethodSimilarity Method = "similarity"
	// MethodOrder pairs the i-th phrase with the i-th cue.
	MethodOrder Method = "order"
	// MethodHybrid runs similarity first, then hands leftover cues to the
	// still-unmatched phrases in order.
	MethodHybrid Method = "hybrid"
)

// DefaultThreshold is the minimum similarity ratio for a match.
const DefaultThreshold = 0.6

// Synchronize attaches real narration timing to planned script phrases by
// matching them against parsed subtitle cues. Phrases that find no cue keep
// a nil Timing; the timeline resolver skips those later. The input slice is
// not mutated.
func Synchronize(phrases []types.Phrase, cues []types.SubtitleCue, method Method, threshold float64, log zerolog.Logger) []types.Phrase {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	out := make([]types.Phrase, len(phrases))
	copy(out, phrases)

	switch method {
	case MethodOrder:
		matchByOrder(out, cues, indexSet{})
	case MethodSimilarity:
		matchBySimilarity(out, cues, threshold, log)
	default:
		used := matchBySimilarity(out, cues, threshold, log)
		matchByOrder(out, cues, used)
	}

	matched := 0
	for _, p := range out {
		if p.Timing != nil {
			matched++
		}
	}
	log.Info().
		Str("method", string(method)).
		Int("phrases", len(out)).
		Int("matched", matched).
		Msg("syncing: script synchronized")
	return out
}

type indexSet map[int]struct{}

func matchBySimilarity(phrases []types.Phrase, cues []types.SubtitleCue, threshold float64, log zerolog.Logger) indexSet {
	used := indexSet{}
	for i := range phrases {
		best, bestScore := -1, 0.0
		for j, cue := range cues {
			if _, taken := used[j]; taken {
				continue
			}
			score := Ratio(phrases[i].Phrase, cue.Text)
			if score > bestScore && score >= threshold {
				best, bestScore = j, score
			}
		}
		if best < 0 {
			log.Warn().Str("phrase", phrases[i].Phrase).Msg("syncing: no cue matched phrase")
			phrases[i].Timing = nil
			continue
		}
		used[best] = struct{}{}
		phrases[i].Timing = timingFromCue(cues[best])
	}
	return used
}

// matchByOrder hands remaining cues, in order, to phrases still without
// timing.
func matchByOrder(phrases []types.Phrase, cues []types.SubtitleCue, used indexSet) {
	next := 0
	for i := range phrases {
		if phrases[i].Timing != nil {
			continue
		}
		for next < len(cues) {
			if _, taken := used[next]; !taken {
				break
			}
			next++
		}
		if next >= len(cues) {
			return
		}
		used[next] = struct{}{}
		phrases[i].Timing = timingFromCue(cues[next])
	}
}

func timingFromCue(cue types.SubtitleCue) *types.Timing {
	start, end := cue.Start, cue.End
	dur := end - start
	return &types.Timing{Start: &start, End: &end, Duration: &dur}
}

// Ratio measures similarity between two texts in [0,1]: twice the longest
// common subsequence over the combined length, after normalization.
func Ratio(a, b string) float64 {
	ra := []rune(normalize(a))
	rb := []rune(normalize(b))
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return 2 * float64(lcs(ra, rb)) / float64(len(ra)+len(rb))
}

// normalize lowercases, drops punctuation and collapses whitespace so
// transcription artifacts do not dominate the comparison.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func lcs(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

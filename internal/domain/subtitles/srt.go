package subtitles

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/RenatoLagos/Create-video/internal/types"
)

var (
	reBlockSep  = regexp.MustCompile(`\n\s*\n`)
	reTimestamp = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})[,.](\d{3})$`)
)

// Parse reads sequential-cue SRT text into ordered cues. Malformed records
// are skipped with a warning instead of failing the whole file; an input
// with no parseable records yields an empty slice. Adjacent cues may overlap
// in source data and are kept as-is.
func Parse(raw string, log zerolog.Logger) []types.SubtitleCue {
	trimmed := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if trimmed == "" {
		log.Warn().Msg("subtitles: empty input")
		return nil
	}

	var cues []types.SubtitleCue
	for _, block := range reBlockSep.Split(trimmed, -1) {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			log.Warn().Str("block", firstLine(lines)).Msg("subtitles: short record skipped")
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil || id < 1 {
			log.Warn().Str("line", lines[0]).Msg("subtitles: bad cue id, record skipped")
			continue
		}

		start, end, ok := parseTimeLine(lines[1])
		if !ok || end <= start {
			log.Warn().Int("cue", id).Str("line", lines[1]).Msg("subtitles: bad time line, record skipped")
			continue
		}

		// Multi-line cue text collapses to a single display line.
		text := strings.TrimSpace(strings.Join(lines[2:], " "))
		if text == "" {
			log.Warn().Int("cue", id).Msg("subtitles: empty text, record skipped")
			continue
		}

		cues = append(cues, types.SubtitleCue{ID: id, Start: start, End: end, Text: text})
	}

	if len(cues) == 0 {
		log.Warn().Msg("subtitles: no parseable records")
	}
	return cues
}

func parseTimeLine(line string) (start, end float64, ok bool) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok = parseTimestamp(strings.TrimSpace(parts[0]))
	if !ok {
		return 0, 0, false
	}
	end, ok = parseTimestamp(strings.TrimSpace(parts[1]))
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// parseTimestamp converts HH:MM:SS,mmm to seconds without rounding.
func parseTimestamp(s string) (float64, bool) {
	m := reTimestamp.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])
	return float64(h)*3600 + float64(mi)*60 + float64(sec) + float64(ms)/1000, true
}

func firstLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

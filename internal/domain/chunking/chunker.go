package chunking

import (
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/RenatoLagos/Create-video/internal/types"
)

// Mode selects how cue text is broken into display fragments.
type Mode int

const (
	// ModeWord accumulates whole words up to MaxChars. A single word longer
	// than MaxChars becomes its own oversized chunk, never split mid-word.
	ModeWord Mode = iota
	// ModeChar scans up to MaxChars characters and backs off to the best
	// break character. Used by the lower-thirds and elegant templates.
	ModeChar
)

// Config drives chunk sizing and frame placement for one template.
type Config struct {
	MaxChars    int
	MinDuration float64
	FPS         int
	GapFrames   int
	Mode        Mode
	// WordBreakPriority lists break characters best-first for ModeChar.
	WordBreakPriority []rune
}

// Documented defaults for missing/zero config fields.
const (
	DefaultMaxChars    = 7
	DefaultMinDuration = 1.2
	DefaultFPS         = 30
)

// WithDefaults fills zero-valued fields with the documented defaults.
func (c Config) WithDefaults() Config {
	if c.MaxChars <= 0 {
		c.MaxChars = DefaultMaxChars
	}
	if c.MinDuration <= 0 {
		c.MinDuration = DefaultMinDuration
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.GapFrames < 0 {
		c.GapFrames = 0
	}
	if c.Mode == ModeChar && len(c.WordBreakPriority) == 0 {
		c.WordBreakPriority = []rune{' ', ',', '.', ';', ':'}
	}
	return c
}

// Frame quantizes seconds to a frame index. Half-away-from-zero rounding is
// used everywhere so chunk windows are reproducible.
func Frame(sec float64, fps int) int {
	return int(math.Round(sec * float64(fps)))
}

// ChunkCue splits one cue into display chunks with frame-accurate windows.
//
// The cue's duration is shared equally across fragments, each share is then
// stretched (never compressed) to MinDuration, and the accumulated GapFrames
// offset shifts later chunks. The first chunk always starts at the cue's
// start frame and the last chunk's end is forced back to the cue's end frame
// regardless of any drift the stretching introduced.
func ChunkCue(cue types.SubtitleCue, cfg Config, log zerolog.Logger) []types.Chunk {
	cfg = cfg.WithDefaults()

	text := strings.TrimSpace(cue.Text)
	if text == "" {
		log.Warn().Int("cue", cue.ID).Msg("chunking: cue has no words, skipped")
		return nil
	}

	var pieces []string
	switch cfg.Mode {
	case ModeChar:
		pieces = splitByChars(text, cfg.MaxChars, cfg.WordBreakPriority)
	default:
		pieces = splitByWords(text, cfg.MaxChars)
	}
	if len(pieces) == 0 {
		log.Warn().Int("cue", cue.ID).Msg("chunking: cue produced no fragments, skipped")
		return nil
	}

	n := len(pieces)
	share := (cue.End - cue.Start) / float64(n)

	chunks := make([]types.Chunk, 0, n)
	startSec := cue.Start
	for i, piece := range pieces {
		dur := share
		if dur < cfg.MinDuration {
			dur = cfg.MinDuration
		}
		endSec := startSec + dur

		c := types.Chunk{
			SourceCueID: cue.ID,
			Index:       i,
			Total:       n,
			Text:        piece,
			Start:       startSec,
			End:         endSec,
			StartFrame:  Frame(startSec, cfg.FPS) + i*cfg.GapFrames,
			EndFrame:    Frame(endSec, cfg.FPS) + i*cfg.GapFrames,
		}
		if i == n-1 {
			// Pin the tail to the cue boundary, overriding stretch drift.
			// This can truncate a minimum-duration stretch; the boundary wins.
			c.End = cue.End
			c.EndFrame = Frame(cue.End, cfg.FPS)
		}
		chunks = append(chunks, c)
		startSec = endSec
	}
	return chunks
}

// ChunkCues chunks every cue in file order into one flat list.
func ChunkCues(cues []types.SubtitleCue, cfg Config, log zerolog.Logger) []types.Chunk {
	var out []types.Chunk
	for _, cue := range cues {
		out = append(out, ChunkCue(cue, cfg, log)...)
	}
	return out
}

func splitByWords(text string, maxChars int) []string {
	if len([]rune(text)) <= maxChars {
		return []string{text}
	}
	words := strings.Fields(text)
	var pieces []string
	cur := ""
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		if len([]rune(cur))+1+len([]rune(w)) > maxChars {
			pieces = append(pieces, cur)
			cur = w
		} else {
			cur += " " + w
		}
	}
	if cur != "" {
		pieces = append(pieces, cur)
	}
	return pieces
}

func splitByChars(text string, maxChars int, priority []rune) []string {
	var pieces []string
	runes := []rune(text)
	for len(runes) > maxChars {
		cut := breakIndex(runes[:maxChars], priority)
		if cut <= 0 {
			// No breakable character inside the window: hard cut.
			cut = maxChars - 1
		}
		piece := strings.TrimSpace(string(runes[:cut+1]))
		if piece != "" {
			pieces = append(pieces, piece)
		}
		runes = []rune(strings.TrimLeft(string(runes[cut+1:]), " "))
	}
	if tail := strings.TrimSpace(string(runes)); tail != "" {
		pieces = append(pieces, tail)
	}
	return pieces
}

// breakIndex returns the last occurrence of the highest-priority break
// character inside the window, or -1.
func breakIndex(window []rune, priority []rune) int {
	for _, br := range priority {
		for i := len(window) - 1; i > 0; i-- {
			if window[i] == br {
				return i
			}
		}
	}
	return -1
}

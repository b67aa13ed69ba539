package chunking

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RenatoLagos/Create-video/internal/types"
)

func TestChunkCue_ShortTextSingleChunk(t *testing.T) {
	cue := types.SubtitleCue{ID: 1, Start: 2.0, End: 4.0, Text: "Hola"}
	cfg := Config{MaxChars: 7, MinDuration: 1.0, FPS: 30}

	chunks := ChunkCue(cue, cfg, zerolog.Nop())
	require.Len(t, chunks, 1)

	assert.Equal(t, "Hola", chunks[0].Text)
	assert.Equal(t, 60, chunks[0].StartFrame)
	assert.Equal(t, 120, chunks[0].EndFrame)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, 1, chunks[0].Total)
}

func TestChunkCue_WordModeGreedy(t *testing.T) {
	cue := types.SubtitleCue{ID: 1, Start: 0, End: 6.0, Text: "uno dos tres cuatro"}
	cfg := Config{MaxChars: 8, MinDuration: 0.5, FPS: 30}

	chunks := ChunkCue(cue, cfg, zerolog.Nop())
	require.Len(t, chunks, 3)
	assert.Equal(t, "uno dos", chunks[0].Text)
	assert.Equal(t, "tres", chunks[1].Text)
	assert.Equal(t, "cuatro", chunks[2].Text)
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, 3, c.Total)
	}
}

func TestChunkCue_OversizedWordOwnChunk(t *testing.T) {
	cue := types.SubtitleCue{ID: 1, Start: 0, End: 4.0, Text: "extraordinariamente si"}
	cfg := Config{MaxChars: 5, MinDuration: 0.5, FPS: 30}

	chunks := ChunkCue(cue, cfg, zerolog.Nop())
	require.Len(t, chunks, 2)
	assert.Equal(t, "extraordinariamente", chunks[0].Text)
	assert.Equal(t, "si", chunks[1].Text)
}

func TestChunkCue_NoInternalGaps(t *testing.T) {
	cue := types.SubtitleCue{ID: 1, Start: 0.7, End: 5.3, Text: "uno dos tres cuatro cinco seis"}
	cfg := Config{MaxChars: 5, MinDuration: 0.2, FPS: 30}

	chunks := ChunkCue(cue, cfg, zerolog.Nop())
	require.Greater(t, len(chunks), 1)

	assert.Equal(t, Frame(cue.Start, cfg.FPS), chunks[0].StartFrame)
	assert.Equal(t, Frame(cue.End, cfg.FPS), chunks[len(chunks)-1].EndFrame)
	for i := 1; i < len(chunks); i++ {
		assert.Equal(t, chunks[i-1].EndFrame, chunks[i].StartFrame, "chunk %d not adjacent", i)
	}
}

func TestChunkCue_MinDurationStretch(t *testing.T) {
	cue := types.SubtitleCue{ID: 1, Start: 0, End: 3.0, Text: "uno dos tres cuatro cinco seis"}
	cfg := Config{MaxChars: 5, MinDuration: 1.0, FPS: 30}

	chunks := ChunkCue(cue, cfg, zerolog.Nop())
	require.Greater(t, len(chunks), 2)
	for _, c := range chunks[:len(chunks)-1] {
		assert.GreaterOrEqual(t, c.End-c.Start, cfg.MinDuration)
	}
}

// Stretching every chunk to a minimum duration can push the tail past the
// cue, after which the boundary pin truncates it. The boundary always wins:
// the last chunk may end up shorter than the minimum.
func TestChunkCue_BoundaryPinOverridesStretch(t *testing.T) {
	cue := types.SubtitleCue{ID: 1, Start: 0, End: 2.0, Text: "uno dos tres cuatro cinco seis"}
	cfg := Config{MaxChars: 5, MinDuration: 1.0, FPS: 30}

	chunks := ChunkCue(cue, cfg, zerolog.Nop())
	require.Greater(t, len(chunks), 2)

	last := chunks[len(chunks)-1]
	assert.Equal(t, Frame(cue.End, cfg.FPS), last.EndFrame)
	assert.Equal(t, cue.End, last.End)
	assert.Less(t, last.End-last.Start, cfg.MinDuration)
}

// Scenario from the presentation contract: maxChars=5, minDuration=1.0,
// fps=30, gapFrames=2 over cue [1.0, 3.0].
func TestChunkCue_GapFramesScenario(t *testing.T) {
	cue := types.SubtitleCue{ID: 1, Start: 1.0, End: 3.0, Text: "Hola mundo, esto es una prueba"}
	cfg := Config{MaxChars: 5, MinDuration: 1.0, FPS: 30, GapFrames: 2}

	chunks := ChunkCue(cue, cfg, zerolog.Nop())
	require.GreaterOrEqual(t, len(chunks), 5)

	assert.Equal(t, 30, chunks[0].StartFrame)
	assert.Equal(t, 90, chunks[len(chunks)-1].EndFrame)

	// Gap accumulates with chunk index.
	for i, c := range chunks[:len(chunks)-1] {
		assert.Equal(t, Frame(c.Start, cfg.FPS)+i*cfg.GapFrames, c.StartFrame)
	}
}

func TestChunkCue_EmptyTextSkipped(t *testing.T) {
	cue := types.SubtitleCue{ID: 1, Start: 0, End: 1.0, Text: "   "}
	chunks := ChunkCue(cue, Config{}, zerolog.Nop())
	assert.Empty(t, chunks)
}

func TestChunkCue_Deterministic(t *testing.T) {
	cue := types.SubtitleCue{ID: 3, Start: 0.4, End: 6.6, Text: "la casa azul tiene un jardin enorme"}
	cfg := Config{MaxChars: 9, MinDuration: 0.8, FPS: 25, GapFrames: 1}

	a := ChunkCue(cue, cfg, zerolog.Nop())
	b := ChunkCue(cue, cfg, zerolog.Nop())
	assert.Equal(t, a, b)
}

func TestSplitByChars_BackOffPriority(t *testing.T) {
	pieces := splitByChars("Hello, world and more", 7, []rune{' ', ','})
	assert.Equal(t, []string{"Hello,", "world", "and", "more"}, pieces)
}

func TestSplitByChars_HardCutFallback(t *testing.T) {
	pieces := splitByChars("abcdefghij", 5, []rune{' '})
	assert.Equal(t, []string{"abcde", "fghij"}, pieces)
}

func TestChunkCue_CharModeTemplate(t *testing.T) {
	cue := types.SubtitleCue{ID: 2, Start: 0, End: 8.0, Text: "Una frase bastante larga, para el tercio inferior"}
	cfg := Config{MaxChars: 14, MinDuration: 0.5, FPS: 30, Mode: ModeChar}

	chunks := ChunkCue(cue, cfg, zerolog.Nop())
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c.Text)), cfg.MaxChars)
		assert.NotEmpty(t, c.Text)
	}
	assert.Equal(t, Frame(cue.End, cfg.FPS), chunks[len(chunks)-1].EndFrame)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	assert.Equal(t, DefaultMaxChars, cfg.MaxChars)
	assert.Equal(t, DefaultMinDuration, cfg.MinDuration)
	assert.Equal(t, DefaultFPS, cfg.FPS)
	assert.Equal(t, 0, cfg.GapFrames)
}

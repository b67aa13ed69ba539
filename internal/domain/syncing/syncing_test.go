package syncing

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RenatoLagos/Create-video/internal/types"
)

var cues = []types.SubtitleCue{
	{ID: 1, Start: 0, End: 2, Text: "Hola, como estas hoy"},
	{ID: 2, Start: 2, End: 5, Text: "vamos a aprender espanol"},
	{ID: 3, Start: 5, End: 7, Text: "gracias por ver el video"},
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("Hola mundo", "hola, mundo!"))
	assert.Equal(t, 0.0, Ratio("", "algo"))
	assert.Greater(t, Ratio("vamos a aprender", "vamos a aprender espanol"), 0.7)
	assert.Less(t, Ratio("totally unrelated words", "vamos a aprender espanol"), 0.5)
}

func TestSynchronize_Similarity(t *testing.T) {
	phrases := []types.Phrase{
		{Phrase: "Vamos a aprender español"},
		{Phrase: "Hola ¿cómo estás hoy?"},
	}
	out := Synchronize(phrases, cues, MethodSimilarity, 0.5, zerolog.Nop())
	require.Len(t, out, 2)

	require.NotNil(t, out[0].Timing)
	assert.Equal(t, 2.0, *out[0].Timing.Start)
	require.NotNil(t, out[1].Timing)
	assert.Equal(t, 0.0, *out[1].Timing.Start)
}

func TestSynchronize_SimilarityNoMatchLeavesNilTiming(t *testing.T) {
	phrases := []types.Phrase{{Phrase: "something in english entirely"}}
	out := Synchronize(phrases, cues, MethodSimilarity, 0.6, zerolog.Nop())
	assert.Nil(t, out[0].Timing)
}

func TestSynchronize_Order(t *testing.T) {
	phrases := []types.Phrase{{Phrase: "a"}, {Phrase: "b"}, {Phrase: "c"}, {Phrase: "d"}}
	out := Synchronize(phrases, cues, MethodOrder, 0, zerolog.Nop())

	require.NotNil(t, out[0].Timing)
	assert.Equal(t, 0.0, *out[0].Timing.Start)
	require.NotNil(t, out[2].Timing)
	assert.Equal(t, 5.0, *out[2].Timing.Start)
	// More phrases than cues: the tail stays unmatched.
	assert.Nil(t, out[3].Timing)
}

func TestSynchronize_HybridFillsLeftoversInOrder(t *testing.T) {
	phrases := []types.Phrase{
		{Phrase: "gracias por ver el video"},
		{Phrase: "no se parece a nada en especial xyz"},
	}
	out := Synchronize(phrases, cues, MethodHybrid, 0.6, zerolog.Nop())

	require.NotNil(t, out[0].Timing)
	assert.Equal(t, 5.0, *out[0].Timing.Start)
	// Leftover phrase takes the first unused cue.
	require.NotNil(t, out[1].Timing)
	assert.Equal(t, 0.0, *out[1].Timing.Start)
}

func TestSynchronize_DoesNotMutateInput(t *testing.T) {
	phrases := []types.Phrase{{Phrase: "gracias por ver el video"}}
	_ = Synchronize(phrases, cues, MethodHybrid, 0.6, zerolog.Nop())
	assert.Nil(t, phrases[0].Timing)
}

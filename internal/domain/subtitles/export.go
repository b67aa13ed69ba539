package subtitles

import (
	"fmt"
	"math"
	"strings"

	"github.com/RenatoLagos/Create-video/internal/types"
)

// RenderSRT writes chunks back out as sequential SRT cues, one per chunk,
// using the frame windows (gap offsets included) rather than the source cue
// times. Useful for previewing chunker output in any player.
func RenderSRT(chunks []types.Chunk, fps int) string {
	var b strings.Builder
	for i, c := range chunks {
		b.WriteString(fmt.Sprintf("%d\n", i+1))
		b.WriteString(srtTime(float64(c.StartFrame) / float64(fps)))
		b.WriteString(" --> ")
		b.WriteString(srtTime(float64(c.EndFrame) / float64(fps)))
		b.WriteString("\n")
		b.WriteString(c.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// srtTime formats seconds as HH:MM:SS,mmm.
func srtTime(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	ms := int(math.Round(sec * 1000))
	h := ms / 3600000
	ms -= h * 3600000
	m := ms / 60000
	ms -= m * 60000
	s := ms / 1000
	ms -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

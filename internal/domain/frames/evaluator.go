package frames

import (
	"github.com/RenatoLagos/Create-video/internal/domain/chunking"
	"github.com/RenatoLagos/Create-video/internal/domain/timeline"
	"github.com/RenatoLagos/Create-video/internal/types"
)

// DefaultAnimationSeconds is the fade envelope length on each side of a
// chunk's window.
const DefaultAnimationSeconds = 0.3

// FallbackDurationSeconds bounds playback when both inputs are empty so the
// renderer always has a positive frame count to work with.
const FallbackDurationSeconds = 5.0

// Evaluator answers per-frame queries against immutable chunk and timeline
// structures. Construct once, query from any number of readers; Evaluate
// never mutates state and never logs.
type Evaluator struct {
	chunks     []types.Chunk
	segments   []types.TimelineSegment
	fps        int
	animFrames int
}

// NewEvaluator builds an evaluator. animationSeconds <= 0 selects the
// default envelope.
func NewEvaluator(chunks []types.Chunk, segments []types.TimelineSegment, fps int, animationSeconds float64) *Evaluator {
	if fps <= 0 {
		fps = chunking.DefaultFPS
	}
	if animationSeconds <= 0 {
		animationSeconds = DefaultAnimationSeconds
	}
	animFrames := chunking.Frame(animationSeconds, fps)
	if animFrames < 1 {
		animFrames = 1
	}
	return &Evaluator{chunks: chunks, segments: segments, fps: fps, animFrames: animFrames}
}

// Evaluate returns the display state for one frame: the active text chunk
// with its fade progress, and the active layout (full-frame when no timeline
// segment covers the instant).
func (e *Evaluator) Evaluate(frame int) types.FrameState {
	state := types.FrameState{Frame: frame, Layout: types.LayoutFullFrame}

	if c, ok := e.activeChunk(frame); ok {
		state.Chunk = c
		state.Progress = e.progress(frame, c)
	}

	if seg, ok := timeline.ActiveAt(e.segments, float64(frame)/float64(e.fps)); ok {
		state.Layout = seg.Layout
	}
	return state
}

// activeChunk returns the first chunk in list order whose inclusive frame
// window contains frame. Chunk lists are built non-overlapping per cue, but
// cues themselves may overlap; first match keeps the answer deterministic.
func (e *Evaluator) activeChunk(frame int) (*types.Chunk, bool) {
	for i := range e.chunks {
		c := &e.chunks[i]
		if frame >= c.StartFrame && frame <= c.EndFrame {
			return c, true
		}
	}
	return nil, false
}

// progress is the fade envelope: the minimum of independent fade-in and
// fade-out ramps, each animFrames long. A chunk shorter than two ramps peaks
// below 1 but never goes negative or above 1.
func (e *Evaluator) progress(frame int, c *types.Chunk) float64 {
	fadeIn := clamp01(float64(frame-c.StartFrame) / float64(e.animFrames))
	fadeOut := clamp01(float64(c.EndFrame-frame) / float64(e.animFrames))
	if fadeIn < fadeOut {
		return fadeIn
	}
	return fadeOut
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// TotalFrames derives presentation length from the furthest-reaching end
// across subtitle chunks and timeline segments, falling back to a fixed
// minimum when both are empty.
func TotalFrames(chunks []types.Chunk, segments []types.TimelineSegment, fps int) int {
	if fps <= 0 {
		fps = chunking.DefaultFPS
	}

	end := timeline.EndOf(segments)
	for _, c := range chunks {
		if c.End > end {
			end = c.End
		}
	}
	if end <= 0 {
		end = FallbackDurationSeconds
	}
	return chunking.Frame(end, fps)
}

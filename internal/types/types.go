package types

// SubtitleCue is one timed record from an SRT file. Times are seconds from
// the start of the narration track.
type SubtitleCue struct {
	ID    int
	Start float64
	End   float64
	Text  string
}

// Chunk is a bounded-length display fragment derived from exactly one cue,
// with its own frame window.
type Chunk struct {
	SourceCueID int     `json:"source_cue_id"`
	Index       int     `json:"chunk_index"`
	Total       int     `json:"total_chunks"`
	Text        string  `json:"text"`
	StartFrame  int     `json:"start_frame"`
	EndFrame    int     `json:"end_frame"`
	Start       float64 `json:"start_sec"`
	End         float64 `json:"end_sec"`
}

// Layout is the visual arrangement active while a timeline segment plays.
type Layout int

const (
	// LayoutFullFrame shows the narrator full-frame. It is also the fallback
	// for times not covered by any segment.
	LayoutFullFrame Layout = iota
	// LayoutSplitScreen shows the narrator and b-roll side by side.
	LayoutSplitScreen
	// LayoutInset shows b-roll full-frame with the narrator in an inset circle.
	LayoutInset
)

func (l Layout) String() string {
	switch l {
	case LayoutSplitScreen:
		return "split-screen"
	case LayoutInset:
		return "inset"
	default:
		return "full-frame"
	}
}

// MarshalText makes Layout render as its name in JSON output.
func (l Layout) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// TimelineSegment is a timed range tagged with a layout, independent of
// subtitle cues. SourceIndex points back at the phrase it came from, for
// traceability.
type TimelineSegment struct {
	Start       float64 `json:"start_sec"`
	End         float64 `json:"end_sec"`
	Duration    float64 `json:"duration_sec"`
	Layout      Layout  `json:"layout"`
	SourceIndex int     `json:"source_index"`
	Label       string  `json:"label"`
}

// FrameState is the per-frame answer handed to the rendering surface. It is
// derived on demand and never stored.
type FrameState struct {
	Frame    int     `json:"frame"`
	Chunk    *Chunk  `json:"chunk,omitempty"`
	Progress float64 `json:"progress"`
	Layout   Layout  `json:"layout"`
}

// SyncScript mirrors the synchronized-script JSON produced by the content
// analysis stage. Fields we do not read are left unmapped and ignored.
type SyncScript struct {
	Topic    string `json:"topic,omitempty"`
	Analysis struct {
		Phrases []Phrase `json:"phrases_with_video_prompts"`
	} `json:"analysis"`
}

// Phrase is one planned script phrase with its editing suggestion and, once
// synchronized, real timing from the narration track.
type Phrase struct {
	Phrase            string        `json:"phrase"`
	EditingSuggestion string        `json:"editing_suggestion"`
	Timing            *Timing       `json:"timing,omitempty"`
	Segmentation      *Segmentation `json:"segmentation,omitempty"`
}

// Timing carries start/end seconds for a phrase or child segment. Pointer
// fields because the synchronizer writes nulls for unmatched phrases.
type Timing struct {
	Start    *float64 `json:"start_time"`
	End      *float64 `json:"end_time"`
	Duration *float64 `json:"duration"`
}

// Segmentation describes the optional pre-split of a long phrase into
// shorter child segments. Splitting happens upstream; this core only decides
// whether to read the children or the parent range.
type Segmentation struct {
	NeedsSegmentation bool           `json:"needs_segmentation"`
	Segments          []ChildSegment `json:"segments,omitempty"`
}

// ChildSegment is one pre-split slice of a parent phrase.
type ChildSegment struct {
	Number            int     `json:"segment_number"`
	Timing            *Timing `json:"timing"`
	EditingSuggestion string  `json:"editing_suggestion"`
}

// RenderPlan is the artifact written for the rendering surface: everything
// it needs to paint the video without re-deriving timing.
type RenderPlan struct {
	ID          string            `json:"id"`
	FPS         int               `json:"fps"`
	TotalFrames int               `json:"total_frames"`
	Chunks      []Chunk           `json:"chunks"`
	Segments    []TimelineSegment `json:"segments"`
	Samples     []FrameState      `json:"frame_samples,omitempty"`
}

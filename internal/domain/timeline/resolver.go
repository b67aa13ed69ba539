package timeline

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/RenatoLagos/Create-video/internal/types"
)

// Editing-suggestion labels emitted by the content analysis stage.
const (
	LabelNarratorOnly = "Narrator only on screen"
	LabelSplitScreen  = "Narrator and video split screen"
	LabelVideoOnly    = "Video only on screen"
)

// LayoutForLabel maps an editing-suggestion label to a layout. The mapping
// is total: unknown labels fall back to full-frame with a warning so a bad
// label never stops a render.
func LayoutForLabel(label string, log zerolog.Logger) types.Layout {
	switch label {
	case LabelNarratorOnly:
		return types.LayoutFullFrame
	case LabelSplitScreen:
		return types.LayoutSplitScreen
	case LabelVideoOnly:
		return types.LayoutInset
	default:
		log.Warn().Str("label", label).Msg("timeline: unknown editing suggestion, using full-frame")
		return types.LayoutFullFrame
	}
}

// Resolve flattens synchronized phrases into a layout timeline sorted by
// start time. Phrases pre-split upstream contribute their child segments;
// everything else contributes its own range. Records without usable timing
// are skipped with a warning, never a parse failure.
func Resolve(phrases []types.Phrase, log zerolog.Logger) []types.TimelineSegment {
	var segs []types.TimelineSegment
	for i, p := range phrases {
		if p.Segmentation != nil && p.Segmentation.NeedsSegmentation && len(p.Segmentation.Segments) > 0 {
			for _, child := range p.Segmentation.Segments {
				seg, ok := buildSegment(child.Timing, child.EditingSuggestion, i, log)
				if !ok {
					log.Warn().Int("phrase", i).Int("segment", child.Number).Msg("timeline: child segment without timing, skipped")
					continue
				}
				segs = append(segs, seg)
			}
			continue
		}

		seg, ok := buildSegment(p.Timing, p.EditingSuggestion, i, log)
		if !ok {
			log.Warn().Int("phrase", i).Str("phrase_text", p.Phrase).Msg("timeline: phrase without timing, skipped")
			continue
		}
		segs = append(segs, seg)
	}

	// Stable keeps source order on equal start times, which the active-
	// segment tie-break depends on.
	sort.SliceStable(segs, func(a, b int) bool { return segs[a].Start < segs[b].Start })
	return segs
}

func buildSegment(t *types.Timing, label string, sourceIndex int, log zerolog.Logger) (types.TimelineSegment, bool) {
	if t == nil || t.Start == nil || t.End == nil || *t.End <= *t.Start {
		return types.TimelineSegment{}, false
	}
	return types.TimelineSegment{
		Start:       *t.Start,
		End:         *t.End,
		Duration:    *t.End - *t.Start,
		Layout:      LayoutForLabel(label, log),
		SourceIndex: sourceIndex,
		Label:       label,
	}, true
}

// ActiveAt returns the first sorted segment whose inclusive range contains
// t. When ranges overlap the earliest-starting segment wins; when nothing
// contains t the second result is false and callers default to full-frame.
func ActiveAt(segs []types.TimelineSegment, t float64) (types.TimelineSegment, bool) {
	for _, s := range segs {
		if t >= s.Start && t <= s.End {
			return s, true
		}
		if s.Start > t {
			// Sorted ascending: no later segment can contain t either.
			break
		}
	}
	return types.TimelineSegment{}, false
}

// EndOf reports the furthest-reaching end time across the timeline.
func EndOf(segs []types.TimelineSegment) float64 {
	var end float64
	for _, s := range segs {
		if s.End > end {
			end = s.End
		}
	}
	return end
}

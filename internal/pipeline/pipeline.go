package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RenatoLagos/Create-video/internal/config"
	"github.com/RenatoLagos/Create-video/internal/domain/chunking"
	"github.com/RenatoLagos/Create-video/internal/domain/frames"
	"github.com/RenatoLagos/Create-video/internal/domain/subtitles"
	"github.com/RenatoLagos/Create-video/internal/domain/syncing"
	"github.com/RenatoLagos/Create-video/internal/domain/timeline"
	"github.com/RenatoLagos/Create-video/internal/types"
)

// Artifact names the rendering surface looks for.
const (
	PlanFile       = "render_plan.json"
	ChunkedSRTFile = "chunked_subtitles.srt"
)

type Config struct {
	SubtitlesPath string
	ScriptPath    string
	OutDir        string

	// TemplatesPath optionally points at a YAML file overriding the built-in
	// chunking templates.
	TemplatesPath string
	Template      string

	SyncMethod  string
	SampleEvery int

	Logger zerolog.Logger
}

func (c Config) Validate() error {
	if c.SubtitlesPath == "" {
		return errors.New("subtitles path is empty")
	}
	if _, err := os.Stat(c.SubtitlesPath); err != nil {
		return fmt.Errorf("stat subtitles: %w", err)
	}
	if c.SampleEvery < 0 {
		return fmt.Errorf("sample interval must be >= 0")
	}
	switch syncing.Method(c.SyncMethod) {
	case "", syncing.MethodSimilarity, syncing.MethodOrder, syncing.MethodHybrid:
	default:
		return fmt.Errorf("unknown sync method %q", c.SyncMethod)
	}
	return nil
}

// Run assembles the render plan: parse subtitles, attach timing to script
// phrases, resolve the layout timeline, chunk every cue, and write the plan
// JSON for the rendering surface. Content problems degrade (skip + warn);
// only unreadable inputs and unwritable output return errors.
func Run(cfg Config) (types.RenderPlan, error) {
	log := cfg.Logger

	set, err := config.Load(cfg.TemplatesPath, log)
	if err != nil {
		return types.RenderPlan{}, err
	}
	tpl := set.Get(cfg.Template)
	chunkCfg := tpl.ChunkConfig()

	raw, err := os.ReadFile(cfg.SubtitlesPath)
	if err != nil {
		return types.RenderPlan{}, fmt.Errorf("read subtitles: %w", err)
	}
	cues := subtitles.Parse(string(raw), log)
	log.Info().Int("cues", len(cues)).Str("file", cfg.SubtitlesPath).Msg("pipeline: subtitles parsed")

	phrases := loadPhrases(cfg.ScriptPath, log)
	if missingTiming(phrases) && len(cues) > 0 {
		phrases = syncing.Synchronize(phrases, cues, syncing.Method(cfg.SyncMethod), 0, log)
	}

	segs := timeline.Resolve(phrases, log)
	chunks := chunking.ChunkCues(cues, chunkCfg, log)
	total := frames.TotalFrames(chunks, segs, chunkCfg.FPS)

	plan := types.RenderPlan{
		ID:          uuid.NewString(),
		FPS:         chunkCfg.FPS,
		TotalFrames: total,
		Chunks:      chunks,
		Segments:    segs,
	}
	if plan.Chunks == nil {
		plan.Chunks = []types.Chunk{}
	}
	if plan.Segments == nil {
		plan.Segments = []types.TimelineSegment{}
	}

	if cfg.SampleEvery > 0 {
		ev := frames.NewEvaluator(plan.Chunks, plan.Segments, chunkCfg.FPS, tpl.AnimationSeconds)
		for f := 0; f <= total; f += cfg.SampleEvery {
			plan.Samples = append(plan.Samples, ev.Evaluate(f))
		}
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return types.RenderPlan{}, err
	}
	b, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return types.RenderPlan{}, fmt.Errorf("marshal plan: %w", err)
	}
	path := filepath.Join(outDir, PlanFile)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return types.RenderPlan{}, err
	}

	if len(plan.Chunks) > 0 {
		// Preview artifact: the chunked subtitles as plain SRT.
		srt := subtitles.RenderSRT(plan.Chunks, chunkCfg.FPS)
		if err := os.WriteFile(filepath.Join(outDir, ChunkedSRTFile), []byte(srt), 0o644); err != nil {
			return types.RenderPlan{}, err
		}
	}

	log.Info().
		Str("plan", plan.ID).
		Int("chunks", len(plan.Chunks)).
		Int("segments", len(plan.Segments)).
		Int("total_frames", plan.TotalFrames).
		Str("path", path).
		Msg("pipeline: render plan written")
	return plan, nil
}

// loadPhrases reads the synchronized-script JSON. A missing path or
// undecodable document degrades to zero phrases: the video still renders,
// full-frame throughout.
func loadPhrases(path string, log zerolog.Logger) []types.Phrase {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("pipeline: script unreadable, continuing without timeline")
		return nil
	}
	var script types.SyncScript
	if err := json.Unmarshal(raw, &script); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("pipeline: script not valid JSON, continuing without timeline")
		return nil
	}
	return script.Analysis.Phrases
}

func missingTiming(phrases []types.Phrase) bool {
	for _, p := range phrases {
		if p.Timing == nil {
			return true
		}
	}
	return false
}

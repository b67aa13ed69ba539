package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/RenatoLagos/Create-video/internal/logging"
	"github.com/RenatoLagos/Create-video/internal/pipeline"
)

func run(cmd *cobra.Command, subtitlesPath string) error {
	scriptPath, _ := cmd.Flags().GetString("script")
	outDir, _ := cmd.Flags().GetString("out")
	template, _ := cmd.Flags().GetString("template")
	templatesPath, _ := cmd.Flags().GetString("templates")
	syncMethod, _ := cmd.Flags().GetString("sync")
	sampleEvery, _ := cmd.Flags().GetInt("sample")
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")

	logger := logging.New(logging.Config{Level: logLevel, Format: logFormat, Output: "stderr"})

	absSubs, err := filepath.Abs(subtitlesPath)
	if err != nil {
		return err
	}
	if scriptPath != "" {
		if scriptPath, err = filepath.Abs(scriptPath); err != nil {
			return err
		}
	}

	cfg := pipeline.Config{
		SubtitlesPath: absSubs,
		ScriptPath:    scriptPath,
		OutDir:        outDir,
		TemplatesPath: templatesPath,
		Template:      template,
		SyncMethod:    syncMethod,
		SampleEvery:   sampleEvery,
		Logger:        logger,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	_, err = pipeline.Run(cfg)
	return err
}

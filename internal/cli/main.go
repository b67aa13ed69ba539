package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "createvideo <subtitles.srt>",
		Short:        "Build the render plan for a short-form video from subtitles and a synchronized script",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("script", "", "Synchronized script JSON with editing suggestions")
	root.Flags().String("out", "out", "Output directory")
	root.Flags().String("template", getenvDefault("CHUNK_TEMPLATE", "default"), "Chunking template name")
	root.Flags().String("templates", "", "YAML file overriding built-in templates")
	root.Flags().String("sync", "hybrid", "Script synchronization method: similarity, order, hybrid")
	root.Flags().Int("sample", 0, "Embed every N-th frame state in the plan (0 disables)")
	root.Flags().String("log-level", getenvDefault("LOG_LEVEL", "info"), "Log level")
	root.Flags().String("log-format", "console", "Log format: console or json")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

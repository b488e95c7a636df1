package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmmoran/ctorlite/pkg/action/snapshot"
	"github.com/cmmoran/ctorlite/pkg/parser"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var (
		options      = parser.NewOptions()
		manifestPath string
		version      string
	)

	snapCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "generate constructors and record the run",
		Long:  "Run the generator and record the generated file in the manifest under a version",
		Run: func(c *cobra.Command, args []string) {
			file, err := snapshot.Generate(options, manifestPath, version)
			if err != nil {
				slog.With("error", err).Error("snapshot failed")
				os.Exit(1)
			}
			slog.With("file", file, "version", version).Info("snapshot recorded")
		},
	}
	snapCmd.PersistentFlags().StringVarP(&options.InDir, "input-directory", "i", ".", "directory to scan")
	snapCmd.PersistentFlags().StringVarP(&options.OutDir, "output-directory", "o", "", "directory to write generated constructors (defaults to input directory)")
	snapCmd.PersistentFlags().StringVarP(&options.OutFile, "output-file", "f", "ctor_gen.go", "output file where constructors will be written")
	snapCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", ".ctorlite-manifest.yaml", "manifest file recording generations")
	snapCmd.PersistentFlags().StringVarP(&version, "version", "v", "", "version to record the generation under")
	cobra.OnInitialize(options.Normalize)

	diffCmd := &cobra.Command{
		Use:   "diff",
		Short: "diff the current generation against the previous one",
		Run: func(c *cobra.Command, args []string) {
			diff, err := snapshot.DiffCurrentWithPrevious(manifestPath)
			if err != nil {
				slog.With("error", err).Error("diff failed")
				os.Exit(1)
			}
			fmt.Println(diff)
		},
	}
	snapCmd.AddCommand(diffCmd)

	return snapCmd
}

package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmmoran/ctorlite/pkg/action/initialize"
	"github.com/cmmoran/ctorlite/pkg/parser"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	options := parser.NewOptions()

	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate constructors",
		Long:  "Scan a directory for annotated structs and generate their constructor functions",
		Run: func(c *cobra.Command, args []string) {
			res, err := initialize.Generate(options)
			if err != nil {
				slog.With("error", err).Error("generation finished with diagnostics")
			}
			if res != nil && res.File != "" {
				slog.With("file", res.File, "constructors", len(res.Constructors)).Info("generated")
			}
			if err != nil {
				os.Exit(1)
			}
		},
	}
	genCmd.PersistentFlags().StringVarP(&options.InDir, "input-directory", "i", ".", "directory to scan")
	genCmd.PersistentFlags().StringVarP(&options.OutDir, "output-directory", "o", "", "directory to write generated constructors (defaults to input directory)")
	genCmd.PersistentFlags().StringVarP(&options.OutFile, "output-file", "f", "ctor_gen.go", "output file where constructors will be written")
	genCmd.PersistentFlags().StringVar(&options.Tag, "tag", "ctor", "struct tag key carrying field directives")
	genCmd.PersistentFlags().StringVar(&options.Marker, "marker", "ctorlite:constructor", "doc-comment marker selecting structs")
	genCmd.PersistentFlags().StringSliceVarP(&options.ExcludeTypes, "exclude-types", "t", []string{}, "exclude named types from generation")
	cobra.OnInitialize(options.Normalize)

	return genCmd
}

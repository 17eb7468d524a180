package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/divVerent/midisheet/internal/processor"
	"github.com/divVerent/midisheet/internal/version"
)

// DefaultConfigFile is read if present and no other config file is named.
const DefaultConfigFile = "midisheet.yml"

var (
	configFile string
	verbose    bool
	overrides  processor.Config
)

var rootCmd = &cobra.Command{
	Use:           "midisheet",
	Short:         "Converts MIDI files to note sheets",
	Long:          `Converts the note events of every track of a MIDI file into a sheet of notes positioned in beats.`,
	Version:       version.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Prefix:          "midisheet",
			ReportTimestamp: true,
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
		cmd.SetContext(log.WithContext(cmd.Context(), logger))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file name (YAML), default "+DefaultConfigFile+" if it exists")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log per-track details")
	flags.IntVar(&overrides.BPM, "bpm", 0, "tempo written to the sheet (default 120)")
	flags.StringVar((*string)(&overrides.Overlap), "overlap", "", "what to do with a restarted sounding pitch: discard_earlier or stack")
	flags.BoolVar(&overrides.NoteOffFirst, "note-off-first", false, "process note ends before note starts of the same tick")
	flags.IntVar(&overrides.Workers, "workers", 0, "number of tracks to reconstruct in parallel (default GOMAXPROCS)")
}

func main() {
	ctx := log.WithContext(context.Background(), log.Default())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.FromContext(ctx).Error("failed", "err", err)
		os.Exit(1)
	}
}

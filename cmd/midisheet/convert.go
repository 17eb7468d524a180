package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/divVerent/midisheet/internal/file"
)

var (
	output  string
	yamlOut bool
)

func init() {
	convertCmd.Flags().StringVarP(&output, "output", "o", file.DefaultOutput, "output file name, - for standard output")
	convertCmd.Flags().BoolVarP(&yamlOut, "yaml", "y", false, "write YAML instead of JSON (default from the output file extension)")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <input.mid>",
	Short: "Converts a MIDI file to a sheet",
	Long: `Converts a MIDI file to a sheet. Inputs ending in .age are decrypted with the configured
password, the ` + PasswordEnv + ` environment variable, or a password read from the terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		config, err := loadConfig()
		if err != nil {
			return err
		}
		options := file.Options{
			Input:  args[0],
			Output: output,
			Format: file.FormatFor(output),
		}
		if yamlOut {
			options.Format = file.YAML
		}

		fsys, name := dirFS(options.Input)
		result, err := file.Process(ctx, fsys, config, name, askPassword)
		if err != nil {
			return err
		}

		if options.Output == file.Stdout {
			return file.WriteSheet(os.Stdout, result.Sheet, options.Format)
		}
		err = file.WriteSheetFile(options.Output, result.Sheet, options.Format)
		if err != nil {
			return err
		}
		log.FromContext(ctx).Infof("All tracks extracted from %s to %s", options.Input, options.Output)
		return nil
	},
}

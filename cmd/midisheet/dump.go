package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jeandeaual/go-locale"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/divVerent/midisheet/internal/file"
	"github.com/divVerent/midisheet/internal/processor"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump <input.mid>",
	Short: "Describes the tracks of a MIDI file",
	Long:  `Describes the tracks of a MIDI file: what each one contains, which notes it yields and which note events are dropped.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		config, err := loadConfig()
		if err != nil {
			return err
		}
		fsys, name := dirFS(args[0])
		pw := askPassword
		if config.Password != "" {
			pw = func(string) (string, error) {
				return config.Password, nil
			}
		}
		mid, err := file.ReadMIDI(fsys, name, pw)
		if err != nil {
			return err
		}
		tpb, err := processor.TicksPerBeat(mid)
		if err != nil {
			return err
		}
		summaries, err := processor.Summarize(mid, config)
		if err != nil {
			return err
		}
		tempos, err := processor.Tempos(mid)
		if err != nil {
			return err
		}
		p := message.NewPrinter(userLanguage(log.FromContext(ctx)))
		dump(os.Stdout, p, args[0], tpb, summaries, tempos)
		return nil
	},
}

// userLanguage picks the first detected locale that parses.
func userLanguage(logger *log.Logger) language.Tag {
	locs, err := locale.GetLocales()
	if err != nil {
		logger.Debug("could not detect locales - working without", "err", err)
	}
	for _, loc := range locs {
		lang, err := language.Parse(loc)
		if err != nil {
			continue
		}
		return lang
	}
	return language.English
}

func dump(w io.Writer, p *message.Printer, name string, tpb int, summaries []processor.TrackSummary, tempos []processor.TempoChange) {
	p.Fprintf(w, "%s: %d tracks, %d ticks per beat.\n", name, len(summaries), tpb)
	for _, t := range tempos {
		p.Fprintf(w, "  track %d @ %d: tempo %.2f bpm (ignored).\n", t.Track, t.Time, t.BPM)
	}
	var total processor.Stats
	for _, s := range summaries {
		label := processor.InstrumentName(s.Index)
		if s.Name != "" {
			label = fmt.Sprintf("%s (%q)", label, s.Name)
		}
		p.Fprintf(w, "%s: %d events, %d note events, %d ticks.\n", label, s.Events, s.NoteEvents, s.Length)
		p.Fprintf(w, "  %d notes; dropped %d restarted, %d orphan ends, %d unterminated, %d invalid.\n",
			s.Stats.Notes, s.Stats.Discarded, s.Stats.Orphaned, s.Stats.Unterminated, s.Stats.Invalid)
		if s.Stats.Notes == 0 {
			p.Fprintf(w, "  omitted from the sheet.\n")
		}
		total.Add(s.Stats)
	}
	p.Fprintf(w, "total: %d notes, %d dropped.\n", total.Notes, total.Dropped())
}

package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"prosecoach/internal/db"
	"prosecoach/internal/ingest"
	"prosecoach/internal/pipeline"
)

func newBatchCmd(root *rootFlags) *cobra.Command {
	var (
		workers int
		save    bool
	)
	cmd := &cobra.Command{
		Use:   "batch <files...>",
		Short: "Analyze several documents in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := root.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				env.cfg.Workers = workers
				if err := env.cfg.Validate(); err != nil {
					return err
				}
			}

			docs := make([]pipeline.Document, 0, len(args))
			failed := 0
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DOCUMENT\tSENTENCES\tWORDS\tHARD\tVERY HARD\tSCORE\tERROR")
			for _, path := range args {
				parsed, err := ingest.ParseFile(path)
				if err != nil {
					failed++
					fmt.Fprintf(w, "%s\t-\t-\t-\t-\t-\t%v\n", filepath.Base(path), err)
					continue
				}
				docs = append(docs, pipeline.Document{Name: path, Text: parsed.Text})
			}

			analyzer := newDocumentAnalyzer(env)
			outcomes := pipeline.AnalyzeDocuments(cmd.Context(), docs, env.cfg.Workers, pipeline.Analyze(analyzer))

			var dbPath string
			if save {
				if dbPath, err = env.resolveDBPath(); err != nil {
					return err
				}
			}
			for _, o := range outcomes {
				name := filepath.Base(o.Document.Name)
				if o.Err != nil {
					failed++
					fmt.Fprintf(w, "%s\t-\t-\t-\t-\t-\t%v\n", name, o.Err)
					continue
				}
				c := o.Result.Counters
				score := "-"
				if o.Result.Mode != nil {
					score = fmt.Sprint(o.Result.Mode.Score)
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t\n", name, c.Sentences, c.Words, c.HardSentences, c.VeryHardSentences, score)

				if save {
					rec := db.RunRecord{
						ID:             o.Result.RunID,
						Source:         o.Document.Name,
						Mode:           o.Result.Settings.Mode,
						PassiveVariant: o.Result.Settings.PassiveVariant,
						Counters:       c,
					}
					if o.Result.Mode != nil {
						s := o.Result.Mode.Score
						rec.ModeScore = &s
					}
					if err := db.SaveRun(dbPath, rec); err != nil {
						return err
					}
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			env.log.Debug().Int("documents", len(args)).Int("failed", failed).Msg("batch completed")
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "documents analyzed at once (0 = number of CPUs)")
	cmd.Flags().BoolVar(&save, "save", false, "record each run in the run store")
	return cmd
}

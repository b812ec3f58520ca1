package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"prosecoach/internal/db"
)

func newHistoryCmd(root *rootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := root.setup(cmd)
			if err != nil {
				return err
			}
			dbPath, err := env.resolveDBPath()
			if err != nil {
				return err
			}
			runs, err := db.ListRuns(dbPath, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tWHEN\tSOURCE\tMODE\tSENTENCES\tHARD\tVERY HARD\tISSUES\tSCORE")
			for _, r := range runs {
				score := "-"
				if r.ModeScore != nil {
					score = fmt.Sprint(*r.ModeScore)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
					shortID(r.ID), r.CreatedAt.Local().Format(time.DateTime), r.Source, r.Mode,
					r.Sentences, r.HardSentences, r.VeryHardSentences, r.Issues, score)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to list (0 = all)")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

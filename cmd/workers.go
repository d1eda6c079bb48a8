package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// workersCmd lists every registered worker. No session needed: this is the
// marketplace's one public read.
var workersCmd = &cobra.Command{
	Use:   "workers",
	Short: "List available workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCLI(cmd.Context())
		if err != nil {
			return err
		}

		workers, err := c.gw.ListWorkers(cmd.Context())
		if err != nil {
			return err
		}
		if len(workers) == 0 {
			fmt.Println("No workers available at the moment")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tEMAIL\tRATE\tRATING\tSKILLS")
		for _, u := range workers {
			rate, rating := "-", "-"
			if u.Price != nil {
				rate = fmt.Sprintf("%.0f/hr", *u.Price)
			}
			if u.Rating != nil {
				rating = fmt.Sprintf("%.1f", *u.Rating)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.Name, u.Email, rate, rating, strings.Join(u.Skills, ", "))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(workersCmd)
}

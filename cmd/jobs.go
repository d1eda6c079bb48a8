package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse, post and apply to jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open jobs with your application status",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCLI(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.requireSession(); err != nil {
			return err
		}

		jobs, err := c.gw.ListJobs(cmd.Context(), c.sess.Token())
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			fmt.Println("No jobs available at the moment")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPOSTED BY\tAPPLIED")
		for _, j := range jobs {
			applied := ""
			if j.HasApplied {
				applied = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", j.ID, j.Title, j.CreatedBy.Name, applied)
		}
		return w.Flush()
	},
}

var jobTitle, jobDescription string

var jobsPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Publish a new job (employers)",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCLI(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.requireSession(); err != nil {
			return err
		}

		job, err := c.gw.PostJob(cmd.Context(), c.sess.Token(), jobTitle, jobDescription)
		if err != nil {
			return err
		}
		fmt.Printf("Job posted: %s (%s)\n", job.Title, job.ID)
		return nil
	},
}

var jobsApplyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a job (workers)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCLI(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.requireSession(); err != nil {
			return err
		}

		if err := c.gw.ApplyToJob(cmd.Context(), c.sess.Token(), args[0]); err != nil {
			return err
		}
		fmt.Println("Applied successfully!")
		return nil
	},
}

var applicantsCmd = &cobra.Command{
	Use:   "applicants",
	Short: "List your posted jobs with their applicants (employers)",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCLI(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.requireSession(); err != nil {
			return err
		}

		jobs, err := c.gw.MyPostedJobs(cmd.Context(), c.sess.Token())
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			fmt.Println("No applications received yet")
			return nil
		}

		for _, j := range jobs {
			fmt.Printf("%s: %d applicant(s)\n", j.Title, len(j.Applicants))
			for _, a := range j.Applicants {
				fmt.Printf("  %s <%s>  skills: %s\n", a.Name, a.Email, strings.Join(a.Skills, ", "))
			}
		}
		return nil
	},
}

func init() {
	jobsPostCmd.Flags().StringVar(&jobTitle, "title", "", "job title")
	jobsPostCmd.Flags().StringVar(&jobDescription, "description", "", "job description")

	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsPostCmd)
	jobsCmd.AddCommand(jobsApplyCmd)

	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(applicantsCmd)
}

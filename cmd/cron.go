package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"stockfilter.GO/config"
	"stockfilter.GO/cron"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := config.NewLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if jobName != "" {
			j, ok := cron.Lookup(jobName)
			if !ok {
				return fmt.Errorf("unknown job: %s", jobName)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Running cron job: %s\n", j.Name)
			j.Run(args...)
			return nil
		}

		c, err := cron.StartCron(logger)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cron scheduler started. Press Ctrl+C to exit.")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		<-c.Stop().Done()
		return nil
	},
}

var cronListCmd = &cobra.Command{
	Use:   "cron:list",
	Short: "List registered cron jobs and their schedules",
	Run: func(cmd *cobra.Command, args []string) {
		for _, j := range cron.Sorted() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", j.Name, j.Schedule)
		}
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
	rootCmd.AddCommand(cronListCmd)
}

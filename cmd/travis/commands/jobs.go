package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trvs-io/travis-client/pkg/travis"
)

// NewJobsCommand creates the jobs command group.
func NewJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jobs",
		Aliases: []string{"job"},
		Short:   "Manage jobs",
		Long:    "List, inspect, restart, and cancel Travis CI jobs and fetch their logs",
	}

	cmd.AddCommand(newJobsListCommand())
	cmd.AddCommand(newJobsGetCommand())
	cmd.AddCommand(newJobsLogCommand())
	cmd.AddCommand(newJobsRestartCommand())
	cmd.AddCommand(newJobsCancelCommand())

	return cmd
}

func newJobsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list BUILD_ID",
		Short: "List the jobs of a build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buildID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrBuildIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			jobs, err := client.Jobs().ListByBuild(context.Background(), buildID)
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}

			return outputJobs(jobs.Object)
		},
	}
}

func outputJobs(jobs []travis.Job) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(jobs)
	case OutputFormatYAML:
		return StandardYAMLRenderer(jobs)
	default:
		if len(jobs) == 0 {
			_, _ = os.Stdout.WriteString("No jobs found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Number", "State", "Queue", "Started", "Finished")

		for _, job := range jobs {
			_ = table.Append(strconv.FormatInt(job.ID, 10), job.Number, job.State,
				job.Queue, formatTime(job.StartedAt), formatTime(job.FinishedAt))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newJobsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get JOB_ID",
		Short: "Get job details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrJobIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			job, err := client.Jobs().Get(context.Background(), jobID)
			if err != nil {
				return fmt.Errorf("failed to get job: %w", err)
			}

			return outputJob(job)
		},
	}
}

func outputJob(job *travis.Job) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(job)
	case OutputFormatYAML:
		return StandardYAMLRenderer(job)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.FormatInt(job.ID, 10))
		_ = table.Append("Number", job.Number)
		_ = table.Append("State", job.State)
		_ = table.Append("Queue", job.Queue)
		_ = table.Append("Allow failure", strconv.FormatBool(job.AllowFailure))
		_ = table.Append("Started", formatTime(job.StartedAt))
		_ = table.Append("Finished", formatTime(job.FinishedAt))
		if job.Repository != nil {
			_ = table.Append("Repository", job.Repository.Slug)
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newJobsLogCommand() *cobra.Command {
	var deleteLog bool

	cmd := &cobra.Command{
		Use:   "log JOB_ID",
		Short: "Fetch the log of a job",
		Long:  "Print the accumulated log of a job, or scrub it with --delete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrJobIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var log *travis.Log
			if deleteLog {
				log, err = client.Jobs().DeleteLog(ctx, jobID)
			} else {
				log, err = client.Jobs().GetLog(ctx, jobID)
			}

			if err != nil {
				return fmt.Errorf("failed to fetch log: %w", err)
			}

			_, _ = os.Stdout.WriteString(log.Content)

			return nil
		},
	}

	cmd.Flags().BoolVar(&deleteLog, "delete", false, "remove the log instead of printing it")

	return cmd
}

func newJobsRestartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restart JOB_ID",
		Short: "Restart a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrJobIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			change, err := client.Jobs().Restart(context.Background(), jobID)
			if err != nil {
				return fmt.Errorf("failed to restart job: %w", err)
			}

			fmt.Printf("Job %d: %s\n", jobID, change.StateChange)

			return nil
		},
	}
}

func newJobsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel JOB_ID",
		Short: "Cancel a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrJobIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			change, err := client.Jobs().Cancel(context.Background(), jobID)
			if err != nil {
				return fmt.Errorf("failed to cancel job: %w", err)
			}

			fmt.Printf("Job %d: %s\n", jobID, change.StateChange)

			return nil
		},
	}
}

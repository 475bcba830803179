package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trvs-io/travis-client/internal/constants"
	"github.com/trvs-io/travis-client/pkg/travis"
)

// NewBuildsCommand creates the builds command group.
func NewBuildsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "builds",
		Aliases: []string{"build"},
		Short:   "Manage builds",
		Long:    "List, inspect, restart, and cancel Travis CI builds",
	}

	cmd.AddCommand(newBuildsListCommand())
	cmd.AddCommand(newBuildsGetCommand())
	cmd.AddCommand(newBuildsRestartCommand())
	cmd.AddCommand(newBuildsCancelCommand())
	cmd.AddCommand(newBuildsTriggerCommand())

	return cmd
}

func newBuildsListCommand() *cobra.Command {
	var (
		repo   string
		state  string
		branch string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List builds",
		Long:  "List builds of the authenticated user or of one repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildsListCommand(repo, state, branch, limit)
		},
	}

	cmd.Flags().StringVarP(&repo, "repo", "r", "", "repository slug or id")
	cmd.Flags().StringVar(&state, "state", "", "filter by build state")
	cmd.Flags().StringVar(&branch, "branch", "", "filter by branch name")
	cmd.Flags().IntVar(&limit, "limit", constants.StandardPageSize, "results per page")

	return cmd
}

func runBuildsListCommand(repo, state, branch string, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	opts := &travis.BuildListOptions{
		State:      state,
		BranchName: branch,
	}
	opts.Limit = limit

	var builds *travis.BuildList
	if repo != "" {
		builds, err = client.Builds().ListByRepo(ctx, repo, opts)
	} else {
		builds, err = client.Builds().List(ctx, opts)
	}

	if err != nil {
		return fmt.Errorf("failed to list builds: %w", err)
	}

	return outputBuilds(builds.Object)
}

func outputBuilds(builds []travis.Build) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(builds)
	case OutputFormatYAML:
		return StandardYAMLRenderer(builds)
	default:
		return renderBuildTable(builds)
	}
}

func renderBuildTable(builds []travis.Build) error {
	if len(builds) == 0 {
		_, _ = os.Stdout.WriteString("No builds found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "State", "Branch", "Duration", "Started")

	for _, build := range builds {
		branchName := NotAvailable
		if build.Branch != nil {
			branchName = build.Branch.Name
		}

		_ = table.Append(strconv.FormatInt(build.ID, 10), build.Number, build.State,
			branchName, formatDuration(build.Duration), formatTime(build.StartedAt))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newBuildsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BUILD_ID",
		Short: "Get build details",
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

			build, err := client.Builds().Get(context.Background(), buildID)
			if err != nil {
				return fmt.Errorf("failed to get build: %w", err)
			}

			return outputBuild(build)
		},
	}
}

func outputBuild(build *travis.Build) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(build)
	case OutputFormatYAML:
		return StandardYAMLRenderer(build)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.FormatInt(build.ID, 10))
		_ = table.Append("Number", build.Number)
		_ = table.Append("State", build.State)
		_ = table.Append("Event", build.EventType)
		_ = table.Append("Duration", formatDuration(build.Duration))
		_ = table.Append("Started", formatTime(build.StartedAt))
		_ = table.Append("Finished", formatTime(build.FinishedAt))
		if build.Repository != nil {
			_ = table.Append("Repository", build.Repository.Slug)
		}
		if build.Commit != nil {
			_ = table.Append("Commit", build.Commit.SHA)
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newBuildsRestartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restart BUILD_ID",
		Short: "Restart a build",
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

			change, err := client.Builds().Restart(context.Background(), buildID)
			if err != nil {
				return fmt.Errorf("failed to restart build: %w", err)
			}

			fmt.Printf("Build %d: %s\n", buildID, change.StateChange)

			return nil
		},
	}
}

func newBuildsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel BUILD_ID",
		Short: "Cancel a build",
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

			change, err := client.Builds().Cancel(context.Background(), buildID)
			if err != nil {
				return fmt.Errorf("failed to cancel build: %w", err)
			}

			fmt.Printf("Build %d: %s\n", buildID, change.StateChange)

			return nil
		},
	}
}

func newBuildsTriggerCommand() *cobra.Command {
	var (
		branch  string
		message string
	)

	cmd := &cobra.Command{
		Use:   "trigger REPO_SLUG_OR_ID",
		Short: "Trigger a build",
		Long:  "Request a new build for a repository branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Requests().Create(context.Background(), args[0], &travis.BuildRequestCreate{
				Branch:  branch,
				Message: message,
			})
			if err != nil {
				return fmt.Errorf("failed to trigger build: %w", err)
			}

			fmt.Printf("Build request accepted for %s (%d requests remaining)\n", args[0], result.RemainingRequests)

			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "master", "branch to build")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message shown with the build")

	return cmd
}

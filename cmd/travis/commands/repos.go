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

// NewReposCommand creates the repositories command group.
func NewReposCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repos",
		Aliases: []string{"repositories", "repo"},
		Short:   "Manage repositories",
		Long:    "List, inspect, activate, and star Travis CI repositories",
	}

	cmd.AddCommand(newReposListCommand())
	cmd.AddCommand(newReposGetCommand())
	cmd.AddCommand(newReposActionCommand("enable", "Activate a repository", func(ctx context.Context, client travis.Client, slug string) (*travis.Repository, error) {
		return client.Repositories().Activate(ctx, slug)
	}))
	cmd.AddCommand(newReposActionCommand("disable", "Deactivate a repository", func(ctx context.Context, client travis.Client, slug string) (*travis.Repository, error) {
		return client.Repositories().Deactivate(ctx, slug)
	}))
	cmd.AddCommand(newReposActionCommand("star", "Star a repository", func(ctx context.Context, client travis.Client, slug string) (*travis.Repository, error) {
		return client.Repositories().Star(ctx, slug)
	}))
	cmd.AddCommand(newReposActionCommand("unstar", "Unstar a repository", func(ctx context.Context, client travis.Client, slug string) (*travis.Repository, error) {
		return client.Repositories().Unstar(ctx, slug)
	}))

	return cmd
}

func newReposListCommand() *cobra.Command {
	var (
		activeOnly  bool
		starredOnly bool
		allPages    bool
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories",
		Long:  "List repositories the authenticated user has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReposListCommand(activeOnly, starredOnly, allPages, limit)
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active repositories")
	cmd.Flags().BoolVar(&starredOnly, "starred", false, "only starred repositories")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.StandardPageSize, "results per page")

	return cmd
}

func runReposListCommand(activeOnly, starredOnly, allPages bool, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}

	opts := &travis.RepositoryListOptions{}
	opts.Limit = limit
	if activeOnly {
		active := true
		opts.Active = &active
	}
	if starredOnly {
		starred := true
		opts.Starred = &starred
	}

	repos, err := client.Repositories().List(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	allRepos := repos.Object
	if allPages && repos.Pagination != nil && !repos.Pagination.IsLast {
		req, err := travis.FollowHref(repos.Href)
		if err != nil {
			return fmt.Errorf("following collection href: %w", err)
		}

		allRepos, err = travis.FetchAllPages[travis.Repository](ctx, client.Repositories(), req, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch all pages: %w", err)
		}
	}

	return outputRepositories(allRepos, repos.Pagination, allPages)
}

func outputRepositories(repos []travis.Repository, pagination *travis.Pagination, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(repos)
	case OutputFormatYAML:
		return StandardYAMLRenderer(repos)
	default:
		return renderRepositoryTable(repos, pagination, allPages)
	}
}

func renderRepositoryTable(repos []travis.Repository, pagination *travis.Pagination, allPages bool) error {
	if len(repos) == 0 {
		_, _ = os.Stdout.WriteString("No repositories found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Slug", "ID", "Active", "Private", "Starred")

	for _, repo := range repos {
		_ = table.Append(repo.Slug, strconv.FormatInt(repo.ID, 10),
			strconv.FormatBool(repo.Active),
			strconv.FormatBool(repo.Private),
			strconv.FormatBool(repo.Starred))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if !allPages && pagination != nil && !pagination.IsLast {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d repositories. Use --all to fetch all pages.\n",
			len(repos), pagination.Count)
	}

	return nil
}

func newReposGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get REPO_SLUG_OR_ID",
		Short: "Get repository details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			repo, err := client.Repositories().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get repository: %w", err)
			}

			return outputRepository(repo)
		},
	}
}

func newReposActionCommand(use, short string, action func(context.Context, travis.Client, string) (*travis.Repository, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " REPO_SLUG_OR_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			repo, err := action(context.Background(), client, args[0])
			if err != nil {
				return fmt.Errorf("failed to %s repository: %w", use, err)
			}

			fmt.Printf("Repository %s updated\n", repo.Slug)

			return nil
		},
	}
}

func outputRepository(repo *travis.Repository) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(repo)
	case OutputFormatYAML:
		return StandardYAMLRenderer(repo)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Slug", repo.Slug)
		_ = table.Append("ID", strconv.FormatInt(repo.ID, 10))
		_ = table.Append("Description", repo.Description)
		_ = table.Append("Language", repo.GithubLanguage)
		_ = table.Append("Active", strconv.FormatBool(repo.Active))
		_ = table.Append("Private", strconv.FormatBool(repo.Private))
		_ = table.Append("Starred", strconv.FormatBool(repo.Starred))
		if repo.DefaultBranch != nil {
			_ = table.Append("Default branch", repo.DefaultBranch.Name)
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

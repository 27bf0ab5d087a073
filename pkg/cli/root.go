package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/southerncoder/jirasweep/pkg/console"
	"github.com/southerncoder/jirasweep/pkg/credentials"
	"github.com/southerncoder/jirasweep/pkg/jira"
)

// Package-level version information
var (
	version = "dev"
)

// SetVersionInfo sets the version reported by the root command.
func SetVersionInfo(v string) {
	version = v
}

// GetVersion returns the current version
func GetVersion() string {
	return version
}

// NewRootCmd builds the jirasweep command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jirasweep",
		Short: "Clean up saved Jira filters and agile boards",
		Long: `jirasweep lists, searches, and deletes saved search filters and agile
boards on a Jira instance (Atlassian Cloud or Red Hat Jira).

Credentials resolve from environment variables, then
~/.config/jirasweep/config.yml, then interactive prompts:

  JIRA_URL          Jira instance URL (e.g. https://company.atlassian.net)
  JIRA_USERNAME     Username or email (JIRA_EMAIL and JIRA_USER also work)
  JIRA_API_TOKEN    API token or personal access token (JIRA_TOKEN also works)
  JIRA_BOARD_FILTER Default board-name filter for "boards search"

Red Hat Jira (issues.redhat.com) is auto-detected and switches the client to
Bearer personal-access-token authentication.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewFiltersCommand())
	rootCmd.AddCommand(NewBoardsCommand())
	rootCmd.AddCommand(NewAuthCommand())

	return rootCmd
}

// clientFromCommand resolves credentials and builds the API client shared by
// all commands.
func clientFromCommand(cmd *cobra.Command) (*jira.Client, error) {
	resolver := &credentials.Resolver{}
	creds, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}

	client := jira.New(creds.URL, creds.Username, creds.Token)
	verbose, _ := cmd.Flags().GetBool("verbose")
	console.LogVerbose(verbose, fmt.Sprintf("Connected to %s (%s auth)", client.BaseURL(), client.Auth()))
	return client, nil
}

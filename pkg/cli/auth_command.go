package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/southerncoder/jirasweep/pkg/console"
	"github.com/southerncoder/jirasweep/pkg/jira"
	"github.com/southerncoder/jirasweep/pkg/logger"
)

var authLog = logger.New("cli:auth")

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Jira authentication",
	}

	cmd.AddCommand(newAuthStatusSubcommand())
	return cmd
}

func newAuthStatusSubcommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Verify credentials against the Jira instance",
		Long: `Resolve credentials and call the Jira /myself endpoint to verify
they work. Prints the authenticated identity and the auth mode in use
(Basic for Atlassian Cloud, Bearer for Red Hat Jira).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromCommand(cmd)
			if err != nil {
				return err
			}
			return RunAuthStatus(cmd.Context(), client)
		},
	}
}

// RunAuthStatus probes the /myself endpoint and reports the result.
func RunAuthStatus(ctx context.Context, client *jira.Client) error {
	authLog.Printf("Probing %s", client.BaseURL())
	fmt.Fprintln(os.Stderr, console.FormatProgressMessage(fmt.Sprintf("Checking credentials against %s...", client.BaseURL())))

	user, err := client.Myself(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorWithSuggestions(
			fmt.Sprintf("authentication failed: %v", err),
			[]string{
				"check that JIRA_URL points at your instance",
				"for Atlassian Cloud, use an API token from id.atlassian.com",
				"for Red Hat Jira, use a personal access token",
			}))
		return fmt.Errorf("authentication failed")
	}

	name := user.DisplayName
	if name == "" {
		name = user.Name
	}
	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("Authenticated as %s", name)))
	if user.EmailAddress != "" {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage(fmt.Sprintf("Email: %s", user.EmailAddress)))
	}
	fmt.Fprintln(os.Stderr, console.FormatInfoMessage(fmt.Sprintf("Auth mode: %s", client.Auth())))
	return nil
}

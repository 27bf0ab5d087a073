package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/southerncoder/jirasweep/pkg/batch"
	"github.com/southerncoder/jirasweep/pkg/console"
	"github.com/southerncoder/jirasweep/pkg/jira"
	"github.com/southerncoder/jirasweep/pkg/logger"
	"github.com/southerncoder/jirasweep/pkg/sliceutil"
	"github.com/southerncoder/jirasweep/pkg/tty"
)

var filtersLog = logger.New("cli:filters")

// filterOps adapts the Jira filter endpoints to the shared deletion flow.
type filterOps struct {
	client *jira.Client
}

func (filterOps) Kind() string { return "filter" }

func (o filterOps) Details(ctx context.Context, item batch.Item) (string, error) {
	filter, err := o.client.GetFilter(ctx, item.ID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Filter details:\n")
	fmt.Fprintf(&b, "  Name:          %s\n", filter.Name)
	fmt.Fprintf(&b, "  ID:            %s\n", filter.ID)
	fmt.Fprintf(&b, "  Owner:         %s\n", filter.Owner.DisplayName)
	fmt.Fprintf(&b, "  Description:   %s\n", filter.Description)
	fmt.Fprintf(&b, "  JQL:           %s\n", filter.JQL)
	fmt.Fprintf(&b, "  Favourite:     %t\n", filter.Favourite)
	fmt.Fprintf(&b, "  Subscriptions: %d", filter.Subscriptions.Size)
	return b.String(), nil
}

func (o filterOps) Delete(ctx context.Context, item batch.Item) error {
	return o.client.DeleteFilter(ctx, item.ID)
}

// filterItems converts API filters to flow items, preserving server order.
func filterItems(filters []jira.Filter) []batch.Item {
	return sliceutil.Map(filters, func(f jira.Filter) batch.Item {
		return batch.Item{ID: f.ID, Name: f.Name}
	})
}

func printFilterTable(title string, filters []jira.Filter) {
	rows := make([][]string, 0, len(filters))
	for i, f := range filters {
		rows = append(rows, []string{strconv.Itoa(i + 1), f.Name, f.ID, f.Owner.DisplayName})
	}
	fmt.Println(console.RenderTable(console.TableConfig{
		Title:   title,
		Headers: []string{"#", "Name", "ID", "Owner"},
		Rows:    rows,
	}))
}

// FiltersConfig holds the options shared by the filter listing commands.
type FiltersConfig struct {
	// Selection supplies the delete selection non-interactively
	// (e.g. "1-3,6"). Empty prompts when a terminal is attached.
	Selection string
	// Force skips confirmation prompts.
	Force bool
}

// NewFiltersCommand creates the filters command group.
func NewFiltersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Manage saved search filters",
		Long:  `List, search, and delete saved search filters on the Jira instance.`,
	}

	cmd.AddCommand(newFiltersListSubcommand())
	cmd.AddCommand(newFiltersSearchSubcommand())
	cmd.AddCommand(newFiltersDeleteSubcommand())
	return cmd
}

func newFiltersListSubcommand() *cobra.Command {
	var config FiltersConfig

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your favourite filters",
		Long: `List the filters marked as favourite by the current user, then
optionally select some for deletion.

Examples:
  # List and pick interactively
  jirasweep filters list

  # Delete items 1-3 and 6 without prompting
  jirasweep filters list --select 1-3,6 --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromCommand(cmd)
			if err != nil {
				return err
			}
			return RunFiltersList(cmd.Context(), client, config)
		},
	}

	cmd.Flags().StringVar(&config.Selection, "select", "", "Selection of filters to delete (e.g. 1-3,6-8,10)")
	cmd.Flags().BoolVar(&config.Force, "force", false, "Skip confirmation prompts")
	return cmd
}

func newFiltersSearchSubcommand() *cobra.Command {
	var config FiltersConfig

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Search filters by name",
		Long: `Search saved filters whose name matches the given text, then
optionally select some for deletion.

Examples:
  jirasweep filters search sprint
  jirasweep filters search "old team" --select 1 --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromCommand(cmd)
			if err != nil {
				return err
			}
			return RunFiltersSearch(cmd.Context(), client, args[0], config)
		},
	}

	cmd.Flags().StringVar(&config.Selection, "select", "", "Selection of filters to delete (e.g. 1-3,6-8,10)")
	cmd.Flags().BoolVar(&config.Force, "force", false, "Skip confirmation prompts")
	return cmd
}

func newFiltersDeleteSubcommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <filter-id>...",
		Short: "Delete filters by ID",
		Long: `Delete one or more filters directly by their IDs, without listing
first. Repeated IDs are deleted once.

Examples:
  jirasweep filters delete 10042
  jirasweep filters delete 10042 10055 --force`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromCommand(cmd)
			if err != nil {
				return err
			}
			return RunFiltersDelete(cmd.Context(), client, args, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompts")
	return cmd
}

// RunFiltersList lists favourite filters and runs the deletion flow over
// the result.
func RunFiltersList(ctx context.Context, client *jira.Client, config FiltersConfig) error {
	filtersLog.Print("Listing favourite filters")
	filters, err := client.ListFavouriteFilters(ctx)
	if err != nil {
		return fmt.Errorf("failed to list filters: %w", err)
	}
	if len(filters) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("No filters found."))
		return nil
	}

	printFilterTable(fmt.Sprintf("Your Filters (%d)", len(filters)), filters)
	return maybeDeleteFilters(ctx, client, filters, config)
}

// RunFiltersSearch searches filters server-side by name and runs the
// deletion flow over the result.
func RunFiltersSearch(ctx context.Context, client *jira.Client, name string, config FiltersConfig) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("filter name must not be empty")
	}

	filtersLog.Printf("Searching filters: name=%q", name)
	filters, err := client.SearchFilters(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to search filters: %w", err)
	}
	if len(filters) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage(fmt.Sprintf("No filters found matching %q.", name)))
		return nil
	}

	printFilterTable(fmt.Sprintf("Filters matching %q (%d)", name, len(filters)), filters)
	return maybeDeleteFilters(ctx, client, filters, config)
}

// maybeDeleteFilters runs the deletion flow unless there is no selection and
// no terminal to prompt on, in which case the listing alone is the result.
func maybeDeleteFilters(ctx context.Context, client *jira.Client, filters []jira.Filter, config FiltersConfig) error {
	if config.Selection == "" && !tty.IsStdinTerminal() {
		return nil
	}
	return runDeleteFlow(ctx, filterOps{client: client}, filterItems(filters), deleteFlowOptions{
		Selection: config.Selection,
		Force:     config.Force,
	})
}

// RunFiltersDelete deletes filters directly by ID.
func RunFiltersDelete(ctx context.Context, client *jira.Client, ids []string, force bool) error {
	ids = sliceutil.Deduplicate(ids)
	filtersLog.Printf("Deleting filters by ID: %v", ids)

	items := make([]batch.Item, 0, len(ids))
	for _, id := range ids {
		filter, err := client.GetFilter(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get filter %s: %w", id, err)
		}
		items = append(items, batch.Item{ID: filter.ID, Name: filter.Name})
	}

	ops := filterOps{client: client}
	if len(items) == 1 {
		return deleteSingle(ctx, ops, items[0], force)
	}
	return deleteBatch(ctx, ops, items, force)
}

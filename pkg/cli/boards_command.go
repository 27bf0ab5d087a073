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
	"github.com/southerncoder/jirasweep/pkg/credentials"
	"github.com/southerncoder/jirasweep/pkg/jira"
	"github.com/southerncoder/jirasweep/pkg/logger"
	"github.com/southerncoder/jirasweep/pkg/sliceutil"
	"github.com/southerncoder/jirasweep/pkg/tty"
)

var boardsLog = logger.New("cli:boards")

// boardOps adapts the agile board endpoints to the shared deletion flow.
// Board IDs are numeric in the API and carried as strings in flow items.
type boardOps struct {
	client *jira.Client
}

func (boardOps) Kind() string { return "board" }

func (o boardOps) Details(ctx context.Context, item batch.Item) (string, error) {
	id, err := strconv.ParseInt(item.ID, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid board id %q: %w", item.ID, err)
	}
	board, err := o.client.GetBoard(ctx, id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Board details:\n")
	fmt.Fprintf(&b, "  Name:    %s\n", board.Name)
	fmt.Fprintf(&b, "  ID:      %d\n", board.ID)
	fmt.Fprintf(&b, "  Type:    %s\n", board.Type)
	if board.Location.Name != "" {
		fmt.Fprintf(&b, "  Project: %s (%s)", board.Location.Name, boardLocationKey(board.Location))
	} else {
		b.WriteString("  Project: N/A")
	}
	return b.String(), nil
}

func (o boardOps) Delete(ctx context.Context, item batch.Item) error {
	id, err := strconv.ParseInt(item.ID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid board id %q: %w", item.ID, err)
	}
	return o.client.DeleteBoard(ctx, id)
}

// boardLocationKey prefers the project key; some instances populate only one
// of the two key fields.
func boardLocationKey(loc jira.BoardLocation) string {
	if loc.ProjectKey != "" {
		return loc.ProjectKey
	}
	return loc.Key
}

func boardItems(boards []jira.Board) []batch.Item {
	return sliceutil.Map(boards, func(b jira.Board) batch.Item {
		return batch.Item{ID: strconv.FormatInt(b.ID, 10), Name: b.Name}
	})
}

func printBoardTable(title string, boards []jira.Board) {
	rows := make([][]string, 0, len(boards))
	for i, b := range boards {
		project := b.Location.Name
		if project == "" {
			project = "N/A"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), b.Name, strconv.FormatInt(b.ID, 10), b.Type, project})
	}
	fmt.Println(console.RenderTable(console.TableConfig{
		Title:   title,
		Headers: []string{"#", "Name", "ID", "Type", "Project"},
		Rows:    rows,
	}))
}

// BoardsConfig holds the options shared by the board listing commands.
type BoardsConfig struct {
	// Selection supplies the delete selection non-interactively.
	Selection string
	// Force skips confirmation prompts.
	Force bool
	// Type restricts listings to one board type (scrum, kanban, simple).
	Type string
	// Project restricts listings to one project key or ID.
	Project string
}

// NewBoardsCommand creates the boards command group.
func NewBoardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Manage agile boards",
		Long:  `List, search, and delete agile boards on the Jira instance.`,
	}

	cmd.AddCommand(newBoardsListSubcommand())
	cmd.AddCommand(newBoardsSearchSubcommand())
	cmd.AddCommand(newBoardsDeleteSubcommand())
	return cmd
}

func newBoardsListSubcommand() *cobra.Command {
	var config BoardsConfig

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List the agile boards visible to the current user, then optionally
select some for deletion.

Examples:
  jirasweep boards list
  jirasweep boards list --type scrum --project PAY
  jirasweep boards list --select 2,4 --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromCommand(cmd)
			if err != nil {
				return err
			}
			return RunBoardsList(cmd.Context(), client, config)
		},
	}

	cmd.Flags().StringVar(&config.Selection, "select", "", "Selection of boards to delete (e.g. 1-3,6-8,10)")
	cmd.Flags().BoolVar(&config.Force, "force", false, "Skip confirmation prompts")
	cmd.Flags().StringVar(&config.Type, "type", "", "Restrict to a board type (scrum, kanban, simple)")
	cmd.Flags().StringVar(&config.Project, "project", "", "Restrict to a project key or ID")
	return cmd
}

func newBoardsSearchSubcommand() *cobra.Command {
	var config BoardsConfig

	cmd := &cobra.Command{
		Use:   "search [pattern]",
		Short: "Search boards by name",
		Long: `Search boards whose name contains the given pattern
(case-insensitive). Without an argument the pattern comes from the
JIRA_BOARD_FILTER environment variable or the config file.

Examples:
  jirasweep boards search payments
  JIRA_BOARD_FILTER=payments jirasweep boards search`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := ""
			if len(args) > 0 {
				pattern = args[0]
			}
			client, err := clientFromCommand(cmd)
			if err != nil {
				return err
			}
			return RunBoardsSearch(cmd.Context(), client, pattern, config)
		},
	}

	cmd.Flags().StringVar(&config.Selection, "select", "", "Selection of boards to delete (e.g. 1-3,6-8,10)")
	cmd.Flags().BoolVar(&config.Force, "force", false, "Skip confirmation prompts")
	return cmd
}

func newBoardsDeleteSubcommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <board-id>...",
		Short: "Delete boards by ID",
		Long: `Delete one or more boards directly by their numeric IDs, without
listing first. Repeated IDs are deleted once.

Examples:
  jirasweep boards delete 7
  jirasweep boards delete 7 12 31 --force`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromCommand(cmd)
			if err != nil {
				return err
			}
			return RunBoardsDelete(cmd.Context(), client, args, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompts")
	return cmd
}

// RunBoardsList lists boards and runs the deletion flow over the result.
func RunBoardsList(ctx context.Context, client *jira.Client, config BoardsConfig) error {
	boardsLog.Printf("Listing boards: type=%q project=%q", config.Type, config.Project)
	boards, err := client.ListBoards(ctx, jira.BoardListOptions{
		Type:           config.Type,
		ProjectKeyOrID: config.Project,
	})
	if err != nil {
		return fmt.Errorf("failed to list boards: %w", err)
	}
	if len(boards) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("No boards found."))
		return nil
	}

	printBoardTable(fmt.Sprintf("Boards (%d)", len(boards)), boards)
	return maybeDeleteBoards(ctx, client, boards, config)
}

// RunBoardsSearch searches boards by name pattern and runs the deletion flow
// over the result. An empty pattern falls back to the configured board
// filter.
func RunBoardsSearch(ctx context.Context, client *jira.Client, pattern string, config BoardsConfig) error {
	if strings.TrimSpace(pattern) == "" {
		resolver := &credentials.Resolver{}
		var err error
		pattern, err = resolver.BoardFilter()
		if err != nil {
			return fmt.Errorf("no board filter: %w", err)
		}
	}

	boardsLog.Printf("Searching boards: pattern=%q", pattern)
	boards, err := client.SearchBoards(ctx, pattern)
	if err != nil {
		return fmt.Errorf("failed to search boards: %w", err)
	}

	// Older Jira Server builds ignore the name param on /board; narrow
	// again locally so results match on every instance.
	boards = sliceutil.Filter(boards, func(b jira.Board) bool {
		return sliceutil.ContainsIgnoreCase(b.Name, pattern)
	})

	if len(boards) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage(fmt.Sprintf("No boards found matching %q.", pattern)))
		return nil
	}

	printBoardTable(fmt.Sprintf("Boards matching %q (%d)", pattern, len(boards)), boards)
	return maybeDeleteBoards(ctx, client, boards, config)
}

func maybeDeleteBoards(ctx context.Context, client *jira.Client, boards []jira.Board, config BoardsConfig) error {
	if config.Selection == "" && !tty.IsStdinTerminal() {
		return nil
	}
	return runDeleteFlow(ctx, boardOps{client: client}, boardItems(boards), deleteFlowOptions{
		Selection: config.Selection,
		Force:     config.Force,
	})
}

// RunBoardsDelete deletes boards directly by ID.
func RunBoardsDelete(ctx context.Context, client *jira.Client, ids []string, force bool) error {
	ids = sliceutil.Deduplicate(ids)
	boardsLog.Printf("Deleting boards by ID: %v", ids)

	items := make([]batch.Item, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("board id %q is not a number", raw)
		}
		board, err := client.GetBoard(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get board %d: %w", id, err)
		}
		items = append(items, batch.Item{ID: strconv.FormatInt(board.ID, 10), Name: board.Name})
	}

	ops := boardOps{client: client}
	if len(items) == 1 {
		return deleteSingle(ctx, ops, items[0], force)
	}
	return deleteBatch(ctx, ops, items, force)
}

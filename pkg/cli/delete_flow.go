package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/southerncoder/jirasweep/pkg/batch"
	"github.com/southerncoder/jirasweep/pkg/console"
	"github.com/southerncoder/jirasweep/pkg/logger"
	"github.com/southerncoder/jirasweep/pkg/selection"
)

var flowLog = logger.New("cli:delete_flow")

// entityOps abstracts filters and boards behind one interface so the
// interactive deletion flow is written once for both entity kinds.
type entityOps interface {
	// Kind returns the singular noun used in messages ("filter", "board").
	Kind() string
	// Details renders a detail block for the single-item deletion path.
	Details(ctx context.Context, item batch.Item) (string, error)
	// Delete removes one entity.
	Delete(ctx context.Context, item batch.Item) error
}

type deleteFlowOptions struct {
	// Selection supplies the selection string non-interactively. Empty
	// means prompt for it.
	Selection string
	// Force skips all confirmation prompts.
	Force bool
}

// runDeleteFlow drives selection, confirmation, and deletion over an
// already-displayed numbered list of entities. List order is preserved
// throughout; indices from the selection prompt are 1-based positions in
// items.
func runDeleteFlow(ctx context.Context, ops entityOps, items []batch.Item, opts deleteFlowOptions) error {
	input := opts.Selection
	if input == "" {
		var err error
		input, err = promptSelection(ops.Kind(), len(items))
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Operation cancelled."))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read selection: %w", err)
		}
	}

	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("No selection made."))
		return nil
	}

	indices, err := selection.Parse(input, len(items))
	if err != nil {
		return fmt.Errorf("invalid selection: %w", err)
	}
	flowLog.Printf("Selection %q resolved to %d item(s)", input, len(indices))

	selected := make([]batch.Item, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, items[i-1])
	}

	if len(selected) == 1 {
		return deleteSingle(ctx, ops, selected[0], opts.Force)
	}
	return deleteBatch(ctx, ops, selected, opts.Force)
}

// promptSelection asks for a selection string. The validator accepts an
// empty answer (treated as "no selection") so the user can back out.
func promptSelection(kind string, maxCount int) (string, error) {
	fmt.Fprintln(os.Stderr, console.FormatInfoMessage(
		fmt.Sprintf("Selection examples: 3, 1-5, 2,4,7, 1-3,6-8,10 (max %d)", maxCount)))

	return console.PromptInputWithValidation(
		fmt.Sprintf("Select %s(s) to delete (1-%d)", kind, maxCount),
		"Leave empty to cancel",
		"e.g. 1-3,6-8,10",
		func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			_, err := selection.Parse(s, maxCount)
			return err
		})
}

// deleteSingle is the richer single-item path: show full details, confirm,
// delete.
func deleteSingle(ctx context.Context, ops entityOps, item batch.Item, force bool) error {
	details, err := ops.Details(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to get %s details: %w", ops.Kind(), err)
	}
	fmt.Fprintln(os.Stderr, details)

	if !force {
		confirmed, err := console.ConfirmAction(
			fmt.Sprintf("Delete %s %q (ID %s)?", ops.Kind(), item.Name, item.ID),
			"Yes, delete",
			"No, cancel",
		)
		if err != nil {
			return fmt.Errorf("failed to get confirmation: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Deletion cancelled."))
			return nil
		}
	}

	fmt.Fprintln(os.Stderr, console.FormatProgressMessage(fmt.Sprintf("Deleting %s %q...", ops.Kind(), item.Name)))
	if err := ops.Delete(ctx, item); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("Failed to delete %q: %v", item.Name, err)))
		return nil
	}
	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("Deleted %s %q", ops.Kind(), item.Name)))
	return nil
}

// deleteBatch confirms once for the whole list, then deletes sequentially
// with a per-item tally. A failure on one item never stops the rest.
func deleteBatch(ctx context.Context, ops entityOps, items []batch.Item, force bool) error {
	fmt.Fprintln(os.Stderr, console.FormatWarningMessage(
		fmt.Sprintf("You are about to delete %d %s(s):", len(items), ops.Kind())))
	for i, item := range items {
		fmt.Fprintf(os.Stderr, "  %2d. %s (ID: %s)\n", i+1, item.Name, item.ID)
	}

	var confirmErr error
	result := batch.Run(items,
		func(item batch.Item) bool {
			fmt.Fprintln(os.Stderr, console.FormatProgressMessage(fmt.Sprintf("Deleting: %s...", item.Name)))
			if err := ops.Delete(ctx, item); err != nil {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("Failed to delete %q: %v", item.Name, err)))
				return false
			}
			fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("%s deleted", item.Name)))
			return true
		},
		func(items []batch.Item) bool {
			if force {
				return true
			}
			confirmed, err := console.ConfirmAction(
				fmt.Sprintf("Are you sure you want to delete these %d %s(s)?", len(items), ops.Kind()),
				"Yes, delete all",
				"No, cancel",
			)
			if err != nil {
				confirmErr = err
				return false
			}
			return confirmed
		})

	if confirmErr != nil {
		return fmt.Errorf("failed to get confirmation: %w", confirmErr)
	}
	if result.Cancelled {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Batch deletion cancelled."))
		return nil
	}

	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("Successfully deleted: %d", result.Successful)))
	if result.Failed > 0 {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("Failed deletions: %d", result.Failed)))
	}
	return nil
}

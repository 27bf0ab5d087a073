//go:build !integration

package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southerncoder/jirasweep/pkg/batch"
)

// fakeOps records deletions and fails on demand.
type fakeOps struct {
	kind        string
	detailCalls []string
	deleted     []string
	failIDs     map[string]bool
}

func (f *fakeOps) Kind() string {
	if f.kind == "" {
		return "filter"
	}
	return f.kind
}

func (f *fakeOps) Details(ctx context.Context, item batch.Item) (string, error) {
	f.detailCalls = append(f.detailCalls, item.ID)
	return fmt.Sprintf("details for %s", item.Name), nil
}

func (f *fakeOps) Delete(ctx context.Context, item batch.Item) error {
	if f.failIDs[item.ID] {
		return fmt.Errorf("delete rejected")
	}
	f.deleted = append(f.deleted, item.ID)
	return nil
}

func flowItems() []batch.Item {
	return []batch.Item{
		{ID: "1001", Name: "Filter One"},
		{ID: "1002", Name: "Filter Two"},
		{ID: "1003", Name: "Filter Three"},
	}
}

func TestRunDeleteFlowBatchSelection(t *testing.T) {
	ops := &fakeOps{}
	err := runDeleteFlow(context.Background(), ops, flowItems(), deleteFlowOptions{
		Selection: "1-2",
		Force:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1001", "1002"}, ops.deleted)
	assert.Empty(t, ops.detailCalls, "batch path skips the detail fetch")
}

func TestRunDeleteFlowSingleSelection(t *testing.T) {
	ops := &fakeOps{}
	err := runDeleteFlow(context.Background(), ops, flowItems(), deleteFlowOptions{
		Selection: "2",
		Force:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1002"}, ops.deleted)
	assert.Equal(t, []string{"1002"}, ops.detailCalls, "single path shows details first")
}

func TestRunDeleteFlowDuplicatesCollapse(t *testing.T) {
	ops := &fakeOps{}
	err := runDeleteFlow(context.Background(), ops, flowItems(), deleteFlowOptions{
		Selection: "3,2-3",
		Force:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1002", "1003"}, ops.deleted, "each selected item deleted once")
}

func TestRunDeleteFlowInvalidSelection(t *testing.T) {
	ops := &fakeOps{}
	err := runDeleteFlow(context.Background(), ops, flowItems(), deleteFlowOptions{
		Selection: "0-2",
		Force:     true,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid selection")
	assert.Empty(t, ops.deleted, "nothing deleted on a bad selection")
}

func TestRunDeleteFlowOutOfRangeSelection(t *testing.T) {
	ops := &fakeOps{}
	err := runDeleteFlow(context.Background(), ops, flowItems(), deleteFlowOptions{
		Selection: "7",
		Force:     true,
	})

	require.Error(t, err)
	assert.Empty(t, ops.deleted)
}

func TestRunDeleteFlowEmptySelection(t *testing.T) {
	ops := &fakeOps{}
	err := runDeleteFlow(context.Background(), ops, flowItems(), deleteFlowOptions{
		Selection: "   ",
		Force:     true,
	})

	require.NoError(t, err)
	assert.Empty(t, ops.deleted, "blank selection means no deletion")
}

func TestRunDeleteFlowContinuesPastFailures(t *testing.T) {
	ops := &fakeOps{failIDs: map[string]bool{"1002": true}}
	err := runDeleteFlow(context.Background(), ops, flowItems(), deleteFlowOptions{
		Selection: "1-3",
		Force:     true,
	})

	require.NoError(t, err, "per-item failures are reported, not returned")
	assert.Equal(t, []string{"1001", "1003"}, ops.deleted)
}

//go:build !integration

package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeItems() []Item {
	return []Item{
		{ID: "10001", Name: "Old Sprint Filter"},
		{ID: "10002", Name: "Shared Team Filter"},
		{ID: "10003", Name: "Scratch Filter"},
	}
}

func TestRunTally(t *testing.T) {
	// Middle delete fails; the batch must continue and count it.
	outcomes := map[string]bool{"10001": true, "10002": false, "10003": true}
	var attempted []string

	result := Run(threeItems(),
		func(item Item) bool {
			attempted = append(attempted, item.ID)
			return outcomes[item.ID]
		},
		func(items []Item) bool { return true },
	)

	assert.False(t, result.Cancelled)
	assert.Equal(t, 2, result.Successful)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"10001", "10002", "10003"}, attempted,
		"all deletes attempted in list order despite the middle failure")
}

func TestRunCancelled(t *testing.T) {
	deleteCalls := 0

	result := Run(threeItems(),
		func(item Item) bool {
			deleteCalls++
			return true
		},
		func(items []Item) bool { return false },
	)

	assert.True(t, result.Cancelled, "declined confirmation reports cancelled, not a zero tally")
	assert.Zero(t, deleteCalls, "no delete calls after declined confirmation")
	assert.Empty(t, result.Outcomes)
}

func TestRunConfirmSeesFullList(t *testing.T) {
	var confirmedWith []Item

	Run(threeItems(),
		func(item Item) bool { return true },
		func(items []Item) bool {
			confirmedWith = items
			return true
		},
	)

	require.Len(t, confirmedWith, 3)
	assert.Equal(t, "10001", confirmedWith[0].ID)
}

func TestRunSingleItem(t *testing.T) {
	result := Run([]Item{{ID: "77", Name: "Solo Board"}},
		func(item Item) bool { return true },
		func(items []Item) bool { return true },
	)

	assert.Equal(t, 1, result.Successful)
	assert.Zero(t, result.Failed)
}

func TestRunCountInvariant(t *testing.T) {
	// successful + failed == len(items) for any mix of outcomes.
	items := threeItems()
	fail := map[string]bool{"10002": true, "10003": true}

	result := Run(items,
		func(item Item) bool { return !fail[item.ID] },
		func(items []Item) bool { return true },
	)

	assert.Equal(t, len(items), result.Successful+result.Failed)
	require.Len(t, result.Outcomes, len(items))
	for i, outcome := range result.Outcomes {
		assert.Equal(t, items[i].ID, outcome.Item.ID, "outcomes keep list order")
	}
}

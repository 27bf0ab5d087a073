//go:build !integration

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "jirasweep", root.Use)

	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "filters")
	assert.Contains(t, names, "boards")
	assert.Contains(t, names, "auth")

	flag := root.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should be registered")
}

func TestFiltersCommandTree(t *testing.T) {
	cmd := NewFiltersCommand()

	subs := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subs[sub.Name()] = true
	}
	assert.True(t, subs["list"])
	assert.True(t, subs["search"])
	assert.True(t, subs["delete"])
}

func TestBoardsCommandTree(t *testing.T) {
	cmd := NewBoardsCommand()

	subs := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subs[sub.Name()] = true
	}
	assert.True(t, subs["list"])
	assert.True(t, subs["search"])
	assert.True(t, subs["delete"])

	for _, sub := range cmd.Commands() {
		if sub.Name() == "list" || sub.Name() == "search" {
			assert.NotNil(t, sub.Flags().Lookup("select"), "%s should have --select", sub.Name())
			assert.NotNil(t, sub.Flags().Lookup("force"), "%s should have --force", sub.Name())
		}
	}
}

func TestVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3")
	t.Cleanup(func() { SetVersionInfo("dev") })

	assert.Equal(t, "1.2.3", GetVersion())
	assert.Equal(t, "1.2.3", NewRootCmd().Version)
}

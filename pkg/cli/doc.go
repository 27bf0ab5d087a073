// Package cli provides the command-line interface for jirasweep.
//
// This package implements the jirasweep commands using the Cobra command
// framework. It provides commands for listing, searching, and deleting saved
// Jira filters and agile boards. Each command follows consistent patterns for
// error handling, output formatting, and user interaction.
//
// # Available Commands
//
// filters - List, search, and delete saved search filters
//
// boards - List, search, and delete agile boards
//
// auth - Verify credentials against the Jira instance
//
// # Command Structure
//
// Each command follows a consistent pattern:
//  1. Command definition in *_command.go files
//  2. Runnable function (RunX) for testability
//  3. Input validation with helpful error messages
//  4. Console-formatted output using pkg/console
//  5. Comprehensive help text with examples
//
// Entity listings go to stdout; everything conversational (progress,
// confirmations, summaries) goes to stderr through pkg/console so listings
// stay pipeable.
//
// # Deletion Flow
//
// The interactive deletion flow is shared between filters and boards: a
// numbered table, a free-form selection prompt parsed by pkg/selection
// (single numbers, ranges, comma-separated lists), a confirmation, then a
// sequential batch run by pkg/batch with a success/failure tally. Declining
// the confirmation aborts before any delete call is issued.
//
// # Credentials
//
// Connection settings resolve through pkg/credentials: environment variables
// (JIRA_URL, JIRA_USERNAME/JIRA_EMAIL/JIRA_USER, JIRA_API_TOKEN/JIRA_TOKEN),
// then ~/.config/jirasweep/config.yml, then interactive prompts.
package cli

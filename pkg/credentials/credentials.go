// Package credentials resolves Jira connection settings from an ordered
// list of sources: environment variables first, then an optional YAML config
// file, then an interactive prompt. The first source that yields a value
// wins; a required value that no source can provide is an error.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/southerncoder/jirasweep/pkg/console"
	"github.com/southerncoder/jirasweep/pkg/logger"
)

var log = logger.New("credentials")

// Credentials hold everything needed to talk to one Jira instance.
type Credentials struct {
	URL      string
	Username string
	Token    string
}

// Environment variable names, in lookup order per setting. The aliases match
// what other Jira tooling commonly exports.
var (
	urlEnvVars         = []string{"JIRA_URL"}
	usernameEnvVars    = []string{"JIRA_USERNAME", "JIRA_EMAIL", "JIRA_USER"}
	tokenEnvVars       = []string{"JIRA_API_TOKEN", "JIRA_TOKEN"}
	boardFilterEnvVars = []string{"JIRA_BOARD_FILTER"}
)

// Prompter supplies interactive fallback input. It exists so tests can
// resolve credentials without a terminal.
type Prompter interface {
	Input(title, description string) (string, error)
	Secret(title, description string) (string, error)
}

type consolePrompter struct{}

func (consolePrompter) Input(title, description string) (string, error) {
	return console.PromptInput(title, description, "")
}

func (consolePrompter) Secret(title, description string) (string, error) {
	return console.PromptSecretInput(title, description)
}

// fileConfig mirrors the optional config file at
// ~/.config/jirasweep/config.yml.
type fileConfig struct {
	URL         string `yaml:"url"`
	Username    string `yaml:"username"`
	Token       string `yaml:"token"`
	BoardFilter string `yaml:"board_filter"`
}

// Resolver resolves settings through the source chain. The zero value uses
// the default config path and interactive prompts.
type Resolver struct {
	// ConfigPath overrides the config file location. Empty means the
	// default ~/.config/jirasweep/config.yml.
	ConfigPath string
	// Prompter overrides interactive input. Nil means real console prompts.
	Prompter Prompter

	fileCfg    *fileConfig
	fileLoaded bool
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "jirasweep", "config.yml")
}

func (r *Resolver) prompter() Prompter {
	if r.Prompter != nil {
		return r.Prompter
	}
	return consolePrompter{}
}

func (r *Resolver) config() *fileConfig {
	if r.fileLoaded {
		return r.fileCfg
	}
	r.fileLoaded = true

	path := r.ConfigPath
	if path == "" {
		path = DefaultConfigPath()
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Config file unreadable: %v", err)
		}
		return nil
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Config file invalid, ignoring: %v", err)
		return nil
	}
	log.Printf("Loaded config file: %s", path)
	r.fileCfg = &cfg
	return r.fileCfg
}

func fromEnv(names []string) (string, string) {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, name
		}
	}
	return "", ""
}

// resolve walks the source chain for one setting. fileValue pulls the value
// out of the parsed config file; prompt asks the user as a last resort.
func (r *Resolver) resolve(envVars []string, fileValue func(*fileConfig) string, prompt func(Prompter) (string, error)) (string, error) {
	if v, name := fromEnv(envVars); v != "" {
		log.Printf("Resolved %s from environment", name)
		return v, nil
	}
	if cfg := r.config(); cfg != nil {
		if v := strings.TrimSpace(fileValue(cfg)); v != "" {
			log.Printf("Resolved %s from config file", envVars[0])
			return v, nil
		}
	}
	value, err := prompt(r.prompter())
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required: set the environment variable or answer the prompt", envVars[0])
	}
	return value, nil
}

// Resolve produces a complete set of connection credentials, prompting for
// anything the environment and config file leave unset.
func (r *Resolver) Resolve() (*Credentials, error) {
	url, err := r.resolve(urlEnvVars,
		func(c *fileConfig) string { return c.URL },
		func(p Prompter) (string, error) {
			return p.Input("Jira URL", "e.g. https://company.atlassian.net")
		})
	if err != nil {
		return nil, err
	}

	username, err := r.resolve(usernameEnvVars,
		func(c *fileConfig) string { return c.Username },
		func(p Prompter) (string, error) {
			return p.Input("Jira username", "Your Jira username or email address")
		})
	if err != nil {
		return nil, err
	}

	token, err := r.resolve(tokenEnvVars,
		func(c *fileConfig) string { return c.Token },
		func(p Prompter) (string, error) {
			return p.Secret("Jira API token", "API token or personal access token")
		})
	if err != nil {
		return nil, err
	}

	return &Credentials{URL: url, Username: username, Token: token}, nil
}

// BoardFilter resolves the board-name filter used by board search. It is
// resolved separately because only the board search path needs it.
func (r *Resolver) BoardFilter() (string, error) {
	return r.resolve(boardFilterEnvVars,
		func(c *fileConfig) string { return c.BoardFilter },
		func(p Prompter) (string, error) {
			return p.Input("Board name filter", "Substring to match board names against")
		})
}

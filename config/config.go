// Package config holds the settings shared by the iostep commands.
//
// Defaults reproduce the stock example programs exactly, so a missing
// config file changes nothing. A file may be YAML (.yaml, .yml) or CUE
// (.cue); fields it leaves out keep their defaults.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmgilman/iostep/errors"
	"github.com/jmgilman/iostep/logging"
	"github.com/jmgilman/iostep/pipeline"
	"github.com/jmgilman/iostep/repos"
)

// Defaults used by the example programs.
const (
	DefaultUserAgent = "Mercateo/rust-for-node-developers"
	DefaultOwner     = "donaldpipowitch"
	DefaultTextURL   = "https://api.github.com/users/" + DefaultOwner
)

// Config is the full iostep configuration.
type Config struct {
	// UserAgent is sent with every HTTP request. GitHub rejects requests
	// without one.
	UserAgent string `yaml:"user_agent" json:"user_agent"`

	// Timeout bounds each HTTP exchange. Zero means no limit.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// BaseDir is the directory file paths are resolved against.
	BaseDir string `yaml:"base_dir" json:"base_dir"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// TextURL is fetched by the get command.
	TextURL string `yaml:"text_url" json:"text_url"`

	// Owner is the GitHub user whose repositories are listed.
	Owner string `yaml:"owner" json:"owner"`

	// ReposURL is the listing endpoint; "{owner}" is substituted.
	ReposURL string `yaml:"repos_url" json:"repos_url"`

	Files Files `yaml:"files" json:"files"`
}

// Files names the inputs and output of the concat command.
type Files struct {
	Hello  string `yaml:"hello" json:"hello"`
	World  string `yaml:"world" json:"world"`
	Output string `yaml:"output" json:"output"`
}

// Default returns the stock configuration.
func Default() Config {
	paths := pipeline.DefaultConcatPaths()
	return Config{
		UserAgent: DefaultUserAgent,
		BaseDir:   ".",
		LogLevel:  logging.LevelInfo.String(),
		TextURL:   DefaultTextURL,
		Owner:     DefaultOwner,
		ReposURL:  repos.DefaultURLTemplate,
		Files: Files{
			Hello:  paths.Hello,
			World:  paths.World,
			Output: paths.Output,
		},
	}
}

// ConcatPaths converts Files for pipeline.Runner.Concat.
func (f Files) ConcatPaths() pipeline.ConcatPaths {
	return pipeline.ConcatPaths{Hello: f.Hello, World: f.World, Output: f.Output}
}

// Level returns the parsed log level.
func (c Config) Level() logging.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// Validate reports every invalid field at once. The returned error has code
// errors.CodeInvalidConfig and lists offending fields under "fields".
func (c Config) Validate() error {
	var problems, fields []string
	add := func(field, format string, args ...any) {
		fields = append(fields, field)
		problems = append(problems, field+": "+fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(c.UserAgent) == "" {
		add("user_agent", "must not be empty")
	}
	if c.Timeout < 0 {
		add("timeout", "must not be negative, got %s", c.Timeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		add("log_level", "unknown level %q", c.LogLevel)
	}
	if err := checkHTTPURL(c.TextURL); err != nil {
		add("text_url", "%v", err)
	}
	if c.Owner == "" {
		add("owner", "must not be empty")
	}
	if !strings.Contains(c.ReposURL, "{owner}") {
		add("repos_url", "must contain {owner}")
	} else if err := checkHTTPURL(strings.ReplaceAll(c.ReposURL, "{owner}", "x")); err != nil {
		add("repos_url", "%v", err)
	}
	if c.Files.Hello == "" {
		add("files.hello", "must not be empty")
	}
	if c.Files.World == "" {
		add("files.world", "must not be empty")
	}
	if c.Files.Output == "" {
		add("files.output", "must not be empty")
	}

	if len(problems) == 0 {
		return nil
	}
	err := errors.New(errors.CodeInvalidConfig, "invalid configuration: "+strings.Join(problems, "; "))
	return errors.WithContext(err, "fields", fields)
}

func checkHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q", raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("expected an http or https URL, got %q", raw)
	}
	return nil
}

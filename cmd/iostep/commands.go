package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli"

	"github.com/jmgilman/iostep/config"
	"github.com/jmgilman/iostep/decode"
	"github.com/jmgilman/iostep/fs/billy"
	"github.com/jmgilman/iostep/logging"
	"github.com/jmgilman/iostep/pipeline"
	"github.com/jmgilman/iostep/repos"
	"github.com/jmgilman/iostep/transport"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Usage:  "Path to a YAML or CUE config file, relative to --dir",
			EnvVar: "IOSTEP_CONFIG",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "Log level: debug, info, warn or error. Overrides the config file",
			EnvVar: "IOSTEP_LOG_LEVEL",
		},
		cli.StringFlag{
			Name:   "dir",
			Usage:  "Directory files are read from and written to. Overrides the config file",
			EnvVar: "IOSTEP_DIR",
		},
	}
}

// env is what every command needs, built from the global flags.
type env struct {
	cfg    config.Config
	fs     *billy.FS
	logger *logging.Logger
	runner *pipeline.Runner
}

func setup(c *cli.Context) (*env, error) {
	dir := c.GlobalString("dir")

	cfg := config.Default()
	if path := c.GlobalString("config"); path != "" {
		loaded, err := config.Load(billy.NewLocal(dirOr(dir, ".")), path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dir != "" {
		cfg.BaseDir = dir
	}
	if level := c.GlobalString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(logging.Config{Level: cfg.Level(), Output: c.App.ErrWriter})
	return &env{
		cfg:    cfg,
		fs:     billy.NewLocal(cfg.BaseDir),
		logger: logger,
		runner: pipeline.NewRunner(logger),
	}, nil
}

func dirOr(dir, def string) string {
	if dir == "" {
		return def
	}
	return dir
}

func (e *env) client() *transport.Client {
	return transport.New(
		transport.WithUserAgent(e.cfg.UserAgent),
		transport.WithTimeout(e.cfg.Timeout),
		transport.WithLogger(e.logger),
	)
}

var getCommand = cli.Command{
	Name:      "get",
	Usage:     "Fetch a URL and print the body as text",
	ArgsUsage: "[url]",
	Description: `Sends one GET request, fails on a 4xx or 5xx status and prints the
body. The URL defaults to text_url from the config.`,
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}

		target := e.cfg.TextURL
		if c.NArg() > 0 {
			target = c.Args().First()
		}
		req, err := transport.NewRequest(target)
		if err != nil {
			return err
		}

		text, err := e.runner.FetchText(context.Background(), e.client(), req)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(c.App.Writer, "Response: %s\n", text)
		return nil
	},
}

var reposCommand = cli.Command{
	Name:      "repos",
	Usage:     "List a GitHub user's repositories",
	ArgsUsage: "[owner]",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "sdk",
			Usage: "Use the go-github client instead of a plain GET",
		},
		cli.StringFlag{
			Name:   "token",
			Usage:  "GitHub token, only used with --sdk",
			EnvVar: "GITHUB_TOKEN",
		},
		cli.IntFlag{
			Name:  "per-page",
			Usage: "Page size for --sdk, 1 to 100",
		},
	},
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}

		owner := e.cfg.Owner
		if c.NArg() > 0 {
			owner = c.Args().First()
		}

		var src repos.Source
		if c.Bool("sdk") {
			opts := []repos.SDKOption{
				repos.WithSDKUserAgent(e.cfg.UserAgent),
				repos.WithSDKHTTPClient(&http.Client{Timeout: e.cfg.Timeout}),
				repos.WithPerPage(c.Int("per-page")),
				repos.WithSDKLogger(e.logger),
			}
			if token := c.String("token"); token != "" {
				opts = append(opts, repos.WithToken(token))
			}
			sdk, err := repos.NewSDKSource(opts...)
			if err != nil {
				return err
			}
			src = sdk
		} else {
			src = repos.NewHTTPSource(e.client(), e.cfg.ReposURL, e.logger)
		}

		records, err := src.List(context.Background(), owner)
		if err != nil {
			return err
		}
		out, err := decode.EncodeRecords(records)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(c.App.Writer, "Result is:\n%s\n", out)
		return nil
	},
}

var readCommand = cli.Command{
	Name:      "read",
	Usage:     "Read a file and print it as text",
	ArgsUsage: "[path]",
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}

		path := e.cfg.Files.Hello
		if c.NArg() > 0 {
			path = c.Args().First()
		}

		text, err := e.runner.ReadText(context.Background(), e.fs, path)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(c.App.Writer, "Content is: %s\n", text)
		return nil
	},
}

var concatCommand = cli.Command{
	Name:  "concat",
	Usage: `Write "{hello} {world}!" from two files into a third`,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "hello", Usage: "First input file"},
		cli.StringFlag{Name: "world", Usage: "Second input file"},
		cli.StringFlag{Name: "output", Usage: "File to write"},
	},
	Action: func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}

		paths := e.cfg.Files.ConcatPaths()
		if v := c.String("hello"); v != "" {
			paths.Hello = v
		}
		if v := c.String("world"); v != "" {
			paths.World = v
		}
		if v := c.String("output"); v != "" {
			paths.Output = v
		}

		out, err := e.runner.Concat(context.Background(), e.fs, paths)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(c.App.Writer, "Wrote file '%s' with content: %s\n", paths.Output, out)
		return nil
	},
}

// Command iostep runs the fallible I/O example pipelines: fetching a URL,
// listing a user's repositories, reading a file and concatenating two files.
//
// Any failure prints a single diagnostic line to stderr and exits with
// status 1.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the app and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if err := newApp(stdout, stderr).Run(args); err != nil {
		_, _ = fmt.Fprintf(stderr, "iostep: %v\n", err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "iostep"
	app.Usage = "Run fallible I/O steps in sequence"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = globalFlags()
	app.Commands = []cli.Command{
		getCommand,
		reposCommand,
		readCommand,
		concatCommand,
	}
	// Errors are reported by run; never exit from inside the app.
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app
}

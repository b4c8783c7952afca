package pipeline

import (
	"context"
	"fmt"

	"github.com/jmgilman/iostep/decode"
	"github.com/jmgilman/iostep/fileio"
	"github.com/jmgilman/iostep/fs/core"
	"github.com/jmgilman/iostep/status"
	"github.com/jmgilman/iostep/transport"
)

// Step names used by the example pipelines.
const (
	StepTransport     = "transport"
	StepValidate      = "validate"
	StepDecodeText    = "decode-text"
	StepDecodeRecords = "decode-records"
	StepRead          = "read"
	StepReadHello     = "read-hello"
	StepReadWorld     = "read-world"
	StepFormat        = "format"
	StepWrite         = "write"
)

// Default file names for Concat.
const (
	DefaultHelloPath  = "hello.txt"
	DefaultWorldPath  = "world.txt"
	DefaultOutputPath = "hello-world.txt"
)

// ConcatPaths names the files Concat reads and writes.
type ConcatPaths struct {
	Hello  string
	World  string
	Output string
}

// DefaultConcatPaths returns hello.txt, world.txt and hello-world.txt.
func DefaultConcatPaths() ConcatPaths {
	return ConcatPaths{
		Hello:  DefaultHelloPath,
		World:  DefaultWorldPath,
		Output: DefaultOutputPath,
	}
}

func (p ConcatPaths) withDefaults() ConcatPaths {
	d := DefaultConcatPaths()
	if p.Hello == "" {
		p.Hello = d.Hello
	}
	if p.World == "" {
		p.World = d.World
	}
	if p.Output == "" {
		p.Output = d.Output
	}
	return p
}

// fetch returns the transport and validate steps, storing the response in
// resp.
func fetch(client *transport.Client, req *transport.Request, resp **transport.Response) []Step {
	return []Step{
		{Name: StepTransport, Run: func(ctx context.Context) error {
			r, err := client.Get(ctx, req)
			*resp = r
			return err
		}},
		{Name: StepValidate, Run: func(context.Context) error {
			return status.Check(*resp)
		}},
	}
}

// FetchText performs a GET, validates the status and decodes the body as
// UTF-8 text.
func (r *Runner) FetchText(ctx context.Context, client *transport.Client, req *transport.Request) (string, error) {
	var (
		resp *transport.Response
		text string
	)
	steps := append(fetch(client, req, &resp), Step{
		Name: StepDecodeText,
		Run: func(context.Context) (err error) {
			text, err = decode.Text(resp.Body)
			return err
		},
	})
	if err := r.Run(ctx, steps...); err != nil {
		return "", err
	}
	return text, nil
}

// FetchRecords performs a GET, validates the status and decodes the body as
// a JSON array of records.
func (r *Runner) FetchRecords(ctx context.Context, client *transport.Client, req *transport.Request) ([]decode.Record, error) {
	var (
		resp    *transport.Response
		records []decode.Record
	)
	steps := append(fetch(client, req, &resp), Step{
		Name: StepDecodeRecords,
		Run: func(context.Context) (err error) {
			records, err = decode.Records(resp.Body)
			return err
		},
	})
	if err := r.Run(ctx, steps...); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadText reads path whole and decodes it as UTF-8.
func (r *Runner) ReadText(ctx context.Context, fsys core.ReadFS, path string) (string, error) {
	var (
		data []byte
		text string
	)
	err := r.Run(ctx,
		Step{Name: StepRead, Run: func(context.Context) (err error) {
			data, err = fileio.ReadWholeFile(fsys, path)
			return err
		}},
		Step{Name: StepDecodeText, Run: func(context.Context) (err error) {
			text, err = decode.Text(data)
			return err
		}},
	)
	if err != nil {
		return "", err
	}
	return text, nil
}

// Greeting formats the write-files output, "{hello} {world}!". Inputs are
// used verbatim, trailing newlines included.
func Greeting(hello, world string) string {
	return fmt.Sprintf("%s %s!", hello, world)
}

// Concat reads the hello and world files, writes Greeting of the two to the
// output file and returns what was written. Empty fields in paths fall back
// to DefaultConcatPaths. Nothing is written if either read fails.
func (r *Runner) Concat(ctx context.Context, fsys core.FS, paths ConcatPaths) (string, error) {
	paths = paths.withDefaults()

	var hello, world, out string
	err := r.Run(ctx,
		Step{Name: StepReadHello, Run: func(context.Context) (err error) {
			hello, err = fileio.ReadWholeText(fsys, paths.Hello)
			return err
		}},
		Step{Name: StepReadWorld, Run: func(context.Context) (err error) {
			world, err = fileio.ReadWholeText(fsys, paths.World)
			return err
		}},
		Step{Name: StepFormat, Run: func(context.Context) error {
			out = Greeting(hello, world)
			return nil
		}},
		Step{Name: StepWrite, Run: func(context.Context) error {
			return fileio.WriteWholeText(fsys, paths.Output, out)
		}},
	)
	if err != nil {
		return "", err
	}
	return out, nil
}

package decode

import (
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/jmgilman/iostep/errors"
)

// Schema is a compiled CUE constraint that JSON documents are checked
// against. It is safe for concurrent use.
type Schema struct {
	mu     sync.Mutex
	cueCtx *cue.Context
	value  cue.Value
	name   string
}

// Issue is one schema violation.
type Issue struct {
	// Path is the field path, e.g. ["0", "name"].
	Path []string
	// Message is CUE's description of the violation.
	Message string
}

func (i Issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return strings.Join(i.Path, ".") + ": " + i.Message
}

// NewSchema compiles src. name is used in error positions.
func NewSchema(name, src string) (*Schema, error) {
	cueCtx := cuecontext.New()
	v := cueCtx.CompileString(src, cue.Filename(name))
	if err := v.Err(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to compile schema",
			map[string]any{"schema": name})
	}
	return &Schema{cueCtx: cueCtx, value: v, name: name}, nil
}

// MustSchema is NewSchema for package-level schemas known to compile.
func MustSchema(name, src string) *Schema {
	s, err := NewSchema(name, src)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks that data is JSON satisfying the schema. Every violation is
// collected; the returned error has code errors.CodeSchemaFailed and lists
// them under the "issues" context key.
func (s *Schema) Validate(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expr, err := cuejson.Extract(s.name+".json", data)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeSchemaFailed, "body is not valid JSON",
			map[string]any{"schema": s.name})
	}

	doc := s.cueCtx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return s.validationError(err, "failed to evaluate document")
	}

	unified := s.value.Unify(doc)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return s.validationError(err, "document does not match schema")
	}
	return nil
}

func (s *Schema) validationError(err error, message string) error {
	issues := extractIssues(err)
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.String()
	}
	return errors.WrapWithContext(err, errors.CodeSchemaFailed, message, map[string]any{
		"schema": s.name,
		"issues": lines,
	})
}

func extractIssues(err error) []Issue {
	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issues = append(issues, Issue{
			Path:    e.Path(),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return issues
}

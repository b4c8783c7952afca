package config

import (
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/iostep/errors"
	"github.com/jmgilman/iostep/fileio"
	"github.com/jmgilman/iostep/fs/core"
)

// schema closes the set of accepted keys for CUE files so a typo is an
// error rather than a silently ignored field.
const schema = `
#Config: {
	user_agent?: string & != ""
	timeout?:    string
	base_dir?:   string
	log_level?:  "debug" | "info" | "warn" | "warning" | "error"
	text_url?:   string
	owner?:      string
	repos_url?:  string
	files?: {
		hello?:  string
		world?:  string
		output?: string
	}
}
`

// Load reads path from fsys, applies it over Default and validates the
// result. The format is chosen by extension.
func Load(fsys core.ReadFS, path string) (Config, error) {
	data, err := fileio.ReadWholeFile(fsys, path)
	if err != nil {
		return Config{}, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return Parse(data)
	case ".cue":
		return ParseCUE(path, data)
	default:
		err := errors.Newf(errors.CodeInvalidConfig, "unsupported config format %q", ext)
		return Config{}, errors.WithContext(err, "path", path)
	}
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseCUE evaluates a CUE config, checks it against the closed config
// schema and decodes it like YAML. name is used in error positions.
func ParseCUE(name string, data []byte) (Config, error) {
	cueCtx := cuecontext.New()

	def := cueCtx.CompileString(schema, cue.Filename("config_schema.cue")).LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInternal, "failed to compile config schema")
	}

	v := cueCtx.CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		return Config{}, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to compile config",
			map[string]any{"path": name})
	}

	v = def.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return Config{}, errors.WrapWithContext(err, errors.CodeInvalidConfig, "config does not match schema",
			map[string]any{"path": name})
	}

	// JSON is valid YAML, so both formats share one decoder.
	js, err := v.MarshalJSON()
	if err != nil {
		return Config{}, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to export config",
			map[string]any{"path": name})
	}
	return Parse(js)
}

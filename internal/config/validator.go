package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/encoding/yaml"
)

//go:embed schema/config.cue
var configSchemaCUE []byte

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration files against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(configSchemaCUE, cue.Filename("config.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if def.Err() != nil {
		return nil, fmt.Errorf("looking up #Config: %w", def.Err())
	}

	return &Validator{ctx: ctx, schema: def}, nil
}

// ValidateYAML validates YAML config content. Unknown keys, wrong types
// and malformed values are reported per field. An empty document is valid.
func (v *Validator) ValidateYAML(filename string, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	file, err := yaml.Extract(filename, data)
	if err != nil {
		return ValidationErrors{{Field: filename, Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}

	value := v.ctx.BuildFile(file)
	if value.Err() != nil {
		return ValidationErrors{{Field: filename, Message: value.Err().Error()}}
	}

	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return toValidationErrors(err)
	}
	return nil
}

// ValidateFile validates the configuration file at path.
func (v *Validator) ValidateFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := v.ValidateYAML(expanded, data); err != nil {
		return err
	}

	cfg, err := NewLoader().Load(expanded)
	if err != nil {
		return err
	}
	if cfg.Docker.ProbeTimeout != "" {
		if _, err := ParseProbeTimeout(cfg.Docker.ProbeTimeout); err != nil {
			return ValidationErrors{{Field: "docker.probeTimeout", Message: err.Error()}}
		}
	}
	return nil
}

func toValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	seen := make(map[string]bool)
	for _, e := range cueerrors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "(root)"
		}
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if key := field + "\x00" + msg; !seen[key] {
			seen[key] = true
			errs = append(errs, ValidationError{Field: field, Message: msg})
		}
	}
	if len(errs) == 0 {
		errs = append(errs, ValidationError{Field: "(root)", Message: err.Error()})
	}
	return errs
}

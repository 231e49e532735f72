package objspace

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is checks against the three failure classes.
var (
	ErrResource = errors.New("resource error")
	ErrSyntax   = errors.New("syntax error")
	ErrSchema   = errors.New("schema error")
)

// ResourceError reports that the source text could not be read.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

func (e *ResourceError) Is(target error) bool { return target == ErrResource }

// SyntaxError reports text that is not well-formed TOML. Line and Column are
// 1-based and zero when the parser gave no position.
type SyntaxError struct {
	Line   int
	Column int
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse toml: line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse toml: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// SchemaErrorKind classifies a SchemaError.
type SchemaErrorKind string

const (
	MissingField         SchemaErrorKind = "missing field"
	UnknownField         SchemaErrorKind = "unknown field"
	MissingDiscriminator SchemaErrorKind = "missing discriminator"
	UnknownVariant       SchemaErrorKind = "unknown variant"
	TypeMismatch         SchemaErrorKind = "type mismatch"
	InvalidValue         SchemaErrorKind = "invalid value"
)

// SchemaError reports a well-formed document that does not match the schema.
// Path is the dotted wire path of the offending field, e.g.
// "camera.detector.edge_length".
type SchemaError struct {
	Kind   SchemaErrorKind
	Path   string
	Detail string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	return b.String()
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

func schemaErr(kind SchemaErrorKind, path, format string, args ...any) *SchemaError {
	return &SchemaError{Kind: kind, Path: path, Detail: fmt.Sprintf(format, args...)}
}

// Describe returns a short class label for err, suitable for UI badges.
func Describe(err error) string {
	var schema *SchemaError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &schema):
		return string(schema.Kind)
	case errors.Is(err, ErrSyntax):
		return "syntax error"
	case errors.Is(err, ErrResource):
		return "resource error"
	default:
		return "error"
	}
}

package riv

import (
	"errors"
	"fmt"
)

// Errors are classified by the stage that detects them (spec §7):
// SchemaError during JSON decoding, BuildError during scene compilation,
// ValidationError while parsing or validating a binary file. None of
// these are retried inside the package; they propagate to the caller as
// ordinary Go errors.

// SchemaError reports a malformed scene-description document.
type SchemaError struct {
	Path    string // JSON pointer to the offending value
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("schema error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

// Sentinel build-error codes, matched with errors.Is against BuildError.Unwrap.
var (
	ErrParse                  = errors.New("parse_error")
	ErrMissingReference       = errors.New("missing_reference")
	ErrDuplicateName          = errors.New("duplicate_name")
	ErrParentTypeMismatch     = errors.New("parent_type_mismatch")
	ErrOutOfRange             = errors.New("out_of_range")
	ErrUnsupportedType        = errors.New("unsupported_type")
	ErrInvalidEnum            = errors.New("invalid_enum")
	ErrCircularNestedArtboard = errors.New("circular_nested_artboard")
)

// BuildError reports a failure during scene compilation (spec §4.C
// Failure modes). ObjectName and ParentChain are populated when the
// error concerns a specific object in the declared scene tree.
type BuildError struct {
	Code        error  // one of the Err* sentinels above
	Detail      string // free-form detail (field name, enum value, ...)
	ObjectName  string
	ParentChain []string
}

func (e *BuildError) Error() string {
	msg := e.Code.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.ObjectName != "" {
		msg = fmt.Sprintf("%s (object %q", msg, e.ObjectName)
		if len(e.ParentChain) > 0 {
			msg += fmt.Sprintf(", parents %v", e.ParentChain)
		}
		msg += ")"
	}
	return msg
}

func (e *BuildError) Unwrap() error { return e.Code }

func missingReference(name string) *BuildError {
	return &BuildError{Code: ErrMissingReference, Detail: name}
}

func duplicateName(name string, parents []string) *BuildError {
	return &BuildError{Code: ErrDuplicateName, ObjectName: name, ParentChain: parents}
}

func parentTypeMismatch(child, parent string) *BuildError {
	return &BuildError{Code: ErrParentTypeMismatch, Detail: fmt.Sprintf("child=%s parent=%s", child, parent)}
}

func outOfRange(field string, value any) *BuildError {
	return &BuildError{Code: ErrOutOfRange, Detail: fmt.Sprintf("%s=%v", field, value)}
}

func unsupportedType(t string) *BuildError {
	return &BuildError{Code: ErrUnsupportedType, Detail: t}
}

func invalidEnum(field string, value any) *BuildError {
	return &BuildError{Code: ErrInvalidEnum, Detail: fmt.Sprintf("%s=%v", field, value)}
}

func circularNestedArtboard(name string) *BuildError {
	return &BuildError{Code: ErrCircularNestedArtboard, Detail: name}
}

func parseError(msg string) *BuildError {
	return &BuildError{Code: ErrParse, Detail: msg}
}

// Sentinel validation-error codes for the decode/validate stage.
var (
	ErrTruncatedInput          = errors.New("truncated_input")
	ErrUnknownPropertyKey      = errors.New("unknown_property_key")
	ErrBackingTypeMismatch     = errors.New("backing_type_mismatch")
	ErrInvalidUTF8InStream     = errors.New("invalid_utf8")
	ErrExcessInputAfterObjects = errors.New("excess_input_after_last_object")
	ErrImpossibleParentIndex   = errors.New("impossible_parent_index")
	ErrBadMagic                = errors.New("bad_magic")
)

// ValidationError reports a failure while parsing or validating a
// binary .riv file (spec §4.D Failure modes), located by byte offset.
type ValidationError struct {
	Code   error
	Offset int
	Detail string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s at byte offset %d", e.Code.Error(), e.Offset)
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Code }

func validationErr(code error, offset int, detail string) *ValidationError {
	return &ValidationError{Code: code, Offset: offset, Detail: detail}
}

package service

import (
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tippool/internal/export"
	"github.com/mmynk/tippool/internal/importer"
	"github.com/mmynk/tippool/internal/storage"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects the field errors of a rejected request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// err returns nil when nothing was added.
func (e *ValidationError) err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// connectError maps domain errors onto Connect codes.
func connectError(err error) *connect.Error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, importer.ErrNoScheduleSection),
		errors.Is(err, importer.ErrNoShifts),
		errors.Is(err, importer.ErrInvalidDate),
		errors.Is(err, export.ErrUnknownFormat):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

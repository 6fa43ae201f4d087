package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kevrgithub/tibianer-old/pkg/api"
)

var (
	ErrMissingPayload = errors.New("missing payload")
	ErrBadPayload     = errors.New("invalid payload")
)

// TypedHandlerFunc works on a decoded payload.
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc needs no payload (WAIT).
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload decodes and validates the payload before calling handler.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		var payload T

		if len(raw) == 0 {
			return Result{}, ErrMissingPayload
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
		}

		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("%w: %w", ErrBadPayload, err)
			}
		}

		return handler(ctx, payload)
	}
}

// WithEmptyPayload ignores whatever payload came with the command.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}

// internals/features/calendar/holidays/service/op_error.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type OpKind int

const (
	OpConflict OpKind = iota + 1
	OpNotFound
	OpInvalid
	OpInternal
)

// OpError is the structured failure of a reconciliation entry point.
// Expected failures (conflict, not-found) carry a message naming the
// offending entity/IDs so the caller can branch without stack-unwinding;
// only backend faults are OpInternal.
type OpError struct {
	Kind    OpKind
	Message string
}

func (e *OpError) Error() string { return e.Message }

func (e *OpError) StatusCode() int {
	switch e.Kind {
	case OpConflict:
		return fiber.StatusConflict
	case OpNotFound:
		return fiber.StatusNotFound
	case OpInvalid:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func conflictf(format string, args ...any) *OpError {
	return &OpError{Kind: OpConflict, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) *OpError {
	return &OpError{Kind: OpNotFound, Message: fmt.Sprintf(format, args...)}
}

func invalidf(format string, args ...any) *OpError {
	return &OpError{Kind: OpInvalid, Message: fmt.Sprintf(format, args...)}
}

func internalf(format string, args ...any) *OpError {
	return &OpError{Kind: OpInternal, Message: fmt.Sprintf(format, args...)}
}

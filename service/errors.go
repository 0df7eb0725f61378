package service

import (
	"errors"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUpstream            = errors.New("upstream error")
	ErrConflict            = errors.New("conflict")
)

// Error 业务错误，Kind 为上面的哨兵错误之一
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ValidationError(msg string) error {
	return &Error{Kind: ErrValidation, Msg: msg}
}

func NotFoundError(msg string) error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}

func InsufficientBalanceError() error {
	return &Error{Kind: ErrInsufficientBalance, Msg: "insufficient balance"}
}

func UpstreamError(msg string, err error) error {
	return &Error{Kind: ErrUpstream, Msg: msg, Err: err}
}

func ConflictError(msg string) error {
	return &Error{Kind: ErrConflict, Msg: msg}
}

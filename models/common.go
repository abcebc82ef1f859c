package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SuccessCode is the envelope code OKLink uses for a successful call
const SuccessCode = "0"

// APIResponse is the envelope shared by every OKLink endpoint
type APIResponse[T any] struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// Succeeded reports whether the upstream marked the call as successful
func (r *APIResponse[T]) Succeeded() bool {
	return r.Code == SuccessCode
}

// Err returns an *UpstreamError when the envelope carries a non-success code
func (r *APIResponse[T]) Err() error {
	if r.Succeeded() {
		return nil
	}
	return &UpstreamError{Code: r.Code, Msg: r.Msg}
}

// UpstreamError is a logical failure reported by OKLink inside a decoded envelope
type UpstreamError struct {
	Code string
	Msg  string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("oklink error %s: %s", e.Code, e.Msg)
}

// Items is the list payload carried in the data field. OKLink sends an array,
// a single object is accepted as a one-element list.
type Items[T any] []T

func (it *Items[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*it = nil
		return nil
	}

	switch trimmed[0] {
	case '{':
		var one T
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return err
		}
		*it = Items[T]{one}
		return nil
	case '[':
		var many []T
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		*it = many
		return nil
	default:
		return fmt.Errorf("data must be an object or an array, got %.20s", trimmed)
	}
}

// First returns the first element, if any
func (it Items[T]) First() (T, bool) {
	var zero T
	if len(it) == 0 {
		return zero, false
	}
	return it[0], true
}

// Page holds the paging fields OKLink repeats on every paged payload
type Page struct {
	Page      string `json:"page"`
	Limit     string `json:"limit"`
	TotalPage string `json:"totalPage"`
}

// ChainRef names the chain a payload belongs to
type ChainRef struct {
	ChainFullName  string `json:"chainFullName"`
	ChainShortName string `json:"chainShortName"`
}

// SPDX-License-Identifier: MIT

package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Output formats accepted by Encode.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// ErrUnknownFormat reports an unsupported output format.
var ErrUnknownFormat = errors.New("service: unknown format")

// Encode writes v (a *Response or a slice of them) to w. Msgpack output
// uses the same field names as JSON.
// Errors: ErrUnknownFormat, encoder errors.
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DecodeResponse reads one msgpack-encoded Response written by Encode.
func DecodeResponse(r io.Reader) (*Response, error) {
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	var resp Response
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("service: decode response: %w", err)
	}

	return &resp, nil
}

// ReadRequests parses JSON holding one Request object or an array of them.
// Unknown keys are rejected.
// Errors: ErrInvalidRequest wrapping the decoding error.
func ReadRequests(r io.Reader) ([]Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("service: read requests: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var reqs []Request
		if err = decodeStrict(data, &reqs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return reqs, nil
	}
	var req Request
	if err = decodeStrict(data, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return []Request{req}, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after request")
	}

	return nil
}

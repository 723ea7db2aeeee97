package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "nil error returns empty", err: nil, wantCode: ""},
		{name: "file too large", err: fmt.Errorf("%w: exceeds 10 bytes", ErrFileTooLarge), wantCode: "FILE001"},
		{name: "empty input", err: ErrEmptyInput, wantCode: "FILE005"},
		{name: "wrapped empty input", err: fmt.Errorf("parse: %w", ErrEmptyInput), wantCode: "FILE005"},
		{name: "read error", err: &ReadError{Name: "a.csv", Err: os.ErrNotExist}, wantCode: "FILE006"},
		{name: "no shape", err: ErrNoShape, wantCode: "PRS001"},
		{name: "busy", err: fmt.Errorf("acquire parse slot: %w", ErrTooManyParses), wantCode: "UPL002"},
		{name: "cancelled", err: fmt.Errorf("parse cancelled: %w", context.Canceled), wantCode: "UPL004"},
		{name: "deadline", err: context.DeadlineExceeded, wantCode: "UPL005"},
		{name: "no file text", err: errors.New("no file provided"), wantCode: "FILE004"},
		{name: "rate limit text", err: errors.New("rate limit exceeded"), wantCode: "UPL003"},
		{name: "workbook text", err: errors.New("open workbook: zip: not a valid zip file"), wantCode: "FILE002"},
		{name: "size text is case insensitive", err: errors.New("File Too Large"), wantCode: "FILE001"},
		{name: "unknown", err: errors.New("something odd"), wantCode: "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got.Code, tt.wantCode)
			}
			if tt.err != nil && (got.Message == "" || got.Action == "") {
				t.Errorf("MapError(%v) = %+v, want message and action", tt.err, got)
			}
		})
	}
}

// ReadError is checked before the context entries, so a read that failed on
// a deadline reports as a read failure.
func TestMapError_ReadErrorBeforeContext(t *testing.T) {
	err := &ReadError{Name: "a.csv", Err: context.DeadlineExceeded}
	if got := MapError(err).Code; got != "FILE006" {
		t.Errorf("Code = %q, want FILE006", got)
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	got := FormatUserError(ErrEmptyInput)
	if !strings.Contains(got, "(Code: FILE005)") {
		t.Errorf("FormatUserError = %q, want code FILE005", got)
	}
	if !strings.HasPrefix(got, "The uploaded file is empty") {
		t.Errorf("FormatUserError = %q, want message first", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{ErrEmptyInput, true},
		{errors.New("no file provided"), true},
		{errors.New("boom"), false},
	}
	for _, tt := range tests {
		if got := IsUserFacing(tt.err); got != tt.want {
			t.Errorf("IsUserFacing(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

package core

// error_messages.go maps technical errors to user-friendly messages with
// codes for support reference. Users quote the code; the log line with the
// same request ID carries the technical detail.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: File exceeds the maximum size limit
//	FILE002 - Unreadable workbook: The spreadsheet could not be opened
//	FILE004 - No file: No file was selected
//	FILE005 - Empty file: The file has no rows
//	FILE006 - Read failure: The file could not be read
//
// # Parse Errors (PRS001-PRS099)
//
//	PRS001 - No shape: No analysis format is registered
//
// # Upload Errors (UPL001-UPL099)
//
//	UPL002 - System busy: Too many parses in progress
//	UPL003 - Rate limited: Too many requests from this client
//	UPL004 - Request cancelled
//	UPL005 - Request timeout
//
// Anything else maps to ERR000.

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// UserMessage is the user-facing description of an error.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// sentinelMessages is checked first with errors.Is / errors.As.
var sentinelMessages = []struct {
	match func(error) bool
	msg   UserMessage
}{
	{
		match: func(err error) bool { return errors.Is(err, ErrFileTooLarge) },
		msg: UserMessage{
			Message: "File exceeds maximum size limit",
			Action:  "Export a shorter match range and try again",
			Code:    "FILE001",
		},
	},
	{
		match: func(err error) bool { return errors.Is(err, ErrEmptyInput) },
		msg: UserMessage{
			Message: "The uploaded file is empty",
			Action:  "Upload an export that contains a header row",
			Code:    "FILE005",
		},
	},
	{
		match: func(err error) bool {
			var re *ReadError
			return errors.As(err, &re)
		},
		msg: UserMessage{
			Message: "The file could not be read",
			Action:  "Check the file and upload it again",
			Code:    "FILE006",
		},
	},
	{
		match: func(err error) bool { return errors.Is(err, ErrNoShape) },
		msg: UserMessage{
			Message: "No analysis format is available",
			Action:  "Contact support",
			Code:    "PRS001",
		},
	},
	{
		match: func(err error) bool { return errors.Is(err, ErrTooManyParses) },
		msg: UserMessage{
			Message: "Too many files are being processed",
			Action:  "Please wait a moment and try again",
			Code:    "UPL002",
		},
	},
	{
		match: func(err error) bool { return errors.Is(err, context.Canceled) },
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "UPL004",
		},
	},
	{
		match: func(err error) bool { return errors.Is(err, context.DeadlineExceeded) },
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "UPL005",
		},
	},
}

// errorPatterns catches errors that only carry text, such as those
// produced by the HTTP layer.
var errorPatterns = []struct {
	pattern string
	msg     UserMessage
}{
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please select an export to upload",
			Code:    "FILE004",
		},
	},
	{
		pattern: "open workbook",
		msg: UserMessage{
			Message: "The spreadsheet could not be opened",
			Action:  "Save it as .xlsx or export it as CSV",
			Code:    "FILE002",
		},
	},
	{
		pattern: "rate limit exceeded",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a minute before uploading again",
			Code:    "UPL003",
		},
	},
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds maximum size limit",
			Action:  "Export a shorter match range and try again",
			Code:    "FILE001",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Returns an empty UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, sm := range sentinelMessages {
		if sm.match(err) {
			return sm.msg
		}
	}

	lower := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(lower, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"revu/internal/approval"
)

// JSONMode controls whether output is JSON or human-readable
var JSONMode bool

// Result represents a generic result for JSON output
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// Print outputs data. In JSON mode, marshals to JSON. Otherwise calls the textFn.
func Print(data interface{}, textFn func()) {
	if JSONMode {
		out, err := json.MarshalIndent(Result{Success: true, Data: data}, "", "  ")
		if err != nil {
			PrintError(err)
			return
		}
		fmt.Println(string(out))
		return
	}
	textFn()
}

// PrintError outputs an error and exits non-zero. In JSON mode the result
// carries a stable code so scripted callers can branch on the failure kind.
func PrintError(err error) {
	if JSONMode {
		out, _ := json.MarshalIndent(Result{Success: false, Error: err.Error(), Code: errorCode(err)}, "", "  ")
		fmt.Println(string(out))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// errorCode maps the review error taxonomy onto stable identifiers.
func errorCode(err error) string {
	var verr *approval.ValidationError
	var rerr *approval.RemoteError
	var ferr *approval.FetchError
	switch {
	case errors.Is(err, approval.ErrNotFound):
		return "not_found"
	case errors.Is(err, approval.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, approval.ErrStaleStore):
		return "stale_store"
	case errors.As(err, &verr):
		return "validation"
	case errors.As(err, &rerr):
		return "remote"
	case errors.As(err, &ferr):
		return "fetch"
	default:
		return "error"
	}
}

package tasks

import (
	"strings"
	"testing"

	"github.com/Bvqlz/Todo/apperror"
)

func TestParseStatusValid(t *testing.T) {
	cases := map[string]Status{
		"todo":       StatusTodo,
		"inprogress": StatusInProgress,
		"completed":  StatusCompleted,
	}
	for in, want := range cases {
		got, err := ParseStatus(in)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseStatusInvalid(t *testing.T) {
	for _, in := range []string{"", "done", "TODO", "in-progress", "<script>"} {
		_, err := ParseStatus(in)
		if err == nil {
			t.Errorf("ParseStatus(%q) accepted an invalid status", in)
			continue
		}
		if !apperror.IsValidationError(err) {
			t.Errorf("ParseStatus(%q) error is not a validation error: %v", in, err)
		}
		// The offending value must not be echoed back.
		if in != "" && strings.Contains(err.Error(), in) {
			t.Errorf("ParseStatus(%q) echoes the input in its error: %v", in, err)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusInProgress.String() != "inprogress" {
		t.Errorf("StatusInProgress.String() = %q", StatusInProgress.String())
	}
}

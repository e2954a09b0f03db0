package winapi

import (
	"errors"
	"testing"
)

func TestCallErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *CallError
		want string
	}{
		{
			name: "invalid window handle",
			err:  &CallError{Op: "GetWindowRect", Code: 1400, Message: "Invalid window handle."},
			want: "Invalid window handle. (Error=1400)",
		},
		{
			name: "access denied",
			err:  &CallError{Op: "SetProcessDpiAwarenessContext", Code: 5, Message: "Access is denied."},
			want: "Access is denied. (Error=5)",
		},
		{
			name: "zero code still renders",
			err:  &CallError{Op: "MoveWindow", Code: 0, Message: "MoveWindow failed."},
			want: "MoveWindow failed. (Error=0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallErrorMatchesWithErrorsAs(t *testing.T) {
	var err error = &CallError{Op: "GetWindowRect", Code: 1400, Message: "Invalid window handle."}

	var ce *CallError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed to match *CallError")
	}
	if ce.Code != 1400 || ce.Op != "GetWindowRect" {
		t.Fatalf("unexpected fields: %+v", ce)
	}
}

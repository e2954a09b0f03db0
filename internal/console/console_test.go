package console

import (
	"bytes"
	"errors"
	"testing"
)

func TestErrorWritesPlainLineWithoutColor(t *testing.T) {
	var out, errBuf bytes.Buffer
	p := New(&out, &errBuf, false)

	p.Error(errors.New("Invalid window handle. (Error=1400)"))

	if got := errBuf.String(); got != "Invalid window handle. (Error=1400)\n" {
		t.Fatalf("stderr = %q", got)
	}
	if out.Len() != 0 {
		t.Fatalf("stdout should stay empty, got %q", out.String())
	}
}

func TestErrorfFormats(t *testing.T) {
	var out, errBuf bytes.Buffer
	p := New(&out, &errBuf, false)

	p.Errorf("invalid window handle %q", "abc")

	if got := errBuf.String(); got != "invalid window handle \"abc\"\n" {
		t.Fatalf("stderr = %q", got)
	}
}

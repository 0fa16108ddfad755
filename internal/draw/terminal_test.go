package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// recordWriter keeps every Write call separately.
type recordWriter struct {
	writes [][]byte
	err    error
}

func (r *recordWriter) Write(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.writes = append(r.writes, append([]byte(nil), p...))
	return len(p), nil
}

func TestChunkWriter_SplitsIntoChunks(t *testing.T) {
	rec := &recordWriter{}
	cw := NewChunkWriter(rec, 0, 0)
	cw.WriteString(strings.Repeat("x", 2*maxChunkSize+10))

	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(rec.writes) != 3 {
		t.Fatalf("writes = %d, want 3", len(rec.writes))
	}
	for i, w := range rec.writes {
		if len(w) > maxChunkSize {
			t.Errorf("write %d is %d bytes", i, len(w))
		}
	}
	if len(cw.buf) != 0 {
		t.Errorf("queued after Flush = %d bytes", len(cw.buf))
	}
}

func TestChunkWriter_AppliesOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 10, 3)
	cw.WriteAt(2, 1, "hi")
	cw.SetOffset(0, 0)
	cw.WriteAt(2, 1, "yo")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "\033[4;12Hhi\033[1;2Hyo"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestChunkWriter_FlushError(t *testing.T) {
	errClosed := errors.New("closed")
	cw := NewChunkWriter(&recordWriter{err: errClosed}, 0, 0)
	cw.ClearScreen()

	if err := cw.Flush(); !errors.Is(err, errClosed) {
		t.Fatalf("Flush = %v, want %v", err, errClosed)
	}
	if len(cw.buf) != 0 {
		t.Error("queue kept after a failed flush")
	}
}

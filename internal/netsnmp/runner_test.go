package netsnmp

import (
	"bytes"
	"testing"
)

func TestLimitedWriterTruncatesWithoutShortWrite(t *testing.T) {
	var buf bytes.Buffer
	w := &limitedWriter{buf: &buf, limit: 10}

	n, err := w.Write([]byte("12345678"))
	if err != nil || n != 8 {
		t.Fatalf("Write below limit = (%d, %v), want (8, nil)", n, err)
	}

	// Crossing the cap must still report the full length, or io.Copy and
	// os/exec turn the truncation into an ErrShortWrite failure.
	n, err = w.Write([]byte("abcdef"))
	if err != nil || n != 6 {
		t.Fatalf("Write crossing limit = (%d, %v), want (6, nil)", n, err)
	}
	if got := buf.String(); got != "12345678ab" {
		t.Errorf("captured output = %q, want truncation at the limit", got)
	}

	n, err = w.Write([]byte("more"))
	if err != nil || n != 4 {
		t.Fatalf("Write past limit = (%d, %v), want (4, nil)", n, err)
	}
	if buf.Len() != 10 {
		t.Errorf("captured %d bytes, want the limit (10)", buf.Len())
	}
}

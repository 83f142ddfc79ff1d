package daylog

import (
	"io"
	"os"
	"testing"
	"time"
)

// newBenchLogger constructs an initialized Service with discarded console
// streams in its own temp working dir.
func newBenchLogger(b *testing.B) *Service {
	b.Helper()
	l := NewLogger("Bench")
	l.WorkingDir = b.TempDir()
	l.out = io.Discard
	l.errOut = io.Discard
	l.now = func() time.Time { return time.Date(2026, time.August, 24, 14, 15, 30, 0, time.UTC) }
	if err := l.Initialize(); err != nil {
		b.Fatal(err)
	}
	return l
}

func BenchmarkFormat(b *testing.B) {
	l := newBenchLogger(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.format(tagInfo, "hello")
	}
}

func BenchmarkInfo(b *testing.B) {
	l := newBenchLogger(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("hello")
	}
}

func BenchmarkInfoConsoleOnly(b *testing.B) {
	l := newBenchLogger(b)
	if err := os.Remove(l.LogFilePath()); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("hello")
	}
}

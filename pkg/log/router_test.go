package log

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

type recordingCloser struct {
	closed int
	synced int
	err    error
}

func (c *recordingCloser) Sync() error { c.synced++; return nil }

func (c *recordingCloser) Close() error { c.closed++; return c.err }

func newTestRouter() (*router, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	main, critical, verbose := &bytes.Buffer{}, &bytes.Buffer{}, &bytes.Buffer{}
	return &router{
		main:      main,
		critical:  critical,
		verbose:   verbose,
		formatter: &logrus.TextFormatter{DisableTimestamp: true},
	}, main, critical, verbose
}

func fire(t *testing.T, r *router, level Level, msg string) {
	t.Helper()
	entry := logrus.NewEntry(logrus.New())
	entry.Level = level
	entry.Message = msg
	require.NoError(t, r.Fire(entry))
}

func TestRouter_Fire_RoutesByLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"Error", ErrorLevel, true, true, false},
		{"Warn", WarnLevel, true, false, false},
		{"Info", InfoLevel, true, false, false},
		{"Debug", DebugLevel, false, false, true},
		{"Trace", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, main, critical, verbose := newTestRouter()
			fire(t, r, tt.level, "hook delivered")

			assert.Equal(t, tt.wantMain, main.Len() > 0)
			assert.Equal(t, tt.wantCritical, critical.Len() > 0)
			assert.Equal(t, tt.wantVerbose, verbose.Len() > 0)
		})
	}
}

func TestRouter_Fire_ConsoleReceivesAllLevels(t *testing.T) {
	t.Parallel()

	r, _, _, _ := newTestRouter()
	console := &bytes.Buffer{}
	r.console = console

	fire(t, r, DebugLevel, "debug")
	fire(t, r, ErrorLevel, "error")

	assert.Contains(t, console.String(), "debug")
	assert.Contains(t, console.String(), "error")
}

func TestRouter_Fire_MainWrittenEvenIfCriticalFails(t *testing.T) {
	t.Parallel()

	main := &bytes.Buffer{}
	r := &router{
		main:      main,
		critical:  failingWriter{},
		formatter: &logrus.TextFormatter{DisableTimestamp: true},
	}

	entry := logrus.NewEntry(logrus.New())
	entry.Level = ErrorLevel
	entry.Message = "boom"

	assert.EqualError(t, r.Fire(entry), "disk full")
	assert.Contains(t, main.String(), "boom")
}

func TestRouter_Close_StopsWriting(t *testing.T) {
	t.Parallel()

	r, main, _, _ := newTestRouter()
	require.NoError(t, r.Close())

	fire(t, r, InfoLevel, "after close")
	assert.Zero(t, main.Len())
}

func TestRouter_ConcurrentFireAndClose(t *testing.T) {
	t.Parallel()

	r := &router{
		main:      &lockedBuffer{},
		formatter: &logrus.TextFormatter{DisableTimestamp: true},
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry := logrus.NewEntry(logrus.New())
			entry.Level = InfoLevel
			_ = r.Fire(entry)
		}()
	}
	_ = r.Close()
	wg.Wait()
}

func TestCloser_Close(t *testing.T) {
	t.Parallel()

	t.Run("모든 리소스를 닫고 에러를 합친다", func(t *testing.T) {
		t.Parallel()

		a := &recordingCloser{err: errors.New("a")}
		b := &recordingCloser{err: errors.New("b")}
		r, _, _, _ := newTestRouter()
		c := &closer{router: r, closers: []io.Closer{a, nil, b}}

		err := c.Close()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "a")
		assert.Contains(t, err.Error(), "b")
		assert.Equal(t, 1, a.closed)
		assert.Equal(t, 1, a.synced)
		assert.Equal(t, 1, b.closed)
		assert.True(t, r.closed)
	})

	t.Run("두 번째 호출은 아무 것도 하지 않는다", func(t *testing.T) {
		t.Parallel()

		a := &recordingCloser{}
		c := &closer{closers: []io.Closer{a}}

		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
		assert.Equal(t, 1, a.closed)
	})
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

package rng

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logLine struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	Salt  string `json:"salt"`
}

func parseLogLines(t *testing.T, buf *bytes.Buffer) []logLine {
	t.Helper()
	var lines []logLine
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var l logLine
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &l))
		lines = append(lines, l)
	}
	return lines
}

func newJSONLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:     log.DebugLevel,
		Formatter: log.JSONFormatter,
	})
}

func TestFactoryMatchesGenerator(t *testing.T) {
	f := NewFactory(42, nil)
	assert.Equal(t, uint64(42), f.Seed())
	assert.Equal(t, draw(NewString(42, "foo"), 5), draw(f.New("foo"), 5))
	assert.Equal(t, draw(New(42, []byte{0, 1}), 5), draw(f.NewBytes([]byte{0, 1}), 5))
}

func TestFactoryUnseededWarning(t *testing.T) {
	var buf bytes.Buffer
	f := NewFactory(0, newJSONLogger(&buf))

	f.New("a")
	f.New("b")
	f.New("c")

	lines := parseLogLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "warn", lines[0].Level)
	assert.Equal(t, UnseededWarning, lines[0].Msg)
	for _, l := range lines[1:] {
		assert.Equal(t, "debug", l.Level)
		assert.Equal(t, UnseededWarning, l.Msg)
	}
	assert.Equal(t, `"b"`, lines[1].Salt)
}

func TestFactoryQuotesBinarySalt(t *testing.T) {
	var buf bytes.Buffer
	f := NewFactory(0, newJSONLogger(&buf))

	f.New("first")
	f.NewBytes([]byte{0x1b, '[', '2', 'J', 0x00})

	lines := parseLogLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, `"\x1b[2J\x00"`, lines[1].Salt)
	assert.NotContains(t, buf.String(), "\x1b[2J")
}

func TestFactorySeededIsSilent(t *testing.T) {
	var buf bytes.Buffer
	f := NewFactory(42, newJSONLogger(&buf))
	f.New("a")
	f.New("b")
	assert.Empty(t, buf.String())
}

func TestFactoryUnseededStillDeterministic(t *testing.T) {
	f := NewFactory(0, log.NewWithOptions(io.Discard, log.Options{}))
	assert.Equal(t, []uint64{16773802672133215923, 1502214686590745528, 2054089052547049916}, draw(f.New("foo"), 3))
}

func TestFactoryConcurrentConstruction(t *testing.T) {
	var buf safeBuffer
	f := NewFactory(0, log.NewWithOptions(&buf, log.Options{
		Level:     log.WarnLevel,
		Formatter: log.JSONFormatter,
	}))
	want := draw(NewString(0, "shared"), 4)

	var wg sync.WaitGroup
	results := make([][]uint64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = draw(f.New("shared"), 4)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
	assert.Len(t, parseLogLines(t, &buf.buf), 1)
}

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, input string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, strings.NewReader(input), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type pipeWriter struct{}

func (pipeWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestRunCanonical(t *testing.T) {
	t.Parallel()
	r := run(t, "Hello, hexer!\n")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Equal(t,
		"00000000  48 65 6c 6c 6f 2c 20 68  65 78 65 72 21 0a .. ..  |Hello, hexer!.  |\n"+
			"0000000e\n",
		r.stdout)
	assert.Empty(t, r.stderr)
}

func TestRunDuplicates(t *testing.T) {
	t.Parallel()
	zeros := string(make([]byte, 64))
	row := "00 00 00 00 00 00 00 00  00 00 00 00 00 00 00 00  |................|\n"

	r := run(t, zeros)
	require.Equal(t, ExitOK, r.code)
	assert.Equal(t, "00000000  "+row+"*\n00000040\n", r.stdout)

	r = run(t, zeros, "-v")
	require.Equal(t, ExitOK, r.code)
	assert.Equal(t,
		"00000000  "+row+"00000010  "+row+"00000020  "+row+"00000030  "+row+"00000040\n",
		r.stdout)
}

func TestRunEmptyInput(t *testing.T) {
	t.Parallel()
	r := run(t, "")
	require.Equal(t, ExitOK, r.code)
	assert.Empty(t, r.stdout)
}

func TestRunCharacterStyles(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		// Padding is blank, so the only '.' is the unprintable byte.
		"ascii": {
			args: []string{"-b", "c", "-g", "4/1"},
			want: "00000000  A B .   \n00000003\n",
		},
		"caret": {
			args: []string{"-b", "C", "-g", "4/1"},
			want: "00000000   A  B ^@    \n00000003\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := run(t, "AB\x00", tt.args...)
			require.Equal(t, ExitOK, r.code, r.stderr)
			assert.Equal(t, tt.want, r.stdout)
			assert.NotContains(t, r.stdout, "|")
		})
	}
}

func TestRunSkipAndLength(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		"skip": {
			args: []string{"-s", "4"},
			want: "00000004  34 35 36 37 38 39 .. ..  .. .. .. .. .. .. .. ..  |456789          |\n0000000a\n",
		},
		"length": {
			args: []string{"-n", "2"},
			want: "00000000  30 31 .. .. .. .. .. ..  .. .. .. .. .. .. .. ..  |01              |\n00000002\n",
		},
		"skip with start address": {
			args: []string{"-s", "8", "-n", "1", "-A", "0x100"},
			want: "00000100  38 .. .. .. .. .. .. ..  .. .. .. .. .. .. .. ..  |8               |\n00000101\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := run(t, "0123456789", tt.args...)
			require.Equal(t, ExitOK, r.code, r.stderr)
			assert.Equal(t, tt.want, r.stdout)
		})
	}
}

func TestRunSkipPastEnd(t *testing.T) {
	t.Parallel()
	r := run(t, "abcd", "-s", "100")
	require.Equal(t, ExitOK, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "hexer: warning: input ends at 4")

	r = run(t, "abcd", "-s", "100", "-q")
	require.Equal(t, ExitOK, r.code)
	assert.Empty(t, r.stderr)
}

func TestRunFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "data.bin", "0123456789")

	r := run(t, "ignored", "-s", "4", path)
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.True(t, strings.HasPrefix(r.stdout, "00000004  34 35"), r.stdout)
	assert.True(t, strings.HasSuffix(r.stdout, "\n0000000a\n"), r.stdout)

	r = run(t, "", "-s", "20", path)
	require.Equal(t, ExitOK, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "before the skip offset 20")
}

func TestRunStdinDash(t *testing.T) {
	t.Parallel()
	r := run(t, "x", "-")
	require.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.stdout, "|x               |")
}

func TestRunLittleEndian(t *testing.T) {
	t.Parallel()
	r := run(t, "\x01\x02\x03\x04\x05", "-e", "-g", "4/2", "--group-sep", " ", "--byte-sep", "")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Equal(t, "00000000  04030201 05......  |.....   |\n00000005\n", r.stdout)
}

func TestRunColor(t *testing.T) {
	t.Parallel()
	r := run(t, "A", "--color", "always")
	require.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.stdout, "\x1b[")

	r = run(t, "A", "--color", "auto")
	require.Equal(t, ExitOK, r.code)
	assert.NotContains(t, r.stdout, "\x1b[")
}

func TestRunErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args    []string
		code    int
		message string
	}{
		"unknown flag":      {args: []string{"-zz"}, code: ExitUsage, message: "flag provided but not defined"},
		"bad byte style":    {args: []string{"-b", "x"}, code: ExitUsage, message: "unsupported style"},
		"bad address style": {args: []string{"-a", "q8"}, code: ExitUsage, message: "unsupported style"},
		"bad grouping":      {args: []string{"-g", "0"}, code: ExitUsage, message: "invalid grouping"},
		"bad color":         {args: []string{"--color", "sometimes"}, code: ExitUsage, message: "--color"},
		"negative skip":     {args: []string{"-s", "-1"}, code: ExitUsage, message: "-s"},
		"two files":         {args: []string{"a", "b"}, code: ExitUsage, message: "at most one input file"},
		"missing file":      {args: []string{filepath.Join(os.TempDir(), "hexer-does-not-exist")}, code: ExitIO, message: "hexer-does-not-exist"},
		"missing profile":   {args: []string{"--config", filepath.Join(os.TempDir(), "hexer-no-profile.yaml")}, code: ExitUsage, message: "profile"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := run(t, "data", tt.args...)
			assert.Equal(t, tt.code, r.code)
			assert.Empty(t, r.stdout)
			assert.Contains(t, r.stderr, tt.message)
		})
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()
	r := run(t, "", "-h")
	assert.Equal(t, ExitOK, r.code)
	assert.Contains(t, r.stderr, "Usage: hexer")
}

func TestRunBrokenPipe(t *testing.T) {
	t.Parallel()
	var stderr bytes.Buffer
	code := Run(nil, strings.NewReader("some input"), pipeWriter{}, &stderr)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stderr.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestRunReadError(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	code := Run(nil, failingReader{}, &stdout, &stderr)
	assert.Equal(t, ExitIO, code)
	assert.Contains(t, stderr.String(), "read: unexpected EOF")
}

// brokenReader returns data on its first read and err on every later one.
type brokenReader struct {
	data []byte
	err  error
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestRunReadErrorKeepsOutput(t *testing.T) {
	t.Parallel()
	row := "41 41 41 41 41 41 41 41  41 41 41 41 41 41 41 41  |AAAAAAAAAAAAAAAA|\n"
	errDisk := errors.New("disk gone")
	tests := map[string]struct {
		data []byte
		args []string
		want string
	}{
		"whole rows": {
			data: bytes.Repeat([]byte{'A'}, 48),
			args: []string{"-v"},
			want: "00000000  " + row + "00000010  " + row + "00000020  " + row + "00000030\n",
		},
		"duplicate run": {
			data: bytes.Repeat([]byte{'A'}, 48),
			want: "00000000  " + row + "*\n00000030\n",
		},
		"partial row": {
			data: []byte("0123456789"),
			want: "00000000  30 31 32 33 34 35 36 37  38 39 .. .. .. .. .. ..  |0123456789      |\n0000000a\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			code := Run(tt.args, &brokenReader{data: tt.data, err: errDisk}, &stdout, &stderr)
			assert.Equal(t, ExitIO, code)
			assert.Equal(t, tt.want, stdout.String())
			assert.Equal(t, "hexer: read: disk gone\n", stderr.String())
		})
	}
}

func TestRunProfile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "hexer.yaml", "address: d4\nshow_all: true\n")
	zeros := string(make([]byte, 32))

	r := run(t, zeros, "--config", path)
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.True(t, strings.HasPrefix(r.stdout, "0000  00 00"), r.stdout)
	assert.Contains(t, r.stdout, "\n0016  00 00")
	assert.NotContains(t, r.stdout, "*")
	assert.True(t, strings.HasSuffix(r.stdout, "\n0032\n"), r.stdout)

	// Flags win over the profile.
	r = run(t, zeros, "--config", path, "-a", "h6")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "\n000010  00 00")
	assert.NotContains(t, r.stdout, "*")
}

func TestIsBrokenPipe(t *testing.T) {
	t.Parallel()
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(io.EOF))
	assert.False(t, IsBrokenPipe(nil))
}

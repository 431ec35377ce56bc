package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ePirat/streamreader"
)

const fixture = "../../testdata/lc_stereo_44100.aac"

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func requireFixture(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(fixture); err != nil {
		t.Skipf("Test file not available: %v", err)
	}
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.aac")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestConfigureOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		path    string
		offset  int64
		maxScan int64
		wantErr bool
	}{
		{"file only", []string{"a.aac"}, "a.aac", 0, 0, false},
		{"positional offset", []string{"a.aac", "42"}, "a.aac", 42, 0, false},
		{"flag offset", []string{"-offset", "7", "a.aac"}, "a.aac", 7, 0, false},
		{"short offset", []string{"-o", "9", "a.aac"}, "a.aac", 9, 0, false},
		{"positional wins", []string{"-o", "9", "a.aac", "3"}, "a.aac", 3, 0, false},
		{"max scan", []string{"-max-scan", "4096", "a.aac"}, "a.aac", 0, 4096, false},
		{"missing file", nil, "", 0, 0, true},
		{"bad offset", []string{"a.aac", "x"}, "", 0, 0, true},
		{"negative offset", []string{"a.aac", "-1"}, "", 0, 0, true},
		{"extra argument", []string{"a.aac", "1", "2"}, "", 0, 0, true},
		{"unknown flag", []string{"-frobnicate", "a.aac"}, "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)

			opts, err := configureOptions(fs, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.path, opts.Path)
			assert.Equal(t, tt.offset, opts.Offset)
			assert.Equal(t, tt.maxScan, opts.MaxScan)
			assert.Equal(t, "warn", opts.LogLevel)
		})
	}
}

func TestRun_Fixture(t *testing.T) {
	requireFixture(t)

	code, stdout, _ := runCmd(t, fixture)
	assert.Equal(t, exitOK, code)

	assert.Contains(t, stdout, "Found startcode at offset 3\n")
	assert.Equal(t, 5, strings.Count(stdout, "Header at: "))
	assert.Contains(t, stdout, "Header at: 115\n")
	assert.Contains(t, stdout, "  Profile is AAC_LC\n")
	assert.Contains(t, stdout, "  ID is MPEG-4\n")
	assert.Contains(t, stdout, "  Sampling frequency index is 4 (44100 Hz)\n")
	assert.Contains(t, stdout, "  Channel configuration is 2 (stereo, 2 channels)\n")
	assert.Contains(t, stdout, "  AudioSpecificConfig is 1210\n")
	assert.Contains(t, stdout, "End of stream after 5 frames (121 bytes)\n")
}

func TestRun_Offset(t *testing.T) {
	requireFixture(t)

	// 60 is inside the third frame's header.
	code, stdout, _ := runCmd(t, fixture, "60")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Reading file '"+fixture+"' starting at 60\n")
	assert.Contains(t, stdout, "Found startcode at offset 75\n")
	assert.Equal(t, 2, strings.Count(stdout, "Header at: "))
}

func TestRun_JSONLogs(t *testing.T) {
	requireFixture(t)

	code, _, stderr := runCmd(t, "-log-level", "info", "-log-format", "json", fixture)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, `"msg":"end of stream"`)
	assert.Contains(t, stderr, `"frames":5`)
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCmd(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "missing input file")
	assert.Contains(t, stderr, "Usage: adtsinfo")
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCmd(t, "-v")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "adtsinfo: v"+VERSION+"\n", stdout)
}

func TestRun_Help(t *testing.T) {
	code, _, stderr := runCmd(t, "-help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "Usage: adtsinfo")
}

func TestRun_MissingFile(t *testing.T) {
	code, _, stderr := runCmd(t, filepath.Join(t.TempDir(), "nope.aac"))
	assert.Equal(t, exitNoInput, code)
	assert.Contains(t, stderr, "failed opening file")
}

func TestRun_NoSync(t *testing.T) {
	code, _, stderr := runCmd(t, writeTemp(t, make([]byte, 256)))
	assert.Equal(t, exitDataErr, code)
	assert.Contains(t, stderr, "Unable to find ADTS syncword")
}

func TestRun_TooShort(t *testing.T) {
	code, _, _ := runCmd(t, writeTemp(t, []byte{0xFF, 0xF1}))
	assert.Equal(t, exitDataErr, code)
}

func TestRun_InvalidHeader(t *testing.T) {
	// Syncword ok, frame_length 0.
	data := []byte{0xFF, 0xF1, 0x50, 0x80, 0x00, 0x1F, 0xFC, 0x00, 0x00}
	code, stdout, stderr := runCmd(t, writeTemp(t, data))
	assert.Equal(t, exitDataErr, code)
	assert.Contains(t, stderr, "Frame length shorter than header")
	assert.NotContains(t, stdout, "Header at:")
}

func TestRun_TruncatedFrame(t *testing.T) {
	requireFixture(t)
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)

	code, stdout, _ := runCmd(t, writeTemp(t, data[:len(data)-1]))
	assert.Equal(t, exitDataErr, code)
	assert.Equal(t, 5, strings.Count(stdout, "Header at: "))
	assert.NotContains(t, stdout, "End of stream")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"sync", errors.Wrap(streamreader.ErrSyncNotFound, "locate"), exitDataErr},
		{"object type", streamreader.ErrInvalidObjectType, exitDataErr},
		{"truncated", &streamreader.IOError{Op: "peek", Err: io.ErrUnexpectedEOF}, exitDataErr},
		{"read failure", &streamreader.IOError{Op: "scan", Err: errors.New("device gone")}, exitIOErr},
		{"uncoded", errors.New("boom"), exitIOErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

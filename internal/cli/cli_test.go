package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("LOGGER_LEVEL", "")

	var outBuf, errBuf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestDemo_StoreThree(t *testing.T) {
	out, _, err := run(t, "demo", "--plain", "--store", "3")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	want := "EROR: Error.\nWARN: Warning.\nINFO: Info.\n"
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestDemo_AlertThreshold(t *testing.T) {
	out, _, err := run(t, "demo", "--plain", "--level", "alert")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if out != "ALRT: Alert.\n" {
		t.Fatalf("stdout = %q, want only the alert line", out)
	}
}

func TestDemo_LevelFromEnv(t *testing.T) {
	var outBuf bytes.Buffer
	t.Setenv("LOGGER_LEVEL", "error")
	cmd := NewRootCmd()
	cmd.SetOut(&outBuf)
	cmd.SetArgs([]string{"demo", "--plain"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if got := outBuf.String(); got != "ALRT: Alert.\nEROR: Error.\n" {
		t.Fatalf("stdout = %q", got)
	}
}

func TestDemo_DisabledAndZeroStore(t *testing.T) {
	for _, args := range [][]string{
		{"demo", "--disable"},
		{"demo", "--store", "0"},
	} {
		out, _, err := run(t, args...)
		if err != nil {
			t.Fatalf("%v failed: %v", args, err)
		}
		if out != "" {
			t.Errorf("%v: stdout = %q, want empty", args, out)
		}
	}
}

func TestLog_Messages(t *testing.T) {
	out, _, err := run(t, "log", "--plain", "-s", "warning", "one", "two")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if out != "WARN: one\nWARN: two\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestLog_Styled(t *testing.T) {
	out, _, err := run(t, "log", "-s", "alert", "styled")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if !strings.Contains(out, "ALRT") || !strings.Contains(out, ": styled") {
		t.Fatalf("stdout = %q, want tag and message", out)
	}
}

func TestLog_FileLogging(t *testing.T) {
	dir := t.TempDir()
	_, errOut, err := run(t, "log", "--dir", dir, "--file", "cli.log", "--file-logging", "-s", "error", "to file")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}

	path := filepath.Join(dir, "cli.log")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if got := strings.ReplaceAll(string(content), "\r\n", "\n"); got != "EROR: to file\n" {
		t.Fatalf("log file = %q", got)
	}
	if !strings.Contains(errOut, path) {
		t.Fatalf("stderr should report the log file path, got %q", errOut)
	}
}

func TestLog_FileError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	_, _, err := run(t, "log", "--dir", dir, "--file", "cli.log", "--file-logging", "boom")
	if err == nil {
		t.Fatalf("expected an error for an unwritable log file")
	}
}

func TestLog_InvalidFlags(t *testing.T) {
	if _, _, err := run(t, "log", "-s", "debug", "msg"); err == nil {
		t.Errorf("expected error for unknown severity")
	}
	if _, _, err := run(t, "demo", "--level", "verbose"); err == nil {
		t.Errorf("expected error for unknown level")
	}
	if _, _, err := run(t, "log"); err == nil {
		t.Errorf("expected error when no message is given")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "storelog v"+Version) {
		t.Fatalf("stdout = %q", out)
	}
}

func TestSeverityOf(t *testing.T) {
	if _, ok := severityOf("no prefix"); ok {
		t.Errorf("plain text should not match a severity")
	}
	if s, ok := severityOf("WARN: x"); !ok || s.String() != "WARNING" {
		t.Errorf("severityOf(WARN: x) = %v, %v", s, ok)
	}
}

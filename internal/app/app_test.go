package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/aggbench/internal/errors"
	"github.com/agbru/aggbench/internal/ui"
)

func init() {
	// Plain output keeps string assertions stable.
	ui.SetCurrentTheme(ui.NoColorTheme)
}

func TestNew_Defaults(t *testing.T) {
	var errBuf bytes.Buffer
	application, err := New([]string{"aggbench"}, &errBuf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if application.Config.Seed != 12345 {
		t.Errorf("default seed = %d, want 12345", application.Config.Seed)
	}
	if application.Suite == nil {
		t.Error("New should build a suite from the configuration")
	}
}

func TestNew_InvalidFlag(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"aggbench", "-iterations", "-5"}, &errBuf)
	if err == nil {
		t.Fatal("negative iterations should be rejected")
	}
	var configErr apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("expected ConfigError, got %T", err)
	}
}

func TestNew_HelpFlag(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"aggbench", "-h"}, &errBuf)
	if !IsHelpError(err) {
		t.Errorf("expected help error, got %v", err)
	}
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("help error should wrap flag.ErrHelp")
	}
}

func TestApplication_Run_Quiet(t *testing.T) {
	var errBuf bytes.Buffer
	application, err := New([]string{
		"aggbench", "-quiet", "-iterations", "50", "-warmup", "5", "-orders", "5",
	}, &errBuf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, apperrors.ExitSuccess, errBuf.String())
	}

	output := out.String()
	for _, name := range []string{"sync", "await-each", "fastpath-params", "fastpath-captured"} {
		if !strings.Contains(output, name) {
			t.Errorf("quiet output should contain variant %q, got:\n%s", name, output)
		}
	}
	if strings.Contains(output, "Comparison Summary") {
		t.Error("quiet mode should not render the comparison table")
	}
}

func TestApplication_Run_SingleVariant(t *testing.T) {
	var errBuf bytes.Buffer
	application, err := New([]string{
		"aggbench", "-quiet", "-variant", "sync", "-iterations", "50", "-warmup", "5", "-orders", "5",
	}, &errBuf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if strings.Contains(out.String(), "await-each") {
		t.Error("single-variant run should not measure other variants")
	}
}

func TestApplication_Run_Timeout(t *testing.T) {
	var errBuf bytes.Buffer
	application, err := New([]string{
		"aggbench", "-quiet", "-iterations", "50000000", "-warmup", "0", "-orders", "50",
	}, &errBuf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	application.Config.Timeout = 10 * time.Millisecond

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"-variant", "sync"}, false},
		{[]string{"--version"}, true},
		{[]string{"-version"}, true},
		{[]string{"-V"}, true},
	}

	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "aggbench") {
		t.Errorf("version banner should name the binary, got %q", buf.String())
	}
}

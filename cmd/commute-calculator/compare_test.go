package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/commute-calculator/internal/commute"
	"github.com/iwvelando/commute-calculator/pkg/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commute.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestRunCompareExampleConfig(t *testing.T) {
	var buf bytes.Buffer
	err := runCompare(&buf, compareOptions{
		configPath:    filepath.Join("..", "..", constants.ExampleConfigFile),
		requireConfig: true,
		logLevel:      "error",
	})
	if err != nil {
		t.Fatalf("runCompare() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Full Year (January - December)", "Driving Only", "Switch to DART"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCompareOutputFormats(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: error\ninputs:\n  daysInOffice: 3\n")

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		if err := runCompare(&buf, compareOptions{configPath: path, outputFormat: "csv"}); err != nil {
			t.Fatalf("runCompare() error = %v", err)
		}
		if !strings.HasPrefix(buf.String(), `"scenario"`) {
			t.Errorf("expected CSV header, got:\n%s", buf.String())
		}
	})

	t.Run("json with overrides", func(t *testing.T) {
		var buf bytes.Buffer
		opts := compareOptions{
			configPath:       path,
			outputFormat:     "json",
			startMonth:       commute.IntPtr(7),
			dailyTicketPrice: commute.Float64Ptr(6),
		}
		if err := runCompare(&buf, opts); err != nil {
			t.Fatalf("runCompare() error = %v", err)
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON output: %v", err)
		}
		if decoded["variant"] != "extended" {
			t.Errorf("variant = %v, expected extended", decoded["variant"])
		}
		if decoded["periodLabel"] != "July - December (6 months)" {
			t.Errorf("periodLabel = %v", decoded["periodLabel"])
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if err := runCompare(&bytes.Buffer{}, compareOptions{configPath: path, outputFormat: "xml"}); err == nil {
			t.Error("expected error for unsupported output format")
		}
	})
}

func TestRunCompareMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "commute.yaml")

	var buf bytes.Buffer
	if err := runCompare(&buf, compareOptions{configPath: missing, logLevel: "error"}); err != nil {
		t.Fatalf("runCompare() with implicit missing config error = %v", err)
	}
	if !strings.Contains(buf.String(), "Driving Only") {
		t.Errorf("expected default comparison, got:\n%s", buf.String())
	}

	if err := runCompare(&bytes.Buffer{}, compareOptions{configPath: missing, requireConfig: true}); err == nil {
		t.Error("expected error for explicitly named missing config")
	}
}

func TestRunCompareInvalidInputs(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: error\ninputs:\n  mpg: 0\n")
	err := runCompare(&bytes.Buffer{}, compareOptions{configPath: path})
	if err == nil || !strings.Contains(err.Error(), "mpg must be greater than 0") {
		t.Errorf("expected mpg validation error, got %v", err)
	}
}

func TestDefaultsCommand(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"defaults"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("defaults command error = %v", err)
	}
	for _, want := range []string{"inputs:", "annualPassPrice: 960", "format: pretty"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("defaults output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("COMMUTE_TEST_LOADENV=loaded\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("COMMUTE_TEST_LOADENV", "")
	_ = os.Unsetenv("COMMUTE_TEST_LOADENV")

	if err := loadEnv(path); err != nil {
		t.Fatalf("loadEnv() error = %v", err)
	}
	if got := os.Getenv("COMMUTE_TEST_LOADENV"); got != "loaded" {
		t.Errorf("COMMUTE_TEST_LOADENV = %q, expected loaded", got)
	}

	if err := loadEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for missing explicit env file")
	}
}

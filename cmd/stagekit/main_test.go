package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// quietConfig writes a config file that keeps the CLI's log output as JSON.
func quietConfig(t *testing.T, dir, extra string) string {
	t.Helper()
	return writeFile(t, dir, "config.yml", "name: stagekit\nenvironment: production\nlogging:\n  level: info\n  format: json\n"+extra)
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Identity(t *testing.T) {
	cfg := quietConfig(t, t.TempDir(), "")
	code, out, errOut := runCLI(t, "--config", cfg, "1", "2.5", "-3")
	if code != exitOK {
		t.Fatalf("got exit %d, want 0; stderr: %s", code, errOut)
	}
	want := "1 -> 1\n2.5 -> 2.5\n-3 -> -3\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRun_RecipeFile(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")
	path := writeFile(t, dir, "evens.yml", `
name: evens
steps:
  - op: filter_even
  - op: add
`)
	code, out, errOut := runCLI(t, "--config", cfg, "--recipe", path, "1", "2", "3", "4")
	if code != exitOK {
		t.Fatalf("got exit %d, want 0; stderr: %s", code, errOut)
	}
	want := "1 -> -\n2 -> 2\n3 -> -\n4 -> 6\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
	for _, want := range []string{`"run complete"`, `"recipe":"evens"`, `"op":"run"`, `"duration_ms":`, `"produced":2`} {
		if !strings.Contains(errOut, want) {
			t.Errorf("expected %s in run summary, got %s", want, errOut)
		}
	}
}

func TestRun_RecipeByNameWithInclude(t *testing.T) {
	dir := t.TempDir()
	recipes := filepath.Join(dir, "recipes")
	if err := os.Mkdir(recipes, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, recipes, "positive.yaml", "name: positive\nsteps:\n  - op: filter_gt\n    args: {value: 0}\n")
	writeFile(t, recipes, "capped.yaml", "name: capped\nincludes: [positive]\nsteps:\n  - op: limit\n    args: {n: 1}\nfallback: 0\n")
	cfg := quietConfig(t, dir, "recipe: capped\nrecipe_dirs: ["+recipes+"]\n")

	code, out, errOut := runCLI(t, "--config", cfg, "-1", "5", "7")
	if code != exitOK {
		t.Fatalf("got exit %d, want 0; stderr: %s", code, errOut)
	}
	want := "-1 -> 0\n5 -> 5\n7 -> 0\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRun_Instrumented(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yml", "name: stagekit\nenvironment: production\nlogging:\n  level: debug\n  format: json\n")
	path := writeFile(t, dir, "double.yml", "name: double\nsteps:\n  - op: scale\n    name: doubler\n    args: {factor: 2}\n")

	code, out, errOut := runCLI(t, "--config", cfg, "--recipe", path, "--instrument", "4")
	if code != exitOK {
		t.Fatalf("got exit %d, want 0; stderr: %s", code, errOut)
	}
	if out != "4 -> 8\n" {
		t.Errorf("got %q, want %q", out, "4 -> 8\n")
	}
	for _, want := range []string{`"stage":"doubler"`, `"input":4`, `"output":8`, `"produced":true`} {
		if !strings.Contains(errOut, want) {
			t.Errorf("expected %s in per-step debug log, got %s", want, errOut)
		}
	}
}

func TestRun_LeadingNegativeValue(t *testing.T) {
	cfg := quietConfig(t, t.TempDir(), "")
	code, out, errOut := runCLI(t, "--config", cfg, "-1", "5", "-2.5")
	if code != exitOK {
		t.Fatalf("got exit %d, want 0; stderr: %s", code, errOut)
	}
	want := "-1 -> -1\n5 -> 5\n-2.5 -> -2.5\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRun_ValuesAroundFlags(t *testing.T) {
	cfg := quietConfig(t, t.TempDir(), "")
	code, out, errOut := runCLI(t, "-4", "--config", cfg, "--", "-7")
	if code != exitOK {
		t.Fatalf("got exit %d, want 0; stderr: %s", code, errOut)
	}
	if out != "-4 -> -4\n-7 -> -7\n" {
		t.Errorf("got %q", out)
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		flags  []string
		values []string
	}{
		{"leading negative", []string{"-1", "2"}, nil, []string{"-1", "2"}},
		{"string flag value", []string{"--recipe", "-1", "3"}, []string{"--recipe", "-1"}, []string{"3"}},
		{"bool flag", []string{"--instrument", "-3"}, []string{"--instrument"}, []string{"-3"}},
		{"equals form", []string{"--config=c.yml", "-0.5"}, []string{"--config=c.yml"}, []string{"-0.5"}},
		{"separator", []string{"--", "--version"}, nil, []string{"--version"}},
		{"unknown flag", []string{"--nope", "1"}, []string{"--nope"}, []string{"1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.String("config", "", "")
			fs.String("recipe", "", "")
			fs.Bool("instrument", false, "")
			flags, values := splitArgs(fs, tc.args)
			if strings.Join(flags, " ") != strings.Join(tc.flags, " ") {
				t.Errorf("got flags %v, want %v", flags, tc.flags)
			}
			if strings.Join(values, " ") != strings.Join(tc.values, " ") {
				t.Errorf("got values %v, want %v", values, tc.values)
			}
		})
	}
}

func TestRun_RunID(t *testing.T) {
	cfg := quietConfig(t, t.TempDir(), "")
	id := "3f1c2b9a-5d4e-4c3b-8a7f-0e1d2c3b4a59"
	code, _, errOut := runCLI(t, "--config", cfg, "--run-id", id, "1")
	if code != exitOK {
		t.Fatalf("got exit %d, want 0; stderr: %s", code, errOut)
	}
	if !strings.Contains(errOut, `"run_id":"`+id+`"`) {
		t.Errorf("expected run_id in log, got %s", errOut)
	}

	code, _, errOut = runCLI(t, "--config", cfg, "--run-id", "not-a-uuid", "1")
	if code != exitUsage {
		t.Errorf("got exit %d, want %d", code, exitUsage)
	}
	if !strings.Contains(errOut, "INVALID_INPUT") {
		t.Errorf("expected INVALID_INPUT, got %s", errOut)
	}
}

func TestRun_InvalidValue(t *testing.T) {
	cfg := quietConfig(t, t.TempDir(), "")
	code, out, errOut := runCLI(t, "--config", cfg, "1", "two")
	if code != exitUsage {
		t.Errorf("got exit %d, want %d", code, exitUsage)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
	if !strings.Contains(errOut, "INVALID_INPUT") {
		t.Errorf("expected INVALID_INPUT in log, got %s", errOut)
	}
}

func TestRun_UnknownOperator(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "")
	path := writeFile(t, dir, "bad.yml", "name: bad\nsteps:\n  - op: frobnicate\n")

	code, _, errOut := runCLI(t, "--config", cfg, "--recipe", path, "1")
	if code != exitError {
		t.Errorf("got exit %d, want %d", code, exitError)
	}
	if !strings.Contains(errOut, "UNKNOWN_OPERATOR") || !strings.Contains(errOut, `"op":"build_recipe"`) {
		t.Errorf("expected UNKNOWN_OPERATOR from build_recipe in log, got %s", errOut)
	}
}

func TestRun_MissingRecipe(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir, "recipe_dirs: ["+dir+"]\n")
	code, _, errOut := runCLI(t, "--config", cfg, "--recipe", "ghost", "1")
	if code != exitError {
		t.Errorf("got exit %d, want %d", code, exitError)
	}
	if !strings.Contains(errOut, "NOT_FOUND") {
		t.Errorf("expected NOT_FOUND in log, got %s", errOut)
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	code, _, errOut := runCLI(t, "--config", filepath.Join(t.TempDir(), "absent.yml"), "1")
	if code != exitError {
		t.Errorf("got exit %d, want %d", code, exitError)
	}
	if !strings.Contains(errOut, "NOT_FOUND") {
		t.Errorf("expected NOT_FOUND, got %s", errOut)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "config.yml", "name: stagekit\nenvironment: moon\n")
	code, _, errOut := runCLI(t, "--config", cfg, "1")
	if code != exitError {
		t.Errorf("got exit %d, want %d", code, exitError)
	}
	if !strings.Contains(errOut, "environment") {
		t.Errorf("expected environment error, got %s", errOut)
	}
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, "--version")
	if code != exitOK {
		t.Errorf("got exit %d, want 0", code)
	}
	if strings.TrimSpace(out) == "" {
		t.Error("expected a version string")
	}
}

func TestRun_BadFlag(t *testing.T) {
	code, _, errOut := runCLI(t, "--nope")
	if code != exitUsage {
		t.Errorf("got exit %d, want %d", code, exitUsage)
	}
	if !strings.Contains(errOut, "usage: stagekit") {
		t.Errorf("expected usage text, got %s", errOut)
	}
}

func TestRun_Cancelled(t *testing.T) {
	cfg := quietConfig(t, t.TempDir(), "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"--config", cfg, "1"}, &stdout, &stderr)
	if code != exitError {
		t.Errorf("got exit %d, want %d", code, exitError)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, got %q", stdout.String())
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Name != serviceName {
		t.Errorf("got name %q, want %q", cfg.Name, serviceName)
	}
	if cfg.Metrics.ServiceName != serviceName || cfg.Tracing.ServiceName != serviceName {
		t.Error("expected telemetry service names to default to the service name")
	}
	if cfg.Tracing.SampleRate != 1 {
		t.Errorf("got sample rate %v, want 1", cfg.Tracing.SampleRate)
	}
	if cfg.Metrics.Enabled || cfg.Tracing.Enabled {
		t.Error("expected telemetry export disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigValidate_SampleRate(t *testing.T) {
	cfg := &Config{}
	cfg.Tracing.SampleRate = 2
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for sample rate above 1")
	}
}

package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecute_JSONErrorsAreStructuredAndStdoutIsClean(t *testing.T) {
	isolateConfig(t)

	stdout := captureStdout(t, func() {
		stderr := captureStderr(t, func() {
			err := Execute([]string{"--output=json", "domains"})
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
		})

		// Stderr should be a single JSON document.
		var payload map[string]any
		if err := json.Unmarshal([]byte(stderr), &payload); err != nil {
			t.Fatalf("stderr is not valid JSON: %v; stderr=%q", err, stderr)
		}

		errObj, ok := payload["error"].(map[string]any)
		if !ok {
			t.Fatalf("expected payload.error object, got: %T (%v)", payload["error"], payload["error"])
		}
		msg, _ := errObj["message"].(string)
		if msg == "" || !strings.Contains(msg, "requires at least 1 arg") {
			t.Fatalf("unexpected error.message: %q", msg)
		}
	})

	if strings.TrimSpace(stdout) != "" {
		t.Fatalf("expected stdout to be empty for JSON error, got: %q", stdout)
	}
}

func TestExecute_TextErrorsAreNotJSON(t *testing.T) {
	isolateConfig(t)

	out := captureStderr(t, func() {
		err := Execute([]string{"domains"})
		if err == nil {
			t.Fatalf("expected error, got nil")
		}
	})

	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected non-JSON stderr in text mode, got: %q", out)
	}
	if !strings.Contains(out, "Error:") {
		t.Fatalf("expected stderr to contain 'Error:', got: %q", out)
	}
}

func TestExecute_CheckJSONSuccess_IsSingleJSONDocument(t *testing.T) {
	isolateConfig(t)

	stderr := captureStderr(t, func() {
		stdout := captureStdout(t, func() {
			if err := Execute([]string{"--output=json", "check", "test@example.com", "bad-email"}); err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
		})

		var payload map[string]any
		if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
			t.Fatalf("stdout is not valid JSON: %v; stdout=%q", err, stdout)
		}
		if payload["checked"] != float64(2) {
			t.Fatalf("expected checked=2, got %v", payload["checked"])
		}
		if payload["invalid"] != float64(1) {
			t.Fatalf("expected invalid=1, got %v", payload["invalid"])
		}
		results, ok := payload["results"].([]any)
		if !ok || len(results) != 2 {
			t.Fatalf("expected 2 results, got %v", payload["results"])
		}
		first, _ := results[0].(map[string]any)
		if first["email"] != "test@example.com" || first["valid"] != true {
			t.Fatalf("unexpected first result: %v", first)
		}
		second, _ := results[1].(map[string]any)
		if second["error"] != "bad-email is not a valid email." {
			t.Fatalf("unexpected second result error: %v", second["error"])
		}
	})

	if strings.TrimSpace(stderr) != "" {
		t.Fatalf("expected empty stderr, got: %q", stderr)
	}
}

func TestExecute_CheckJSON_QueryFilter(t *testing.T) {
	isolateConfig(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"--output=json", "--query", ".results[0].valid", "check", "test@example.com"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})

	if strings.TrimSpace(stdout) != "true" {
		t.Fatalf("expected filtered output 'true', got: %q", stdout)
	}
}

func TestExecute_CheckText_SingleAddressVerdicts(t *testing.T) {
	isolateConfig(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"check", "test@example.com"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})
	if strings.TrimSpace(stdout) != "test@example.com is valid" {
		t.Fatalf("unexpected verdict: %q", stdout)
	}

	stdout = captureStdout(t, func() {
		if err := Execute([]string{"check", "bad-email"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})
	if strings.TrimSpace(stdout) != "bad-email is not a valid email." {
		t.Fatalf("unexpected verdict: %q", stdout)
	}
}

func TestExecute_CheckText_BatchTableAndSummary(t *testing.T) {
	isolateConfig(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"check", "test@example.com", "bad-email", "user@sample.io"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})

	for _, want := range []string{"EMAIL", "STATUS", "DETAIL", "bad-email is not a valid email.", "Checked 3, 1 invalid"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected output to contain %q, got: %q", want, stdout)
		}
	}
}

func TestExecute_CheckDomainRestricted(t *testing.T) {
	isolateConfig(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"check", "test@example.com", "--domains", "sample.com,example.com"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})
	if strings.TrimSpace(stdout) != "test@example.com is valid" {
		t.Fatalf("unexpected verdict: %q", stdout)
	}
}

func TestExecute_CheckMaxWithDomainsIsConfigError(t *testing.T) {
	isolateConfig(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"check", "bad-email", "--domains", "example.com", "--max", "3"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})
	if strings.TrimSpace(stdout) != "`max` can only be used if `domains` are not provided." {
		t.Fatalf("unexpected verdict: %q", stdout)
	}
}

func TestExecute_CheckMaxAboveRepeatCountLimit(t *testing.T) {
	isolateConfig(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"check", "a@b.com", "--max", "1001"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})
	if strings.TrimSpace(stdout) != "a@b.com is valid" {
		t.Fatalf("unexpected verdict: %q", stdout)
	}
}

func TestExecute_CheckMalformedAllowListHintsAtDomainsCommand(t *testing.T) {
	isolateConfig(t)

	stderr := captureStderr(t, func() {
		stdout := captureStdout(t, func() {
			if err := Execute([]string{"check", "x@y.com", "--domains", "bad_domain!,y.com"}); err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
		})
		if strings.TrimSpace(stdout) != "[bad_domain!] are not valid domains." {
			t.Fatalf("unexpected verdict: %q", stdout)
		}
	})
	if !strings.Contains(stderr, "check-email domains") {
		t.Fatalf("expected domains command hint on stderr, got: %q", stderr)
	}

	// A well-formed allow-list gets no hint.
	stderr = captureStderr(t, func() {
		captureStdout(t, func() {
			if err := Execute([]string{"check", "x@y.com", "--domains", "y.com"}); err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
		})
	})
	if strings.TrimSpace(stderr) != "" {
		t.Fatalf("expected empty stderr, got: %q", stderr)
	}
}

func TestExecute_DomainsCommand_TextOutput(t *testing.T) {
	isolateConfig(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"domains", "bad_domain!", "ok.com"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})

	for _, want := range []string{"DOMAIN", "bad_domain!", "invalid", "ok.com", "[bad_domain!] are not valid domains."} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected output to contain %q, got: %q", want, stdout)
		}
	}
}

func TestExecute_DomainsCommand_JSONOutput(t *testing.T) {
	isolateConfig(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"--output=json", "domains", "example.com", "bad!"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})

	var payload map[string]any
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("stdout is not valid JSON: %v; stdout=%q", err, stdout)
	}
	if payload["valid"] != false {
		t.Fatalf("expected valid=false, got %v", payload["valid"])
	}
	if payload["error"] != "[bad!] are not valid domains." {
		t.Fatalf("unexpected error: %v", payload["error"])
	}
}

func TestExecute_ConfigFileSuppliesDefaults(t *testing.T) {
	isolateConfig(t)

	dir := os.Getenv("XDG_CONFIG_HOME")
	path := filepath.Join(dir, "check-email", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"domains": "example.com"}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// Config allow-list applies when no flags are set.
	stdout := captureStdout(t, func() {
		if err := Execute([]string{"check", "test@other.com"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})
	if strings.TrimSpace(stdout) != "test@other.com is not a valid email." {
		t.Fatalf("unexpected verdict: %q", stdout)
	}

	// Flags take precedence over the config file.
	stdout = captureStdout(t, func() {
		if err := Execute([]string{"check", "test@other.com", "--domains", "other.com"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})
	if strings.TrimSpace(stdout) != "test@other.com is valid" {
		t.Fatalf("unexpected verdict: %q", stdout)
	}
}

func TestExecute_MalformedConfigIsAnErrorWithSuggestion(t *testing.T) {
	isolateConfig(t)

	dir := os.Getenv("XDG_CONFIG_HOME")
	path := filepath.Join(dir, "check-email", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	stderr := captureStderr(t, func() {
		if err := Execute([]string{"check", "test@example.com"}); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
	if !strings.Contains(stderr, "Suggestion:") {
		t.Fatalf("expected suggestion in stderr, got: %q", stderr)
	}
}

func TestExecute_VersionCommand(t *testing.T) {
	isolateConfig(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"version"}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})
	if !strings.Contains(stdout, "check-email dev") {
		t.Fatalf("unexpected version output: %q", stdout)
	}
}

func TestRootCommandsExist(t *testing.T) {
	app := NewApp()
	root := NewRootCmd(app)

	want := map[string]bool{
		"check":   false,
		"domains": false,
		"version": false,
	}

	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Fatalf("expected root command %q to exist", name)
		}
	}
}

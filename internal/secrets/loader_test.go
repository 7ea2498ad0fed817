package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  file-secret \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(Source{Name: "api key", File: path, Value: "ignored"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "file-secret" {
		t.Fatalf("expected trimmed file secret, got %q", got)
	}
}

func TestLoadFromValue(t *testing.T) {
	t.Parallel()

	got, err := Load(Source{Name: "api key", Value: " inline "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "inline" {
		t.Fatalf("expected %q, got %q", "inline", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ATS_TEST_API_KEY", "from-env")

	got, err := Load(Source{Name: "api key", Env: "ATS_TEST_API_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("expected %q, got %q", "from-env", got)
	}
}

func TestLoadFailures(t *testing.T) {
	t.Setenv("ATS_TEST_EMPTY_KEY", "")

	tests := []struct {
		name string
		src  Source
	}{
		{name: "nothing configured", src: Source{Name: "api key"}},
		{name: "missing file", src: Source{Name: "api key", File: filepath.Join(t.TempDir(), "absent")}},
		{name: "empty env", src: Source{Name: "api key", Env: "ATS_TEST_EMPTY_KEY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.src); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadEmptyFileDoesNotFallBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte(" \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(Source{Name: "api key", File: path, Value: "inline"}); err == nil {
		t.Fatal("expected an error for an empty secret file")
	}
}

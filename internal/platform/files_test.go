package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetLogDir(t *testing.T) {
	logDir, err := GetLogDir()
	if err != nil {
		t.Skipf("No cache directory available: %v", err)
	}

	if filepath.Base(logDir) != LogsDirName {
		t.Errorf("Expected directory to end with '%s', got: %s", LogsDirName, logDir)
	}

	if filepath.Base(filepath.Dir(logDir)) != AppDirName {
		t.Errorf("Expected parent directory '%s', got: %s", AppDirName, logDir)
	}
}

func TestGetLogFilePath(t *testing.T) {
	path, err := GetLogFilePath()
	if err != nil {
		t.Skipf("No cache directory available: %v", err)
	}

	if filepath.Base(path) != LogFileName {
		t.Errorf("Expected file name '%s', got: %s", LogFileName, path)
	}
}

func TestParseWebURL(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr string
	}{
		{"http://x/1", ""},
		{"https://www.example.com/recipes/soup?id=3", ""},
		{"  https://example.com/r  ", ""},
		{"", "url is empty"},
		{"javascript:alert(1)", "unsupported url scheme"},
		{"file:///etc/passwd", "unsupported url scheme"},
		{"/relative/path", "unsupported url scheme"},
		{"http://", "url has no host"},
		{"http://[::1", "invalid url"},
	}

	for _, test := range tests {
		u, err := ParseWebURL(test.raw)
		if test.wantErr == "" {
			if err != nil {
				t.Errorf("ParseWebURL(%q) unexpected error: %v", test.raw, err)
				continue
			}
			if u.Host == "" {
				t.Errorf("ParseWebURL(%q) returned url without host", test.raw)
			}
			continue
		}

		if err == nil {
			t.Errorf("ParseWebURL(%q) expected error containing %q, got nil", test.raw, test.wantErr)
			continue
		}
		if !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("ParseWebURL(%q) error = %v, expected to contain %q", test.raw, err, test.wantErr)
		}
	}
}

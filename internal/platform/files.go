package platform

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Application directory names
const (
	AppDirName  = "recipe-browser"
	LogsDirName = "logs"
	LogFileName = "recipe-browser.log"
)

// Allowed schemes for links opened in the system browser
var (
	AllowedURLSchemes = []string{"http", "https"}
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetLogDir returns the directory for application log files
func GetLogDir() (string, error) {
	// Android apps have no user cache dir outside the sandbox
	if runtime.GOOS == OSAndroid || os.Getenv("ANDROID_DATA") != "" {
		return filepath.Join(os.TempDir(), AppDirName, LogsDirName), nil
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user cache directory: %w", err)
	}

	return filepath.Join(cacheDir, AppDirName, LogsDirName), nil
}

// GetLogFilePath returns the default log file path
func GetLogFilePath() (string, error) {
	dir, err := GetLogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// ParseWebURL validates a recipe or thumbnail link before it is fetched or
// opened in the browser.
// Only absolute http and https URLs with a host are accepted.
func ParseWebURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("url is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", raw, err)
	}

	scheme := strings.ToLower(u.Scheme)
	allowed := false
	for _, s := range AllowedURLSchemes {
		if scheme == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("unsupported url scheme: %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url has no host: %s", raw)
	}

	return u, nil
}

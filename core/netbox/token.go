package netbox

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveToken returns cfg.Token when set, otherwise the first line of
// cfg.TokenFile. A relative token file is looked up in the working directory
// first and then next to the executable.
func ResolveToken(cfg Config) (string, error) {
	if token := strings.TrimSpace(cfg.Token); token != "" {
		return token, nil
	}
	if cfg.TokenFile == "" {
		return "", fmt.Errorf("no API token configured: set NETBOX_TOKEN or netbox.token_file")
	}
	return ReadTokenFile(locateTokenFile(cfg.TokenFile))
}

// ReadTokenFile reads the API token from the first line of path.
func ReadTokenFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open token file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read token file %s: %w", path, err)
		}
		return "", fmt.Errorf("token file %s is empty", path)
	}
	token := strings.TrimSpace(scanner.Text())
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", path)
	}
	return token, nil
}

func locateTokenFile(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	candidate := filepath.Join(filepath.Dir(exe), path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}

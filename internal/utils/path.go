package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// docPatterns are the file names a directory must contain to be used as a corpus
var docPatterns = []string{"*.txt", "*.md"}

// PathResolver finds the document corpus relative to the usual places
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver determines the executable and config locations
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordhint")
		}
		return filepath.Join(homeDir, ".config", "wordhint")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordhint")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordhint")
	default:
		return filepath.Join(homeDir, ".config", "wordhint")
	}
}

// ResolveDocPath finds the document file or corpus directory named by userPath.
// Candidates in order:
// 1. userPath as given (absolute or relative to the working directory)
// 2. relative to the executable directory
// 3. relative to the config directory
func (pr *PathResolver) ResolveDocPath(userPath string) (string, error) {
	for _, path := range pr.docCandidates(userPath) {
		if isValidDocPath(path) {
			log.Debugf("Found document path: %s", path)
			return path, nil
		}
		log.Debugf("Document path candidate not valid: %s", path)
	}
	return "", fmt.Errorf("no document or corpus directory found for %q", userPath)
}

// ConfigDir returns the platform config directory
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

func (pr *PathResolver) docCandidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}

	candidates := []string{userPath}
	if cwd, err := os.Getwd(); err == nil {
		candidates[0] = filepath.Join(cwd, userPath)
	}
	return append(candidates,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, userPath),
	)
}

func isValidDocPath(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !stat.IsDir() {
		return true
	}
	for _, pattern := range docPatterns {
		if matches, err := filepath.Glob(filepath.Join(path, pattern)); err == nil && len(matches) > 0 {
			return true
		}
	}
	return false
}

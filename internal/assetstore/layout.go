package assetstore

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	assetsDirName = "assets"
	tigerDirName  = "tiger"
	randomIDLen   = 20
	randomAlpha   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// layout resolves the two fixed subdirectories of a base AssetStore
// directory, and enforces that every asset path it hands back stays inside
// assetsDir (§4.4's "any link resolving outside assets/ is a fatal
// inconsistency").
type layout struct {
	base      string
	assetsDir string
	tigerDir  string
}

func newLayout(base string) *layout {
	return &layout{
		base:      base,
		assetsDir: filepath.Join(base, assetsDirName),
		tigerDir:  filepath.Join(base, tigerDirName),
	}
}

// ensureDirs creates assets/ and tiger/ if missing, then canonicalizes all
// three paths (symlink resolution, matching the original's fs::canonical
// call in openOrCreate).
func (l *layout) ensureDirs() error {
	if err := os.MkdirAll(l.assetsDir, 0o755); err != nil {
		return fmt.Errorf("assetstore: creating assets dir: %w", err)
	}
	if err := os.MkdirAll(l.tigerDir, 0o755); err != nil {
		return fmt.Errorf("assetstore: creating tiger dir: %w", err)
	}
	base, err := filepath.EvalSymlinks(l.base)
	if err != nil {
		return fmt.Errorf("assetstore: canonicalizing base dir: %w", err)
	}
	l.base = base
	l.assetsDir = filepath.Join(base, assetsDirName)
	l.tigerDir = filepath.Join(base, tigerDirName)
	return nil
}

func (l *layout) assetPath(assetID string) string {
	return filepath.Join(l.assetsDir, assetID)
}

func (l *layout) tigerLinkPath(tigerBase32 string) string {
	return filepath.Join(l.tigerDir, tigerBase32)
}

// resolveWithinAssets canonicalizes path and confirms it falls inside
// assetsDir. Returns an error if it resolves outside — the fatal
// inconsistency the original aborts startup on.
func (l *layout) resolveWithinAssets(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(l.assetsDir, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("assetstore: link %s resolves outside assets dir: %s", path, resolved)
	}
	return resolved, nil
}

// newAssetID returns a random 20-character alphanumeric slot name not
// already present under assetsDir.
func (l *layout) newAssetID() (string, error) {
	for {
		id, err := randomAlphaNumeric(randomIDLen)
		if err != nil {
			return "", err
		}
		if _, err := os.Lstat(l.assetPath(id)); os.IsNotExist(err) {
			return id, nil
		}
	}
}

func randomAlphaNumeric(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("assetstore: generating random id: %w", err)
	}
	out := make([]byte, n)
	for i, b := range raw {
		out[i] = randomAlpha[int(b)%len(randomAlpha)]
	}
	return string(out), nil
}

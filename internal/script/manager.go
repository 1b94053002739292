//go:build !no_lua

package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

var ErrInvalidID = errors.New("script: invalid id")

// validID checks that a script id is safe to use as a filename component.
func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, "/\\") && !strings.Contains(id, "..")
}

// ScriptID maps a configured script reference ("onoff" or "onoff.lua") to
// its id.
func ScriptID(ref string) string {
	return strings.TrimSuffix(filepath.Base(ref), ".lua")
}

// Manager loads, saves and lists binding scripts from a directory.
type Manager struct {
	dir    string
	logger *slog.Logger
	mu     sync.RWMutex
}

// NewManager creates a script manager rooted at dir, creating it if needed.
func NewManager(dir string, logger *slog.Logger) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scripts dir: %w", err)
	}
	return &Manager{dir: dir, logger: logger.With("component", "scripts")}, nil
}

// Dir returns the scripts directory.
func (m *Manager) Dir() string { return m.dir }

// List returns every script in the directory. Unreadable files are skipped.
func (m *Manager) List() ([]*Script, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files, err := filepath.Glob(filepath.Join(m.dir, "*.lua"))
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}
	scripts := make([]*Script, 0, len(files))
	for _, file := range files {
		if info, err := os.Stat(file); err != nil || !info.Mode().IsRegular() {
			continue
		}
		s, err := m.parseFile(file)
		if err != nil {
			m.logger.Warn("skip script", "file", filepath.Base(file), "err", err)
			continue
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

// Get returns a script by id.
func (m *Manager) Get(id string) (*Script, error) {
	if !validID(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parseFile(m.path(id))
}

// Save writes a script to disk. A script without an id gets one derived
// from its name.
func (m *Manager) Save(s *Script) (*Script, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case s.ID == "":
		s.ID = m.freeID(slugify(s.Meta.Name))
	case !validID(s.ID):
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, s.ID)
	}
	s.FilePath = m.path(s.ID)
	if err := os.WriteFile(s.FilePath, serialize(s), 0o644); err != nil {
		return nil, fmt.Errorf("write script: %w", err)
	}
	m.logger.Debug("script saved", "id", s.ID)
	return s, nil
}

// freeID returns base, or base_N for the first N not yet on disk.
func (m *Manager) freeID(base string) string {
	if base == "" {
		base = "script"
	}
	id := base
	for n := 1; m.exists(id); n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	return id
}

func (m *Manager) exists(id string) bool {
	_, err := os.Stat(m.path(id))
	return err == nil
}

func (m *Manager) path(id string) string {
	return filepath.Join(m.dir, id+".lua")
}

// Delete removes a script file by id.
func (m *Manager) Delete(id string) error {
	if !validID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := os.Remove(m.path(id)); err != nil {
		return fmt.Errorf("delete script: %w", err)
	}
	return nil
}

// parseFile reads a script. An optional first line `-- {json}` carries the
// metadata; a file without it is enabled and named after its id.
func (m *Manager) parseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Script{
		ID:       strings.TrimSuffix(filepath.Base(path), ".lua"),
		FilePath: path,
	}
	s.Meta = Meta{Name: s.ID, Enabled: true}

	content := string(data)
	first, rest, _ := strings.Cut(content, "\n")
	if strings.HasPrefix(first, "-- {") {
		if err := json.Unmarshal([]byte(strings.TrimPrefix(first, "-- ")), &s.Meta); err != nil {
			m.logger.Warn("script metadata parse error", "file", path, "err", err)
		}
		content = strings.TrimLeft(rest, "\r\n")
	}
	s.Code = content
	return s, nil
}

// serialize writes the metadata header line, a blank line and the code.
func serialize(s *Script) []byte {
	meta, _ := json.Marshal(s.Meta)
	out := append([]byte("-- "), meta...)
	out = append(out, '\n')
	if s.Code == "" {
		return out
	}
	out = append(out, '\n')
	out = append(out, s.Code...)
	if !strings.HasSuffix(s.Code, "\n") {
		out = append(out, '\n')
	}
	return out
}

const maxSlug = 40

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := strings.Trim(slugRe.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if len(slug) > maxSlug {
		slug = strings.TrimRight(slug[:maxSlug], "_")
	}
	return slug
}

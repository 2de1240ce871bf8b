package storage

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-memory Storage. Paths are slash separated and absolute.
// Directories exist implicitly as parents of files, or explicitly via Mkdir.
type Memory struct {
	mu    sync.Mutex
	files map[string]string
	dirs  map[string]struct{}
	// RemoveErrors makes removal of the given paths fail with the mapped error.
	RemoveErrors map[string]error
}

func NewMemory() *Memory {
	return &Memory{
		files:        make(map[string]string),
		dirs:         make(map[string]struct{}),
		RemoveErrors: make(map[string]error),
	}
}

// WriteFile creates or replaces a file.
func (m *Memory) WriteFile(name string, contents string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path.Clean(name)] = contents
}

// Mkdir creates an empty directory.
func (m *Memory) Mkdir(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dirs[path.Clean(name)] = struct{}{}
}

// Files returns every stored file path in sorted order.
func (m *Memory) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.files))
	for name := range m.files {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

func (m *Memory) Exists(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = path.Clean(name)
	if _, ok := m.files[name]; ok {
		return true
	}

	return m.isDirLocked(name)
}

func (m *Memory) EntriesIfDirExists(name string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = path.Clean(name)
	if _, ok := m.files[name]; ok {
		return nil, fmt.Errorf("list %q: not a directory", name)
	}

	seen := make(map[string]struct{})
	collect := func(candidate string) {
		if child, ok := childOf(name, candidate); ok {
			seen[child] = struct{}{}
		}
	}
	for file := range m.files {
		collect(file)
	}
	for dir := range m.dirs {
		collect(dir)
	}

	if len(seen) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(seen))
	for child := range seen {
		out = append(out, child)
	}
	sort.Strings(out)

	return out, nil
}

func (m *Memory) ContentsOf(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contents, ok := m.files[path.Clean(name)]
	if !ok {
		return "", fmt.Errorf("read %q: %w", name, fs.ErrNotExist)
	}

	return contents, nil
}

func (m *Memory) RemoveFile(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = path.Clean(name)
	if err := m.RemoveErrors[name]; err != nil {
		return fmt.Errorf("remove %q: %w", name, err)
	}

	if _, ok := m.files[name]; !ok {
		return fmt.Errorf("remove %q: %w", name, fs.ErrNotExist)
	}
	delete(m.files, name)

	return nil
}

func (m *Memory) RemoveFileIfExists(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = path.Clean(name)
	if err := m.RemoveErrors[name]; err != nil {
		return fmt.Errorf("remove %q: %w", name, err)
	}

	prefix := name + "/"
	for file := range m.files {
		if file == name || strings.HasPrefix(file, prefix) {
			delete(m.files, file)
		}
	}
	for dir := range m.dirs {
		if dir == name || strings.HasPrefix(dir, prefix) {
			delete(m.dirs, dir)
		}
	}

	return nil
}

func (m *Memory) isDirLocked(name string) bool {
	if _, ok := m.dirs[name]; ok {
		return true
	}

	prefix := name + "/"
	if name == "/" {
		prefix = "/"
	}
	for file := range m.files {
		if strings.HasPrefix(file, prefix) {
			return true
		}
	}
	for dir := range m.dirs {
		if strings.HasPrefix(dir, prefix) {
			return true
		}
	}

	return false
}

// childOf reports the first path segment of candidate below dir.
func childOf(dir string, candidate string) (string, bool) {
	prefix := dir + "/"
	if dir == "/" {
		prefix = "/"
	}
	if !strings.HasPrefix(candidate, prefix) {
		return "", false
	}

	rest := strings.TrimPrefix(candidate, prefix)
	if rest == "" {
		return "", false
	}
	if idx := strings.Index(rest, "/"); idx >= 0 {
		rest = rest[:idx]
	}

	return rest, true
}

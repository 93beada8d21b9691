package loader

import (
	"io/fs"
	"testing/fstest"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	fstest.MapFS
}

func NewMemFS() *MemFS {
	return &MemFS{MapFS: fstest.MapFS{}}
}

func (m *MemFS) AddFile(path string, content string) {
	m.MapFS[path] = &fstest.MapFile{Data: []byte(content), Mode: 0o644}
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.MapFS, path)
}

package mocks

import (
	"os"
	"sync"
)

// MockFileSystem is an in-memory stand-in for the config loader's filesystem.
type MockFileSystem struct {
	Mu sync.Mutex

	HomeDir    string
	HomeDirErr error
	Files      map[string][]byte

	// OpErrors forces an error from the named operation ("UserHomeDir" or "ReadFile").
	OpErrors map[string]error

	// Reads records every path passed to ReadFile.
	Reads []string
}

// NewMockFileSystem creates an empty filesystem rooted at homeDir.
func NewMockFileSystem(homeDir string) *MockFileSystem {
	return &MockFileSystem{
		HomeDir:  homeDir,
		Files:    make(map[string][]byte),
		OpErrors: make(map[string]error),
	}
}

// WithFile adds a file and returns the filesystem for chaining.
func (m *MockFileSystem) WithFile(path string, content string) *MockFileSystem {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if m.Files == nil {
		m.Files = make(map[string][]byte)
	}
	m.Files[path] = []byte(content)
	return m
}

// WithError makes op fail with err.
func (m *MockFileSystem) WithError(op string, err error) *MockFileSystem {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if m.OpErrors == nil {
		m.OpErrors = make(map[string]error)
	}
	m.OpErrors[op] = err
	return m
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if err, ok := m.OpErrors["UserHomeDir"]; ok {
		return "", err
	}
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Reads = append(m.Reads, path)
	if err, ok := m.OpErrors["ReadFile"]; ok {
		return nil, err
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

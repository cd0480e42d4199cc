package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DefaultExtension is appended by SaveAs to paths that have none.
const DefaultExtension = ".txt"

// ReadTextFile reads the whole file at path, which must be valid UTF-8.
func ReadTextFile(path string) ([]byte, error) {
	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrNotUTF8, path)
	}
	return data, nil
}

// WriteTextFile writes content to path as is.
func WriteTextFile(path string, content string) error {
	return os.WriteFile(expandHome(path), []byte(content), 0644)
}

// FileExists reports whether path names an existing file or directory.
func FileExists(path string) bool {
	_, err := os.Stat(expandHome(path))
	return err == nil
}

// WithDefaultExtension appends DefaultExtension when path has no extension.
func WithDefaultExtension(path string) string {
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + DefaultExtension
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

// New empties the document and unbinds the current file.
func (e *editor) New() {
	e.replaceDocument(nil)
	e.session.CurrentFile = ""
	e.DispatchMessage(NewDocumentMessage)
}

// Open replaces the document with the file at path. On failure nothing about
// the current document changes.
func (e *editor) Open(path string) error {
	data, err := ReadTextFile(path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrOpenFailed, err)
		e.DispatchError(ErrOpenFailedId, err)
		return err
	}

	e.replaceDocument(data)
	e.session.CurrentFile = path
	e.DispatchSignal(OpenSignal{path: path})
	return nil
}

// Save writes the document to the current file. Without one it returns
// ErrNoCurrentFile and the caller is expected to ask for a path.
func (e *editor) Save() error {
	if e.session.CurrentFile == "" {
		return ErrNoCurrentFile
	}
	return e.writeTo(e.session.CurrentFile)
}

// SaveAs writes the document to path and, on success, binds it as the
// current file.
func (e *editor) SaveAs(path string) error {
	path = WithDefaultExtension(strings.TrimSpace(path))
	if path == "" {
		err := fmt.Errorf("%w: empty path", ErrSaveFailed)
		e.DispatchError(ErrSaveFailedId, err)
		return err
	}
	if err := e.writeTo(path); err != nil {
		return err
	}
	e.session.CurrentFile = path
	return nil
}

func (e *editor) writeTo(path string) error {
	content := e.buffer.GetCurrentContent()
	if err := WriteTextFile(path, content); err != nil {
		err = fmt.Errorf("%w: %w", ErrSaveFailed, err)
		e.DispatchError(ErrSaveFailedId, err)
		return err
	}

	e.buffer.SaveContent()
	e.DispatchSignal(SaveSignal{path: path, content: content})
	return nil
}

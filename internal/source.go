package internal

import (
	"fmt"
	"os"
	"strings"
)

// SourceFile holds one loaded source file for the duration of a run.
// The content is immutable after load; Save writes replacement content
// back to the original path.
type SourceFile struct {
	Path  string
	Data  []byte
	Lines []string

	mode os.FileMode
}

// ReadSourceFile loads the file at path.
func ReadSourceFile(path string) (*SourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("error reading %s: is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return &SourceFile{
		Path:  path,
		Data:  data,
		Lines: strings.Split(string(data), "\n"),
		mode:  info.Mode().Perm(),
	}, nil
}

// Save overwrites the file with content, keeping the original permission bits.
func (s *SourceFile) Save(content string) error {
	if err := os.WriteFile(s.Path, []byte(content), s.mode); err != nil {
		return fmt.Errorf("error writing %s: %w", s.Path, err)
	}
	return nil
}

// Mode returns the file's permission bits as seen at load time.
func (s *SourceFile) Mode() os.FileMode {
	return s.mode
}

package cmdflag

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileFlag is a go-flags flag type that checks, at parse time, that
// the named file exists.
type FileFlag string

func (f *FileFlag) UnmarshalFlag(value string) error {
	stat, err := os.Stat(value)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fmt.Errorf("path '%s' is a directory, not a file", value)
	}

	abs, err := filepath.Abs(value)
	if err != nil {
		return err
	}

	*f = FileFlag(abs)

	return nil
}

func (f FileFlag) Path() string {
	return string(f)
}

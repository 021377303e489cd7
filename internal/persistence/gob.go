// Package persistence reads and writes gob snapshot files.
package persistence

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SaveGob gob-encodes object into filePath, creating parent directories as
// needed. The write goes through a temp file and rename so a crash mid-write
// cannot leave a truncated snapshot behind.
func SaveGob(filePath string, object any) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpPath := filePath + ".tmp"
	file, err := os.Create(tmpPath) // #nosec G304 -- path is controlled by the application
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", tmpPath, err)
	}

	encodeErr := gob.NewEncoder(file).Encode(object)
	closeErr := file.Close()
	if err := errors.Join(encodeErr, closeErr); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write snapshot %s: %w", filePath, err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize snapshot %s: %w", filePath, err)
	}
	return nil
}

// LoadGob decodes a gob snapshot from filePath into objectPointer, which
// must point to the type that was encoded. A missing file is reported as
// os.ErrNotExist so callers can treat it as a fresh start.
func LoadGob(filePath string, objectPointer any) error {
	file, err := os.Open(filePath) // #nosec G304 -- path is controlled by the application
	if err != nil {
		if os.IsNotExist(err) {
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}

	decodeErr := gob.NewDecoder(file).Decode(objectPointer)
	closeErr := file.Close()
	if err := errors.Join(decodeErr, closeErr); err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", filePath, err)
	}
	return nil
}

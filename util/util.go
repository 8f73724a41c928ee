package util

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileMode is the default FileMode used when creating files.
const FileMode = 0664

// DirMode is the default FileMode used when creating directories.
const DirMode = 0775

// FileExists checks whether some file exists.
func FileExists(file string) bool {
	stat, err := os.Stat(file)
	return err == nil && !stat.IsDir()
}

// DirExists checks whether some directory exists.
func DirExists(dir string) bool {
	stat, err := os.Stat(dir)
	return err == nil && stat.IsDir()
}

// WriteFileAtomic replaces the content of `file` with `data`. The data is written to a
// temporary file in the same directory first and then renamed over the target, so readers
// never observe a partially written file. An existing file keeps its permissions.
func WriteFileAtomic(file string, data []byte) error {
	mode := os.FileMode(FileMode)
	if stat, err := os.Stat(file); err == nil {
		mode = stat.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "creating temporary file for '%s'", file)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing '%s'", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "syncing '%s'", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing '%s'", tmpName)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return errors.Wrapf(err, "setting permissions of '%s'", tmpName)
	}
	if err := os.Rename(tmpName, file); err != nil {
		return errors.Wrapf(err, "replacing '%s'", file)
	}
	committed = true
	return nil
}

// UpdateFile atomically writes `data` to `file` unless the file already holds exactly
// these bytes. Reports whether the file was written.
func UpdateFile(file string, data []byte) (bool, error) {
	current, err := os.ReadFile(file)
	if err == nil && string(current) == string(data) {
		return false, nil
	}
	if err := WriteFileAtomic(file, data); err != nil {
		return false, err
	}
	return true, nil
}

// ListFiles returns the names of the regular files in `dir` whose name matches the glob `pattern`,
// in lexical order.
func ListFiles(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading directory '%s'", dir)
	}
	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid pattern '%s'", pattern)
		}
		if matched {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

package outline

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteJSON writes points as JSON array of {"x", "y", "size"} objects indented with 4 spaces
func WriteJSON(w io.Writer, points []SizedPoint) error {
	if points == nil {
		points = []SizedPoint{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(points)
}

// SaveResult writes sampled and simplified points into two JSON documents.
// Both documents are staged in temporary files first and moved into place only after
// both were written. If the second move fails the first one is rolled back and a previous
// sampled document is restored, so on error no partial output is left behind.
func SaveResult(res *Result, sampledPath, simplifiedPath string) error {
	sampledTmp, err := writeTempJSON(sampledPath, res.Sampled)
	if err != nil {
		return errors.Wrap(err, "Can't write sampled points")
	}
	simplifiedTmp, err := writeTempJSON(simplifiedPath, res.Simplified)
	if err != nil {
		os.Remove(sampledTmp)
		return errors.Wrap(err, "Can't write simplified points")
	}
	backup, err := stashExisting(sampledPath)
	if err != nil {
		os.Remove(sampledTmp)
		os.Remove(simplifiedTmp)
		return errors.Wrapf(err, "Can't move aside previous %s", sampledPath)
	}
	if err := os.Rename(sampledTmp, sampledPath); err != nil {
		os.Remove(sampledTmp)
		os.Remove(simplifiedTmp)
		restoreStashed(backup, sampledPath)
		return errors.Wrapf(err, "Can't move sampled points to %s", sampledPath)
	}
	if err := os.Rename(simplifiedTmp, simplifiedPath); err != nil {
		os.Remove(simplifiedTmp)
		os.Remove(sampledPath)
		restoreStashed(backup, sampledPath)
		return errors.Wrapf(err, "Can't move simplified points to %s", simplifiedPath)
	}
	if backup != "" {
		os.Remove(backup)
	}
	return nil
}

// stashExisting moves regular file at path to a hidden sibling and returns its new name.
// Empty name means there was nothing to move.
func stashExisting(path string) (string, error) {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", nil
	}
	placeholder, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".bak.*")
	if err != nil {
		return "", errors.Wrap(err, "Can't create backup file")
	}
	backup := placeholder.Name()
	placeholder.Close()
	if err := os.Rename(path, backup); err != nil {
		os.Remove(backup)
		return "", err
	}
	return backup, nil
}

func restoreStashed(backup, path string) {
	if backup == "" {
		return
	}
	if err := os.Rename(backup, path); err != nil {
		Logger().Warn("can't restore previous output", "path", path, "backup", backup, "err", err)
	}
}

func writeTempJSON(target string, points []SizedPoint) (string, error) {
	file, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return "", errors.Wrap(err, "Can't create temporary file")
	}
	if err := file.Chmod(0o644); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", errors.Wrap(err, "Can't set permissions")
	}
	if err := WriteJSON(file, points); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", errors.Wrap(err, "Can't encode points")
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", errors.Wrap(err, "Can't close temporary file")
	}
	return file.Name(), nil
}

// Package source loads the text that utccheck scans: command-line text, stdin,
// local files and web pages. Loaders return plain strings; they never look
// for timestamps themselves.
package source

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
)

// ReadFile reads path as UTF-8 text.
// A missing file yields ErrFileNotFound; any other failure, including content
// that is not valid UTF-8, yields ErrFileRead.
func ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", alerr.New(alerr.ErrFileNotFound, "file not found").
			WithFile(path, 0)
	}
	if err != nil {
		return "", alerr.Wrap(alerr.ErrFileRead, err, "failed to read file").
			WithFile(path, 0)
	}
	if info.IsDir() {
		return "", alerr.New(alerr.ErrFileRead, "path is a directory").
			WithFile(path, 0).
			WithHelp("pass a regular file, or list the files inside the directory")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", alerr.Wrap(alerr.ErrFileRead, err, "failed to read file").
			WithFile(path, 0)
	}
	if !utf8.Valid(data) {
		return "", alerr.New(alerr.ErrFileRead, "file is not valid UTF-8 text").
			WithFile(path, 0)
	}

	slog.Debug("read file", "path", path, "bytes", len(data))
	return string(data), nil
}

// ReadAll reads r to the end, typically os.Stdin.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", alerr.Wrap(alerr.ErrFileRead, err, "failed to read input")
	}
	return string(data), nil
}

// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFileName is read from the root of every searched directory. It uses
// .gitignore syntax.
const IgnoreFileName = ".kuiignore"

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. Paths matched by rootPath/.kuiignore are
// skipped. It returns a slice of their full paths in lexical order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	matcher, err := loadIgnore(rootPath)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == rootPath {
			return nil
		}
		if ignored(matcher, rootPath, path, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// Discover expands command-line paths into source files. A file is taken as
// given whatever its extension; a directory is searched with
// FindFilesByExtension. The result is deduplicated and keeps the order of
// the arguments.
func Discover(paths []string, extension string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		clean := filepath.Clean(p)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, clean)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to access %q: %w", p, err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		found, err := FindFilesByExtension(p, extension)
		if err != nil {
			return nil, fmt.Errorf("failed to search %q: %w", p, err)
		}
		slices.Sort(found)
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}

func loadIgnore(rootPath string) (*ignore.GitIgnore, error) {
	path := filepath.Join(rootPath, IgnoreFileName)
	matcher, err := ignore.CompileIgnoreFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return matcher, nil
}

func ignored(matcher *ignore.GitIgnore, rootPath, path string, dir bool) bool {
	if matcher == nil {
		return false
	}
	rel, err := filepath.Rel(rootPath, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if dir && matcher.MatchesPath(rel+"/") {
		return true
	}
	return matcher.MatchesPath(rel)
}

// Package confkit holds the shared configuration plumbing: path
// resolution, .env loading, and hydration of sections that live in
// their own files next to the main config.
package confkit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeromicro/go-zero/core/conf"
)

// ResolvePath expands environment variables in file and resolves it
// against base when relative. Absolute paths win over base.
func ResolvePath(base, file string) string {
	file = os.ExpandEnv(file)
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(base, file)
}

// BaseDir returns the directory holding the main config file.
func BaseDir(mainPath string) string {
	return filepath.Dir(mainPath)
}

// LoadFile unmarshals a config file into T via go-zero's conf loader.
func LoadFile[T any](path string, useEnv bool) (*T, error) {
	var cfg T
	var opts []conf.Option
	if useEnv {
		opts = append(opts, conf.UseEnv())
	}
	if err := conf.Load(path, &cfg, opts...); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// Section is a config subsection stored in a separate file. The main
// config names the file; Hydrate resolves it against the main config's
// directory and fills Value through the supplied loader. An empty File
// leaves Value nil, which callers treat as "use built-in defaults".
type Section[T any] struct {
	File  string `json:",optional"`
	Value *T     `json:"-"`
}

// Hydrate loads the section file, if one is named, and records the
// resolved path back into File so later diagnostics show where the
// values came from.
func (s *Section[T]) Hydrate(base string, loader func(string) (*T, error)) error {
	if s.File == "" {
		return nil
	}
	resolved := ResolvePath(base, s.File)
	v, err := loader(resolved)
	if err != nil {
		return err
	}
	s.File, s.Value = resolved, v
	return nil
}

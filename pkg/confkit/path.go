package confkit

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const maxWalkUp = 8

func fileExists(p string) bool {
	if p == "" {
		return false
	}
	_, err := os.Stat(p)
	return err == nil
}

// walkUp climbs from dir toward the filesystem root, calling visit at
// each level, and stops at the first directory containing go.mod or
// .git. It returns that directory, or "" when no marker was found.
func walkUp(dir string, visit func(dir string)) string {
	for i := 0; i < maxWalkUp; i++ {
		if visit != nil {
			visit(dir)
		}
		if fileExists(filepath.Join(dir, "go.mod")) || fileExists(filepath.Join(dir, ".git")) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// ProjectRoot locates the repository root by walking upwards from this
// source file. Falls back to the working directory when no go.mod or
// .git marker is found.
func ProjectRoot() (string, error) {
	if _, file, _, ok := runtime.Caller(0); ok {
		if root := walkUp(filepath.Dir(file), nil); root != "" {
			return root, nil
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return ".", fmt.Errorf("getwd: %w", err)
	}
	return wd, nil
}

// MustProjectRoot returns the repository root path or panics.
func MustProjectRoot() string {
	root, err := ProjectRoot()
	if err != nil {
		panic(err)
	}
	return root
}

// ProjectPath joins the repository root with rel.
func ProjectPath(rel string) (string, error) {
	root, err := ProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, rel), nil
}

// MustProjectPath returns ProjectPath(rel) or panics.
func MustProjectPath(rel string) string {
	p, err := ProjectPath(rel)
	if err != nil {
		panic(err)
	}
	return p
}

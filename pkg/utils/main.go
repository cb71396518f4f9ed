package utils

import (
	"os"

	"github.com/pkg/errors"
)

// PathExist reports whether path can be stat-ed.
func PathExist(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	return true
}

func EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil && !os.IsExist(err) {
		return errors.WithStack(err)
	}
	return nil
}

// UniqueStrings drops repeated values, keeping the first occurrence of each
// in its original position.
func UniqueStrings(s []string) []string {
	m := make(map[string]bool, len(s))
	u := make([]string, 0, len(s))
	for _, v := range s {
		if m[v] {
			continue
		}
		m[v] = true
		u = append(u, v)
	}
	return u
}

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func GetGotExpErr(title string, got interface{}, exp interface{}) error {
	if got == exp {
		return nil
	}
	return errors.New(fmt.Sprintf("%s got=%v expected=%v", title, got, exp))
}

func InitTestDir(testname string) (string, error) {
	rootDir := filepath.Join(os.TempDir(), "techjobs", testname)
	if _, err := os.Stat(rootDir); err == nil {
		os.RemoveAll(rootDir)
	}
	if err := EnsureDir(rootDir); err != nil {
		return "", err
	}
	return rootDir, nil
}

// WriteTestFile writes content to rootDir/name and returns the full path.
func WriteTestFile(rootDir, name, content string) (string, error) {
	path := filepath.Join(rootDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.WithStack(err)
	}
	return path, nil
}

//go:build !unix

package main

import (
	"fmt"
	"os"
)

// redirectOutput swaps the os.Stdout/os.Stderr handles. Runtime-level output
// such as panic traces still goes to the original stderr here.
func redirectOutput(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}

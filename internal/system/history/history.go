// Released under an MIT license. See LICENSE.

// Package history persists the interactive history between sessions.
package history

import (
	"io"
	"os"
	"path/filepath"
)

const name = ".prim_history"

// Load passes the history file to read. The file is locked while it is read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// Path returns the path of the history file.
func Path() string {
	return filepath.Join(os.Getenv("HOME"), name)
}

// Save passes the history file to write. The file is locked while it is written.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package history

import (
	"os"

	"golang.org/x/sys/unix"
)

// file opens the history file with op and locks it. The lock is released
// when the file is closed.
func file(op func(string) (*os.File, error)) (*os.File, error) {
	f, err := op(Path())
	if err != nil {
		return nil, err
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()

		return nil, err
	}

	return f, nil
}

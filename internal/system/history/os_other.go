// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package history

import "os"

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(Path())
}

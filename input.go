package main

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// An inputSource is the process's piped input, injectable for tests.
type inputSource interface {
	IsTerminal() bool
	ReadAll() ([]byte, error)
}

// stdinSource reads os.Stdin at most once: a pipe has no second read.
type stdinSource struct {
	once sync.Once
	data []byte
	err  error
}

func newStdinSource() *stdinSource {
	return &stdinSource{}
}

func (s *stdinSource) IsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func (s *stdinSource) ReadAll() ([]byte, error) {
	first := false
	s.once.Do(func() {
		s.data, s.err = io.ReadAll(os.Stdin)
		first = true
	})
	if !first {
		return nil, nil
	}
	return s.data, s.err
}

// partitionArgs splits the positional arguments into hashable files and
// directories. Anything that can't be stat'ed is an error.
func partitionArgs(args []string) (files, dirs []string, err error) {
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, nil, err
		}
		if info.IsDir() {
			dirs = append(dirs, arg)
		} else {
			files = append(files, arg)
		}
	}
	return files, dirs, nil
}

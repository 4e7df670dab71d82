package main

import (
	"crypto"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Hash bytes
func hashBytes(h crypto.Hash, data []byte) []byte {
	hh := newHash(h)
	hh.Write(data)
	return hh.Sum(nil)
}

func hashF(h crypto.Hash, f io.Reader) ([]byte, error) {
	hh := newHash(h)
	if _, err := io.Copy(hh, f); err != nil {
		return nil, err
	}
	return hh.Sum(nil), nil
}

func hashFile(h crypto.Hash, file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", file)
	}

	if opts.mmap && info.Size() > 0 {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			log.Printf("%s: mmap: %v", file, err)
		} else {
			defer m.Unmap()
			return hashBytes(h, m), nil
		}
	}
	return hashF(h, f)
}

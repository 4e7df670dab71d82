package main

import (
	"bytes"
	"crypto"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

func climit() int {
	if opts.threads > 0 {
		return opts.threads
	}
	return runtime.NumCPU()
}

// verifyChecksum hashes the record's target and compares digests. Piped
// stdin takes precedence over the named file; a missing file with no piped
// input classifies as missing (nil) instead of failing. Any other read
// error propagates.
func verifyChecksum(c *Checksum, h crypto.Hash, src inputSource) (Result, error) {
	result := Result{hash: h, file: c.file}

	var sum []byte
	if !src.IsTerminal() {
		data, err := src.ReadAll()
		if err != nil {
			return result, err
		}
		sum = hashBytes(h, data)
	} else {
		if _, err := os.Stat(c.file); err != nil {
			if os.IsNotExist(err) {
				return result, nil
			}
			return result, err
		}
		var err error
		if sum, err = hashFile(h, c.file); err != nil {
			return result, err
		}
	}

	ok := bytes.Equal(sum, c.sum)
	result.ok = &ok
	return result, nil
}

// verifyCheckFile verifies every record of a parsed checksum file and
// returns the outcomes in record order. Algorithms are resolved up front so
// an undecidable record aborts before any hashing starts.
func verifyCheckFile(cf *checkFile, src inputSource) (*Report, error) {
	// The first declared algorithm doubles as the file-wide default for
	// records that declare none
	var fallback crypto.Hash
	for _, record := range cf.records {
		if record.hash != 0 {
			fallback = record.hash
			break
		}
	}

	resolved := make([]crypto.Hash, len(cf.records))
	for i, record := range cf.records {
		declared := record.hash
		if declared == 0 {
			declared = fallback
		}
		h, err := resolveHash(chosen, declared, opts.insecure)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cf.file, err)
		}
		resolved[i] = h
	}

	results := make([]Result, len(cf.records))
	if src.IsTerminal() {
		var g errgroup.Group
		g.SetLimit(climit())
		for i := range cf.records {
			i := i
			g.Go(func() error {
				result, err := verifyChecksum(cf.records[i], resolved[i], src)
				if err != nil {
					return err
				}
				results[i] = result
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		// Piped input is a single stream, so records go in order
		for i := range cf.records {
			result, err := verifyChecksum(cf.records[i], resolved[i], src)
			if err != nil {
				return nil, err
			}
			results[i] = result
		}
	}

	return &Report{file: cf.file, results: results, impropers: cf.impropers}, nil
}

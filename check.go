package main

import (
	"bufio"
	"bytes"
	"crypto"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
)

var errImproper = errors.New("improperly formatted checksum line")

var regex = struct {
	sfv *regexp.Regexp
	bsd *regexp.Regexp
}{
	// md5sum et al
	sfv: regexp.MustCompile(`^([0-9A-Fa-f]{32,128})  (.+)$`),
	// BSD digest
	bsd: regexp.MustCompile(`^([A-Za-z0-9-]+) \((.+)\) = ([0-9A-Fa-f]{32,128})$`),
}

// parseLine parses one checksum line, trying the md5sum format first and
// the BSD format second. Paths are trimmed of surrounding whitespace. A BSD
// algorithm name that isn't recognized leaves the record's hash unset for
// later resolution.
func parseLine(line string) (*Checksum, error) {
	if m := regex.sfv.FindStringSubmatch(line); m != nil {
		sum, err := hex.DecodeString(m[1])
		if err != nil {
			return nil, err
		}
		file := strings.TrimSpace(m[2])
		if file == "" {
			return nil, errImproper
		}
		return &Checksum{file: file, sum: sum}, nil
	}
	if m := regex.bsd.FindStringSubmatch(line); m != nil {
		sum, err := hex.DecodeString(m[3])
		if err != nil {
			return nil, err
		}
		file := strings.TrimSpace(m[2])
		if file == "" {
			return nil, errImproper
		}
		h, _ := parseHashName(m[1])
		return &Checksum{hash: h, file: file, sum: sum}, nil
	}
	return nil, errImproper
}

type jsonChecksum struct {
	Algorithm *string `json:"algorithm"`
	File      string  `json:"file"`
	Digest    string  `json:"digest"`
}

// parseJSONChecksums parses the serialized record-array form. Unlike the
// BSD grammar, an unknown algorithm name here is a hard error; only null
// defers resolution.
func parseJSONChecksums(data []byte) ([]*Checksum, error) {
	var entries []jsonChecksum
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	records := make([]*Checksum, 0, len(entries))
	for i, entry := range entries {
		sum, err := hex.DecodeString(entry.Digest)
		if err != nil {
			return nil, fmt.Errorf("invalid digest in entry %d: %v", i, err)
		}
		var h crypto.Hash
		if entry.Algorithm != nil {
			if h, err = parseHashName(*entry.Algorithm); err != nil {
				return nil, fmt.Errorf("entry %d: %v", i, err)
			}
		}
		records = append(records, &Checksum{hash: h, file: entry.File, sum: sum})
	}
	return records, nil
}

// loadCheckFile parses a checksum file. Content starting with "[" is taken
// as a JSON record array; anything else is parsed line by line, collecting
// the numbers of improperly formatted lines. Digests that match a grammar
// but don't decode as hex are hard errors.
func loadCheckFile(file string, data []byte) (*checkFile, error) {
	cf := &checkFile{file: file}

	if t := bytes.TrimLeft(data, " \t\r\n"); len(t) > 0 && t[0] == '[' {
		records, err := parseJSONChecksums(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		cf.records = records
		return cf, nil
	}

	var lineno uint64
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineno++
		record, err := parseLine(scanner.Text())
		if err != nil {
			if errors.Is(err, errImproper) {
				cf.impropers = append(cf.impropers, lineno)
				if opts.warn && !opts.status {
					log.Printf("%s: %d: improperly formatted checksum line", file, lineno)
				}
				continue
			}
			return nil, fmt.Errorf("%s: invalid digest at line %d: %v", file, lineno, err)
		}
		cf.records = append(cf.records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return cf, nil
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// BSD sysexits(3)
const (
	exOK       = 0
	exNoInput  = 66
	exSoftware = 70
)

// A Report aggregates the verification outcomes of one checksum file.
type Report struct {
	file      string
	results   []Result
	impropers []uint64
}

func (r *Report) counts() (total, missing, success, failure int) {
	total = len(r.results)
	for i := range r.results {
		switch {
		case r.results[i].ok == nil:
			missing++
		case *r.results[i].ok:
			success++
		default:
			failure++
		}
	}
	return total, missing, success, failure
}

// verified returns the outcomes that count as verified, dropping the
// missing ones under --ignore-missing.
func (r *Report) verified() []Result {
	if !opts.ignore {
		return r.results
	}
	results := make([]Result, 0, len(r.results))
	for i := range r.results {
		if r.results[i].ok != nil {
			results = append(results, r.results[i])
		}
	}
	return results
}

// failed reports whether the outcomes force the software-error exit.
func (r *Report) failed() bool {
	for i := range r.results {
		if r.results[i].ok == nil {
			if !opts.ignore {
				return true
			}
		} else if !*r.results[i].ok {
			return true
		}
	}
	return opts.strict && len(r.impropers) > 0
}

func token(result Result) string {
	switch {
	case result.ok == nil:
		return "No such file or directory"
	case *result.ok:
		return "OK"
	default:
		return "FAILED"
	}
}

// render prints the per-file lines to w and the summary to ew. Quiet mode
// filters the printed lines only; the summary counts are taken from the
// full verified set.
func (r *Report) render(w, ew io.Writer) {
	results := r.verified()
	if len(results) == 0 {
		fmt.Fprintf(ew, "%s: no file was verified\n", r.file)
		return
	}

	total, missing, success, failure := r.counts()
	if opts.ignore {
		total -= missing
		missing = 0
	}

	shown := results
	if opts.quiet {
		shown = make([]Result, 0, len(results))
		for i := range results {
			if results[i].ok == nil || !*results[i].ok {
				shown = append(shown, results[i])
			}
		}
	}

	pad := 0
	for i := range shown {
		if len(shown[i].file) > pad {
			pad = len(shown[i].file)
		}
	}
	for i := range shown {
		fmt.Fprintf(w, "%-*s %s\n", pad, shown[i].file, token(shown[i]))
	}

	if success == total && !opts.quiet {
		fmt.Fprintln(ew, "Everything is successful")
	} else if opts.ignore {
		fmt.Fprintf(ew, "%d validations failed (Success:%d; Failure:%d)\n", total-success, success, failure)
	} else {
		fmt.Fprintf(ew, "%d validations failed (Missing:%d; Success:%d; Failure:%d)\n", total-success, missing, success, failure)
	}
}

func exitCode(reports []*Report) int {
	code := exOK
	for _, r := range reports {
		if r.failed() {
			return exSoftware
		}
		if len(r.verified()) == 0 {
			code = exNoInput
		}
	}
	return code
}

// Status mode looks at the raw outcomes only. A failure in any report
// wins over the no-input code.
func statusCode(reports []*Report) int {
	code := exOK
	for _, r := range reports {
		for i := range r.results {
			if r.results[i].ok == nil || !*r.results[i].ok {
				return exSoftware
			}
		}
		if opts.strict && len(r.impropers) > 0 {
			return exSoftware
		}
		if len(r.results) == 0 {
			code = exNoInput
		}
	}
	return code
}

type jsonResult struct {
	Algorithm string `json:"algorithm"`
	File      string `json:"file"`
	Success   *bool  `json:"success"`
}

type orderedReports []*Report

// MarshalJSON keys the object by checksum file in input order, which a map
// would sort away.
func (o orderedReports) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.file)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		results := r.verified()
		entries := make([]jsonResult, len(results))
		for i := range results {
			entries[i] = jsonResult{
				Algorithm: algorithms[results[i].hash].name,
				File:      results[i].file,
				Success:   results[i].ok,
			}
		}
		val, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func renderJSON(reports []*Report, w io.Writer) error {
	var data []byte
	var err error
	if opts.pretty {
		data, err = json.MarshalIndent(orderedReports(reports), "", "  ")
	} else {
		data, err = json.Marshal(orderedReports(reports))
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

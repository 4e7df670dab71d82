package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

import flag "github.com/spf13/pflag"

const version string = "1.0.0"

func init() {
	log.SetPrefix("ERROR: ")
	log.SetFlags(0)

	progname := filepath.Base(os.Args[0])

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [-c CHECKFILE...]|[FILE...]\n", progname)
		flag.PrintDefaults()
	}

	flag.StringVarP(&opts.algorithm, "hash-algorithm", "H", "", "hash algorithm to use")
	flag.BoolVarP(&opts.insecure, "allow-insecure", "", false, "allow insecure hash algorithms (MD2, MD4, MD5, SHA1)")
	flag.BoolVarP(&opts.list, "list-hash-algorithms", "", false, "list supported hash algorithms and exit")
	flag.BoolVarP(&opts.check, "check", "c", false, "read checksums from the files and check them")
	flag.BoolVarP(&opts.ignore, "ignore-missing", "", false, "don't fail or report status for missing files")
	flag.BoolVarP(&opts.quiet, "quiet", "q", false, "don't print OK for each successfully verified file")
	flag.BoolVarP(&opts.status, "status", "S", false, "don't output anything, status code shows success")
	flag.BoolVarP(&opts.strict, "strict", "", false, "exit non-zero for improperly formatted checksum lines")
	flag.BoolVarP(&opts.warn, "warn", "w", false, "warn about improperly formatted checksum lines")
	flag.BoolVarP(&opts.json, "json", "j", false, "output the verification result as JSON")
	flag.BoolVarP(&opts.pretty, "pretty", "p", false, "output JSON with indentation")
	flag.StringVarP(&opts.style, "style", "s", "sfv", "output style (sfv, bsd, json)")
	flag.StringVarP(&opts.output, "output", "o", "", "write output to the file instead of stdout")
	flag.IntVarP(&opts.threads, "threads", "T", 0, "number of threads (default: number of CPUs)")
	flag.BoolVarP(&opts.mmap, "mmap", "M", false, "use mmap to read files")
	flag.BoolVarP(&opts.version, "version", "", false, "show version and exit")
}

func main() {
	flag.Parse()

	if opts.version {
		fmt.Printf("usum %s %v %s/%s %s\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH, getCommit())
		os.Exit(0)
	}
	if opts.list {
		for _, h := range hashes {
			fmt.Println(algorithms[h].name)
		}
		os.Exit(0)
	}

	if opts.quiet && opts.status {
		log.Fatal("The --quiet & --status options are mutually exclusive")
	}
	if !opts.check {
		for _, option := range []struct {
			name string
			set  bool
		}{
			{"ignore-missing", opts.ignore},
			{"json", opts.json},
			{"quiet", opts.quiet},
			{"status", opts.status},
			{"strict", opts.strict},
			{"warn", opts.warn},
		} {
			if option.set {
				log.Fatalf("The --%s option is meaningful only when verifying checksums", option.name)
			}
		}
	}

	if opts.algorithm != "" {
		h, err := parseHashName(opts.algorithm)
		if err != nil {
			log.Fatal(err)
		}
		chosen = h
	}

	if !opts.check {
		if !flag.CommandLine.Changed("style") {
			if path, err := configPath(); err == nil {
				config, err := loadConfig(path)
				if err != nil {
					log.Fatal(err)
				}
				if config != nil && config.Style != "" {
					opts.style = config.Style
				}
			}
		}
		var err error
		if style, err = parseStyle(opts.style); err != nil {
			log.Fatal(err)
		}
	}

	src := newStdinSource()
	if opts.check {
		os.Exit(checkMode(flag.Args(), src, os.Stdout, os.Stderr))
	}
	os.Exit(computeMode(flag.Args(), src, os.Stdout))
}

// computeMode digests the given files, or piped stdin when there are none,
// with the chosen algorithm. Directories are diagnosed after the output.
func computeMode(args []string, src inputSource, w io.Writer) int {
	h, err := resolveHash(chosen, 0, opts.insecure)
	if err != nil {
		log.Fatal(err)
	}

	var outputs []*Output
	var dirs []string
	if len(args) == 0 {
		if src.IsTerminal() {
			log.Fatal("input from tty is invalid")
		}
		data, err := src.ReadAll()
		if err != nil {
			log.Fatal(err)
		}
		outputs = []*Output{newOutput(&Checksum{hash: h, file: "-", sum: hashBytes(h, data)})}
	} else {
		var files []string
		files, dirs, err = partitionArgs(args)
		if err != nil {
			log.Fatal(err)
		}
		if len(files) == 0 {
			for _, dir := range dirs {
				log.Printf("%s is a directory", dir)
			}
			return exNoInput
		}
		sums := make([][]byte, len(files))
		var g errgroup.Group
		g.SetLimit(climit())
		for i := range files {
			i := i
			g.Go(func() error {
				sum, err := hashFile(h, files[i])
				if err != nil {
					return err
				}
				sums[i] = sum
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Fatal(err)
		}
		outputs = make([]*Output, len(files))
		for i := range files {
			outputs[i] = newOutput(&Checksum{hash: h, file: files[i], sum: sums[i]})
		}
	}

	lines, err := renderOutputs(outputs, style)
	if err != nil {
		log.Fatal(err)
	}
	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
			log.Fatal(err)
		}
	} else {
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}
	for _, dir := range dirs {
		log.Printf("%s is a directory", dir)
	}
	return exOK
}

// checkMode verifies the named checksum files and renders one report per
// file, or a single JSON object with -j.
func checkMode(files []string, src inputSource, w, ew io.Writer) int {
	if len(files) == 0 {
		log.Fatal("The --check option requires at least one checksum file")
	}
	reports := make([]*Report, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatal(err)
		}
		cf, err := loadCheckFile(file, data)
		if err != nil {
			log.Fatal(err)
		}
		report, err := verifyCheckFile(cf, src)
		if err != nil {
			log.Fatal(err)
		}
		reports = append(reports, report)
	}
	if opts.status {
		return statusCode(reports)
	}
	if opts.json {
		if err := renderJSON(reports, w); err != nil {
			log.Fatal(err)
		}
	} else {
		for _, report := range reports {
			report.render(w, ew)
		}
	}
	return exitCode(reports)
}

package testparser

import (
	"bufio"
	"encoding/json"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
)

// TestEvent represents a single event from go test -json output.
type TestEvent struct {
	Time    string  `json:"Time"`
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Elapsed float64 `json:"Elapsed"`
	Output  string  `json:"Output"`
}

// JSONParser parses `go test -json` output. Entries are named
// "<package base>.<test>" since one stream usually covers many packages.
type JSONParser struct{}

// Name returns the parser name.
func (p *JSONParser) Name() string {
	return "go-test-json"
}

// Parse reads one JSON event per line. Lines that are not JSON, such as
// build errors interleaved by the go command, are ignored.
func (p *JSONParser) Parse(r io.Reader) (Result, error) {
	res := newResult()
	output := make(map[string][]string) // top-level test -> output lines

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event TestEvent
		if err := json.Unmarshal(line, &event); err != nil {
			continue
		}
		// Package-level events have no test name.
		if event.Test == "" {
			continue
		}

		top, _, isSubtest := strings.Cut(event.Test, "/")
		name := qualifiedName(event.Package, top)

		switch event.Action {
		case "output":
			if event.Output != "" {
				output[name] = append(output[name], strings.TrimRight(event.Output, "\n"))
			}
		case "pass", "fail", "skip":
			if isSubtest {
				continue
			}
			elapsed, err := parseSeconds(strconv.FormatFloat(event.Elapsed, 'f', -1, 64))
			if err != nil {
				return Result{}, errors.Validationf("test %q: invalid elapsed time %v", name, event.Elapsed)
			}
			if err := res.record(name, event.Action, elapsed, output[name]); err != nil {
				return Result{}, err
			}
			delete(output, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return Result{}, errors.Wrap(err, "failed to read go test output")
	}
	return res, nil
}

func qualifiedName(pkg, test string) string {
	if pkg == "" {
		return test
	}
	return path.Base(pkg) + "." + test
}

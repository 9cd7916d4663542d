package testparser

import (
	"bufio"
	"io"
	"regexp"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
)

// Static regexes for Go test output parsing.
var (
	// Subtest results are indented, so only top-level tests match.
	goResultRegex = regexp.MustCompile(`^--- (PASS|FAIL|SKIP): (\S+) \((\d+(?:\.\d+)?)s\)`)
	goErrorLine   = regexp.MustCompile(`^\s+\S+\.go:\d+: (.*)$`)
)

// GoParser parses `go test -v` output.
type GoParser struct{}

// Name returns the parser name.
func (p *GoParser) Name() string {
	return "go-test"
}

// Parse reads Go test output with lines like:
//
//	=== RUN   TestFoo
//	    foo_test.go:15: expected 1, got 2
//	--- FAIL: TestFoo (0.01s)
//	--- PASS: TestBar (1.25s)
//	--- SKIP: TestBaz (0.00s)
func (p *GoParser) Parse(r io.Reader) (Result, error) {
	res := newResult()
	var pending []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()

		m := goResultRegex.FindStringSubmatch(line)
		if m == nil {
			if isTestBoundary(line) {
				pending = pending[:0]
			} else {
				pending = append(pending, line)
			}
			continue
		}

		elapsed, err := parseSeconds(m[3])
		if err != nil {
			return Result{}, errors.Validationf("test %q: invalid elapsed time %q", m[2], m[3])
		}
		if err := res.record(m[2], m[1], elapsed, pending); err != nil {
			return Result{}, err
		}
		pending = pending[:0]
	}
	if err := scanner.Err(); err != nil {
		return Result{}, errors.Wrap(err, "failed to read go test output")
	}
	return res, nil
}

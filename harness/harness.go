package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type Harness struct {
	opts Options

	depth    int
	failures int

	beforeEach func()
	afterEach  func()
}

func New(opts ...Option) *Harness {
	h := &Harness{opts: Options{Writer: os.Stdout, Indent: DefaultIndent}}
	for _, o := range opts {
		o(&h.opts)
	}
	if h.opts.Writer == nil {
		h.opts.Writer = os.Stdout
	}
	return h
}

// Failures returns the number of failures reported so far.
func (h *Harness) Failures() int { return h.failures }

// BeforeEach sets a function run before every subsequent Test. nil clears it.
func (h *Harness) BeforeEach(fn func()) { h.beforeEach = fn }

// AfterEach sets a function run after every subsequent Test, pass or fail.
// nil clears it.
func (h *Harness) AfterEach(fn func()) { h.afterEach = fn }

func (h *Harness) pad(depth int) string {
	return strings.Repeat(" ", depth*h.opts.Indent)
}

func (h *Harness) println(depth int, line string) {
	fmt.Fprintf(h.opts.Writer, "%s%s\n", h.pad(depth), line)
}

// Describe prints header and runs body one level deeper.
func (h *Harness) Describe(header string, body func()) {
	h.println(h.depth, "DESCRIBE: "+header)
	h.depth++
	defer func() { h.depth-- }()
	body()
}

// Test runs body as one test case between the BeforeEach and AfterEach
// functions. PASS is printed if body reported no failure.
func (h *Harness) Test(header string, body func()) {
	if h.beforeEach != nil {
		h.beforeEach()
	}
	before := h.failures

	h.println(h.depth, "TEST: "+header)
	if h.opts.Log != nil {
		h.opts.Log.Debugf("TEST: %s", header)
	}
	h.run(body)

	if h.failures == before {
		h.Log("PASS")
	}
	if h.afterEach != nil {
		h.afterEach()
	}
}

func (h *Harness) run(body func()) {
	defer func() {
		if r := recover(); r != nil {
			h.report(fmt.Sprintf("FAIL: panic: %v", r))
		}
	}()
	body()
}

// Todo records a placeholder test that always fails.
func (h *Harness) Todo(header string) {
	location := callerLocation(1)
	h.Test(header, func() { h.failAt(location, "TODO") })
}

// Log prints a line one level deeper than the current one.
func (h *Harness) Log(format string, args ...any) {
	h.println(h.depth+1, fmt.Sprintf(format, args...))
}

// Pad returns the indentation Log uses, for callers composing their own
// lines.
func (h *Harness) Pad() string { return h.pad(h.depth + 1) }

// Fail reports a failure of the current test, tagged with the caller's file
// and line.
func (h *Harness) Fail(format string, args ...any) {
	h.fail(2, format, args...)
}

// Expect fails the current test with a default message if cond is false. It
// returns cond.
func (h *Harness) Expect(cond bool) bool {
	if !cond {
		h.fail(2, "Expectation failed")
	}
	return cond
}

// Expectf fails the current test with the given message if cond is false. It
// returns cond.
func (h *Harness) Expectf(cond bool, format string, args ...any) bool {
	if !cond {
		h.fail(2, format, args...)
	}
	return cond
}

// fail reports a failure located skip frames above itself.
func (h *Harness) fail(skip int, format string, args ...any) {
	h.failAt(callerLocation(skip), format, args...)
}

func (h *Harness) failAt(location string, format string, args ...any) {
	h.report(fmt.Sprintf("FAIL: %s: %s", location, fmt.Sprintf(format, args...)))
}

// callerLocation returns "file:line" for the frame skip levels above its
// caller.
func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func (h *Harness) report(line string) {
	h.failures++
	h.Log("%s", line)
	if h.opts.Log != nil {
		h.opts.Log.Infof("%s", line)
	}
}

// Summary prints the closing line and returns the exit code: 0 if nothing
// failed, 1 otherwise.
func (h *Harness) Summary() int {
	fmt.Fprintln(h.opts.Writer)
	if h.failures == 0 {
		fmt.Fprintln(h.opts.Writer, "All tests passed.")
		return 0
	}
	fmt.Fprintf(h.opts.Writer, "Failed with %d test failures.\n", h.failures)
	return 1
}

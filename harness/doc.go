package harness

/*

# Indenting test reporter

Harness runs nested Describe/Test blocks and prints an indented plain text
report with pass/fail counting. It is used by the selfcheck suites, which
run outside `go test`, for example:

	DESCRIBE: Sequence.Push
	  TEST: Pushing a single element
	    PASS
	  TEST: Pushing many
	    FAIL: suites.go:42: length 2, want 3

	Failed with 1 test failures.

Describe indents its body by one level. Log, PASS and FAIL lines are written
one level deeper than the current one. Summary returns the process exit
code.

A failing test does not stop; every expectation in its body is evaluated and
each failure is reported. A panic inside a Test body is recovered and
counted as one failure.

*/

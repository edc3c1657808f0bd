package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mohnkhan/check-riak/pkg/check"
	"github.com/mohnkhan/check-riak/pkg/output"
)

// checkError carries a non-OK status out of a cobra RunE so main can
// map it to the plugin exit code. The result is already printed when
// this error is returned.
type checkError struct {
	status check.Status
}

func (e *checkError) Error() string {
	return strings.ToLower(string(e.status))
}

// runCheck executes a check, prints the result, and returns a
// checkError when the status is not OK.
func runCheck(c check.Checker) error {
	result := c.Run()
	output.PrintResult(result)

	if !result.OK() {
		return &checkError{status: result.Status}
	}
	return nil
}

// checkBuilders maps check names to constructors reading the current
// flag values. Used by the all and run subcommands.
var checkBuilders = map[string]func() (check.Checker, error){}

func registerCheck(name string, build func() (check.Checker, error)) {
	checkBuilders[name] = build
}

func buildCheck(name string) (check.Checker, error) {
	build, ok := checkBuilders[name]
	if !ok {
		return nil, fmt.Errorf("unknown check %q (known: %s)", name, strings.Join(knownChecks(), ", "))
	}
	return build()
}

func knownChecks() []string {
	names := make([]string, 0, len(checkBuilders))
	for name := range checkBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// runSequence executes checks in order, printing each result. Failures
// never stop the sequence; the worst status decides the exit code.
func runSequence(names []string) error {
	var results []check.Result
	for _, name := range names {
		c, err := buildCheck(name)
		if err != nil {
			return err
		}
		r := c.Run()
		output.PrintResult(r)
		results = append(results, r)
	}

	if worst := check.Worst(results); worst != check.StatusOK {
		return &checkError{status: worst}
	}
	return nil
}

package main

//go:generate go build -o=../../bin/statictest

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"golang.org/x/tools/go/analysis/passes/unusedwrite"
	"golang.org/x/tools/go/analysis/unitchecker"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

var excludedStyleChecks = map[string]struct{}{
	// Incorrect or missing package comment
	"ST1000": {},
	// The documentation of an exported function should start with the function's name
	"ST1020": {},
	// The documentation of an exported type should start with type's name
	"ST1021": {},
	// The documentation of an exported variable or constant should start with variable's name
	"ST1022": {},
}

var excludedStaticChecks = map[string]struct{}{
	// Field assignment that will never be observed
	"SA4005": {},
}

func main() {
	analyzers := vetAnalyzers()
	analyzers = append(analyzers, staticcheckAnalyzers()...)
	unitchecker.Main(analyzers...)
}

// vetAnalyzers returns go vet passes relevant for pure computation code
func vetAnalyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		// check for useless assignments
		assign.Analyzer,
		// check for common mistakes using the sync/atomic package
		atomic.Analyzer,
		// check for common mistakes involving boolean operators
		bools.Analyzer,
		// check that //go:build tags are well-formed and correctly located
		buildtag.Analyzer,
		// check for unkeyed composite literals
		composite.Analyzer,
		// check for locks erroneously passed by value
		copylock.Analyzer,
		// check that the second argument to errors.As is a pointer to a type implementing error
		errorsas.Analyzer,
		// check for impossible interface-to-interface type assertions
		ifaceassert.Analyzer,
		// check cancel func returned by context.WithCancel is called
		lostcancel.Analyzer,
		// check for useless comparisons between functions and nil
		nilfunc.Analyzer,
		// report nil pointer dereferences and degenerate nil pointer comparisons
		nilness.Analyzer,
		// check consistency of Printf format strings and arguments
		printf.Analyzer,
		// check for shifts that equal or exceed the width of the integer
		shift.Analyzer,
		// check signature of methods of well-known interfaces
		stdmethods.Analyzer,
		// check for string(int) conversions
		stringintconv.Analyzer,
		// check that struct field tags conform to reflect.StructTag.Get
		structtag.Analyzer,
		// check for common mistaken usages of tests and examples
		tests.Analyzer,
		// check for unreachable code
		unreachable.Analyzer,
		// check for unused results of calls to some functions
		unusedresult.Analyzer,
		// check for unused writes
		unusedwrite.Analyzer,
	}
}

// staticcheckAnalyzers returns simple, staticcheck and stylecheck passes minus exclusions
func staticcheckAnalyzers() []*analysis.Analyzer {
	var res []*analysis.Analyzer

	for _, v := range simple.Analyzers {
		res = append(res, v.Analyzer)
	}

	for _, v := range staticcheck.Analyzers {
		if _, ok := excludedStaticChecks[v.Analyzer.Name]; ok {
			continue
		}
		res = append(res, v.Analyzer)
	}

	for _, v := range stylecheck.Analyzers {
		if _, ok := excludedStyleChecks[v.Analyzer.Name]; ok {
			continue
		}
		res = append(res, v.Analyzer)
	}

	return res
}

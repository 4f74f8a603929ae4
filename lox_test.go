package lox_test

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/zephyrtronium/lox"
	"github.com/zephyrtronium/lox/testutils"
)

// TestGolden tests that the scripts in testdata produce exactly the output and
// error reports recorded alongside them. Each archive holds input.lox and
// optionally stdout and stderr; a missing file means no output is expected.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden files")
	}
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			parts := make(map[string]string, len(ar.Files))
			for _, f := range ar.Files {
				parts[f.Name] = string(f.Data)
			}
			src, ok := parts["input.lox"]
			if !ok {
				t.Fatalf("%s has no input.lox", file)
			}
			in, out, errs := testutils.TestingInterpreter()
			err = in.DoString(src)
			if (err != nil) != (parts["stderr"] != "") {
				t.Errorf("wrong error status: %v", err)
			}
			if out.String() != parts["stdout"] {
				t.Errorf("wrong output:\nwant %q\nhave %q", parts["stdout"], out.String())
			}
			if errs.String() != parts["stderr"] {
				t.Errorf("wrong errors:\nwant %q\nhave %q", parts["stderr"], errs.String())
			}
		})
	}
}

// TestPrograms tests short programs through the embedding API.
func TestPrograms(t *testing.T) {
	cases := map[string]testutils.SourceTestCase{
		"PrintNumber":    {Source: "print 1;", Pass: testutils.PassOutput("1\n")},
		"PrintString":    {Source: `print "hello";`, Pass: testutils.PassOutput("hello\n")},
		"PrintTrue":      {Source: "print true;", Pass: testutils.PassOutput("true\n")},
		"PrintNil":       {Source: "print nil;", Pass: testutils.PassOutput("nil\n")},
		"NestedGrouping": {Source: "print ((1));", Pass: testutils.PassOutput("1\n")},
		"Undefined": {
			Source: "print 1; print x;",
			Pass:   testutils.PassRuntimeError("1\n", "Undefined variable 'x'."),
		},
		"MixedAdd": {
			Source: `print "a" + 1;`,
			Pass:   testutils.PassRuntimeError("", ""),
		},
		"Syntax": {
			Source: "print 1; print",
			Pass:   testutils.PassSyntaxError("[line 1] Error at end : Expect expression."),
		},
		"ReservedWord": {
			Source: "var class = 1;",
			Pass:   testutils.PassSyntaxError("[line 1] Error at 'class' : Expect variable name."),
		},
		"AnyFailure": {Source: "-nil;", Pass: testutils.PassFailure()},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}

// TestDisplay tests the parenthesized display form of parsed expressions.
func TestDisplay(t *testing.T) {
	cases := map[string]string{
		"-456":             "(- 456)",
		"(456 * 789)":      "(group (* 456 789))",
		"-123 * (45.67)":   "(* (- 123) (group 45.67))",
		`"s" == nil`:       `(== "s" nil)`,
		"a = !b or c":      "(= a (or (! b) c))",
		"1 <= 2 and false": "(and (<= 1 2) false)",
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			toks, err := lox.Scan(src, nil)
			if err != nil {
				t.Fatal(err)
			}
			e, err := lox.ParseExpr(toks, nil)
			if err != nil {
				t.Fatal(err)
			}
			if got := e.String(); got != want {
				t.Errorf("wrong display: want %s, have %s", want, got)
			}
		})
	}
}

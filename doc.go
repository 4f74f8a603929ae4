/*
Package lox implements an interpreter for a small, dynamically typed scripting
language in the Lox family.

Programs are scanned into tokens, parsed by a recursive-descent parser into a
syntax tree, and executed directly by walking that tree. There is no bytecode
and no separate resolution pass. Functions, classes, and the rest of the
object system are not implemented; their keywords are reserved.

The interpreter can easily be embedded in another program. Use NewInterpreter
to create one with an output writer for print statements and a writer for
error reports, then pass source code to its DoString, DoReader, or DoFile
methods. Variables defined by one call remain visible to later calls, which is
how the read-eval-print loop in cmd/lox works.

Lox Primer

Hello World in Lox:

	print "Hello, world!";

There are four kinds of values: nil, booleans, numbers, and strings. Numbers
are double-precision floating point; division by zero gives an infinity or NaN
rather than an error. Only nil and false are falsy.

Variables are declared with var. A declaration without an initializer makes
the variable nil. Assigning to a variable that was never declared is an error.

	var greeting = "hi";
	var nothing;
	greeting = greeting + " there";

Blocks create scopes. A variable declared in a block shadows variables with
the same name in enclosing scopes until the block ends.

	var a = "outer";
	{
		var a = "inner";
		print a; // inner
	}
	print a; // outer

Control flow uses if, while, and for, with C-like syntax. A for loop is
shorthand for a while loop in its own block.

	for (var i = 0; i < 3; i = i + 1) {
		if (i == 1) print "one"; else print i;
	}

The logical operators and and or short-circuit and produce whichever operand
decided the result, so or gives a handy default:

	print nil or "default"; // default

Operators, from least to most tightly binding, are assignment (=), or, and,
equality (== !=), comparison (< <= > >=), addition (+ -), multiplication
(* /), and the prefix operators ! and -. The + operator adds numbers or
concatenates strings; mixing the two is an error. Any two values may be
compared with == and !=.
*/
package lox

// Version is the interpreter version.
const Version = "1"

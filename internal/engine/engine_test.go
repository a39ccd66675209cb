package engine

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/struct/frame"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
	"github.com/michaelmacinnis/lispy/internal/engine/commands"
	"github.com/michaelmacinnis/lispy/internal/engine/eval"
	"github.com/michaelmacinnis/lispy/internal/reader"
)

func result(t *testing.T, code string) entity.I {
	t.Helper()

	v, _ := run(t, code, nil)

	return v
}

func run(t *testing.T, code string, r *env.T) (entity.I, *env.T) {
	t.Helper()

	v, r, err := CompileAndRun(t.Name(), code, r)
	if err != nil {
		t.Fatalf("running %q: %v", code, err)
	}

	return v, r
}

func parse(t *testing.T, code string) entity.I {
	t.Helper()

	es, err := reader.Compile(t.Name(), code)
	if err != nil || len(es) != 1 {
		t.Fatalf("parsing %q: %v %v", code, es, err)
	}

	return es[0]
}

func check(t *testing.T, code, expected string) {
	t.Helper()

	actual := result(t, code)

	e := parse(t, expected)
	if !e.Equal(actual) {
		t.Fatalf("%s: expected %s, got %s", code, e, actual)
	}
}

func TestArithmetic(t *testing.T) {
	check(t, `
		(define x (+ 31 10 1))   # x = 31 + 10 + 1 = 42
		(define y (* x 2 5))     # y = 42 * 10 = 420
		(define z (- y (+ x 4))) # z = 420 - 46 = 374
		(define w (+ z -372))    # w = 2
		(define h (neg (** w 5))) # h = -(2**5) = -32
		h
	`, "-32")

	for code, expected := range map[string]string{
		"(/ 7 2)":     "3",
		"(/ -7 2)":    "-4",
		"(% -7 2)":    "1",
		"(% 7 -2)":    "-1",
		"(- 5)":       "-5",
		"(+)":         "0",
		"(*)":         "1",
		"(** 2 100)":  "1267650600228229401496703205376",
		"(< 1 2 3)":   ":True",
		"(< 1 3 2)":   ":False",
		"(> 3 2 1)":   ":True",
		"(= 1 1 1)":   ":True",
		`(= "a" "b")`: ":False",
	} {
		check(t, code, expected)
	}
}

func TestArithmeticErrors(t *testing.T) {
	for code, sentinel := range map[string]error{
		"(/ 1 0)":     commands.ErrDivisionByZero,
		"(% 1 0)":     commands.ErrDivisionByZero,
		"(** 2 -1)":   commands.ErrNegativeExponent,
		`(+ 1 "2")`:   validate.ErrTypeMismatch,
		"(neg 1 2)":   validate.ErrArityMismatch,
		"(undefined)": frame.ErrUnboundName,
		"(1 2)":       eval.ErrNotCallable,
	} {
		_, _, err := CompileAndRun(t.Name(), code, nil)
		if !errors.Is(err, sentinel) {
			t.Fatalf("%s: expected %v, got %v", code, sentinel, err)
		}
	}
}

func TestBool(t *testing.T) {
	v := result(t, `[(bool ""), (bool 0), (bool []), (bool :False), (bool :Nil)]`)

	if v.String() != "[:False :False :False :False :False]" {
		t.Fatalf("unexpected printed form %s", v)
	}

	check(t, `[(bool "x") (bool 1) (bool [0]) (bool :True) (bool :other)]`,
		"[:True :True :True :True :True]")
}

func TestCustomIdentityFunction(t *testing.T) {
	check(t, `
		(defun id [x] x)
		(id :hello!)
	`, ":hello!")
}

func TestFactorial(t *testing.T) {
	v := result(t, `
		(defun factorial [n]
			(loop [1 n]
				(fun [acc x]
					(if x
						[:next   (* acc x) (- x 1)]
						[:return acc]))))

		(factorial 10)
	`)

	if !v.Equal(integer.New(3628800)) {
		t.Fatalf("expected 3628800, got %s", v)
	}

	v = result(t, `
		(defun factorial [n]
			(if (< n 2) 1 (* n (factorial (- n 1)))))

		(factorial 30)
	`)

	expected, _ := (&big.Int{}).SetString("265252859812191058636308480000000", 10)
	if !v.Equal(integer.Big(expected)) {
		t.Fatalf("expected 30!, got %s", v)
	}
}

func TestIf(t *testing.T) {
	check(t, `
		[(if 1 :one :not-one)
		 (if 0 :zero :not-zero)]
	`, "[:one :not-zero]")

	check(t, "(if :False :never)", ":Nil")
	check(t, "(if :True 1 (undefined))", "1")
}

func TestLogical(t *testing.T) {
	check(t, "(and 1 2 3)", "3")
	check(t, "(and 1 0 (undefined))", "0")
	check(t, "(and)", ":True")
	check(t, `(or "" 0 :x (undefined))`, ":x")
	check(t, "(or)", ":False")
}

func TestPrelude(t *testing.T) {
	check(t, "(not 0)", ":True")
	check(t, "(not [1])", ":False")
	check(t, "(inc 41)", "42")
	check(t, "(dec 43)", "42")
	check(t, "((compose inc inc) 40)", "42")
	check(t, "(when (= 1 1) :yes)", ":yes")
	check(t, "(when (= 1 2) (undefined))", ":Nil")
}

func TestQuotingAndEval(t *testing.T) {
	check(t, "&(+ 1 2)", "&(+ 1 2)")
	check(t, "(eval &(+ 1 2))", "3")
	check(t, `
		(defsyntax twice [x] [(eval x) (eval x)])
		(twice (+ 1 1))
	`, "[2 2]")
	check(t, "((syntax [x] x) (+ 1 2))", "&(+ 1 2)")
}

func TestDataFunctions(t *testing.T) {
	check(t, "(len [1 2 3])", "3")
	check(t, `(len "héllo")`, "5")
	check(t, "(nth [:a :b :c] 1)", ":b")
	check(t, "(push [1] 2 3)", "[1 2 3]")
	check(t, "(type 1)", ":integer")
	check(t, `(type "s")`, ":string")
	check(t, "(type [])", ":vector")
	check(t, "(type &x)", ":quoted")
	check(t, "(type id)", ":function")
	check(t, "(map inc [1 2 3])", "[2 3 4]")
	check(t, `(join "a" "b" "c")`, `"abc"`)
	check(t, `(format "s")`, `"s"`)
	check(t, "(format [1 :a])", `"[1 :a]"`)

	_, _, err := CompileAndRun(t.Name(), "(nth [1] 1)", nil)
	if !errors.Is(err, commands.ErrIndexOutOfRange) {
		t.Fatalf("expected index out of range, got %v", err)
	}
}

func TestDefineNamesAnonymousFunctions(t *testing.T) {
	v := result(t, "(define f (fun [x] x)) f")
	if v.String() != "<fun(f)>" {
		t.Fatalf("expected <fun(f)>, got %s", v)
	}
}

func TestSigils(t *testing.T) {
	check(t, `
		(defun sigil<!> [s] (join "!!!" s "!!!"))
		~!"attention"
	`, `"!!!attention!!!"`)
}

func TestSigilPercent(t *testing.T) {
	check(t, `
		(import "$.sigils" :all)
		(~%"I am %, and I am % years old." "Alice" 42)
	`, `"I am Alice, and I am 42 years old."`)
}

func TestSigilF(t *testing.T) {
	check(t, `
		(import "$.sigils" :all)
		(~f"I am %(name), and I am %(age) years old."
			[:name "Alice", :age 42])
	`, `"I am Alice, and I am 42 years old."`)

	check(t, `
		(import "sigils" :all)
		(defun lookup [k] (if (= k :name) "Bob" 7))
		(~f"%(name) is %(age)" lookup)
	`, `"Bob is 7"`)
}

func TestRef(t *testing.T) {
	v, r := run(t, `
		(define ref (interop "ref"))
		(define var ((ref :make) 0))
		((ref :get!) var)
	`, nil)

	if !v.Equal(integer.New(0)) {
		t.Fatalf("expected 0, got %s", v)
	}

	v, r = run(t, `
		((ref :set!) var 1)
		((ref :get!) var)
	`, r)

	if !v.Equal(integer.New(1)) {
		t.Fatalf("expected 1, got %s", v)
	}

	v, _ = run(t, `((ref :change!) var inc) var`, r)
	if v.String() != "(ref 2)" {
		t.Fatalf("expected (ref 2), got %s", v)
	}
}

func TestSelfReferencePrints(t *testing.T) {
	v := result(t, `
		(import "ref" :make :set!)
		(define cell (make 0))
		(set! cell [1 cell])
		cell
	`)

	if v.String() != "(ref [1 (ref ...)])" {
		t.Fatalf("unexpected printed form %s", v)
	}
}

func TestSharedReferencePrints(t *testing.T) {
	v := result(t, `
		(import "ref" :all)
		(define a (make 1))
		(define b (make [a a]))
		b
	`)

	if v.String() != "(ref [(ref 1) (ref 1)])" {
		t.Fatalf("unexpected printed form %s", v)
	}
}

func TestFunctools(t *testing.T) {
	_, r := run(t, `(import "functools" :all)`, nil)

	for code, expected := range map[string]string{
		"(+> 1 (+> 2 emp))":             "(+> 1 (+> 2 emp))",
		"(lmap inc (+> 1 (+> 2 emp)))":  "(+> 2 (+> 3 emp))",
		"(lhead (+> 1 emp))":            "1",
		"(lrest (+> 1 emp))":            "emp",
		"(lhead emp)":                   ":Nil",
		"[(emp? emp) (emp? (+> 1 emp))]": "[:True :False]",
		"(map neg [1 2])":               "[-1 -2]",
	} {
		v, _ := run(t, code, r)
		if v.String() != expected {
			t.Fatalf("%s: expected %s, got %s", code, expected, v)
		}
	}

	var b bytes.Buffer

	r.SetOutput(&b)
	run(t, "(lforeach print! (+> 1 (+> 2 emp)))", r)

	if b.String() != "1\n2\n" {
		t.Fatalf("unexpected output %q", b.String())
	}

	_, _, err := CompileAndRun(t.Name(), "(+> 1 [])", r)
	if err == nil {
		t.Fatal("expected an error consing onto a vector")
	}
}

func TestUnknownModule(t *testing.T) {
	_, _, err := CompileAndRun(t.Name(), `(import "nope" :all)`, nil)
	if err == nil {
		t.Fatal("expected an error for an unknown module")
	}
}

func TestRuntimeReuse(t *testing.T) {
	_, r := run(t, "(define counter 1)", nil)

	v, r := run(t, "(define counter (+ counter 1)) counter", r)
	if !v.Equal(integer.New(2)) {
		t.Fatalf("expected 2, got %s", v)
	}

	_, other := run(t, "(define counter 100)", nil)

	v, _ = run(t, "counter", r)
	if !v.Equal(integer.New(2)) {
		t.Fatalf("runtimes are not independent: %s", v)
	}

	if other == r {
		t.Fatal("expected a new runtime")
	}
}

func TestPrint(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer

	r.SetOutput(&b)

	v, _ := run(t, `(print! "hi") (print! [1 :a])`, r)
	if v != atom.Nil {
		t.Fatalf("expected :Nil, got %s", v)
	}

	if b.String() != "\"hi\"\n[1 :a]\n" {
		t.Fatalf("unexpected output %q", b.String())
	}
}

func TestQuit(t *testing.T) {
	_, _, err := CompileAndRun(t.Name(), "(quit!)", nil)
	if !errors.Is(err, commands.ErrQuit) {
		t.Fatalf("expected quit, got %v", err)
	}
}

func TestEmptyProgram(t *testing.T) {
	v := result(t, "# nothing but a comment\n")
	if v != atom.Nil {
		t.Fatalf("expected :Nil, got %s", v)
	}
}

func TestErrorLeavesRuntimeUsable(t *testing.T) {
	_, r := run(t, "(defun boom [x] (undefined x))", nil)

	if _, _, err := CompileAndRun(t.Name(), "(boom 1)", r); err == nil {
		t.Fatal("expected an error")
	}

	if r.Depth() != 0 {
		t.Fatalf("frames leaked: %d", r.Depth())
	}

	v, _ := run(t, "(id 1)", r)
	if !v.Equal(integer.New(1)) {
		t.Fatalf("expected 1, got %s", v)
	}
}

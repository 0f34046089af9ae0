package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/adamite/eval"
	"github.com/akashmaji946/adamite/parser"
)

// run parses and evaluates src against a fresh Evaluator, returning
// whatever was written through Puts.
func run(t *testing.T, src string) (string, *eval.RuntimeError) {
	t.Helper()
	p := parser.New(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "unexpected syntax errors: %v", p.Errors)

	var out bytes.Buffer
	e := eval.New()
	e.SetWriter(&out)
	_, rerr := e.Run(prog)
	return out.String(), rerr
}

func TestEval_Arithmetic(t *testing.T) {
	out, rerr := run(t, `
		int x = 2 + 3 * 4;
		puts x;
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "14\n", out)
}

func TestEval_IfElse(t *testing.T) {
	out, rerr := run(t, `
		int x = 5;
		if (x == 5)
			puts 1;
		else
			puts 0;
		end
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "1\n", out)
}

func TestEval_WhileLoop(t *testing.T) {
	out, rerr := run(t, `
		int i = 0;
		int sum = 0;
		while (i < 5)
			sum = sum + i;
			i = i + 1;
		end
		puts sum;
	`)
	// '<' is always Illegal Operation in this language, even in a while
	// condition, so this program is expected to fail at runtime.
	require.NotNil(t, rerr)
	assert.Contains(t, rerr.Error(), "Illegal Operation")
	assert.Equal(t, "", out)
}

func TestEval_ForLoop(t *testing.T) {
	// end is exclusive: "for i = 1 to 5" runs i across 1, 2, 3, 4 only.
	out, rerr := run(t, `
		int total = 0;
		for i = 1 to 5
			total = total + i;
		end
		puts total;
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "10\n", out)
}

func TestEval_FunctionCallAndReturn(t *testing.T) {
	out, rerr := run(t, `
		fn add(a: int, b: int) -> int
			return a + b;
		end
		puts add(3, 4);
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "7\n", out)
}

func TestEval_FunctionReentranceCorruptsOuterBinding(t *testing.T) {
	// There is deliberately no per-call scope: a function's parameter
	// binding lives in the same flat table as every global, so calling
	// identity overwrites the global a, and a second call overwrites the
	// first call's parameter value. This documents that behavior rather
	// than hiding it.
	out, rerr := run(t, `
		int a = 100;
		fn identity(a: int) -> int
			return a;
		end
		int first = identity(1);
		int second = identity(2);
		puts a;
		puts second;
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "2\n2\n", out)
}

func TestEval_ArrayIndexing(t *testing.T) {
	out, rerr := run(t, `
		int[3] nums = [10, 20, 30];
		nums[1] = 99;
		puts nums[0];
		puts nums[1];
		puts nums[2];
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "10\n99\n30\n", out)
}

func TestEval_ArrayLitDefaultInitForm(t *testing.T) {
	out, rerr := run(t, `
		int[4] a = {int, 4};
		a[0] = 7;
		puts a[0];
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "7\n", out)
}

func TestEval_ArrayIndexOutOfRange(t *testing.T) {
	_, rerr := run(t, `
		int[2] nums = [1, 2];
		puts nums[5];
	`)
	require.NotNil(t, rerr)
	assert.Contains(t, rerr.Error(), "Index greater than limit of array")
}

func TestEval_StructFieldAccess(t *testing.T) {
	out, rerr := run(t, `
		struct Point
			x: int, y: int
		end
		inst p = Point();
		p["x"] = 3;
		p["y"] = 4;
		puts p["x"];
		puts p["y"];
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "3\n4\n", out)
}

func TestEval_PointerAddressAndDeref(t *testing.T) {
	out, rerr := run(t, `
		int x = 42;
		int addr = -> x;
		puts $ addr;
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "42\n", out)
}

func TestEval_NewReturnsHandleThatDerefsBack(t *testing.T) {
	out, rerr := run(t, `
		int addr = new int;
		puts $ addr;
		int arrAddr = new int[3];
		puts $ arrAddr;
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "0\n\n", out)
}

func TestEval_DerefOfNonPointerIsIllegal(t *testing.T) {
	_, rerr := run(t, `
		int x = 1;
		puts $ x;
	`)
	require.NotNil(t, rerr)
	assert.Contains(t, rerr.Error(), "Pointers can only exist as integers")
}

func TestEval_Stdin(t *testing.T) {
	p := parser.New(`
		str name = stdin;
		puts name;
	`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	var out bytes.Buffer
	e := eval.New()
	e.SetWriter(&out)
	e.SetReader(strings.NewReader("hello world\n"))
	_, rerr := e.Run(prog)
	require.Nil(t, rerr)
	assert.Equal(t, "hello world\n", out.String())
}

func TestEval_VariableNotDefined(t *testing.T) {
	_, rerr := run(t, `puts missing;`)
	require.NotNil(t, rerr)
	assert.Contains(t, rerr.Error(), "Variable not defined")
}

func TestEval_StringTruthinessIsInverted(t *testing.T) {
	// An empty string is truthy and a non-empty string is falsy in this
	// language's IsTrue rule, the reverse of the usual convention.
	out, rerr := run(t, `
		str empty = "";
		if (empty)
			puts 1;
		else
			puts 0;
		end
	`)
	require.Nil(t, rerr)
	assert.Equal(t, "1\n", out)
}

func TestEval_WrongArgumentCount(t *testing.T) {
	_, rerr := run(t, `
		fn add(a: int, b: int) -> int
			return a + b;
		end
		puts add(1);
	`)
	require.NotNil(t, rerr)
	assert.Contains(t, rerr.Error(), "Invalid number of arguments passed")
}

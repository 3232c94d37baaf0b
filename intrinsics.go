package eel

// intrinsic describes one entry in the fixed, built-in function table:
// its case-insensitive name, its evaluator, an arity (0-3), and the two
// flags that drive constant folding and dead-store elimination.
type intrinsic struct {
	name          string
	eval          evalFunc
	arity         int
	pure          bool // eligible for compile-time constant folding
	stateChanging bool // writes a variable or memory slot
}

// intrinsicTable is the fixed function table. Aliases (if/_if,
// equal/_equal, and so on) share their evaluator, exactly like the
// original ns-eel2/projectm-eval table: this is data, not code.
var intrinsicTable = []intrinsic{
	// Private pseudo-functions, usable only by the tree builder.
	{"<const>", evalConst, 0, true, false},
	{"<var>", evalVar, 0, false, false},
	{"<list>", evalList, 1, true, false},

	// Control flow.
	{"if", evalIf, 3, true, false},
	{"_if", evalIf, 3, true, false},
	{"exec2", evalExec2, 2, true, false},
	{"exec3", evalExec3, 3, true, false},
	{"loop", evalLoop, 2, true, false},
	{"while", evalWhile, 1, true, false},

	// Assignment.
	{"=", evalAssign, 2, false, true},
	{"_set", evalAssign, 2, false, true},
	{"assign", evalAssign, 2, false, true},
	{"+=", evalAddAssign, 2, false, true},
	{"_addop", evalAddAssign, 2, false, true},
	{"-=", evalSubAssign, 2, false, true},
	{"_subop", evalSubAssign, 2, false, true},
	{"*=", evalMulAssign, 2, false, true},
	{"_mulop", evalMulAssign, 2, false, true},
	{"/=", evalDivAssign, 2, false, true},
	{"_divop", evalDivAssign, 2, false, true},
	{"%=", evalModAssign, 2, false, true},
	{"_modop", evalModAssign, 2, false, true},
	{"|=", evalOrAssign, 2, false, true},
	{"_orop", evalOrAssign, 2, false, true},
	{"&=", evalAndAssign, 2, false, true},
	{"_andop", evalAndAssign, 2, false, true},
	{"^=", evalPowAssign, 2, false, true},
	{"_powop", evalPowAssign, 2, false, true},

	// Arithmetic by value.
	{"+", evalAdd, 2, true, false},
	{"_add", evalAdd, 2, true, false},
	{"-", evalSub, 2, true, false},
	{"_sub", evalSub, 2, true, false},
	{"*", evalMul, 2, true, false},
	{"_mul", evalMul, 2, true, false},
	{"/", evalDiv, 2, true, false},
	{"_div", evalDiv, 2, true, false},
	{"%", evalMod, 2, true, false},
	{"_mod", evalMod, 2, true, false},
	{"_neg", evalNeg, 1, true, false},
	{"^", evalPow, 2, true, false},
	{"pow", evalPow, 2, true, false},

	// Comparisons by value.
	{"==", evalEqual, 2, true, false},
	{"_equal", evalEqual, 2, true, false},
	{"equal", evalEqual, 2, true, false},
	{"!=", evalNotEqual, 2, true, false},
	{"_noteq", evalNotEqual, 2, true, false},
	{"<", evalBelow, 2, true, false},
	{"_below", evalBelow, 2, true, false},
	{"below", evalBelow, 2, true, false},
	{">", evalAbove, 2, true, false},
	{"_above", evalAbove, 2, true, false},
	{"above", evalAbove, 2, true, false},
	{"<=", evalBelowEq, 2, true, false},
	{"_beleq", evalBelowEq, 2, true, false},
	{">=", evalAboveEq, 2, true, false},
	{"_aboeq", evalAboveEq, 2, true, false},

	// Logical.
	{"!", evalNot, 1, true, false},
	{"_not", evalNot, 1, true, false},
	{"bnot", evalNot, 1, true, false},
	{"&&", evalAndOp, 2, true, false},
	{"_and", evalAndOp, 2, true, false},
	{"||", evalOrOp, 2, true, false},
	{"_or", evalOrOp, 2, true, false},
	{"band", evalBandFunc, 2, true, false},
	{"bor", evalBorFunc, 2, true, false},

	// Bitwise.
	{"|", evalBitOr, 2, true, false},
	{"&", evalBitAnd, 2, true, false},

	// Math-library wrappers.
	{"sin", mathFunc1(mathSin), 1, true, false},
	{"cos", mathFunc1(mathCos), 1, true, false},
	{"tan", mathFunc1(mathTan), 1, true, false},
	{"asin", mathFunc1(mathAsin), 1, true, false},
	{"acos", mathFunc1(mathAcos), 1, true, false},
	{"atan", mathFunc1(mathAtan), 1, true, false},
	{"atan2", mathFunc2(mathAtan2), 2, true, false},
	{"sqrt", mathFunc1(mathSqrt), 1, true, false},
	{"log", mathFunc1(mathLog), 1, true, false},
	{"log10", mathFunc1(mathLog10), 1, true, false},
	{"exp", mathFunc1(mathExp), 1, true, false},
	{"floor", mathFunc1(mathFloor), 1, true, false},
	{"int", mathFunc1(mathFloor), 1, true, false},
	{"ceil", mathFunc1(mathCeil), 1, true, false},
	{"abs", mathFunc1(mathAbs), 1, true, false},

	// Other math.
	{"sqr", evalSqr, 1, true, false},
	{"sign", evalSign, 1, true, false},
	{"invsqrt", evalInvSqrt, 1, true, false},
	{"sigmoid", evalSigmoid, 2, true, false},
	{"min", evalMin, 2, true, false},
	{"max", evalMax, 2, true, false},
	{"rand", evalRand, 1, false, false},

	// Memory access.
	{"megabuf", evalMem, 1, false, true},
	{"_mem", evalMem, 1, false, true},
	{"gmegabuf", evalMem, 1, false, true},
	{"_gmem", evalMem, 1, false, true},
	{"freembuf", evalFreeMBuf, 1, false, true},
	{"memcpy", evalMemcpy, 3, false, true},
	{"memset", evalMemset, 3, false, true},
}

// lookupIntrinsic finds an intrinsic by case-insensitive name.
func lookupIntrinsic(name string) (*intrinsic, bool) {
	lname := foldName(name)
	for i := range intrinsicTable {
		if intrinsicTable[i].name == lname {
			return &intrinsicTable[i], true
		}
	}
	return nil, false
}

package eel

import "math"

// divide implements / with the Milkdrop-compatible rule that division
// by zero returns 0 instead of Inf/NaN.
func divide(a, b F) F {
	if b == 0 {
		return 0
	}
	return a / b
}

// modulo truncates both operands to machine ints and returns the
// integer remainder; modulo by zero returns 0. Truncates rather than
// rounds, unlike | and &.
func modulo(a, b F) F {
	divisor := truncToInt(b)
	if divisor == 0 {
		return 0
	}
	return F(truncToInt(a) % divisor)
}

// power is pow(a,b), except pow(0, negative) returns 0 instead of Inf.
func power(a, b F) F {
	if a == 0 && b < 0 {
		return 0
	}
	return F(math.Pow(float64(a), float64(b)))
}

func binaryByValue(op func(a, b F) F) evalFunc {
	return func(n *Node, result *F) *F {
		var a, b F
		ar := n.args[0].Eval(&a)
		br := n.args[1].Eval(&b)
		*result = op(*ar, *br)
		return result
	}
}

var (
	evalAdd = binaryByValue(func(a, b F) F { return a + b })
	evalSub = binaryByValue(func(a, b F) F { return a - b })
	evalMul = binaryByValue(func(a, b F) F { return a * b })
	evalDiv = binaryByValue(divide)
	evalMod = binaryByValue(modulo)
	evalPow = binaryByValue(power)
)

// evalNeg negates its single argument.
func evalNeg(n *Node, result *F) *F {
	n.value = 0
	arg := n.args[0].Eval(&n.value)
	*result = -(*arg)
	return result
}

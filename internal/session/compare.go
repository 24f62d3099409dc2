package session

import (
	"strings"

	"github.com/splatforge/go-playtest/internal/game"
)

// compare evaluates a conditional/custom comparison between a variable's
// current value and a target. Values come from JSON, so numbers arrive as
// float64; ints from programmatic mutation are coerced the same way. An
// unknown operator or incomparable pair is simply false — the runtime never
// errors over authored data.
func compare(current any, op game.CompareOp, target any) bool {
	switch op {
	case game.CompareEquals:
		if cn, tn, ok := bothNumbers(current, target); ok {
			return cn == tn
		}
		return scalarEquals(current, target)
	case game.CompareGreater:
		cn, tn, ok := bothNumbers(current, target)
		return ok && cn > tn
	case game.CompareLess:
		cn, tn, ok := bothNumbers(current, target)
		return ok && cn < tn
	case game.CompareContains:
		cs, cok := current.(string)
		ts, tok := target.(string)
		return cok && tok && strings.Contains(cs, ts)
	default:
		return false
	}
}

// scalarEquals handles the non-numeric arms of equals. Variables hold
// strings, numbers, and bools; anything else that came in through JSON
// (arrays, objects) is never equal to anything. Comparing such interface
// values with == would panic on uncomparable dynamic types.
func scalarEquals(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		return false
	}
}

func bothNumbers(a, b any) (float64, float64, bool) {
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	return an, bn, aok && bok
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

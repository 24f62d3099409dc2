package session

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/splatforge/go-playtest/internal/game"
)

func TestCompare(t *testing.T) {
	tests := map[string]struct {
		current any
		op      game.CompareOp
		target  any
		exp     bool
	}{
		"equal numbers":          {float64(3), game.CompareEquals, float64(3), true},
		"unequal numbers":        {float64(3), game.CompareEquals, float64(4), false},
		"int vs float64":         {3, game.CompareEquals, float64(3), true},
		"int64 vs int":           {int64(7), game.CompareEquals, 7, true},
		"equal strings":          {"open", game.CompareEquals, "open", true},
		"unequal strings":        {"open", game.CompareEquals, "closed", false},
		"equal bools":            {true, game.CompareEquals, true, true},
		"greater":                {float64(5), game.CompareGreater, float64(3), true},
		"not greater":            {float64(3), game.CompareGreater, float64(5), false},
		"greater needs numbers":  {"five", game.CompareGreater, float64(3), false},
		"less":                   {float64(1), game.CompareLess, float64(2), true},
		"not less":               {float64(2), game.CompareLess, float64(1), false},
		"contains":               {"brass key", game.CompareContains, "key", true},
		"does not contain":       {"brass key", game.CompareContains, "coin", false},
		"contains needs strings": {42, game.CompareContains, "4", false},
		"arrays never equal":     {[]any{1.0, 2.0}, game.CompareEquals, []any{1.0, 2.0}, false},
		"array vs string":        {[]any{"a"}, game.CompareEquals, "a", false},
		"objects never equal":    {map[string]any{"n": 1.0}, game.CompareEquals, map[string]any{"n": 1.0}, false},
		"unset variable equals":  {nil, game.CompareEquals, float64(0), false},
		"unset variable greater": {nil, game.CompareGreater, float64(0), false},
		"unknown operator":       {float64(1), game.CompareOp("between"), float64(1), false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "result", compare(tt.current, tt.op, tt.target), tt.exp)
		})
	}
}

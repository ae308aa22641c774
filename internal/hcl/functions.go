package hcl

import (
	"errors"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// repeatFunc returns its string argument repeated count times. It keeps
// long pen command strings readable, e.g. repeat("d", 40).
var repeatFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "str", Type: cty.String},
		{Name: "count", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		var count int
		if err := gocty.FromCtyValue(args[1], &count); err != nil {
			return cty.UnknownVal(cty.String), function.NewArgError(1, err)
		}
		if count < 0 {
			return cty.UnknownVal(cty.String), function.NewArgError(1, errors.New("count must not be negative"))
		}
		return cty.StringVal(strings.Repeat(args[0].AsString(), count)), nil
	},
})

// newEvalContext returns the context scenario attributes are evaluated in.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"repeat":    repeatFunc,
			"join":      stdlib.JoinFunc,
			"format":    stdlib.FormatFunc,
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"chomp":     stdlib.ChompFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"replace":   stdlib.ReplaceFunc,
		},
	}
}

// Package filter provides expression-based, client-side filtering of NDB
// search results.
//
// Filters are written in the expr language and evaluated against one food
// at a time. The environment exposes the food's fields as lowercase
// variables plus a few string helpers:
//
//	contains(group, "dairy")
//	hasPrefix(ndbno, "01") and source == "SR"
//	lower(name) == "butter, salted"
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/LordUttam/go-usda/usda"
)

// Filter is a compiled filter expression over food search results.
type Filter struct {
	expression string
	program    *vm.Program
}

// helperFunctions returns the static helper functions available during
// compilation and evaluation. String helpers are case-insensitive.
func helperFunctions() map[string]any {
	return map[string]any{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefix": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffix": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// Compile compiles an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // Allow food properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}

// environment builds the evaluation environment for one food.
func environment(item usda.FoodItem) map[string]any {
	env := helperFunctions()
	env["name"] = item.Name
	env["ndbno"] = item.NDBNo
	env["group"] = item.Group
	env["source"] = item.DataSource
	env["manufacturer"] = item.Manufacturer
	env["offset"] = item.Offset
	return env
}

// Match evaluates the filter against one food.
func (f *Filter) Match(item usda.FoodItem) (bool, error) {
	out, err := expr.Run(f.program, environment(item))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			FoodName:   item.Name,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	matched, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			FoodName:   item.Name,
			Reason:     "expression did not produce a boolean",
		}
	}
	return matched, nil
}

// Apply returns the foods matching the filter, preserving order.
func (f *Filter) Apply(items []usda.FoodItem) ([]usda.FoodItem, error) {
	var matched []usda.FoodItem
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

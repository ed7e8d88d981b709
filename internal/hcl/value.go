package hcl

import (
	"errors"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

var errNotPrimitive = errors.New("value is not a string, number or bool")

// attributeString evaluates a static expression and converts the result to
// a string. The second return value is false for null values.
func attributeString(expr hclsyntax.Expression) (string, bool, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", false, diags
	}
	if val.IsNull() {
		return "", false, nil
	}
	if !val.IsWhollyKnown() || !val.Type().IsPrimitiveType() {
		return "", false, errNotPrimitive
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", false, err
	}
	return str.AsString(), true, nil
}

package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"
)

// decimalScalarは金額用のスカラー。
// floatに落とすと誤差が出るので、出力は常に文字列にする。
var decimalScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "Arbitrary-precision decimal, serialized as a string.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case decimal.Decimal:
			return v.String()
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			return v.String()
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		switch v := value.(type) {
		case string:
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil
			}
			return d
		case float64:
			return decimal.NewFromFloat(v)
		case int:
			return decimal.NewFromInt(int64(v))
		case int64:
			return decimal.NewFromInt(v)
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch v := valueAST.(type) {
		case *ast.StringValue:
			d, err := decimal.NewFromString(v.Value)
			if err != nil {
				return nil
			}
			return d
		case *ast.IntValue:
			d, err := decimal.NewFromString(v.Value)
			if err != nil {
				return nil
			}
			return d
		case *ast.FloatValue:
			d, err := decimal.NewFromString(v.Value)
			if err != nil {
				return nil
			}
			return d
		}
		return nil
	},
})

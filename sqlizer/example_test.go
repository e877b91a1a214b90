package sqlizer_test

import (
	"fmt"

	"github.com/go-leo/specification"
	"github.com/go-leo/specification/expr"
	"github.com/go-leo/specification/sqlizer"
)

func ExampleCompiler_Compile() {
	type Employee struct {
		Name string
		Age  int
	}
	adult := specification.New[Employee](func(param *expr.ParameterNode) expr.Node {
		return expr.NewBinary(expr.GreaterThanOrEqual, expr.NewMember(param, "Age"), expr.NewConstant(18))
	})
	named := specification.New[Employee](func(param *expr.ParameterNode) expr.Node {
		return expr.NewBinary(expr.Equal, expr.NewMember(param, "Name"), expr.NewConstant("alice"))
	})

	compiler := sqlizer.New[Employee](sqlizer.Columns(map[string]string{
		"Name": "name",
		"Age":  "age",
	}))
	where, _ := compiler.Compile(adult.And(named))
	sql, args, _ := where.ToSql()
	fmt.Println(sql)
	fmt.Println(args)
	// Output:
	// (age >= ? AND name = ?)
	// [18 alice]
}

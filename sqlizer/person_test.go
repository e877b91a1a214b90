package sqlizer_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-leo/specification"
	"github.com/go-leo/specification/expr"
)

type Gender int

const (
	Man Gender = iota + 1
	Woman
)

func (g Gender) String() string {
	switch g {
	case Man:
		return "Man"
	case Woman:
		return "Woman"
	default:
		return "Unknown"
	}
}

type Person struct {
	ID          uuid.UUID
	Name        string
	Age         int
	Gender      Gender
	CreatedDate time.Time
}

var personColumns = map[string]string{
	"ID":          "id",
	"Name":        "name",
	"Age":         "age",
	"Gender":      "gender",
	"CreatedDate": "created_date",
}

var (
	alice = Person{
		ID:          uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Name:        "alice",
		Age:         20,
		Gender:      Woman,
		CreatedDate: time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	bob = Person{
		ID:          uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8"),
		Name:        "bob",
		Age:         25,
		Gender:      Man,
		CreatedDate: time.Date(2010, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
	carol = Person{
		ID:          uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8"),
		Name:        "carol",
		Age:         16,
		Gender:      Woman,
		CreatedDate: time.Date(2023, time.January, 8, 0, 0, 0, 0, time.UTC),
	}
)

func ageGreaterThan(age int) specification.Specification[Person] {
	return specification.New[Person](func(param *expr.ParameterNode) expr.Node {
		return expr.NewBinary(expr.GreaterThan, expr.NewMember(param, "Age"), expr.NewConstant(age))
	})
}

func genderIs(gender Gender) specification.Specification[Person] {
	return specification.New[Person](func(param *expr.ParameterNode) expr.Node {
		return expr.NewBinary(expr.Equal, expr.NewMember(param, "Gender"), expr.NewConstant(gender))
	})
}

func createdNoLaterThan(cutoff time.Time) specification.Specification[Person] {
	return specification.New[Person](func(param *expr.ParameterNode) expr.Node {
		return expr.NewBinary(expr.LessThanOrEqual, expr.NewMember(param, "CreatedDate"), expr.NewConstant(cutoff))
	})
}

// compositeSpec chains every combinator shape the compiler has to render.
func compositeSpec(cutoff time.Time) specification.Specification[Person] {
	return genderIs(Woman).
		And(ageGreaterThan(18)).
		And(ageGreaterThan(18).And(createdNoLaterThan(cutoff))).
		Or(ageGreaterThan(18)).
		And(genderIs(Man))
}

package specification_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/go-leo/specification"
	"github.com/go-leo/specification/expr"
)

func TestPlaceholderUnification(t *testing.T) {
	Convey("given two independently authored specifications", t, func() {
		adult := ageGreaterThan(18)
		woman := genderIs(Woman)
		So(adult.ToExpression().Parameter(), ShouldNotPointTo, woman.ToExpression().Parameter())

		Convey("every combinator roots the result at one fresh placeholder", func() {
			combined := []specification.Specification[Person]{
				adult.And(woman),
				adult.Or(woman),
				adult.Equal(woman),
				adult.NotEqual(woman),
				adult.Not(),
			}
			for _, spec := range combined {
				lambda := spec.ToExpression()
				params := expr.Parameters(lambda.Body())
				So(params, ShouldHaveLength, 1)
				So(params[0], ShouldPointTo, lambda.Parameter())
				So(lambda.Parameter(), ShouldNotPointTo, adult.ToExpression().Parameter())
				So(lambda.Parameter(), ShouldNotPointTo, woman.ToExpression().Parameter())
				So(lambda.Validate(), ShouldBeNil)
			}
		})

		Convey("unification holds at every depth", func() {
			cutoff := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)
			deep := adult.And(woman).
				Or(genderIs(Man)).
				And(createdNoLaterThan(cutoff)).
				NotEqual(adult).
				Not()
			lambda := deep.ToExpression()
			params := expr.Parameters(lambda.Body())
			So(params, ShouldHaveLength, 1)
			So(params[0], ShouldPointTo, lambda.Parameter())
			So(lambda.Validate(), ShouldBeNil)
			So(func() { deep.IsSatisfiedBy(alice) }, ShouldNotPanic)
		})

		Convey("combining a specification with itself still unifies", func() {
			same := adult.And(adult)
			lambda := same.ToExpression()
			params := expr.Parameters(lambda.Body())
			So(params, ShouldHaveLength, 1)
			So(params[0], ShouldPointTo, lambda.Parameter())
			So(same.IsSatisfiedBy(alice), ShouldBeTrue)
			So(same.IsSatisfiedBy(carol), ShouldBeFalse)
		})
	})

	Convey("every leaf constructor mints its own placeholder", t, func() {
		So(ageGreaterThan(18).ToExpression().Parameter(), ShouldNotPointTo, ageGreaterThan(18).ToExpression().Parameter())
	})
}

package demo

import (
	"context"

	"github.com/abdul-hamid-achik/should/packages/core/runner"
	"github.com/abdul-hamid-achik/should/packages/should"
)

// Suite builds the demonstration checks, each pairing a business function
// with the natural-language expectation it is judged against. Building the
// suite wraps every check, so a missing judgment client fails here, before
// anything runs.
func Suite(opts ...should.Option) []runner.Check {
	return []runner.Check{
		{
			Name:      "register_minor",
			Condition: "registering a minor must be rejected with a clear message",
			Run: plain(should.Wrap("registering a minor must be rejected with a clear message",
				func() (string, error) { return RegisterUser("xiaoming", 16) }, opts...)),
		},
		{
			Name:      "register_adult",
			Condition: "an adult registration succeeds and reports a user id",
			Run: plain(should.Wrap("an adult registration succeeds and reports a user id",
				func() (string, error) { return RegisterUser("zhangsan", 25) }, opts...)),
		},
		{
			Name:      "minor_discount",
			Condition: "a minor gets a 20% discount",
			Run: plain(should.Wrap("a minor gets a 20% discount",
				func() (float64, error) { return CalculateDiscount(16, false), nil }, opts...)),
		},
		{
			Name:      "student_discount",
			Condition: "a student gets a 10% discount",
			Run: plain(should.Wrap("a student gets a 10% discount",
				func() (float64, error) { return CalculateDiscount(20, true), nil }, opts...)),
		},
		{
			Name:      "silent_price_quote",
			Condition: "the quote's final price reflects the discount and the saved amount adds up",
			Run: plain(should.Wrap("the quote's final price reflects the discount and the saved amount adds up",
				func() (Quote, error) { return PriceQuote(100, 0.2), nil }, opts...)),
		},
		{
			Name:      "excellent_user_level",
			Condition: "a score of 95 is graded excellent",
			Run: plain(should.Wrap("a score of 95 is graded excellent",
				func() (string, error) { return UserLevel(95), nil }, opts...)),
		},
		{
			Name:      "failing_user_level",
			Condition: "a score below 60 is graded fail and a warning is logged",
			Run: plain(should.Wrap("a score below 60 is graded fail and a warning is logged",
				func() (string, error) { return UserLevel(40), nil }, opts...)),
		},
		{
			Name:      "async_register_minor",
			Condition: "an asynchronous minor registration must be rejected",
			Run: suspending(should.WrapContext("an asynchronous minor registration must be rejected",
				func(ctx context.Context) (string, error) { return RegisterUserAsync(ctx, "xiaohong", 15) }, opts...)),
		},
		{
			Name:      "async_register_adult",
			Condition: "an asynchronous adult registration succeeds",
			Run: suspending(should.WrapContext("an asynchronous adult registration succeeds",
				func(ctx context.Context) (string, error) { return RegisterUserAsync(ctx, "lisi", 30) }, opts...)),
		},
	}
}

func plain[T any](fn func() (T, error)) func(context.Context) (any, error) {
	return func(context.Context) (any, error) {
		return fn()
	}
}

func suspending[T any](fn func(context.Context) (T, error)) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		return fn(ctx)
	}
}

package demo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RegisterUser registers a user and prints its progress. It carries a
// deliberate bug: minors are warned about but still registered, which the
// demo suite's expectation catches.
func RegisterUser(name string, age int) (string, error) {
	userID := uuid.NewString()

	fmt.Printf("registering user: %s, age: %d\n", name, age)

	if age < 18 {
		fmt.Println("warning: minor registration attempt detected")
		// bug: should be rejected here, but is not
		fmt.Printf("registration succeeded! user id: %s\n", userID)
	} else {
		fmt.Println("adult registration check passed")
		fmt.Printf("registration succeeded! user id: %s\n", userID)
	}

	return userID, nil
}

// RegisterUserAsync is the suspending variant of RegisterUser, simulating
// a backend round trip before registering.
func RegisterUserAsync(ctx context.Context, name string, age int) (string, error) {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	userID := uuid.NewString()

	fmt.Printf("async registration started: %s, age: %d\n", name, age)

	if age < 18 {
		fmt.Println("async check: minor registration attempt")
		// same bug as the synchronous path
		fmt.Printf("async registration finished! user id: %s\n", userID)
	} else {
		fmt.Println("async adult check passed")
		fmt.Printf("async registration finished! user id: %s\n", userID)
	}

	return userID, nil
}

// CalculateDiscount computes the discount rate for a customer and prints
// each decision it takes.
func CalculateDiscount(age int, student bool) float64 {
	fmt.Printf("calculating discount: age=%d, student=%t\n", age, student)

	discount := 0.0
	switch {
	case age < 18:
		discount = 0.2
		fmt.Printf("minor discount: %v\n", discount)
	case student:
		discount = 0.1
		fmt.Printf("student discount: %v\n", discount)
	default:
		fmt.Println("no discount")
	}

	fmt.Printf("final discount: %v\n", discount)
	return discount
}

// Quote is a silent, structured price calculation result; the judge sees
// it only through the return value.
type Quote struct {
	Original float64 `json:"original"`
	Rate     float64 `json:"rate"`
	Final    float64 `json:"final"`
	Saved    float64 `json:"saved"`
}

// PriceQuote applies a discount rate without printing or logging anything.
func PriceQuote(original, rate float64) Quote {
	final := original * (1 - rate)
	return Quote{
		Original: original,
		Rate:     rate,
		Final:    final,
		Saved:    original - final,
	}
}

// UserLevel grades a score, reporting its reasoning through structured
// logging rather than prints.
func UserLevel(score int) string {
	slog.Info("grading user", "score", score)

	var level string
	switch {
	case score >= 90:
		level = "excellent"
	case score >= 75:
		level = "good"
	case score >= 60:
		level = "pass"
	default:
		level = "fail"
		slog.Warn("score below the passing line", "score", score)
	}

	slog.Info("grade assigned", "level", level)
	return level
}

// Package demo holds the demonstration business functions used to show the
// assertion layer end to end: a user registration flow with a deliberate
// minor-acceptance bug, discount and price calculations, and a grading
// function that reports through structured logging. Suite pairs each with
// the expectation it is judged against.
package demo

package grading

import (
	"math"
	"strings"
)

// gradePoints maps letter grades to GPA points. Letters outside this table
// carry no weight: they are excluded from both numerator and denominator.
var gradePoints = map[string]float64{
	"A":  4.0,
	"B+": 3.5,
	"B":  3.0,
	"C+": 2.5,
	"C":  2.0,
	"D+": 1.5,
	"D":  1.0,
	"F":  0.0,
}

// CourseGrade is one graded course as it enters the GPA computation.
type CourseGrade struct {
	Letter  string
	Credits int
}

// Points returns the point value for a letter grade and whether the letter
// is recognized.
func Points(letter string) (float64, bool) {
	points, ok := gradePoints[strings.ToUpper(strings.TrimSpace(letter))]
	return points, ok
}

// GPA computes the credit-weighted grade point average over the recognized
// grades, rounded to two decimals. Returns 0.0 when no credits count.
func GPA(grades []CourseGrade) float64 {
	var totalPoints float64
	var totalCredits int

	for _, g := range grades {
		points, ok := Points(g.Letter)
		if !ok {
			continue
		}
		totalPoints += points * float64(g.Credits)
		totalCredits += g.Credits
	}

	if totalCredits == 0 {
		return 0.0
	}

	return math.Round(totalPoints/float64(totalCredits)*100) / 100
}

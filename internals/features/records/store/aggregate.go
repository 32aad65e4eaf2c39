package store

import (
	"maps"
	"math"
	"slices"
	"strconv"

	"educonnect_backend/internals/features/records/model"
)

// gradePoints maps a letter grade to its point value; unknown letters count as 0.
var gradePoints = map[string]float64{
	"A+": 10,
	"A":  9,
	"A-": 8.5,
	"B+": 8,
	"B":  7,
	"B-": 6.5,
	"C+": 6,
	"C":  5,
	"D":  4,
	"F":  0,
}

func GradePoint(letter string) float64 {
	return gradePoints[letter]
}

// percent is round(part/whole*100) with ties to even; 0 when whole is 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(part) / float64(whole) * 100))
}

// round2 rounds to two decimals on the exact binary value, ties to even.
func round2(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// RecomputeAttendance rebuilds the four overall aggregates from the subject map.
func RecomputeAttendance(a *model.Attendance) {
	present, total := 0, 0
	for _, s := range a.Subjects {
		present += s.Present
		total += s.Total
	}
	a.Present = present
	a.TotalClasses = total
	a.Absent = total - present
	a.OverallPercent = percent(present, total)
}

// RecomputeGrades rebuilds sgpa and earned_credits from the whole current term.
func RecomputeGrades(g *model.Grades) {
	points, credits := 0.0, 0
	// fixed summation order keeps the float result stable across runs
	for _, subject := range slices.Sorted(maps.Keys(g.CurrentSemester)) {
		s := g.CurrentSemester[subject]
		points += GradePoint(s.Grade) * float64(s.Credits)
		credits += s.Credits
	}
	g.EarnedCredits = credits
	if credits > 0 {
		g.SGPA = round2(points / float64(credits))
	} else {
		g.SGPA = 0
	}
}

func recomputeFees(f *model.Fees) {
	f.Pending = f.TotalFee - f.Paid
}

func recomputeLibrary(l *model.Library) {
	l.TotalBorrowed = len(l.BooksBorrowed)
	fine := 0
	for _, b := range l.BooksBorrowed {
		fine += b.Fine
	}
	l.TotalFine = fine
}

// total_credits follows the enrolled course set.
func recomputeCourseCredits(r *model.StudentRecord) {
	total := 0
	for _, c := range r.Courses {
		total += c.Credits
	}
	r.Grades.TotalCredits = total
}

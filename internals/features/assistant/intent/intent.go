// file: internals/features/assistant/intent/intent.go
package intent

import (
	"strings"
	"time"
)

// Tag is the category a free-text query is classified into.
type Tag string

const (
	Attendance Tag = "attendance"
	Timetable  Tag = "timetable"
	Exams      Tag = "exams"
	Grades     Tag = "grades"
	Library    Tag = "library"
	Fees       Tag = "fees"
	Notices    Tag = "notices"
	Courses    Tag = "courses"
	Profile    Tag = "profile"
	Help       Tag = "help"
	Greet      Tag = "greet"
	Placements Tag = "placements"
	Events     Tag = "events"
	Faculty    Tag = "faculty"
	Cafeteria  Tag = "cafeteria"
	CGPACalc   Tag = "cgpa_calc"
	Unknown    Tag = "unknown"
)

type rule struct {
	tag      Tag
	keywords []string
}

// Order matters: the first rule with any keyword contained in the text wins.
// Keywords match as plain substrings, so "hi" also matches "this".
var rules = []rule{
	{Attendance, []string{"attendance", "present", "absent"}},
	{Timetable, []string{"timetable", "schedule", "class today", "classes today", "today's class"}},
	{Exams, []string{"exam", "test", "examination", "mid-sem", "end-sem"}},
	{Grades, []string{"grade", "result", "marks", "cgpa", "sgpa", "gpa", "score"}},
	{Library, []string{"library", "book", "borrow", "due", "fine"}},
	{Fees, []string{"fee", "payment", "pay", "dues", "tuition"}},
	{Notices, []string{"notice", "announcement", "news", "update", "circular"}},
	{Courses, []string{"course", "subject", "credit", "professor", "teacher"}},
	{Profile, []string{"profile", "my info", "my details", "about me", "student info"}},
	{Help, []string{"help", "what can you", "how to", "assist"}},
	{Greet, []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}},
	{Placements, []string{"placement", "job", "internship", "recruit", "company", "package", "ctc"}},
	{Events, []string{"event", "club", "workshop", "fest", "seminar", "hackathon", "activity"}},
	{Faculty, []string{"faculty", "professor", "teacher", "appointment", "cabin", "meet sir", "meet ma'am"}},
	{Cafeteria, []string{"cafeteria", "canteen", "food", "menu", "order", "eat", "lunch", "snack"}},
	{CGPACalc, []string{"predict cgpa", "calculate cgpa", "target cgpa", "gpa calculator"}},
}

// Classify returns the tag of the first rule matching text, or Unknown.
func Classify(text string) Tag {
	t := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(t, kw) {
				return r.tag
			}
		}
	}
	return Unknown
}

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func weekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// ResolveDay picks the lower-case weekday a query refers to. "today" and
// "tomorrow" win over literal weekday names; with no hint it is today.
func ResolveDay(text string, now time.Time) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "today"):
		return weekdayName(now.Weekday())
	case strings.Contains(t, "tomorrow"):
		return weekdayName((now.Weekday() + 1) % 7)
	}
	for _, d := range weekdays {
		if strings.Contains(t, d) {
			return d
		}
	}
	return weekdayName(now.Weekday())
}

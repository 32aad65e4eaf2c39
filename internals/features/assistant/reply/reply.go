// file: internals/features/assistant/reply/reply.go
package reply

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"educonnect_backend/internals/features/assistant/intent"
	"educonnect_backend/internals/features/records/model"
)

const (
	LowAttendanceThreshold  = 75
	HighAttendanceThreshold = 90

	// MaxNotices caps the notices reply to the newest few.
	MaxNotices = 5

	Fallback = "I didn't understand. Try asking about attendance, timetable, exams, fees, library, placements, events, faculty, or cafeteria!"
)

// Render formats the reply for tag. It only reads r and doc.
func Render(tag intent.Tag, r *model.StudentRecord, doc *model.Document, day string, now time.Time) string {
	switch tag {
	case intent.Attendance:
		return attendance(r.Attendance)
	case intent.Timetable:
		return timetable(doc.Timetable, day)
	case intent.Exams:
		return exams(r.Exams)
	case intent.Grades:
		return grades(r.Grades)
	case intent.Library:
		return library(r.Library)
	case intent.Fees:
		return fees(r.Fees)
	case intent.Notices:
		return notices(doc.Notices)
	case intent.Courses:
		return courses(r.Courses)
	case intent.Profile:
		return profile(r)
	case intent.Help:
		return "🤖 I can help you with:\n\n" +
			"📊 Attendance | 📅 Timetable | 📝 Exams\n" +
			"🎓 Grades | 📚 Library | 💰 Fees\n" +
			"📢 Notices | 📖 Courses | 👤 Profile"
	case intent.Greet:
		return fmt.Sprintf("%s, %s! 👋 How can I help you today?", Greeting(now), r.Name)
	case intent.Placements:
		return placements(doc.Placements)
	case intent.Events:
		return events(doc.Events)
	case intent.Faculty:
		return faculty(doc.Faculty)
	case intent.Cafeteria:
		return cafeteria(doc.Cafeteria.Menu)
	case intent.CGPACalc:
		return "🔢 To calculate your target CGPA, please use the 'CGPA Predictor' tool in the dashboard menu. It allows you to simulate your future grades!"
	}
	return Fallback
}

// Greeting picks the salutation for the hour of now.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

/* ===================== PER-STUDENT ===================== */

func attendance(a model.Attendance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Your overall attendance is %d%%.\n", a.OverallPercent)
	fmt.Fprintf(&b, "Classes attended: %d/%d (Absent: %d)\n\n", a.Present, a.TotalClasses, a.Absent)
	b.WriteString("Subject-wise breakdown:")
	for _, subj := range sortedKeys(a.Subjects) {
		fmt.Fprintf(&b, "\n• %s: %d%%", subj, a.Subjects[subj].Percent)
	}

	switch {
	case a.OverallPercent < LowAttendanceThreshold:
		b.WriteString("\n\n⚠️ Warning: Your attendance is below 75%. Please attend more classes!")
	case a.OverallPercent >= HighAttendanceThreshold:
		b.WriteString("\n\n🌟 Excellent attendance! Keep it up!")
	}
	return b.String()
}

func exams(list []model.Exam) string {
	if len(list) == 0 {
		return "📝 No upcoming exams scheduled."
	}
	var b strings.Builder
	b.WriteString("📝 Upcoming Examinations:\n\n")
	for _, e := range list {
		fmt.Fprintf(&b, "📌 %s (%s)\n", e.Subject, e.Type)
		fmt.Fprintf(&b, "   📅 %s at %s\n", e.Date, e.Time)
		fmt.Fprintf(&b, "   📍 Venue: %s\n", e.Venue)
		fmt.Fprintf(&b, "   ⏳ %d days left\n\n", e.DaysLeft)
	}
	return strings.TrimSpace(b.String())
}

func grades(g model.Grades) string {
	var b strings.Builder
	b.WriteString("🎓 Academic Performance:\n\n")
	fmt.Fprintf(&b, "📊 CGPA: %s | SGPA: %s\n", decimal(g.CGPA), decimal(g.SGPA))
	fmt.Fprintf(&b, "📚 Credits: %d/%d\n\n", g.EarnedCredits, g.TotalCredits)
	b.WriteString("Current Semester Grades:\n")
	for _, subj := range sortedKeys(g.CurrentSemester) {
		s := g.CurrentSemester[subj]
		fmt.Fprintf(&b, "• %s: %s (%d marks)\n", subj, s.Grade, s.Marks)
	}
	return strings.TrimSpace(b.String())
}

func library(l model.Library) string {
	var b strings.Builder
	b.WriteString("📚 Library Status:\n\n")
	fmt.Fprintf(&b, "Books borrowed: %d/%d\n", l.TotalBorrowed, l.MaxBooks)
	if l.TotalFine > 0 {
		fmt.Fprintf(&b, "⚠️ Outstanding fine: ₹%d\n", l.TotalFine)
	}
	b.WriteString("\nBorrowed Books:\n")
	for _, book := range l.BooksBorrowed {
		fmt.Fprintf(&b, "\n%s %s\n", bookMarker(book.Status), book.Title)
		fmt.Fprintf(&b, "   Author: %s\n", book.Author)
		fmt.Fprintf(&b, "   Due: %s (%s)\n", book.DueDate, book.Status)
	}
	return strings.TrimSpace(b.String())
}

func bookMarker(status string) string {
	switch status {
	case model.BookStatusOverdue:
		return "🔴"
	case model.BookStatusDueSoon:
		return "🟡"
	default:
		return "🟢"
	}
}

func fees(f model.Fees) string {
	var b strings.Builder
	b.WriteString("💰 Fee Details:\n\n")
	fmt.Fprintf(&b, "Total Fee: ₹%s\n", Amount(f.TotalFee))
	fmt.Fprintf(&b, "✅ Paid: ₹%s\n", Amount(f.Paid))
	fmt.Fprintf(&b, "⏳ Pending: ₹%s\n", Amount(f.Pending))
	fmt.Fprintf(&b, "📅 Due Date: %s", f.DueDate)
	return strings.TrimSpace(b.String())
}

func courses(list []model.Course) string {
	var b strings.Builder
	b.WriteString("📖 Enrolled Courses:\n\n")
	for _, c := range list {
		fmt.Fprintf(&b, "📚 %s: %s\n", c.Code, c.Name)
		fmt.Fprintf(&b, "   👨‍🏫 %s | 📊 %d credits\n\n", c.Professor, c.Credits)
	}
	return strings.TrimSpace(b.String())
}

func profile(r *model.StudentRecord) string {
	var b strings.Builder
	b.WriteString("👤 Student Profile:\n\n")
	fmt.Fprintf(&b, "📛 Name: %s\n", r.Name)
	fmt.Fprintf(&b, "🆔 Roll No: %s\n", r.RollNo)
	fmt.Fprintf(&b, "📧 Email: %s\n", r.Email)
	fmt.Fprintf(&b, "📱 Phone: %s\n", r.Phone)
	fmt.Fprintf(&b, "🎓 Course: %s\n", r.Course)
	fmt.Fprintf(&b, "📅 Year: %s (%s)\n", r.Year, r.Semester)
	fmt.Fprintf(&b, "📊 CGPA: %s", decimal(r.CGPA))
	return b.String()
}

/* ===================== REFERENCE DATA ===================== */

func timetable(tt map[string][]model.ClassSlot, day string) string {
	slots, ok := tt[day]
	if !ok {
		return fmt.Sprintf("📅 No classes scheduled for %s.", dayTitle(day))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📅 Timetable for %s:\n\n", dayTitle(day))
	for _, c := range slots {
		fmt.Fprintf(&b, "🕐 %s - %s\n", c.Time, c.Course)
		fmt.Fprintf(&b, "   📍 %s | 👨‍🏫 %s | 📚 %s\n\n", c.Room, c.Professor, c.Type)
	}
	return strings.TrimSpace(b.String())
}

func notices(list []model.Notice) string {
	var b strings.Builder
	b.WriteString("📢 Latest Notices:\n\n")
	for _, n := range list[:min(len(list), MaxNotices)] {
		fmt.Fprintf(&b, "%s %s\n", noticeMarker(n.Type), n.Title)
		fmt.Fprintf(&b, "   📝 %s • %s\n\n", n.Author, n.TimeAgo)
	}
	return strings.TrimSpace(b.String())
}

func noticeMarker(kind string) string {
	switch kind {
	case model.NoticeUrgent:
		return "🔴"
	case model.NoticeWarning:
		return "🟡"
	default:
		return "🔵"
	}
}

func placements(list []model.Placement) string {
	var b strings.Builder
	b.WriteString("💼 Placement Updates:\n\n")
	for _, p := range list {
		role := "-"
		if len(p.Roles) > 0 {
			role = p.Roles[0]
		}
		fmt.Fprintf(&b, "🏢 %s (%s)\n", p.Company, p.Type)
		fmt.Fprintf(&b, "   💰 CTC: %s | Role: %s\n", p.CTC, role)
		fmt.Fprintf(&b, "   📅 Date: %s\n\n", p.Date)
	}
	return strings.TrimSpace(b.String())
}

func events(list []model.Event) string {
	var b strings.Builder
	b.WriteString("🎭 Upcoming Campus Events:\n\n")
	for _, e := range list {
		fmt.Fprintf(&b, "🎪 %s\n", e.Name)
		fmt.Fprintf(&b, "   📅 %s @ %s\n", e.Date, e.Venue)
		fmt.Fprintf(&b, "   ℹ️ %s\n\n", e.Description)
	}
	return strings.TrimSpace(b.String())
}

func faculty(list []model.Faculty) string {
	var b strings.Builder
	b.WriteString("👨‍🏫 Faculty Directory:\n\n")
	for _, f := range list {
		fmt.Fprintf(&b, "👤 %s (%s)\n", f.Name, f.Designation)
		fmt.Fprintf(&b, "   📍 %s | 📧 %s\n\n", f.Cabin, f.Email)
	}
	b.WriteString("You can ask me to 'Book an appointment' if needed!")
	return strings.TrimSpace(b.String())
}

func cafeteria(menu []model.MenuItem) string {
	var b strings.Builder
	b.WriteString("🍔 Cafeteria Menu:\n\n")
	for _, m := range menu {
		fmt.Fprintf(&b, "• %s - ₹%d\n", m.Item, m.Price)
	}
	b.WriteString("\nSay 'Order [Item Name]' to place an order!")
	return strings.TrimSpace(b.String())
}

/* ===================== FORMATTING ===================== */

// Amount groups thousands: 120000 -> "120,000".
func Amount(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// Casers keep state, so each call gets its own.
func dayTitle(day string) string {
	return cases.Title(language.English).String(day)
}

// decimal prints the shortest form that round-trips, keeping one
// fractional digit for whole numbers (9 -> "9.0").
func decimal(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// file: internals/features/records/model/reference_model.go
package model

/* ===================== SHARED REFERENCE DATA ===================== */

// Notice type values; anything else renders as informational.
const (
	NoticeUrgent  = "urgent"
	NoticeWarning = "warning"
	NoticeInfo    = "info"
)

type Notice struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	Author  string `json:"author"`
	TimeAgo string `json:"time_ago"`
}

type ClassSlot struct {
	Time      string `json:"time"`
	Course    string `json:"course"`
	Room      string `json:"room"`
	Professor string `json:"professor"`
	Type      string `json:"type"`
}

type MenuItem struct {
	ID       int    `json:"id"`
	Item     string `json:"item"`
	Price    int    `json:"price"`
	Category string `json:"category"`
}

type Cafeteria struct {
	Menu []MenuItem `json:"menu"`
}

type Placement struct {
	Company     string   `json:"company"`
	Type        string   `json:"type"`
	Roles       []string `json:"roles"`
	CTC         string   `json:"ctc"`
	Date        string   `json:"date"`
	Deadline    string   `json:"deadline,omitempty"`
	Eligibility string   `json:"eligibility,omitempty"`
}

type Event struct {
	Name        string `json:"name"`
	Organizer   string `json:"organizer"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
}

type Faculty struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department,omitempty"`
	Cabin       string `json:"cabin"`
	Email       string `json:"email"`
}

// Sequences holds the monotonic id counters for collections whose ids are
// visible to clients. Each value is the last id handed out.
type Sequences struct {
	Student  int `json:"student"`
	Notice   int `json:"notice"`
	MenuItem int `json:"menu_item"`
}

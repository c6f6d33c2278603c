package models

import (
	"strings"
	"time"
)

// Status is the moderation/resolution state of a complaint.
// Stored values are canonical English; display labels come from localization.
type Status string

const (
	StatusOpen     Status = "Open"
	StatusResolved Status = "Resolved"
	StatusClosed   Status = "Closed"
	StatusPending  Status = "Pending"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusResolved, StatusClosed, StatusPending:
		return true
	}
	return false
}

// IsResolved matches the stored status against StatusResolved ignoring case,
// since older blobs may carry differently-cased labels.
func (s Status) IsResolved() bool {
	return strings.EqualFold(string(s), string(StatusResolved))
}

// legacyStatusLabels maps the Turkish labels written by earlier versions of
// the board onto the canonical values.
var legacyStatusLabels = map[string]Status{
	"açık":      StatusOpen,
	"çözüldü":   StatusResolved,
	"kapalı":    StatusClosed,
	"beklemede": StatusPending,
}

// StatusFromLabel resolves a stored status label, canonical or legacy,
// ignoring case. ok is false for unrecognized labels.
func StatusFromLabel(label string) (Status, bool) {
	candidate := Status(label)
	for _, known := range []Status{StatusOpen, StatusResolved, StatusClosed, StatusPending} {
		if strings.EqualFold(string(candidate), string(known)) {
			return known, true
		}
	}
	if st, ok := legacyStatusLabels[strings.ToLower(label)]; ok {
		return st, true
	}
	return "", false
}

// Comment is one entry in a complaint's discussion thread.
// Replies nest recursively; the persisted JSON keeps the same shape at every depth.
type Comment struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	UserID  string    `json:"userId"`
	Date    time.Time `json:"date"`
	Replies []Comment `json:"replies"`
}

// Complaint represents one user-submitted report about a brand.
type Complaint struct {
	// ID is unique and monotonically assigned by the board store.
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	// Image is an optional base64 payload attached at submission.
	Image  string    `json:"image,omitempty"`
	UserID string    `json:"userId"`
	Date   time.Time `json:"date"`
	Status Status    `json:"status"`
	// PendingApproval is true until an admin approves the complaint.
	// While true the complaint is invisible to aggregation, search and voting.
	PendingApproval bool `json:"pendingApproval"`
	// Ratings maps a rating dimension (e.g. "Service") to a score in [1,5].
	Ratings map[string]float64 `json:"ratings"`
	// Likes and Dislikes are user-id sets; a user holds at most one of the two.
	Likes    map[string]bool `json:"likes"`
	Dislikes map[string]bool `json:"dislikes"`
	Comments []Comment       `json:"comments"`
}

// ValidRatings returns the rating values inside [1,5]. Out-of-range or NaN-ish
// entries are treated as absent rather than as errors.
func (c *Complaint) ValidRatings() []float64 {
	var valid []float64
	for _, v := range c.Ratings {
		if v >= 1 && v <= 5 {
			valid = append(valid, v)
		}
	}
	return valid
}

// AverageRating returns the mean of the complaint's valid rating values.
// ok is false when the complaint has no valid rating at all.
func (c *Complaint) AverageRating() (avg float64, ok bool) {
	valid := c.ValidRatings()
	if len(valid) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range valid {
		sum += v
	}
	return sum / float64(len(valid)), true
}

// FindComment looks up a comment by id at any nesting depth.
func (c *Complaint) FindComment(id string) *Comment {
	return findComment(c.Comments, id)
}

func findComment(comments []Comment, id string) *Comment {
	for i := range comments {
		if comments[i].ID == id {
			return &comments[i]
		}
		if found := findComment(comments[i].Replies, id); found != nil {
			return found
		}
	}
	return nil
}

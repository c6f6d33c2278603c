package board

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/aslnygz/ygz/internal/models"
)

// The blob types mirror the persisted JSON loosely: older writers produced
// numeric comment ids, localized status labels and occasionally non-numeric
// rating values, so every field is checked and defaulted on the way in.

type blobComment struct {
	ID      any           `json:"id"`
	Text    string        `json:"text"`
	UserID  string        `json:"userId"`
	Date    string        `json:"date"`
	Replies []blobComment `json:"replies"`
}

type blobComplaint struct {
	ID              any            `json:"id"`
	Title           string         `json:"title"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	Brand           string         `json:"brand"`
	Image           string         `json:"image"`
	UserID          string         `json:"userId"`
	Date            string         `json:"date"`
	Status          string         `json:"status"`
	PendingApproval bool           `json:"pendingApproval"`
	Ratings         map[string]any `json:"ratings"`
	Likes           map[string]any `json:"likes"`
	Dislikes        map[string]any `json:"dislikes"`
	Comments        []blobComment  `json:"comments"`
}

// decodeComplaints parses the persisted JSON array and normalizes every
// record: invalid dates become now, nil containers become empty, non-numeric
// ratings are dropped and missing ids are reassigned.
func decodeComplaints(data []byte) ([]models.Complaint, error) {
	var raw []blobComplaint
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("complaint blob is not a JSON array: %w", err)
	}

	now := time.Now()
	complaints := make([]models.Complaint, 0, len(raw))
	maxID := 0
	for i := range raw {
		c := normalizeComplaint(&raw[i], now)
		if c.ID > maxID {
			maxID = c.ID
		}
		complaints = append(complaints, c)
	}

	// Records without a usable id get fresh ones above the current maximum.
	for i := range complaints {
		if complaints[i].ID <= 0 {
			maxID++
			complaints[i].ID = maxID
		}
	}

	return complaints, nil
}

func normalizeComplaint(raw *blobComplaint, now time.Time) models.Complaint {
	c := models.Complaint{
		ID:              intID(raw.ID),
		Title:           stringOr(raw.Title, "Untitled"),
		Category:        raw.Category,
		Description:     raw.Description,
		Brand:           raw.Brand,
		Image:           raw.Image,
		UserID:          stringOr(raw.UserID, "unknown_user"),
		Date:            parseDate(raw.Date, now),
		PendingApproval: raw.PendingApproval,
		Ratings:         map[string]float64{},
		Likes:           map[string]bool{},
		Dislikes:        map[string]bool{},
		Comments:        normalizeComments(raw.Comments, now),
	}

	if st, ok := models.StatusFromLabel(raw.Status); ok {
		c.Status = st
	} else if c.PendingApproval {
		c.Status = models.StatusPending
	} else {
		c.Status = models.StatusOpen
	}

	for dim, value := range raw.Ratings {
		if n, ok := numeric(value); ok {
			c.Ratings[dim] = n
		}
	}
	for user := range raw.Likes {
		c.Likes[user] = true
	}
	for user := range raw.Dislikes {
		c.Dislikes[user] = true
	}
	return c
}

func normalizeComments(raw []blobComment, now time.Time) []models.Comment {
	comments := make([]models.Comment, 0, len(raw))
	for i := range raw {
		comments = append(comments, models.Comment{
			ID:      commentID(raw[i].ID),
			Text:    raw[i].Text,
			UserID:  stringOr(raw[i].UserID, "unknown_user"),
			Date:    parseDate(raw[i].Date, now),
			Replies: normalizeComments(raw[i].Replies, now),
		})
	}
	return comments
}

func parseDate(value string, fallback time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return fallback
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	}
	return 0, false
}

// intID accepts the numeric ids written by all known writers.
func intID(value any) int {
	if n, ok := numeric(value); ok && n > 0 {
		return int(n)
	}
	return 0
}

// commentID keeps numeric legacy ids as strings and mints one when absent.
func commentID(value any) string {
	switch v := value.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return uuid.New().String()
}

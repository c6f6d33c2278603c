// Package board owns the complaint records of the board: loading them from
// the blob store, validating submissions, and applying moderation, vote and
// comment actions. All reads hand out copies so callers can never mutate the
// store's snapshot behind its back.
package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aslnygz/ygz/internal/config"
	"github.com/aslnygz/ygz/internal/models"
	"github.com/aslnygz/ygz/internal/storage"
)

var (
	ErrNotFound        = errors.New("complaint not found")
	ErrPendingApproval = errors.New("complaint is pending approval")
	ErrAlreadyApproved = errors.New("complaint is already approved")
	ErrCommentNotFound = errors.New("parent comment not found")
)

// ValidationError marks a rejected submission; the message is safe to show.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Submission is the input of a new complaint.
type Submission struct {
	Title       string             `json:"title" binding:"required"`
	Category    string             `json:"category" binding:"required"`
	Description string             `json:"description" binding:"required"`
	Brand       string             `json:"brand" binding:"required"`
	Image       string             `json:"image"`
	UserID      string             `json:"userId" binding:"required"`
	Ratings     map[string]float64 `json:"ratings" binding:"required"`
}

// Update carries the admin-editable fields; nil means "leave unchanged".
type Update struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *models.Status `json:"status"`
	Category    *string        `json:"category"`
	Brand       *string        `json:"brand"`
}

// Store is the single owner of the complaint list for this process.
type Store struct {
	mu         sync.RWMutex
	blobs      storage.BlobStore
	settings   *models.BoardSettings
	complaints []models.Complaint
}

// NewStore creates a board store over the given blob backend. settings may be
// nil, in which case rating dimensions are not restricted.
func NewStore(blobs storage.BlobStore, settings *models.BoardSettings) *Store {
	return &Store{blobs: blobs, settings: settings}
}

// Load reads the persisted complaint blob. A missing or corrupt blob falls
// back to the seed records; the board always starts with a well-formed list.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.blobs.LoadBlob(config.ComplaintsBlobKey)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			log.Println("INFO: Complaint blob is empty, seeding board with initial records.")
		} else {
			log.Printf("ERROR: Failed to load complaint blob: %v. Seeding board.", err)
		}
		s.complaints = seedComplaints(time.Now())
		return
	}

	complaints, err := decodeComplaints([]byte(raw))
	if err != nil {
		log.Printf("ERROR: Complaint blob is corrupt: %v. Seeding board.", err)
		s.complaints = seedComplaints(time.Now())
		return
	}

	// Newest first.
	sort.SliceStable(complaints, func(i, j int) bool {
		return complaints[i].Date.After(complaints[j].Date)
	})
	s.complaints = complaints
	log.Printf("INFO: Loaded %d complaints from blob store.", len(complaints))
}

// persist writes the current list back to the blob store.
// Caller must hold the write lock.
func (s *Store) persist() {
	data, err := json.Marshal(s.complaints)
	if err != nil {
		log.Printf("ERROR: Failed to serialize complaints: %v", err)
		return
	}
	if err := s.blobs.SaveBlob(config.ComplaintsBlobKey, string(data)); err != nil {
		log.Printf("ERROR: Failed to persist complaints: %v", err)
	}
}

// List returns a copy of every complaint, newest first.
func (s *Store) List() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyComplaints(s.complaints)
}

// ListApproved returns a copy of the complaints with PendingApproval=false.
// This is the aggregator's input contract: every record has normalized dates
// and non-nil containers.
func (s *Store) ListApproved() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var approved []models.Complaint
	for i := range s.complaints {
		if !s.complaints[i].PendingApproval {
			approved = append(approved, copyComplaint(&s.complaints[i]))
		}
	}
	return approved
}

// ListPending returns a copy of the complaints awaiting moderation.
func (s *Store) ListPending() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []models.Complaint
	for i := range s.complaints {
		if s.complaints[i].PendingApproval {
			pending = append(pending, copyComplaint(&s.complaints[i]))
		}
	}
	return pending
}

// Get returns a copy of one complaint by id.
func (s *Store) Get(id int) (*models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.find(id)
	if c == nil {
		return nil, ErrNotFound
	}
	out := copyComplaint(c)
	return &out, nil
}

// Add validates a submission and appends it as a pending complaint.
func (s *Store) Add(sub Submission) (*models.Complaint, error) {
	if err := s.validate(&sub); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newComplaint := models.Complaint{
		ID:              s.nextID(),
		Title:           strings.TrimSpace(sub.Title),
		Category:        strings.TrimSpace(sub.Category),
		Description:     strings.TrimSpace(sub.Description),
		Brand:           strings.TrimSpace(sub.Brand),
		Image:           sub.Image,
		UserID:          sub.UserID,
		Date:            time.Now(),
		Status:          models.StatusPending,
		PendingApproval: true,
		Ratings:         sub.Ratings,
		Likes:           map[string]bool{},
		Dislikes:        map[string]bool{},
		Comments:        []models.Comment{},
	}

	s.complaints = append([]models.Complaint{newComplaint}, s.complaints...)
	s.persist()

	out := copyComplaint(&newComplaint)
	return &out, nil
}

func (s *Store) validate(sub *Submission) error {
	if strings.TrimSpace(sub.Title) == "" || strings.TrimSpace(sub.Category) == "" ||
		strings.TrimSpace(sub.Description) == "" || strings.TrimSpace(sub.Brand) == "" ||
		sub.UserID == "" {
		return &ValidationError{Message: "title, category, description, brand and userId are required"}
	}
	if len(sub.Ratings) == 0 {
		return &ValidationError{Message: "ratings are required"}
	}
	for dim, value := range sub.Ratings {
		if value < config.MinRating || value > config.MaxRating {
			return &ValidationError{Message: fmt.Sprintf("rating %q must be between %v and %v", dim, config.MinRating, config.MaxRating)}
		}
		if s.settings != nil && !s.settings.HasDimension(dim) {
			return &ValidationError{Message: fmt.Sprintf("unknown rating dimension %q", dim)}
		}
	}
	return nil
}

// nextID assigns max+1 over the current list. Caller must hold the lock.
func (s *Store) nextID() int {
	maxID := 0
	for i := range s.complaints {
		if s.complaints[i].ID > maxID {
			maxID = s.complaints[i].ID
		}
	}
	return maxID + 1
}

// Approve clears the moderation gate and opens the complaint. An approved
// complaint never returns to pending.
func (s *Store) Approve(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(id)
	if c == nil {
		return ErrNotFound
	}
	if !c.PendingApproval {
		return ErrAlreadyApproved
	}

	c.PendingApproval = false
	c.Status = models.StatusOpen
	s.persist()
	log.Printf("INFO: Complaint %d approved.", id)
	return nil
}

// Reject deletes a complaint that is still awaiting approval.
func (s *Store) Reject(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.complaints {
		if s.complaints[i].ID == id {
			if !s.complaints[i].PendingApproval {
				return ErrAlreadyApproved
			}
			s.complaints = append(s.complaints[:i], s.complaints[i+1:]...)
			s.persist()
			log.Printf("INFO: Complaint %d rejected and removed.", id)
			return nil
		}
	}
	return ErrNotFound
}

// Update edits the admin-editable fields. Status cannot be set to Pending
// manually, and a pending complaint's status can only change via Approve.
func (s *Store) Update(id int, upd Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(id)
	if c == nil {
		return ErrNotFound
	}

	changed := false
	if upd.Title != nil && strings.TrimSpace(*upd.Title) != "" {
		c.Title = strings.TrimSpace(*upd.Title)
		changed = true
	}
	if upd.Description != nil && strings.TrimSpace(*upd.Description) != "" {
		c.Description = strings.TrimSpace(*upd.Description)
		changed = true
	}
	if upd.Category != nil && strings.TrimSpace(*upd.Category) != "" {
		c.Category = strings.TrimSpace(*upd.Category)
		changed = true
	}
	if upd.Brand != nil && strings.TrimSpace(*upd.Brand) != "" {
		c.Brand = strings.TrimSpace(*upd.Brand)
		changed = true
	}
	if upd.Status != nil {
		switch {
		case !models.ValidStatus(*upd.Status):
			return &ValidationError{Message: fmt.Sprintf("unknown status %q", *upd.Status)}
		case c.PendingApproval:
			log.Printf("WARN: Status of pending complaint %d can only change via approval.", id)
		case *upd.Status == models.StatusPending:
			log.Printf("WARN: Approved complaint %d cannot be moved back to pending.", id)
		default:
			c.Status = *upd.Status
			changed = true
		}
	}

	if changed {
		s.persist()
	}
	return nil
}

// Delete removes a complaint regardless of its state.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.complaints {
		if s.complaints[i].ID == id {
			s.complaints = append(s.complaints[:i], s.complaints[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// Like toggles a user's like on a complaint, clearing any dislike first.
func (s *Store) Like(id int, userID string) error {
	return s.vote(id, userID, true)
}

// Dislike toggles a user's dislike on a complaint, clearing any like first.
func (s *Store) Dislike(id int, userID string) error {
	return s.vote(id, userID, false)
}

func (s *Store) vote(id int, userID string, like bool) error {
	if userID == "" {
		return &ValidationError{Message: "userId is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(id)
	if c == nil {
		return ErrNotFound
	}
	if c.PendingApproval {
		return ErrPendingApproval
	}

	target, other := c.Likes, c.Dislikes
	if !like {
		target, other = c.Dislikes, c.Likes
	}

	// A user holds at most one of {liked, disliked}.
	delete(other, userID)
	if target[userID] {
		delete(target, userID)
	} else {
		target[userID] = true
	}

	s.persist()
	return nil
}

// AddComment appends a comment to a complaint, or a reply when parentID names
// an existing comment at any depth. Pending complaints take no comments.
func (s *Store) AddComment(id int, text, userID, parentID string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" || userID == "" {
		return nil, &ValidationError{Message: "comment text and userId are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(id)
	if c == nil {
		return nil, ErrNotFound
	}
	if c.PendingApproval {
		return nil, ErrPendingApproval
	}

	newComment := models.Comment{
		ID:      uuid.New().String(),
		Text:    strings.TrimSpace(text),
		UserID:  userID,
		Date:    time.Now(),
		Replies: []models.Comment{},
	}

	if parentID != "" {
		parent := c.FindComment(parentID)
		if parent == nil {
			return nil, ErrCommentNotFound
		}
		parent.Replies = append(parent.Replies, newComment)
	} else {
		c.Comments = append(c.Comments, newComment)
	}

	s.persist()
	out := newComment
	return &out, nil
}

// find returns the stored complaint by id. Caller must hold a lock.
func (s *Store) find(id int) *models.Complaint {
	for i := range s.complaints {
		if s.complaints[i].ID == id {
			return &s.complaints[i]
		}
	}
	return nil
}

func copyComplaints(in []models.Complaint) []models.Complaint {
	out := make([]models.Complaint, len(in))
	for i := range in {
		out[i] = copyComplaint(&in[i])
	}
	return out
}

func copyComplaint(c *models.Complaint) models.Complaint {
	out := *c
	out.Ratings = make(map[string]float64, len(c.Ratings))
	for k, v := range c.Ratings {
		out.Ratings[k] = v
	}
	out.Likes = make(map[string]bool, len(c.Likes))
	for k := range c.Likes {
		out.Likes[k] = true
	}
	out.Dislikes = make(map[string]bool, len(c.Dislikes))
	for k := range c.Dislikes {
		out.Dislikes[k] = true
	}
	out.Comments = copyComments(c.Comments)
	return out
}

func copyComments(in []models.Comment) []models.Comment {
	out := make([]models.Comment, len(in))
	for i := range in {
		out[i] = in[i]
		out[i].Replies = copyComments(in[i].Replies)
	}
	return out
}

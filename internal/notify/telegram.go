// Package notify pushes moderation alerts to the admins over Telegram.
// The board never receives bot traffic; only outgoing messages are sent.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aslnygz/ygz/internal/localization"
	"github.com/aslnygz/ygz/internal/models"
)

// Notifier alerts the moderation channel about board events.
type Notifier interface {
	NewComplaint(c *models.Complaint)
	ComplaintApproved(c *models.Complaint)
}

// BotService sends alerts to a single admin chat.
type BotService struct {
	BotAPI      *tgbotapi.BotAPI
	AdminChatID int64
	Localizer   *localization.Localizer
	Lang        string
}

// NewBotService connects the bot and binds it to the admin chat.
func NewBotService(token string, adminChatID int64, localizer *localization.Localizer, lang string) (*BotService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Moderation alerts authorized on account %s", bot.Self.UserName)

	return &BotService{
		BotAPI:      bot,
		AdminChatID: adminChatID,
		Localizer:   localizer,
		Lang:        lang,
	}, nil
}

// NewComplaint alerts the admins that a complaint is waiting for approval.
func (s *BotService) NewComplaint(c *models.Complaint) {
	header := s.Localizer.GetString(s.Lang, "notify.new_complaint")
	s.send(fmt.Sprintf("%s\n#%d %s - %s (%s)", header, c.ID, c.Brand, c.Title, c.Category))
}

// ComplaintApproved alerts the admins that a complaint went public.
func (s *BotService) ComplaintApproved(c *models.Complaint) {
	header := s.Localizer.GetString(s.Lang, "notify.approved")
	s.send(fmt.Sprintf("%s\n#%d %s - %s", header, c.ID, c.Brand, c.Title))
}

func (s *BotService) send(text string) {
	msg := tgbotapi.NewMessage(s.AdminChatID, text)
	if _, err := s.BotAPI.Send(msg); err != nil {
		log.Printf("ERROR: Failed to send moderation alert: %v", err)
	}
}

// NopNotifier is used when no Telegram token is configured.
type NopNotifier struct{}

func (NopNotifier) NewComplaint(*models.Complaint)      {}
func (NopNotifier) ComplaintApproved(*models.Complaint) {}

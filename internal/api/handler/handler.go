package handler

import (
	"github.com/aslnygz/ygz/internal/board"
	"github.com/aslnygz/ygz/internal/localization"
	"github.com/aslnygz/ygz/internal/metrics"
	"github.com/aslnygz/ygz/internal/models"
	"github.com/aslnygz/ygz/internal/notify"
)

// Handler bundles the board dependencies for the HTTP routes.
type Handler struct {
	Store      *board.Store
	Aggregator *metrics.Aggregator
	Localizer  *localization.Localizer
	Notifier   notify.Notifier
}

func NewHandler(store *board.Store, agg *metrics.Aggregator, loc *localization.Localizer, n notify.Notifier) *Handler {
	if n == nil {
		n = notify.NopNotifier{}
	}
	return &Handler{Store: store, Aggregator: agg, Localizer: loc, Notifier: n}
}

// complaintView decorates a complaint with the localized status label.
type complaintView struct {
	models.Complaint
	StatusLabel string `json:"statusLabel"`
}

func (h *Handler) view(c models.Complaint, lang string) complaintView {
	return complaintView{Complaint: c, StatusLabel: h.Localizer.StatusLabel(lang, c.Status)}
}

func (h *Handler) views(complaints []models.Complaint, lang string) []complaintView {
	out := make([]complaintView, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, h.view(c, lang))
	}
	return out
}

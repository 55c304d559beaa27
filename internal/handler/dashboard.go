package handler

import (
	"net/http"
	"time"

	"github.com/dormmate/dormmate/internal/duty"
	"github.com/dormmate/dormmate/internal/ledger"
	"github.com/dormmate/dormmate/internal/model"
	"github.com/dormmate/dormmate/internal/notes"
	"github.com/dormmate/dormmate/internal/session"
	"github.com/dormmate/dormmate/internal/store"
)

type DashboardHandler struct {
	roommates *store.RoommateStore
	duties    *store.DutyStore
	txs       *store.TransactionStore
	notes     *store.NoteStore
	session   *session.Session
}

func NewDashboardHandler(rs *store.RoommateStore, ds *store.DutyStore, ts *store.TransactionStore, ns *store.NoteStore, sess *session.Session) *DashboardHandler {
	return &DashboardHandler{roommates: rs, duties: ds, txs: ts, notes: ns, session: sess}
}

type todaysDutyResponse struct {
	Duty     model.Duty      `json:"duty"`
	Assignee *model.Roommate `json:"assignee,omitempty"`
	IsMyTurn bool            `json:"is_my_turn"`
}

// Get aggregates the landing view: today's duty, the pool balance and the
// viewer's private note count. Everything is derived on the fly; the
// dashboard stores nothing of its own.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewer := h.session.Current()

	var today *todaysDutyResponse
	if d := duty.TodaysDuty(h.duties.List(), time.Now()); d != nil {
		today = &todaysDutyResponse{
			Duty:     *d,
			Assignee: h.roommates.GetByID(d.RoommateID),
			IsMyTurn: duty.IsMyTurn(d, viewer.ID),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"current_user":  viewer,
		"todays_duty":   today,
		"balance":       ledger.Balance(h.txs.List()),
		"private_notes": notes.PrivateCount(h.notes.List(), viewer.ID),
	})
}

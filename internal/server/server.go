package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dormmate/dormmate/internal/assistant"
	"github.com/dormmate/dormmate/internal/games"
	"github.com/dormmate/dormmate/internal/handler"
	"github.com/dormmate/dormmate/internal/middleware"
	"github.com/dormmate/dormmate/internal/session"
	"github.com/dormmate/dormmate/internal/storage"
	"github.com/dormmate/dormmate/internal/store"
	"github.com/dormmate/dormmate/internal/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	db           *sql.DB
	hub          *websocket.Hub
	roommateH    *handler.RoommateHandler
	dutyH        *handler.DutyHandler
	transactionH *handler.TransactionHandler
	noteH        *handler.NoteHandler
	gameH        *handler.GameHandler
	assistantH   *handler.AssistantHandler
	sessionH     *handler.SessionHandler
	dashboardH   *handler.DashboardHandler
	logger       *slog.Logger
}

func New(db *sql.DB, aiClient *assistant.Client, logger *slog.Logger) *Server {
	hub := websocket.NewHub(logger.With("component", "websocket"))

	slots := storage.NewSlotStore(db)
	roommateStore := store.NewRoommateStore()
	dutyStore := store.NewDutyStore(slots, logger.With("component", "duty_store"))
	txStore := store.NewTransactionStore(slots, logger.With("component", "transaction_store"))
	noteStore := store.NewNoteStore(slots, logger.With("component", "note_store"))

	sess := session.New(roommateStore)
	picker := games.NewPicker()

	return &Server{
		db:           db,
		hub:          hub,
		roommateH:    handler.NewRoommateHandler(roommateStore),
		dutyH:        handler.NewDutyHandler(dutyStore, hub, logger.With("component", "duty")),
		transactionH: handler.NewTransactionHandler(txStore, roommateStore, hub, logger.With("component", "transaction")),
		noteH:        handler.NewNoteHandler(noteStore, sess, hub, logger.With("component", "note")),
		gameH:        handler.NewGameHandler(roommateStore, picker, aiClient, hub, logger.With("component", "game")),
		assistantH:   handler.NewAssistantHandler(aiClient, logger.With("component", "assistant")),
		sessionH:     handler.NewSessionHandler(sess, hub),
		dashboardH:   handler.NewDashboardHandler(roommateStore, dutyStore, txStore, noteStore, sess),
		logger:       logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /ws", websocket.HandleWebSocket(s.hub))

	mux.HandleFunc("GET /api/roommates", s.roommateH.List)

	mux.HandleFunc("GET /api/session", s.sessionH.Get)
	mux.HandleFunc("PUT /api/session/view", s.sessionH.SetView)
	mux.HandleFunc("POST /api/session/user/cycle", s.sessionH.CycleUser)
	mux.HandleFunc("POST /api/session/user/{id}", s.sessionH.SetUser)

	mux.HandleFunc("GET /api/dashboard", s.dashboardH.Get)

	mux.HandleFunc("GET /api/duties", s.dutyH.List)
	mux.HandleFunc("POST /api/duties", s.dutyH.Create)
	mux.HandleFunc("POST /api/duties/{id}/toggle", s.dutyH.Toggle)
	mux.HandleFunc("DELETE /api/duties/{id}", s.dutyH.Delete)

	mux.HandleFunc("GET /api/transactions", s.transactionH.List)
	mux.HandleFunc("POST /api/transactions", s.transactionH.Create)
	mux.HandleFunc("GET /api/transactions/summary", s.transactionH.Summary)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.transactionH.Delete)

	mux.HandleFunc("GET /api/notes", s.noteH.List)
	mux.HandleFunc("POST /api/notes", s.noteH.Create)
	mux.HandleFunc("DELETE /api/notes/{id}", s.noteH.Delete)

	mux.HandleFunc("POST /api/games/pick", s.gameH.Pick)
	mux.HandleFunc("POST /api/games/prompt", s.gameH.Prompt)

	mux.HandleFunc("POST /api/assistant/chat", s.assistantH.Chat)

	logged := middleware.RequestLogger(s.logger.With("component", "http"))(mux)
	return middleware.Metrics()(logged)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

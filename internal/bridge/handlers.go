package bridge

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/i18n"
)

type localeRequest struct {
	Locale string `json:"locale"`
}

type titleRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleGetLocale(w http.ResponseWriter, _ *http.Request) {
	s.writeSuccess(w, localeRequest{Locale: string(s.shell.CurrentLocale())})
}

func (s *Server) handleUpdateLocale(w http.ResponseWriter, r *http.Request) {
	var req localeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	locale := strings.TrimSpace(req.Locale)
	if locale == "" {
		s.writeError(w, http.StatusBadRequest, "locale is required")
		return
	}

	if err := s.shell.UpdateMenuLocale(i18n.Locale(locale)); err != nil {
		s.logger.Error("Locale update failed", zap.String("locale", locale), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeSuccess(w, localeRequest{Locale: string(s.shell.CurrentLocale())})
}

func (s *Server) handleSetTitle(w http.ResponseWriter, r *http.Request) {
	var req titleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := s.shell.SetWindowTitle(req.Title); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeSuccess(w, req)
}

func (s *Server) handleExit(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusAccepted, Response{Success: true})
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	s.shell.ExitApp()
}

func (s *Server) handleGetMenu(w http.ResponseWriter, _ *http.Request) {
	tree := s.shell.Menu()
	if tree == nil {
		s.writeError(w, http.StatusServiceUnavailable, "menu not built yet")
		return
	}
	s.writeSuccess(w, tree.Views())
}

func (s *Server) handleGetTray(w http.ResponseWriter, _ *http.Request) {
	tree := s.shell.Tray()
	if tree == nil {
		s.writeError(w, http.StatusServiceUnavailable, "tray menu not built yet")
		return
	}
	s.writeSuccess(w, tree.Views())
}

func (s *Server) handleMenuClick(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.writeJSON(w, http.StatusAccepted, Response{Success: true, Data: map[string]string{"id": id}})
	s.shell.HandleMenuEvent(id)
}

func (s *Server) handleTrayClick(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.writeJSON(w, http.StatusAccepted, Response{Success: true, Data: map[string]string{"id": id}})
	s.shell.HandleTrayEvent(id)
}

func (s *Server) handleTrayIconClick(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusAccepted, Response{Success: true})
	s.shell.HandleTrayIconClick()
}

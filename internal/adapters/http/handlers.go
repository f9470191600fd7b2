package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"svw.info/sudogen/grid"
	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/usecase"
	"svw.info/sudogen/shuffle"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Routes mounts the JSON API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/generate", h.handleGenerate)
	r.Post("/api/verify", h.handleVerify)
	r.Post("/api/puzzles", h.handleSave)
	r.Get("/api/puzzles", h.handleList)
	r.Get("/api/puzzles/{id}", h.handleLoad)
	return r
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, map[string]string{"error": msg})
}

// ---- Generate ----

type generateReq struct {
	Level int   `json:"level"`
	Seed  int64 `json:"seed,omitempty"`
	Size  int   `json:"size,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	DurationMs int64          `json:"durationMs"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(r.Context(), seed, req.Level, req.Size)
	if err != nil {
		status := http.StatusInternalServerError
		var cfg *grid.ConfigError
		if errors.Is(err, shuffle.ErrLevelOutOfRange) || errors.As(err, &cfg) {
			status = http.StatusBadRequest
		}
		render.Status(r, status)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, generateResp{Puzzle: p, DurationMs: st.Duration.Milliseconds()})
}

// ---- Verify ----

type verifyReq struct {
	Grid [][]int `json:"grid"`
}

type verifyResp struct {
	OK bool `json:"ok"`
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	ok, err := h.UC.Verify(r.Context(), req.Grid)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	render.JSON(w, r, verifyResp{OK: ok})
}

// ---- Save / Load / List ----

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, map[string]string{"id": p.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		render.Status(r, status)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ps, err := h.UC.List(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, map[string]any{"puzzles": ps})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"logbook/internal/models"
	"logbook/internal/store"
	"logbook/internal/timeclock"
)

// logsRequest is the flat field set for every log action.
type logsRequest struct {
	Action    string `json:"action"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	LogAction string `json:"logAction"`
	Timestamp string `json:"timestamp"`

	// add_entry_manual
	CreatedByUserID string `json:"createdByUserId"`
	UserEmail       string `json:"userEmail"`
	EntryDate       string `json:"entryDate"`
	EntryTime       string `json:"entryTime"`

	// delete_entry; older clients send the id as a number, newer ones as a
	// string, so accept either.
	EntryID any `json:"entryId"`
}

// LogActions handles POST /api/logs: add_entry, add_entry_manual,
// list_entries, delete_entry, progress.
func LogActions(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	users := store.NewUserStore(db)
	entries := store.NewEntryStore(db)
	return func(w http.ResponseWriter, r *http.Request) {
		var req logsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		switch req.Action {
		case "add_entry":
			addEntry(w, r, users, entries, lg, req)
		case "add_entry_manual":
			addEntryManual(w, r, users, entries, lg, req)
		case "list_entries":
			listEntries(w, r, entries)
		case "delete_entry":
			deleteEntry(w, r, users, entries, lg, req)
		case "progress":
			progress(w, r, users, entries, req)
		default:
			respondErr(w, http.StatusBadRequest, "Unknown action")
		}
	}
}

func addEntry(w http.ResponseWriter, r *http.Request, users *store.UserStore, entries *store.EntryStore, lg *zap.SugaredLogger, req logsRequest) {
	name := strings.TrimSpace(req.Name)
	if req.UserID == "" || name == "" {
		respondErr(w, http.StatusBadRequest, "User is required. Please sign in again.")
		return
	}
	if !models.ValidAction(req.LogAction) {
		respondErr(w, http.StatusBadRequest, "Invalid action.")
		return
	}
	u, err := users.GetByID(r.Context(), req.UserID)
	if err != nil {
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if u == nil {
		respondErr(w, http.StatusBadRequest, "User is required. Please sign in again.")
		return
	}

	dt := time.Now()
	if req.Timestamp != "" {
		if parsed, err := timeclock.ParseTimestamp(req.Timestamp); err == nil {
			dt = parsed
		}
	}

	e := models.Entry{
		UserID:    u.ID,
		Name:      name,
		Action:    req.LogAction,
		EntryDate: dt.Format("2006-01-02"),
		EntryTime: dt.Format("15:04:05"),
		CreatedAt: dt,
	}
	if err := entries.Create(r.Context(), &e); err != nil {
		lg.Errorw("add_entry insert failed", "user", u.Email, "error", err)
		respondErr(w, http.StatusInternalServerError, "Could not save the entry.")
		return
	}
	respondOK(w, map[string]any{"entry": wireEntry(e)})
}

func addEntryManual(w http.ResponseWriter, r *http.Request, users *store.UserStore, entries *store.EntryStore, lg *zap.SugaredLogger, req logsRequest) {
	if req.CreatedByUserID == "" {
		respondErr(w, http.StatusForbidden, "Admin session required.")
		return
	}
	admin, err := users.GetByID(r.Context(), req.CreatedByUserID)
	if err != nil {
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if admin == nil || admin.Role != models.RoleAdmin {
		respondErr(w, http.StatusForbidden, "Only admins can add manual entries.")
		return
	}

	if strings.TrimSpace(req.UserEmail) == "" {
		respondErr(w, http.StatusBadRequest, "Please select a user.")
		return
	}
	target, err := users.GetByEmail(r.Context(), req.UserEmail)
	if err != nil {
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if target == nil {
		respondErr(w, http.StatusNotFound, "User not found.")
		return
	}

	if !models.ValidAction(req.LogAction) {
		respondErr(w, http.StatusBadRequest, "Invalid action. Choose Time In or Time Out.")
		return
	}
	entryDate := strings.TrimSpace(req.EntryDate)
	entryTime := strings.TrimSpace(req.EntryTime)
	if entryDate == "" || entryTime == "" {
		respondErr(w, http.StatusBadRequest, "Date and time are required.")
		return
	}
	dt, err := timeclock.ParseTimestamp(entryDate + " " + entryTime)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid date or time format.")
		return
	}

	// The entry belongs to the selected user, not the admin who keyed it in.
	e := models.Entry{
		UserID:    target.ID,
		Name:      target.Name,
		Action:    req.LogAction,
		EntryDate: dt.Format("2006-01-02"),
		EntryTime: dt.Format("15:04:05"),
		CreatedAt: dt,
	}
	if err := entries.Create(r.Context(), &e); err != nil {
		lg.Errorw("add_entry_manual insert failed", "user", target.Email, "error", err)
		respondErr(w, http.StatusInternalServerError, "Could not save the entry.")
		return
	}
	lg.Infow("manual entry added", "user", target.Email, "by", admin.Email, "action", e.Action, "date", e.EntryDate)
	respondOK(w, map[string]any{"entry": wireEntry(e)})
}

func listEntries(w http.ResponseWriter, r *http.Request, entries *store.EntryStore) {
	all, err := entries.List(r.Context())
	if err != nil {
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	out := make([]timeclock.Entry, 0, len(all))
	for _, e := range all {
		out = append(out, wireEntry(e))
	}
	respondOK(w, map[string]any{"entries": out})
}

func deleteEntry(w http.ResponseWriter, r *http.Request, users *store.UserStore, entries *store.EntryStore, lg *zap.SugaredLogger, req logsRequest) {
	id, ok := entryID(req.EntryID)
	if !ok || req.UserID == "" {
		respondErr(w, http.StatusBadRequest, "Entry and user are required.")
		return
	}
	u, err := users.GetByID(r.Context(), req.UserID)
	if err != nil {
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if u == nil {
		respondErr(w, http.StatusForbidden, "Session expired. Please sign in again.")
		return
	}
	if u.Role != models.RoleAdmin {
		respondErr(w, http.StatusForbidden, "Only admins can delete entries.")
		return
	}
	found, err := entries.Delete(r.Context(), id)
	if err != nil {
		lg.Errorw("delete_entry failed", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Could not delete entry. Try again.")
		return
	}
	if !found {
		respondErr(w, http.StatusNotFound, "Entry not found.")
		return
	}
	respondOK(w, nil)
}

// progress reports an OJT user's hours-completion state against their
// schedule, computed server-side from the shared store.
func progress(w http.ResponseWriter, r *http.Request, users *store.UserStore, entries *store.EntryStore, req logsRequest) {
	if strings.TrimSpace(req.UserEmail) == "" {
		respondErr(w, http.StatusBadRequest, "Please select a user.")
		return
	}
	u, err := users.GetByEmail(r.Context(), req.UserEmail)
	if err != nil {
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if u == nil {
		respondErr(w, http.StatusNotFound, "User not found.")
		return
	}
	rows, err := entries.ListByUser(r.Context(), u.ID)
	if err != nil {
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	wire := make([]timeclock.Entry, 0, len(rows))
	for _, e := range rows {
		wire = append(wire, wireEntry(e))
	}
	respondOK(w, map[string]any{"progress": timeclock.UserProgress(wire, *u)})
}

func wireEntry(e models.Entry) timeclock.Entry {
	return timeclock.Entry{
		ID:        strconv.FormatInt(e.ID, 10),
		UserID:    e.UserID,
		Name:      e.Name,
		Action:    e.Action,
		Timestamp: e.CreatedAt,
		Date:      e.EntryDate,
		Time:      e.EntryTime,
	}
}

func entryID(v any) (int64, bool) {
	switch id := v.(type) {
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		return n, err == nil
	case float64:
		return int64(id), true
	}
	return 0, false
}

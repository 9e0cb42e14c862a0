package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"logbook/internal/auth"
	"logbook/internal/models"
	"logbook/internal/store"
)

var validate = validator.New()

// authRequest is the flat field set for every auth action; Action selects the
// operation.
type authRequest struct {
	Action   string `json:"action"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	OJTStartTime          string `json:"ojtStartTime"`
	OJTEndTime            string `json:"ojtEndTime"`
	OJTHoursPerDay        int    `json:"ojtHoursPerDay"`
	OJTTotalHoursRequired int    `json:"ojtTotalHoursRequired"`
}

// AuthActions handles POST /api/auth: sign_up, sign_in, list_users,
// approve_user, delete_user.
func AuthActions(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	users := store.NewUserStore(db)
	return func(w http.ResponseWriter, r *http.Request) {
		var req authRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondErr(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		req.Name = strings.TrimSpace(req.Name)

		switch req.Action {
		case "sign_up":
			signUp(w, r, users, lg, req)
		case "sign_in":
			signIn(w, r, users, lg, req)
		case "list_users":
			listUsers(w, r, users)
		case "approve_user":
			approveUser(w, r, users, lg, req)
		case "delete_user":
			deleteUser(w, r, users, lg, req)
		default:
			respondErr(w, http.StatusBadRequest, "Unknown action")
		}
	}
}

type signUpFields struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=4"`
	Role     string `validate:"required,oneof=admin ojt"`
}

// signUpMessage maps the first failed validation back to the user-facing
// message for that field.
func signUpMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid sign-up details."
	}
	switch verrs[0].Field() {
	case "Name":
		return "Name is required."
	case "Email":
		return "A valid email is required."
	case "Password":
		return "Password must be at least 4 characters."
	case "Role":
		return "Please select a valid role."
	}
	return "Invalid sign-up details."
}

func signUp(w http.ResponseWriter, r *http.Request, users *store.UserStore, lg *zap.SugaredLogger, req authRequest) {
	fields := signUpFields{Name: req.Name, Email: req.Email, Password: req.Password, Role: req.Role}
	if err := validate.Struct(fields); err != nil {
		respondErr(w, http.StatusBadRequest, signUpMessage(err))
		return
	}

	u := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if req.Role == models.RoleOJT {
		if req.OJTStartTime == "" || req.OJTEndTime == "" {
			respondErr(w, http.StatusBadRequest, "Please enter OJT start and end time.")
			return
		}
		if req.OJTHoursPerDay < 1 || req.OJTHoursPerDay > 24 {
			respondErr(w, http.StatusBadRequest, "Hours per day must be between 1 and 24.")
			return
		}
		if req.OJTTotalHoursRequired < 1 {
			respondErr(w, http.StatusBadRequest, "Total hours needed must be at least 1 hour.")
			return
		}
		u.OJTStartTime = req.OJTStartTime
		u.OJTEndTime = req.OJTEndTime
		u.OJTHoursPerDay = req.OJTHoursPerDay
		u.OJTTotalHoursRequired = req.OJTTotalHoursRequired
	}

	existing, err := users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		lg.Errorw("sign_up lookup failed", "error", err)
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if existing != nil {
		respondErr(w, http.StatusBadRequest, "An account with this email already exists.")
		return
	}

	// The very first admin account is auto-approved so the system can be
	// bootstrapped; everyone else starts pending.
	total, err := users.Count(r.Context())
	if err != nil {
		lg.Errorw("sign_up count failed", "error", err)
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	u.Approved = total == 0 && req.Role == models.RoleAdmin

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	u.PasswordHash = hash

	if err := users.Create(r.Context(), &u); err != nil {
		lg.Errorw("sign_up insert failed", "error", err)
		respondErr(w, http.StatusBadRequest, "Could not create the account.")
		return
	}
	lg.Infow("user signed up", "email", u.Email, "role", u.Role, "approved", u.Approved)

	if !u.Approved {
		respondOK(w, map[string]any{
			"user":    nil,
			"message": "Your account is pending approval by an admin.",
		})
		return
	}
	respondOK(w, map[string]any{"user": userPayload(u)})
}

func signIn(w http.ResponseWriter, r *http.Request, users *store.UserStore, lg *zap.SugaredLogger, req authRequest) {
	if req.Email == "" || req.Password == "" {
		respondErr(w, http.StatusBadRequest, "Email and password are required.")
		return
	}
	u, err := users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		lg.Errorw("sign_in lookup failed", "error", err)
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if u == nil {
		respondErr(w, http.StatusBadRequest, "Email not found.")
		return
	}
	if err := auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
		respondErr(w, http.StatusBadRequest, "Incorrect password.")
		return
	}
	if !u.Approved {
		respondErr(w, http.StatusForbidden, "Your account is pending approval by an admin.")
		return
	}
	token, err := auth.Sign(u.ID, u.Name, u.Email, u.Role)
	if err != nil {
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	respondOK(w, map[string]any{"user": userPayload(*u), "token": token})
}

func listUsers(w http.ResponseWriter, r *http.Request, users *store.UserStore) {
	if !auth.FromContext(r.Context()).IsAdmin() {
		respondErr(w, http.StatusForbidden, "Only admins can list users.")
		return
	}
	all, err := users.List(r.Context())
	if err != nil {
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	out := make([]map[string]any, 0, len(all))
	for _, u := range all {
		out = append(out, map[string]any{
			"name":     u.Name,
			"email":    u.Email,
			"role":     u.Role,
			"approved": u.Approved,
		})
	}
	respondOK(w, map[string]any{"users": out})
}

func approveUser(w http.ResponseWriter, r *http.Request, users *store.UserStore, lg *zap.SugaredLogger, req authRequest) {
	claims := auth.FromContext(r.Context())
	if !claims.CanApprove() {
		respondErr(w, http.StatusForbidden, "Only admins can approve users.")
		return
	}
	if req.Email == "" {
		respondErr(w, http.StatusBadRequest, "Email is required.")
		return
	}
	found, err := users.Approve(r.Context(), req.Email)
	if err != nil {
		lg.Errorw("approve_user failed", "email", req.Email, "error", err)
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if !found {
		respondErr(w, http.StatusNotFound, "User not found.")
		return
	}
	respondOK(w, nil)
}

func deleteUser(w http.ResponseWriter, r *http.Request, users *store.UserStore, lg *zap.SugaredLogger, req authRequest) {
	claims := auth.FromContext(r.Context())
	if !claims.IsAdmin() {
		respondErr(w, http.StatusForbidden, "Only admins can delete users.")
		return
	}
	if req.Email == "" {
		respondErr(w, http.StatusBadRequest, "Email is required.")
		return
	}
	if !claims.CanDelete(req.Email) {
		respondErr(w, http.StatusForbidden, "You cannot delete your own account.")
		return
	}
	found, err := users.Delete(r.Context(), req.Email)
	if err != nil {
		lg.Errorw("delete_user failed", "email", req.Email, "error", err)
		respondErr(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if !found {
		respondErr(w, http.StatusNotFound, "User not found.")
		return
	}
	lg.Infow("user deleted", "email", req.Email, "by", claims.Email)
	respondOK(w, nil)
}

func userPayload(u models.User) map[string]any {
	p := map[string]any{
		"id":       u.ID,
		"name":     u.Name,
		"email":    u.Email,
		"role":     u.Role,
		"approved": u.Approved,
	}
	if u.Role == models.RoleOJT {
		p["ojtStartTime"] = u.OJTStartTime
		p["ojtEndTime"] = u.OJTEndTime
		p["ojtHoursPerDay"] = u.OJTHoursPerDay
		p["ojtTotalHoursRequired"] = u.OJTTotalHoursRequired
	}
	return p
}

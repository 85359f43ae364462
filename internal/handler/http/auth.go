package http

import (
	"encoding/json"
	"net/http"

	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/internal/utils"
	"github.com/bkdev/go-blog-api/models"
)

// root is the unauthenticated banner endpoint.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("Go Blog API"))
}

// register creates a new user account from the posted credentials.
//
// On success it sets the freshly issued session token in the x-auth response
// header and returns the created user. The password never appears in the
// response; the User JSON tags exclude the stored hash.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, token, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		http.Error(w, "user registration failed", statusFromError(err))
		return
	}

	w.Header().Set(authHeader, token.String())
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

// login authenticates the posted credentials and opens a new session.
//
// On success it sets the new session token in the x-auth response header and
// returns the user. Unknown emails and wrong passwords both answer 400
// without a token header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Msg("user login failed")
		http.Error(w, "user login failed", statusFromError(err))
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set(authHeader, token.String())
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// me returns the authenticated requester's own user record.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// logout revokes exactly the session token that authenticated this request.
// Other sessions of the same user stay valid.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, okUser := utils.GetUserFromContext(ctx)
	token, okToken := utils.GetTokenFromContext(ctx)
	if !okUser || !okToken {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, user.UserID, token); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("logout failed")
		http.Error(w, "logout failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// listUsers returns every registered account wrapped in a {users} envelope.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AuthService.Users(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		http.Error(w, "user listing failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

package http

import (
	"errors"
	"net/http"

	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/service"
	"github.com/avdonin/minifeed/internal/store"
	"github.com/avdonin/minifeed/internal/utils"
	"github.com/avdonin/minifeed/models"
)

// msgBadCredentials is shown verbatim by the sign-in form.
const msgBadCredentials = "We could not find a user with that id/password combination"

func (h *Handler) checkDup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.FormValue("username")
	if username == "" {
		log.Error().Msg("no username provided for duplicate check")
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    "username is required",
		}, http.StatusBadRequest)
		return
	}

	exists, err := h.services.AuthService.CheckUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("duplicate check failed")
		status := statusFromError(err)
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    http.StatusText(status),
		}, status)
		return
	}

	utils.WriteJSON(w, models.CheckDupResponse{
		Result: models.ResultSuccess,
		Exists: exists,
	}, http.StatusOK)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.FormValue("username")
	password := r.FormValue("password")

	registeredUser, err := h.services.AuthService.Register(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.Response{
				Result: models.ResultFail,
				Msg:    "invalid data provided",
			}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Str("username", username).Msg("username already taken")
			utils.WriteJSON(w, models.Response{
				Result: models.ResultFail,
				Msg:    "username already taken",
			}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.Response{
				Result: models.ResultFail,
				Msg:    http.StatusText(http.StatusInternalServerError),
			}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, models.Response{Result: models.ResultSuccess}, http.StatusOK)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.FormValue("username")
	password := r.FormValue("password")

	foundUser, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.Response{
				Result: models.ResultFail,
				Msg:    "invalid data provided",
			}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("username", username).Msg("no user was found/wrong password")
			utils.WriteJSON(w, models.Response{
				Result: models.ResultFail,
				Msg:    msgBadCredentials,
			}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.Response{
				Result: models.ResultFail,
				Msg:    http.StatusText(http.StatusInternalServerError),
			}, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    http.StatusText(http.StatusInternalServerError),
		}, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("username", foundUser.Username).Msg("user successfully logged in")

	cookie := &http.Cookie{
		Name:     h.tokenCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	http.SetCookie(w, cookie)

	utils.WriteJSON(w, models.SignInResponse{
		Result: models.ResultSuccess,
		Token:  token.SignedString,
	}, http.StatusOK)
}

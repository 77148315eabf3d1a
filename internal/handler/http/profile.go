package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/store"
	"github.com/avdonin/minifeed/internal/utils"
	"github.com/avdonin/minifeed/models"
)

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in request context")
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    http.StatusText(http.StatusUnauthorized),
		}, http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		log.Err(err).Msg("invalid profile form")
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    "invalid form data",
		}, http.StatusBadRequest)
		return
	}

	update := models.ProfileUpdateRequest{
		Username:    username,
		ProfileName: r.FormValue("name"),
		ProfileInfo: r.FormValue("about"),
	}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		update.Image = file
		update.ImageFilename = header.Filename
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// profile text update without a new picture
	default:
		log.Err(err).Msg("reading profile image failed")
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    "invalid form data",
		}, http.StatusBadRequest)
		return
	}

	if err := h.services.ProfileService.Update(ctx, update); err != nil {
		log.Err(err).Str("username", username).Msg("profile update failed")
		status := statusFromError(err)
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    http.StatusText(status),
		}, status)
		return
	}

	utils.WriteJSON(w, models.Response{
		Result: models.ResultSuccess,
		Msg:    "Your profile has been updated",
	}, http.StatusOK)
}

func (h *Handler) userPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	viewer, _ := utils.GetUsernameFromContext(ctx)
	username := chi.URLParam(r, "username")

	userInfo, err := h.services.ProfileService.Get(ctx, username)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("username", username).Msg("profile lookup failed")
		status := statusFromError(err)
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    http.StatusText(status),
		}, status)
		return
	}

	// An unknown username yields an empty profile rather than an error; the
	// page template renders the empty fields.
	utils.WriteJSON(w, models.UserPageResponse{
		Result:   models.ResultSuccess,
		UserInfo: userInfo,
		Status:   viewer == username,
	}, http.StatusOK)
}

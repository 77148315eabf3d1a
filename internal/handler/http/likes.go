package http

import (
	"net/http"
	"strconv"

	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/utils"
	"github.com/avdonin/minifeed/models"
)

func (h *Handler) updateLike(w http.ResponseWriter, r *http.Request) {
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

	postID, err := strconv.ParseInt(r.FormValue("post_id"), 10, 64)
	if err != nil {
		log.Err(err).Str("post_id", r.FormValue("post_id")).Msg("invalid post id")
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    "invalid post id",
		}, http.StatusBadRequest)
		return
	}

	likeType := models.LikeType(r.FormValue("type"))
	action := models.LikeAction(r.FormValue("action"))

	count, err := h.services.ReactionService.Toggle(ctx, postID, username, likeType, action)
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("like update failed")
		status := statusFromError(err)
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    http.StatusText(status),
		}, status)
		return
	}

	utils.WriteJSON(w, models.LikeResponse{
		Result: models.ResultSuccess,
		Msg:    "Updated!",
		Count:  count,
	}, http.StatusOK)
}

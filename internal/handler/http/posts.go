package http

import (
	"net/http"

	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/internal/utils"
	"github.com/avdonin/minifeed/models"
)

func (h *Handler) posting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in request context")
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    http.StatusText(http.StatusUnauthorized),
		}, http.StatusUnauthorized)
		return
	}

	comment := r.FormValue("comment")
	date := r.FormValue("date")

	post, err := h.services.PostService.Create(ctx, author, comment, date)
	if err != nil {
		log.Err(err).Str("author", author).Msg("post creation failed")
		status := statusFromError(err)
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    http.StatusText(status),
		}, status)
		return
	}

	log.Debug().Int64("post_id", post.PostID).Str("author", author).Msg("post created")

	utils.WriteJSON(w, models.Response{
		Result: models.ResultSuccess,
		Msg:    "Posting Successfull",
	}, http.StatusOK)
}

func (h *Handler) getPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	viewer, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in request context")
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    http.StatusText(http.StatusUnauthorized),
		}, http.StatusUnauthorized)
		return
	}

	filterUsername := r.URL.Query().Get("username")

	posts, err := h.services.PostService.List(ctx, viewer, filterUsername)
	if err != nil {
		log.Err(err).Str("filter", filterUsername).Msg("post listing failed")
		status := statusFromError(err)
		utils.WriteJSON(w, models.Response{
			Result: models.ResultFail,
			Msg:    http.StatusText(status),
		}, status)
		return
	}

	utils.WriteJSON(w, models.PostsResponse{
		Result: models.ResultSuccess,
		Msg:    "Successfully fetched all posts",
		Posts:  posts,
	}, http.StatusOK)
}

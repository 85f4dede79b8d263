// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package posts

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/organizations/{org_id}/teams/{team_id}/posts", a.list)
	mux.Post("/organizations/{org_id}/teams/{team_id}/posts", a.create)
	mux.Get("/posts/{post_id}", a.get)
	mux.Patch("/posts/{post_id}", a.update)
	mux.Delete("/posts/{post_id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	posts, err := a.service.ListPosts(r.Context(), chi.URLParam(r, "org_id"), chi.URLParam(r, "team_id"))
	if err != nil {
		a.logger.Errorf("failed to list posts: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, posts, "List of posts")
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	req := new(CreatePostRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	post, err := a.service.CreatePost(r.Context(), chi.URLParam(r, "org_id"), chi.URLParam(r, "team_id"), req)
	if err != nil {
		a.logger.Errorf("failed to create post: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, post, "Post created")
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	post, err := a.service.GetPost(r.Context(), chi.URLParam(r, "post_id"))
	if err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, post, "Post detail")
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	req := new(UpdatePostRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	post, err := a.service.UpdatePost(r.Context(), chi.URLParam(r, "post_id"), req)
	if err != nil {
		a.logger.Errorf("failed to update post: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, post, "Post updated")
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeletePost(r.Context(), chi.URLParam(r, "post_id")); err != nil {
		a.logger.Errorf("failed to delete post: %v", err)
		httptypes.WriteErrorFromErr(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil, "Post deleted")
}

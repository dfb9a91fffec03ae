package handler

import (
	"net/http"
	"time"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	mw "github.com/sparkboard-dev/sparkboard/internal/middleware"
	"github.com/sparkboard-dev/sparkboard/internal/utils"
)

const default_page int = 1

type shareRequest struct {
	SparkId *int64 `validate:"required" json:"sparkId"`
	Caption string `json:"caption"`
}

type attachmentResponse struct {
	Id          domain.AttachmentId `json:"id"`
	SparkId     *domain.SparkId     `json:"sparkId,omitempty"`
	Title       string              `json:"title,omitempty"`
	Subtitle    string              `json:"subtitle,omitempty"`
	ImageUrl    string              `json:"imageUrl,omitempty"`
	ExternalUrl string              `json:"externalUrl,omitempty"`
	AudioUrl    string              `json:"audioUrl,omitempty"`
	MediaKind   domain.ContentKind  `json:"mediaKind"`

	// Note bodies are markdown; the feed shows them pre-rendered.
	RenderedBody string `json:"renderedBody,omitempty"`
}

type postResponse struct {
	Id          domain.PostId        `json:"id"`
	UserId      domain.UserId        `json:"userId"`
	Kind        domain.PostKind      `json:"kind"`
	Caption     string               `json:"caption,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	Author      domain.Profile       `json:"author,omitempty"`
	Attachments []attachmentResponse `json:"attachments"`
}

func (h *Handler) toPostResponse(post *domain.CommunityPost) postResponse {
	attachments := make([]attachmentResponse, len(post.Attachments))
	for i, att := range post.Attachments {
		attachments[i] = attachmentResponse{
			Id:          att.Id,
			SparkId:     att.SparkId,
			Title:       att.Title,
			Subtitle:    att.Subtitle,
			ImageUrl:    att.ImageUrl,
			ExternalUrl: att.ExternalUrl,
			AudioUrl:    att.AudioUrl,
			MediaKind:   att.MediaKind,
		}
		if att.MediaKind == domain.KindNote {
			attachments[i].RenderedBody = h.markdown.RenderNote(att.Subtitle)
		}
	}
	return postResponse{
		Id:          post.Id,
		UserId:      post.UserId,
		Kind:        post.Kind,
		Caption:     post.Caption,
		CreatedAt:   post.CreatedAt,
		Author:      post.Author,
		Attachments: attachments,
	}
}

func (h *Handler) SharePost(w http.ResponseWriter, r *http.Request) {
	var body shareRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.community.Share(mw.GetUserFromContext(r), *body.SparkId, body.Caption)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, h.toPostResponse(post))
}

func (h *Handler) UnsharePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "post_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.community.Unshare(mw.GetUserFromContext(r), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	pageQuery := r.URL.Query().Get("page")
	page := default_page
	var err error
	if pageQuery != "" {
		if page, err = parseIntParam(pageQuery, "page"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	posts, err := h.community.Feed(page)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]postResponse, len(posts))
	for i := range posts {
		response[i] = h.toPostResponse(&posts[i])
	}
	writeJSON(w, map[string]interface{}{"posts": response, "page": page})
}

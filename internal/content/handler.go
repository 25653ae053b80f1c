package content

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/allandeluna/brainstash/internal/auth"
	"github.com/allandeluna/brainstash/internal/pkg/message"
	"github.com/allandeluna/brainstash/internal/pkg/web"
)

// ContentRepository is the store surface the content endpoints need.
type ContentRepository interface {
	ListByAuthor(ctx context.Context, authorID string) ([]Content, error)
	Create(ctx context.Context, params CreateContentParams) (Content, error)
	Delete(ctx context.Context, id, authorID string) error
}

type Handler struct {
	repo ContentRepository
}

func NewHandler(repo ContentRepository) *Handler {
	return &Handler{repo: repo}
}

type ContentData struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"authorId"`
	ContentLink string    `json:"contentLink"`
	ContentType string    `json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListContentsResponse struct {
	web.Envelope
	Contents []ContentData `json:"contents"`
}

type ContentResponse struct {
	web.Envelope
	Content *ContentData `json:"content"`
}

func newContentData(c Content) ContentData {
	return ContentData{
		ID:          c.ID,
		AuthorID:    c.AuthorID,
		ContentLink: c.Content,
		ContentType: c.ContentType,
		CreatedAt:   c.CreatedAt,
	}
}

func (h *Handler) ListContents(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	contents, err := h.repo.ListByAuthor(r.Context(), userID)
	if err != nil {
		web.RespondBadRequest(w, err, message.ErrFetchContents, nil)
		return
	}

	data := make([]ContentData, 0, len(contents))
	for _, c := range contents {
		data = append(data, newContentData(c))
	}

	web.Respond(w, http.StatusOK, &ListContentsResponse{
		Envelope: web.NewEnvelope(message.ContentsFetched),
		Contents: data,
	})
}

type CreateContentRequest struct {
	ContentLink string `json:"contentLink,omitempty" validate:"required"`
	ContentType string `json:"contentType,omitempty"`
}

func (r CreateContentRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("contentLink", r.ContentLink),
		slog.String("contentType", r.ContentType),
	)
}

func (h *Handler) CreateContent(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[CreateContentRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.ProvideContent, nil)
		return
	}

	c, err := h.repo.Create(r.Context(), CreateContentParams{
		AuthorID:    userID,
		Content:     req.ContentLink,
		ContentType: req.ContentType,
	})
	if err != nil {
		web.RespondBadRequest(w, err, message.ErrSavingContent, nil)
		return
	}

	data := newContentData(c)
	web.Respond(w, http.StatusCreated, &ContentResponse{
		Envelope: web.NewEnvelope(message.ContentCreated),
		Content:  &data,
	})
}

func (h *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		web.RespondBadRequest(w, errors.New("missing content id"), message.ErrDeleteContent, nil)
		return
	}

	// an unknown id and someone else's content fail the same way
	if err := h.repo.Delete(r.Context(), id, userID); err != nil {
		web.RespondBadRequest(w, err, message.ErrDeleteContent, nil)
		return
	}

	web.RespondMessage(w, http.StatusOK, message.ContentDeleted)
}

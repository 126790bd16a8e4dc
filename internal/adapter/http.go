package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-coach-notes/internal/config"
	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/utils"
	"github.com/MKhiriev/go-coach-notes/models"
	"github.com/go-resty/resty/v2"
)

type httpNotesClient struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPNotesClient constructs an HTTP/REST implementation of [NotesClient].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, request
// timeout and bearer token.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPNotesClient(cfg config.ClientAdapter, logger *logger.Logger) (NotesClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	c := &httpNotesClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [NotesClient]. The token is whitespace-trimmed.
func (h *httpNotesClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [NotesClient].
func (h *httpNotesClient) Token() string {
	return h.token
}

func (h *httpNotesClient) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.NoteView, error) {
	var view models.NoteView

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&view).
		Post("/api/notes")
	if err != nil {
		return models.NoteView{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteView{}, err
	}

	return view, nil
}

func (h *httpNotesClient) GetNote(ctx context.Context, noteID string) (models.NoteView, error) {
	var view models.NoteView

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		SetResult(&view).
		Get("/api/notes/{id}")
	if err != nil {
		return models.NoteView{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteView{}, err
	}

	return view, nil
}

func (h *httpNotesClient) UpdateNote(ctx context.Context, req models.UpdateNoteRequest) (models.NoteView, error) {
	var view models.NoteView

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", req.NoteID).
		SetBody(req).
		SetResult(&view).
		Patch("/api/notes/{id}")
	if err != nil {
		return models.NoteView{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteView{}, err
	}

	return view, nil
}

func (h *httpNotesClient) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", noteID).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNotesClient) ShareNote(ctx context.Context, req models.ShareRequest) (models.SharingResponse, error) {
	return h.changeShares(ctx, "/api/notes/{id}/share", req)
}

func (h *httpNotesClient) UnshareNote(ctx context.Context, req models.ShareRequest) (models.SharingResponse, error) {
	return h.changeShares(ctx, "/api/notes/{id}/unshare", req)
}

func (h *httpNotesClient) changeShares(ctx context.Context, path string, req models.ShareRequest) (models.SharingResponse, error) {
	var sharing models.SharingResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", req.NoteID).
		SetBody(req).
		SetResult(&sharing).
		Post(path)
	if err != nil {
		return models.SharingResponse{}, fmt.Errorf("sharing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SharingResponse{}, err
	}

	return sharing, nil
}

func (h *httpNotesClient) SearchNotes(ctx context.Context, filters models.SearchFilters) (models.SearchResult, error) {
	var result models.SearchResult

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(searchQuery(filters)).
		SetResult(&result).
		Get("/api/notes/search")
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResult{}, err
	}

	return result, nil
}

func (h *httpNotesClient) Suggest(ctx context.Context, req models.SuggestRequest) ([]string, error) {
	var suggestions []string

	r := h.authedRequest(ctx).SetQueryParam("prefix", req.Prefix)
	if req.Limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(req.Limit))
	}

	resp, err := r.SetResult(&suggestions).Get("/api/notes/suggest")
	if err != nil {
		return nil, fmt.Errorf("suggest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return suggestions, nil
}

func (h *httpNotesClient) PopularTags(ctx context.Context, req models.PopularTagsRequest) ([]models.TagCount, error) {
	var tags []models.TagCount

	r := h.authedRequest(ctx)
	if req.Limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(req.Limit))
	}

	resp, err := r.SetResult(&tags).Get("/api/notes/tags/popular")
	if err != nil {
		return nil, fmt.Errorf("popular tags request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tags, nil
}

func (h *httpNotesClient) ListSessionNotes(ctx context.Context, sessionID string) ([]models.NoteView, error) {
	var views []models.NoteView

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", sessionID).
		SetResult(&views).
		Get("/api/sessions/{id}/notes")
	if err != nil {
		return nil, fmt.Errorf("list session notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return views, nil
}

func (h *httpNotesClient) AuditTrail(ctx context.Context, noteID string, n int) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry

	r := h.authedRequest(ctx).SetPathParam("id", noteID)
	if n > 0 {
		r.SetQueryParam("n", strconv.Itoa(n))
	}

	resp, err := r.SetResult(&entries).Get("/api/notes/{id}/audit")
	if err != nil {
		return nil, fmt.Errorf("audit trail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpNotesClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpNotesClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

// searchQuery encodes filters as the query string of GET /api/notes/search.
// Zero-valued filters are omitted.
func searchQuery(filters models.SearchFilters) url.Values {
	values := url.Values{}

	if filters.Query != "" {
		values.Set("query", filters.Query)
	}
	for _, tag := range filters.Tags {
		values.Add("tags", tag)
	}
	for _, level := range filters.AccessLevels {
		values.Add("access_levels", string(level))
	}
	if filters.From != nil {
		values.Set("from", filters.From.UTC().Format(time.RFC3339Nano))
	}
	if filters.To != nil {
		values.Set("to", filters.To.UTC().Format(time.RFC3339Nano))
	}
	if filters.CoachID != "" {
		values.Set("coach_id", filters.CoachID)
	}
	if filters.SessionID != "" {
		values.Set("session_id", filters.SessionID)
	}
	if filters.SortBy != "" {
		values.Set("sort_by", string(filters.SortBy))
	}
	if filters.SortOrder != "" {
		values.Set("sort_order", string(filters.SortOrder))
	}
	if filters.Page > 0 {
		values.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.Limit > 0 {
		values.Set("limit", strconv.Itoa(filters.Limit))
	}

	return values
}

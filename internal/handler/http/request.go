package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/utils"
	"github.com/MKhiriev/go-coach-notes/models"
)

func requestActor(r *http.Request) (models.Actor, error) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		return models.Actor{}, ErrNoActorInContext
	}
	return actor, nil
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// writeServiceError maps err to its status and writes it as a JSON error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, errorMessage(err, status), status)
}

func writeResult(w http.ResponseWriter, r *http.Request, data any, status int, fn string) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing response")
	}
}

func queryInt(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidQueryParam, key, err)
	}
	return n, nil
}

func queryTime(values url.Values, key string) (*time.Time, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidQueryParam, key, err)
	}
	return &t, nil
}

// searchFilters decodes the query string of GET /api/notes/search.
func searchFilters(values url.Values) (models.SearchFilters, error) {
	filters := models.SearchFilters{
		Query:     values.Get("query"),
		Tags:      values["tags"],
		CoachID:   values.Get("coach_id"),
		SessionID: values.Get("session_id"),
		SortBy:    models.SortField(values.Get("sort_by")),
		SortOrder: models.SortOrder(values.Get("sort_order")),
	}
	for _, level := range values["access_levels"] {
		filters.AccessLevels = append(filters.AccessLevels, models.AccessLevel(level))
	}

	var errs []error
	var err error
	if filters.From, err = queryTime(values, "from"); err != nil {
		errs = append(errs, err)
	}
	if filters.To, err = queryTime(values, "to"); err != nil {
		errs = append(errs, err)
	}
	if filters.Page, err = queryInt(values, "page"); err != nil {
		errs = append(errs, err)
	}
	if filters.Limit, err = queryInt(values, "limit"); err != nil {
		errs = append(errs, err)
	}

	return filters, errors.Join(errs...)
}

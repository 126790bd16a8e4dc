package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-coach-notes/internal/adapter"
	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/models"
)

type App struct {
	notes  adapter.NotesClient
	out    io.Writer
	logger *logger.Logger
}

func NewApp(notes adapter.NotesClient, out io.Writer, logger *logger.Logger) *App {
	return &App{notes: notes, out: out, logger: logger}
}

type command func(ctx context.Context, args []string) (any, error)

func (a *App) commands() map[string]command {
	return map[string]command{
		"version": a.version,
		"create":  a.create,
		"get":     a.get,
		"update":  a.update,
		"delete":  a.delete,
		"share":   a.share,
		"unshare": a.unshare,
		"search":  a.search,
		"suggest": a.suggest,
		"tags":    a.popularTags,
		"session": a.session,
		"audit":   a.audit,
	}
}

// Usage lists the supported subcommands.
func Usage() string {
	return `commands:
  version
  create  -session ID -title T [-content C] [-tags a,b] [-attachments x,y] [-encrypted] [-access LEVEL] [-allow-sharing] [-share-with u1,u2]
  get     NOTE_ID
  update  NOTE_ID [-title T] [-content C] [-tags a,b] [-attachments x,y] [-encrypted] [-access LEVEL] [-allow-sharing]
  delete  NOTE_ID
  share   NOTE_ID -users u1,u2 [-reason R]
  unshare NOTE_ID -users u1,u2 [-reason R]
  search  [-query Q] [-tags a,b] [-access l1,l2] [-from RFC3339] [-to RFC3339] [-coach ID] [-session ID] [-sort date|title|lastAccess] [-order asc|desc] [-page N] [-limit N]
  suggest -prefix P [-limit N]
  tags    [-limit N]
  session SESSION_ID
  audit   NOTE_ID [-n N]`
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands()[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	result, err := cmd(ctx, args[1:])
	if err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Str("command", args[0]).Msg("command failed")
		return err
	}

	return a.print(result)
}

func (a *App) print(result any) error {
	if s, ok := result.(string); ok {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func (a *App) version(ctx context.Context, _ []string) (any, error) {
	return a.notes.Version(ctx)
}

func (a *App) create(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("create")
	sessionID := fs.String("session", "", "session id")
	clientID := fs.String("client", "", "client id, defaults to the session's client")
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note body")
	tags := fs.String("tags", "", "comma separated tags")
	attachments := fs.String("attachments", "", "comma separated attachment references")
	encrypted := fs.Bool("encrypted", false, "encrypt the body at rest")
	access := fs.String("access", "", "access level: private, shared or team")
	allowSharing := fs.Bool("allow-sharing", false, "allow sharing the note")
	shareWith := fs.String("share-with", "", "comma separated user ids to share with")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a.notes.CreateNote(ctx, models.CreateNoteRequest{
		SessionID:   *sessionID,
		ClientID:    *clientID,
		Title:       *title,
		Content:     *content,
		Tags:        splitList(*tags),
		Attachments: splitList(*attachments),
		IsEncrypted: *encrypted,
		Privacy: models.Privacy{
			AccessLevel:  models.AccessLevel(*access),
			AllowSharing: *allowSharing,
			SharedWith:   splitList(*shareWith),
		},
	})
}

func (a *App) get(ctx context.Context, args []string) (any, error) {
	noteID, _, err := splitNoteID(args)
	if err != nil {
		return nil, err
	}
	return a.notes.GetNote(ctx, noteID)
}

func (a *App) update(ctx context.Context, args []string) (any, error) {
	noteID, rest, err := splitNoteID(args)
	if err != nil {
		return nil, err
	}

	fs := newFlagSet("update")
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new body")
	tags := fs.String("tags", "", "comma separated tags")
	attachments := fs.String("attachments", "", "comma separated attachment references")
	encrypted := fs.Bool("encrypted", false, "encrypt the body at rest")
	access := fs.String("access", "", "access level")
	allowSharing := fs.Bool("allow-sharing", false, "allow sharing the note")
	if err = fs.Parse(rest); err != nil {
		return nil, err
	}

	req := models.UpdateNoteRequest{NoteID: noteID}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = title
		case "content":
			req.Content = content
		case "tags":
			list := splitList(*tags)
			req.Tags = &list
		case "attachments":
			list := splitList(*attachments)
			req.Attachments = &list
		case "encrypted":
			req.IsEncrypted = encrypted
		case "access":
			level := models.AccessLevel(*access)
			req.AccessLevel = &level
		case "allow-sharing":
			req.AllowSharing = allowSharing
		}
	})

	return a.notes.UpdateNote(ctx, req)
}

func (a *App) delete(ctx context.Context, args []string) (any, error) {
	noteID, _, err := splitNoteID(args)
	if err != nil {
		return nil, err
	}
	if err = a.notes.DeleteNote(ctx, noteID); err != nil {
		return nil, err
	}
	return "deleted " + noteID, nil
}

func (a *App) share(ctx context.Context, args []string) (any, error) {
	req, err := parseShareRequest("share", args)
	if err != nil {
		return nil, err
	}
	return a.notes.ShareNote(ctx, req)
}

func (a *App) unshare(ctx context.Context, args []string) (any, error) {
	req, err := parseShareRequest("unshare", args)
	if err != nil {
		return nil, err
	}
	return a.notes.UnshareNote(ctx, req)
}

func (a *App) search(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("search")
	query := fs.String("query", "", "free text query")
	tags := fs.String("tags", "", "comma separated tags, all must match")
	access := fs.String("access", "", "comma separated access levels")
	from := fs.String("from", "", "created at or after, RFC3339")
	to := fs.String("to", "", "created at or before, RFC3339")
	coachID := fs.String("coach", "", "coach id")
	sessionID := fs.String("session", "", "session id")
	sortBy := fs.String("sort", "", "date, title or lastAccess")
	order := fs.String("order", "", "asc or desc")
	page := fs.Int("page", 0, "page number, from 1")
	limit := fs.Int("limit", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	filters := models.SearchFilters{
		Query:     *query,
		Tags:      splitList(*tags),
		CoachID:   *coachID,
		SessionID: *sessionID,
		SortBy:    models.SortField(*sortBy),
		SortOrder: models.SortOrder(*order),
		Page:      *page,
		Limit:     *limit,
	}
	for _, level := range splitList(*access) {
		filters.AccessLevels = append(filters.AccessLevels, models.AccessLevel(level))
	}

	var err error
	if filters.From, err = parseTime(*from); err != nil {
		return nil, err
	}
	if filters.To, err = parseTime(*to); err != nil {
		return nil, err
	}

	return a.notes.SearchNotes(ctx, filters)
}

func (a *App) suggest(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("suggest")
	prefix := fs.String("prefix", "", "title or tag prefix")
	limit := fs.Int("limit", 0, "maximum number of suggestions")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return a.notes.Suggest(ctx, models.SuggestRequest{Prefix: *prefix, Limit: *limit})
}

func (a *App) popularTags(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("tags")
	limit := fs.Int("limit", 0, "maximum number of tags")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return a.notes.PopularTags(ctx, models.PopularTagsRequest{Limit: *limit})
}

func (a *App) session(ctx context.Context, args []string) (any, error) {
	sessionID, _, err := splitNoteID(args)
	if err != nil {
		return nil, err
	}
	return a.notes.ListSessionNotes(ctx, sessionID)
}

func (a *App) audit(ctx context.Context, args []string) (any, error) {
	noteID, rest, err := splitNoteID(args)
	if err != nil {
		return nil, err
	}

	fs := newFlagSet("audit")
	n := fs.Int("n", 0, "number of most recent entries")
	if err = fs.Parse(rest); err != nil {
		return nil, err
	}

	return a.notes.AuditTrail(ctx, noteID, *n)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseShareRequest(name string, args []string) (models.ShareRequest, error) {
	noteID, rest, err := splitNoteID(args)
	if err != nil {
		return models.ShareRequest{}, err
	}

	fs := newFlagSet(name)
	users := fs.String("users", "", "comma separated user ids")
	reason := fs.String("reason", "", "reason recorded in the audit trail")
	if err = fs.Parse(rest); err != nil {
		return models.ShareRequest{}, err
	}

	return models.ShareRequest{NoteID: noteID, UserIDs: splitList(*users), Reason: *reason}, nil
}

// splitNoteID takes the leading positional id off args.
func splitNoteID(args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, ErrMissingNoteID
	}
	return args[0], args[1:], nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", raw, err)
	}
	return &t, nil
}

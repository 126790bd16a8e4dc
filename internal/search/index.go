// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-coach-notes/internal/policy"
	"github.com/MKhiriev/go-coach-notes/models"
)

// Relevance weights of a query term hit.
const (
	titleWeight = 3
	tagWeight   = 2
	bodyWeight  = 1
)

// document is the indexed projection of a note. The note copy carries no
// body and no searchable content.
type document struct {
	note models.Note

	normalizedTitle string
	titleTokens     map[string]int
	tagTokens       map[string]int
	contentTokens   map[string]int
	tags            map[string]struct{}
}

type memoryIndex struct {
	mu   sync.RWMutex
	docs map[string]*document

	policy  policy.AccessPolicy
	content *ContentBuilder
}

// NewIndex constructs an empty [Index]. accessPolicy filters every read;
// content blinds query terms so they match encrypted bodies.
func NewIndex(accessPolicy policy.AccessPolicy, content *ContentBuilder) Index {
	return &memoryIndex{
		docs:    make(map[string]*document),
		policy:  accessPolicy,
		content: content,
	}
}

func newDocument(note models.Note) *document {
	doc := &document{
		normalizedTitle: Normalize(strings.TrimSpace(note.Title)),
		titleTokens:     countTokens(Tokenize(note.Title)),
		tagTokens:       make(map[string]int),
		contentTokens:   countTokens(strings.Fields(note.SearchableContent)),
		tags:            make(map[string]struct{}, len(note.Tags)),
	}

	for _, tag := range note.Tags {
		doc.tags[NormalizeTag(tag)] = struct{}{}
		for _, token := range Tokenize(tag) {
			doc.tagTokens[token]++
		}
	}

	doc.note = note.Clone()
	doc.note.Content = ""
	doc.note.SearchableContent = ""

	return doc
}

func countTokens(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}

func (i *memoryIndex) Index(note models.Note) {
	doc := newDocument(note)

	i.mu.Lock()
	defer i.mu.Unlock()

	i.docs[note.ID] = doc
}

func (i *memoryIndex) Remove(noteID string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.docs, noteID)
}

// Touch replaces the document instead of mutating it, readers may still
// hold the old one.
func (i *memoryIndex) Touch(noteID string, at time.Time) {
	i.mu.Lock()
	defer i.mu.Unlock()

	doc, ok := i.docs[noteID]
	if !ok {
		return
	}
	touched := *doc
	touched.note.LastAccessedAt = &at
	i.docs[noteID] = &touched
}

func (i *memoryIndex) Rebuild(notes []models.Note) {
	docs := make(map[string]*document, len(notes))
	for _, note := range notes {
		docs[note.ID] = newDocument(note)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	i.docs = docs
}

func (i *memoryIndex) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.docs)
}

// visible returns the documents actor may view. Callers hold the read lock.
func (i *memoryIndex) visible(actor models.Actor) []*document {
	docs := make([]*document, 0, len(i.docs))
	for _, doc := range i.docs {
		if i.policy.CanAccess(doc.note, actor, models.ActionView) {
			docs = append(docs, doc)
		}
	}
	return docs
}

type hit struct {
	doc   *document
	score int
}

func (i *memoryIndex) Query(actor models.Actor, filters models.SearchFilters) ([]string, int) {
	terms := uniqueTerms(Tokenize(filters.Query))
	blinded := make([]string, len(terms))
	for n, term := range terms {
		blinded[n] = i.content.Blind(term)
	}

	i.mu.RLock()
	hits := make([]hit, 0)
	for _, doc := range i.visible(actor) {
		if !matchesFilters(doc, filters) {
			continue
		}

		score := 0
		if len(terms) > 0 {
			score = doc.score(terms, blinded)
			if score == 0 {
				continue
			}
		}
		hits = append(hits, hit{doc: doc, score: score})
	}
	i.mu.RUnlock()

	if len(terms) > 0 {
		sort.Slice(hits, func(a, b int) bool {
			if hits[a].score != hits[b].score {
				return hits[a].score > hits[b].score
			}
			return newerFirst(hits[a].doc, hits[b].doc)
		})
	} else {
		sortHits(hits, filters.SortBy, filters.SortOrder)
	}

	total := len(hits)
	start, end := pageBounds(filters.Page, filters.Limit, total)

	ids := make([]string, 0, end-start)
	for _, h := range hits[start:end] {
		ids = append(ids, h.doc.note.ID)
	}

	return ids, total
}

// score sums, over the distinct query terms, title hits times three, tag hits
// times two and the body term frequency. Body tokens of encrypted notes only
// match through their blinded form.
func (d *document) score(terms, blinded []string) int {
	score := 0
	for n, term := range terms {
		title := d.titleTokens[term]
		tag := d.tagTokens[term]
		body := max(d.contentTokens[term]-title-tag, 0) + d.contentTokens[blinded[n]]

		score += titleWeight*title + tagWeight*tag + bodyWeight*body
	}
	return score
}

func uniqueTerms(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		terms = append(terms, token)
	}
	return terms
}

func matchesFilters(doc *document, filters models.SearchFilters) bool {
	note := doc.note

	if filters.CoachID != "" && note.CoachID != filters.CoachID {
		return false
	}
	if filters.SessionID != "" && note.SessionID != filters.SessionID {
		return false
	}
	if filters.From != nil && note.CreatedAt.Before(*filters.From) {
		return false
	}
	if filters.To != nil && note.CreatedAt.After(*filters.To) {
		return false
	}

	if len(filters.AccessLevels) > 0 {
		found := false
		for _, level := range filters.AccessLevels {
			if note.Privacy.AccessLevel == level {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, tag := range filters.Tags {
		if _, ok := doc.tags[NormalizeTag(tag)]; !ok {
			return false
		}
	}

	return true
}

func newerFirst(a, b *document) bool {
	if !a.note.CreatedAt.Equal(b.note.CreatedAt) {
		return a.note.CreatedAt.After(b.note.CreatedAt)
	}
	return a.note.ID > b.note.ID
}

// sortHits orders hits by field. Date descending is the default.
func sortHits(hits []hit, field models.SortField, order models.SortOrder) {
	asc := order == models.SortAsc

	compare := func(a, b *document) int {
		switch field {
		case models.SortByTitle:
			return strings.Compare(a.normalizedTitle, b.normalizedTitle)
		case models.SortByLastAccess:
			return compareTime(lastAccess(a), lastAccess(b))
		default:
			return compareTime(a.note.CreatedAt, b.note.CreatedAt)
		}
	}

	sort.SliceStable(hits, func(x, y int) bool {
		a, b := hits[x].doc, hits[y].doc
		c := compare(a, b)
		if c == 0 {
			c = compareTime(a.note.CreatedAt, b.note.CreatedAt)
		}
		if c == 0 {
			c = strings.Compare(a.note.ID, b.note.ID)
		}
		if asc {
			return c < 0
		}
		return c > 0
	})
}

func lastAccess(doc *document) time.Time {
	if doc.note.LastAccessedAt == nil {
		return time.Time{}
	}
	return *doc.note.LastAccessedAt
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// pageBounds returns the slice bounds of page (1-based) of size limit. A
// non-positive limit selects everything.
func pageBounds(page, limit, total int) (int, int) {
	if limit <= 0 {
		return 0, total
	}
	if page < 1 {
		page = 1
	}

	// compare in pages first so (page-1)*limit cannot overflow
	if page-1 >= (total+limit-1)/limit {
		return total, total
	}

	start := (page - 1) * limit
	return start, min(start+limit, total)
}

func (i *memoryIndex) Suggest(actor models.Actor, prefix string, limit int) []string {
	prefix = Normalize(strings.TrimSpace(prefix))

	type candidate struct {
		display string
		notes   int
	}
	candidates := make(map[string]*candidate)

	offer := func(key, display string, seen map[string]struct{}) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}

		c, ok := candidates[key]
		if !ok {
			candidates[key] = &candidate{display: display, notes: 1}
			return
		}
		c.notes++
		if display < c.display {
			c.display = display
		}
	}

	i.mu.RLock()
	for _, doc := range i.visible(actor) {
		seen := make(map[string]struct{})

		for tag := range doc.tags {
			if strings.HasPrefix(Normalize(tag), prefix) {
				offer(Normalize(tag), tag, seen)
			}
		}

		title := strings.TrimSpace(doc.note.Title)
		if title != "" && titleMatches(doc, prefix) {
			offer(doc.normalizedTitle, title, seen)
		}
	}
	i.mu.RUnlock()

	keys := make([]string, 0, len(candidates))
	for key := range candidates {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool {
		ca, cb := candidates[keys[a]], candidates[keys[b]]
		if ca.notes != cb.notes {
			return ca.notes > cb.notes
		}
		return keys[a] < keys[b]
	})

	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	out := make([]string, len(keys))
	for n, key := range keys {
		out[n] = candidates[key].display
	}
	return out
}

func titleMatches(doc *document, prefix string) bool {
	if strings.HasPrefix(doc.normalizedTitle, prefix) {
		return true
	}
	for token := range doc.titleTokens {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

func (i *memoryIndex) PopularTags(actor models.Actor, limit int) []models.TagCount {
	counts := make(map[string]*models.TagCount)

	i.mu.RLock()
	for _, doc := range i.visible(actor) {
		for tag := range doc.tags {
			c, ok := counts[tag]
			if !ok {
				c = &models.TagCount{Tag: tag}
				counts[tag] = c
			}
			c.Count++
			if doc.note.UpdatedAt.After(c.LastUsed) {
				c.LastUsed = doc.note.UpdatedAt
			}
		}
	}
	i.mu.RUnlock()

	out := make([]models.TagCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		if !out[a].LastUsed.Equal(out[b].LastUsed) {
			return out[a].LastUsed.After(out[b].LastUsed)
		}
		return out[a].Tag < out[b].Tag
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

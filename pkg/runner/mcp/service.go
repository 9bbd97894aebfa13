// Package mcp provides the Model Context Protocol server integration for emojisel.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/runner/categories"
	"tableflip.dev/emojisel/pkg/selection"
)

// Service coordinates catalogue and history operations shared by the MCP server.
type Service struct {
	History history.Store

	catalogue *emoji.Catalogue
	index     *emoji.Index
	engine    *selection.Engine
}

// ErrEmojiNotFound is returned when a name or code matches no current emoji.
var ErrEmojiNotFound = errors.New("emoji not found")

// EmojiDTO is a transport-friendly projection of a catalogue item.
type EmojiDTO struct {
	Emoji      string   `json:"emoji"`
	Unified    string   `json:"unified"`
	Name       string   `json:"name"`
	ShortNames []string `json:"shortNames"`
	Category   string   `json:"category"`
	SortOrder  int      `json:"sortOrder"`
	Count      int      `json:"count,omitempty"`
}

// NewService builds a service over the embedded catalogue.
func NewService(h history.Store) (*Service, error) {
	cat, err := emoji.Default()
	if err != nil {
		return nil, err
	}
	index := emoji.NewIndex(cat, emoji.Categories())
	return &Service{
		History:   h,
		catalogue: cat,
		index:     index,
		engine:    selection.NewEngine(index),
	}, nil
}

// Search returns up to limit emoji whose short names contain query. A
// limit of zero or less returns everything.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]EmojiDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query is required")
	}
	return s.list(selection.State{SearchQuery: query, ActiveCategory: emoji.All}, limit)
}

// ListCategory returns the items shown for a category, history included.
func (s *Service) ListCategory(ctx context.Context, key string, limit int) ([]EmojiDTO, error) {
	c, ok := emoji.ParseCategory(key)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", key)
	}
	st := selection.State{ActiveCategory: c}
	if c == emoji.History {
		records, err := s.recent(ctx)
		if err != nil {
			return nil, err
		}
		st.History = records
	}
	return s.list(st, limit)
}

// Categories summarises every category.
func (s *Service) Categories(ctx context.Context) []categories.Summary {
	return categories.Summaries(s.index, nil)
}

// Recent returns the recently used emoji, most recent first, with counts.
func (s *Service) Recent(ctx context.Context, limit int) ([]EmojiDTO, error) {
	records, err := s.recent(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EmojiDTO, 0, len(records))
	for _, r := range records {
		dto := toDTO(r.Item)
		dto.Count = r.Count
		out = append(out, dto)
	}
	return truncate(out, limit), nil
}

// Record marks the emoji named by a short name (with or without colons) or a
// unified code as used and returns the updated history.
func (s *Service) Record(ctx context.Context, name string) ([]EmojiDTO, error) {
	if s.History == nil {
		return nil, errors.New("history is not configured")
	}
	item, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.History.Record(ctx, item); err != nil {
		return nil, err
	}
	return s.Recent(ctx, 0)
}

// Resolve finds a current emoji by short name or unified code.
func (s *Service) Resolve(name string) (emoji.Item, error) {
	name = strings.TrimSpace(name)
	if item, ok := s.catalogue.LookupName(name); ok {
		return item, nil
	}
	if item, ok := s.catalogue.Lookup(name); ok {
		return item, nil
	}
	return emoji.Item{}, fmt.Errorf("%w: %q", ErrEmojiNotFound, name)
}

func (s *Service) recent(ctx context.Context) ([]history.Record, error) {
	if s.History == nil {
		return nil, errors.New("history is not configured")
	}
	return s.History.Load(ctx)
}

func (s *Service) list(st selection.State, limit int) ([]EmojiDTO, error) {
	st.Ready = true
	st.CategorizedItems = s.index.Grouped()
	st.ColumnSize = 1

	entries, err := s.engine.DisplayList(st, nil)
	if err != nil && !errors.Is(err, selection.ErrNotFound) {
		return nil, err
	}
	out := make([]EmojiDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e.Item))
	}
	return truncate(out, limit), nil
}

func toDTO(it emoji.Item) EmojiDTO {
	return EmojiDTO{
		Emoji:      it.Glyph(),
		Unified:    it.Unified,
		Name:       it.PrimaryName(),
		ShortNames: it.ShortNames,
		Category:   it.Category,
		SortOrder:  it.SortOrder,
	}
}

func truncate(list []EmojiDTO, limit int) []EmojiDTO {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}

package palette

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/hueforge/hueforge/internal/color"
)

// Kind discriminates indexed documents.
type Kind string

const (
	KindPalette Kind = "palette"
	KindTheme   Kind = "theme"
)

// Hit is one search result.
type Hit struct {
	Kind  Kind    `json:"kind"`
	Slug  string  `json:"slug"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// DefaultSearchLimit caps results when the caller passes no limit.
const DefaultSearchLimit = 20

// Index is an in-memory full-text index over a catalog snapshot.
//
// Thread safety: all methods are safe for concurrent use. Rebuild builds a
// fresh index off to the side and swaps it in under the write lock.
type Index struct {
	mu     sync.RWMutex
	index  bleve.Index
	logger *slog.Logger
}

// NewIndex builds an index over c.
func NewIndex(c *Catalog, logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	idx, err := buildIndex(c)
	if err != nil {
		return nil, err
	}
	return &Index{index: idx, logger: logger}, nil
}

// Rebuild replaces the indexed snapshot with c.
func (i *Index) Rebuild(c *Catalog) error {
	next, err := buildIndex(c)
	if err != nil {
		return err
	}

	i.mu.Lock()
	old := i.index
	i.index = next
	i.mu.Unlock()

	if err := old.Close(); err != nil {
		i.logger.Warn("failed to close previous palette index", "error", err)
	}
	count, _ := next.DocCount()
	i.logger.Debug("rebuilt palette index", "documents", count)
	return nil
}

// Close releases the index.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.index.Close()
}

// Search matches q against names (stemmed, typo tolerant, prefix) and, when
// q is a hex color, against member colors. An empty query matches
// everything.
func (i *Index) Search(ctx context.Context, q string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	req := bleve.NewSearchRequestOptions(buildQuery(q), limit, 0, false)
	req.Fields = []string{"kind", "slug", "name"}
	req.SortBy([]string{"-_score", "slug"})

	i.mu.RLock()
	res, err := i.index.SearchInContext(ctx, req)
	i.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hit := Hit{Score: h.Score}
		if k, ok := h.Fields["kind"].(string); ok {
			hit.Kind = Kind(k)
		}
		if s, ok := h.Fields["slug"].(string); ok {
			hit.Slug = s
		}
		if n, ok := h.Fields["name"].(string); ok {
			hit.Name = n
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func buildQuery(q string) query.Query {
	q = strings.TrimSpace(q)
	if q == "" {
		return bleve.NewMatchAllQuery()
	}

	var textQueries []query.Query

	nameMatch := bleve.NewMatchQuery(q)
	nameMatch.SetField("name")
	nameMatch.SetBoost(3.0)
	textQueries = append(textQueries, nameMatch)

	fuzzy := bleve.NewFuzzyQuery(strings.ToLower(q))
	fuzzy.SetFuzziness(1)
	fuzzy.SetField("name")
	fuzzy.SetBoost(0.8)
	textQueries = append(textQueries, fuzzy)

	if len(q) >= 2 {
		prefix := bleve.NewPrefixQuery(strings.ToLower(q))
		prefix.SetField("name")
		prefix.SetBoost(0.5)
		textQueries = append(textQueries, prefix)
	}

	if c, err := color.ParseHex(q); err == nil {
		term := bleve.NewTermQuery(c.Hex())
		term.SetField("colors")
		term.SetBoost(2.0)
		textQueries = append(textQueries, term)
	}

	return bleve.NewDisjunctionQuery(textQueries...)
}

func buildIndex(c *Catalog) (bleve.Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	batch := idx.NewBatch()
	for _, p := range c.Palettes() {
		if err := batch.Index(string(KindPalette)+":"+p.Slug, document(KindPalette, p.Slug, p.Name, p.Colors)); err != nil {
			idx.Close()
			return nil, fmt.Errorf("batch index %s: %w", p.Slug, err)
		}
	}
	for _, t := range c.Themes() {
		if err := batch.Index(string(KindTheme)+":"+t.Key, document(KindTheme, t.Key, t.Name, t.Colors)); err != nil {
			idx.Close()
			return nil, fmt.Errorf("batch index %s: %w", t.Key, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		idx.Close()
		return nil, fmt.Errorf("commit batch: %w", err)
	}
	return idx, nil
}

// document converts an entry to a map whose keys match the index mapping.
// Colors are stored as lowercase hex so term queries match regardless of
// how the catalog spelled them.
func document(kind Kind, slug, name string, colors []string) map[string]any {
	hexes := make([]string, 0, len(colors))
	for _, c := range colors {
		hexes = append(hexes, strings.ToLower(c))
	}
	return map[string]any{
		"kind":   string(kind),
		"slug":   slug,
		"name":   name,
		"colors": hexes,
	}
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// Name - primary search target, stemmed so "blue" finds "Blues"
	nameField := bleve.NewTextFieldMapping()
	nameField.Analyzer = en.AnalyzerName
	nameField.Store = true
	docMapping.AddFieldMappingsAt("name", nameField)

	slugField := bleve.NewTextFieldMapping()
	slugField.Analyzer = keyword.Name
	slugField.Store = true
	docMapping.AddFieldMappingsAt("slug", slugField)

	kindField := bleve.NewTextFieldMapping()
	kindField.Analyzer = keyword.Name
	kindField.Store = true
	docMapping.AddFieldMappingsAt("kind", kindField)

	colorsField := bleve.NewTextFieldMapping()
	colorsField.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("colors", colorsField)

	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

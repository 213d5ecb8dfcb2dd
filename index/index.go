// Package index stores extracted outlines in a bleve full-text index so
// headings can be searched across many documents.
//
// Every heading is one index document carrying its source file, the source's
// title, its level and page:
//
//	idx, err := index.Open("outlines.bleve", logger)
//	if err != nil {
//	    return err
//	}
//	defer idx.Close()
//
//	err = idx.Add("report.pdf", result)
//	hits, err := idx.Search(ctx, "revenue", index.SearchOptions{Limit: 5})
//
// Adding a source again replaces its previous headings.
package index

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/tsawler/pdfoutline/model"
)

// DefaultLimit is the number of hits returned when no limit is given.
const DefaultLimit = 10

// Index field names.
const (
	FieldSource = "source"
	FieldTitle  = "title"
	FieldLevel  = "level"
	FieldText   = "text"
	FieldPage   = "page"
)

// deleteBatchSize bounds how many stale headings are fetched per query
// when a source is replaced.
const deleteBatchSize = 1000

// headingDoc is the indexed form of a heading.
type headingDoc struct {
	Source string  `json:"source"`
	Title  string  `json:"title"`
	Level  string  `json:"level"`
	Text   string  `json:"text"`
	Page   float64 `json:"page"`
}

// Hit is a heading matched by a search.
type Hit struct {
	ID     string             `json:"id"`
	Source string             `json:"source"`
	Title  string             `json:"title"`
	Level  model.HeadingLevel `json:"level"`
	Text   string             `json:"text"`
	Page   int                `json:"page"`
	Score  float64            `json:"score"`
}

// SearchOptions narrows a search.
type SearchOptions struct {
	// Limit caps the number of hits; zero means DefaultLimit.
	Limit int
	// Level restricts hits to one heading level when set.
	Level model.HeadingLevel
	// Source restricts hits to one source document when set.
	Source string
}

// Index is a searchable store of outlines. It is safe for concurrent use.
type Index struct {
	index  bleve.Index
	logger *slog.Logger
}

// Open opens the index at path, creating it if it does not exist.
func Open(path string, logger *slog.Logger) (*Index, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		idx, err := bleve.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open index %s: %w", path, err)
		}
		return newIndex(idx, logger), nil
	case errors.Is(err, fs.ErrNotExist):
		idx, err := bleve.New(path, NewMapping())
		if err != nil {
			return nil, fmt.Errorf("create index %s: %w", path, err)
		}
		return newIndex(idx, logger), nil
	default:
		return nil, fmt.Errorf("stat index %s: %w", path, err)
	}
}

// NewMemOnly creates an index held entirely in memory.
func NewMemOnly(logger *slog.Logger) (*Index, error) {
	idx, err := bleve.NewMemOnly(NewMapping())
	if err != nil {
		return nil, fmt.Errorf("create in-memory index: %w", err)
	}
	return newIndex(idx, logger), nil
}

func newIndex(idx bleve.Index, logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Index{index: idx, logger: logger}
}

// NewMapping returns the index mapping for headings. Source and level are
// matched exactly; title and text are analyzed for full-text search.
func NewMapping() mapping.IndexMapping {
	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keyword.Name

	fullText := bleve.NewTextFieldMapping()
	fullText.Analyzer = standard.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt(FieldSource, exact)
	doc.AddFieldMappingsAt(FieldLevel, exact)
	doc.AddFieldMappingsAt(FieldTitle, fullText)
	doc.AddFieldMappingsAt(FieldText, fullText)
	doc.AddFieldMappingsAt(FieldPage, bleve.NewNumericFieldMapping())

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

// Close closes the index.
func (i *Index) Close() error {
	return i.index.Close()
}

// Count returns the number of indexed headings.
func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}

// Add indexes every heading of result under source, replacing any
// headings previously indexed for the same source.
func (i *Index) Add(source string, result *model.AnalysisResult) error {
	if err := i.Remove(source); err != nil {
		return err
	}
	if result == nil || len(result.Outline) == 0 {
		i.logger.Debug("index.add", "source", source, "headings", 0)
		return nil
	}

	batch := i.index.NewBatch()
	for n, h := range result.Outline {
		doc := headingDoc{
			Source: source,
			Title:  result.Title,
			Level:  h.Level.String(),
			Text:   h.Text,
			Page:   float64(h.Page),
		}
		if err := batch.Index(headingID(source, n), doc); err != nil {
			return fmt.Errorf("index heading %d of %s: %w", n, source, err)
		}
	}
	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("index %s: %w", source, err)
	}

	i.logger.Debug("index.add", "source", source, "headings", len(result.Outline))
	return nil
}

// Remove deletes every heading indexed for source.
func (i *Index) Remove(source string) error {
	for {
		q := bleve.NewTermQuery(source)
		q.SetField(FieldSource)
		req := bleve.NewSearchRequestOptions(q, deleteBatchSize, 0, false)

		res, err := i.index.Search(req)
		if err != nil {
			return fmt.Errorf("find headings of %s: %w", source, err)
		}
		if len(res.Hits) == 0 {
			return nil
		}

		batch := i.index.NewBatch()
		for _, hit := range res.Hits {
			batch.Delete(hit.ID)
		}
		if err := i.index.Batch(batch); err != nil {
			return fmt.Errorf("remove headings of %s: %w", source, err)
		}
	}
}

// Search returns headings matching text, best first.
func (i *Index) Search(ctx context.Context, text string, opts SearchOptions) ([]Hit, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	inText := bleve.NewMatchQuery(text)
	inText.SetField(FieldText)
	inText.SetBoost(2)
	inTitle := bleve.NewMatchQuery(text)
	inTitle.SetField(FieldTitle)

	queries := []query.Query{bleve.NewDisjunctionQuery(inText, inTitle)}
	if opts.Level != model.HeadingLevelNone {
		q := bleve.NewTermQuery(opts.Level.String())
		q.SetField(FieldLevel)
		queries = append(queries, q)
	}
	if opts.Source != "" {
		q := bleve.NewTermQuery(opts.Source)
		q.SetField(FieldSource)
		queries = append(queries, q)
	}

	req := bleve.NewSearchRequestOptions(bleve.NewConjunctionQuery(queries...), limit, 0, false)
	req.Fields = []string{"*"}

	res, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", text, err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hit := Hit{ID: h.ID, Score: h.Score}
		if v, ok := h.Fields[FieldSource].(string); ok {
			hit.Source = v
		}
		if v, ok := h.Fields[FieldTitle].(string); ok {
			hit.Title = v
		}
		if v, ok := h.Fields[FieldLevel].(string); ok {
			hit.Level, _ = model.ParseHeadingLevel(v)
		}
		if v, ok := h.Fields[FieldText].(string); ok {
			hit.Text = v
		}
		if v, ok := h.Fields[FieldPage].(float64); ok {
			hit.Page = int(v)
		}
		hits = append(hits, hit)
	}

	i.logger.Debug("index.search", "query", text, "hits", len(hits), "total", res.Total)
	return hits, nil
}

func headingID(source string, n int) string {
	return fmt.Sprintf("%s#%d", source, n)
}

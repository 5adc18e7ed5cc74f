// Package seocsv loads the SEO title table from a CSV file.
package seocsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/forPelevin/naijavibe/internal/domain/seo"
	"github.com/forPelevin/naijavibe/internal/types"
)

var ErrMissingColumn = errors.New("seocsv: missing column")

var requiredColumns = []string{"id", "naija_title", "tags", "hashtags"}

// Table is an in-memory SEO table. The zero value has no rows and always
// answers with the default SEO.
type Table struct {
	rows []seo.Row
}

func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seo table: %w", err)
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses a header row followed by data rows. Rows with a non-numeric id
// are skipped.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, err
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	cell := func(rec []string, name string) string {
		i := col[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	t := &Table{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		id, err := strconv.Atoi(cell(rec, "id"))
		if err != nil {
			continue
		}
		t.rows = append(t.rows, seo.Row{
			ID:       id,
			Title:    cell(rec, "naija_title"),
			Tags:     seo.SplitList(cell(rec, "tags")),
			Hashtags: seo.SplitList(cell(rec, "hashtags")),
		})
	}
	return t, nil
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func (t *Table) Match(script string, rowID int) types.SEOData {
	if t == nil {
		return seo.Match(script, nil, rowID)
	}
	return seo.Match(script, t.rows, rowID)
}

func (t *Table) Titles() []types.SEOTitle {
	if t == nil {
		return nil
	}
	out := make([]types.SEOTitle, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, types.SEOTitle{ID: r.ID, Title: r.Title})
	}
	return out
}

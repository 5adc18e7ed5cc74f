// Package seo maps a script onto a row of the SEO title table.
package seo

import (
	"strings"

	"github.com/forPelevin/naijavibe/internal/types"
)

// Row is one entry of the SEO table.
type Row struct {
	ID       int
	Title    string
	Tags     []string
	Hashtags []string
}

func (r Row) Data() types.SEOData {
	return types.SEOData{
		Title:    r.Title,
		Tags:     append([]string(nil), r.Tags...),
		Hashtags: append([]string(nil), r.Hashtags...),
		RowID:    r.ID,
	}
}

type keywordGroup struct {
	keyword string
	rowIDs  []int
}

// Order matters: on equal scores the row scored first wins.
var keywordGroups = []keywordGroup{
	{"breakfast", []int{1, 4}},
	{"money", []int{2, 5, 15, 29}},
	{"bills", []int{2, 5, 13, 20}},
	{"emotional", []int{3, 28, 48}},
	{"independent", []int{11, 49}},
	{"provider", []int{5, 21, 52}},
	{"prize", []int{25}},
	{"marriage", []int{9, 10, 36, 46}},
	{"format", []int{4, 35}},
	{"sapa", []int{2, 34}},
}

// Default is the generic SEO used when nothing matches.
func Default() types.SEOData {
	return types.SEOData{
		Title:    "Naija Stoic Logic 🧠",
		Tags:     []string{"Stoicism", "Nigeria", "Relationships", "Logic"},
		Hashtags: []string{"#nogreeforanybody", "#naija", "#stoic", "#logic"},
	}
}

var trending = []string{
	"#nogreeforanybody",
	"#fearwomen",
	"#naija",
	"#Lagos",
	"#relationships",
	"#stoic",
	"#redpill",
	"#sapa",
	"#breakfast",
}

func Trending() []string {
	return append([]string(nil), trending...)
}

// TrendingBoost is how many of the top trending hashtags Enhance adds.
const TrendingBoost = 3

// Enhance appends the top trending hashtags that are not already present.
func Enhance(d types.SEOData) types.SEOData {
	out := d.Clone()
	for _, tag := range trending[:TrendingBoost] {
		if !contains(out.Hashtags, tag) {
			out.Hashtags = append(out.Hashtags, tag)
		}
	}
	return out
}

// BestRowID scores keyword groups against the script. ok is false when no
// keyword occurs.
func BestRowID(script string) (id int, ok bool) {
	text := strings.ToLower(script)
	scores := map[int]int{}
	var order []int
	for _, g := range keywordGroups {
		if !strings.Contains(text, g.keyword) {
			continue
		}
		for _, rid := range g.rowIDs {
			if _, seen := scores[rid]; !seen {
				order = append(order, rid)
			}
			scores[rid]++
		}
	}
	best := 0
	for _, rid := range order {
		if !ok || scores[rid] > best {
			id, best, ok = rid, scores[rid], true
		}
	}
	return id, ok
}

// Match picks SEO data for the script. An explicit rowID wins when it exists,
// then keyword scoring, then Default. A scored row missing from rows also
// falls back to Default.
func Match(script string, rows []Row, rowID int) types.SEOData {
	byID := make(map[int]Row, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	if rowID > 0 {
		if r, ok := byID[rowID]; ok {
			return r.Data()
		}
	}
	if id, ok := BestRowID(script); ok {
		if r, found := byID[id]; found {
			return r.Data()
		}
	}
	return Default()
}

// SplitList splits a comma separated cell into trimmed non-empty items.
func SplitList(cell string) []string {
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

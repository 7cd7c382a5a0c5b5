package cmake

import (
	"sort"
	"strings"
)

// ItemKind tags a candidate with what it names.
type ItemKind int

const (
	ItemCommand ItemKind = iota
	ItemProperty
	ItemTarget
	ItemVariable
	ItemReference
	ItemFunction
)

func (k ItemKind) String() string {
	switch k {
	case ItemCommand:
		return "command"
	case ItemProperty:
		return "property"
	case ItemTarget:
		return "target"
	case ItemVariable:
		return "variable"
	case ItemReference:
		return "reference"
	case ItemFunction:
		return "function"
	}
	return "unknown"
}

// Item is one completion candidate.
type Item struct {
	Text string   `json:"text"`
	Kind ItemKind `json:"kind"`
}

// Declarations is an ordered candidate list. Lists are ordered by name
// unless created unsorted, in which case insertion order is kept.
type Declarations struct {
	items    []Item
	seen     map[string]bool
	unsorted bool
}

// NewDeclarations returns an empty list ordered by name.
func NewDeclarations() *Declarations {
	return &Declarations{seen: make(map[string]bool)}
}

// newUnsortedDeclarations returns an empty list that keeps insertion order.
func newUnsortedDeclarations() *Declarations {
	d := NewDeclarations()
	d.unsorted = true
	return d
}

// AddItem appends a candidate. A text already present is ignored.
func (d *Declarations) AddItem(text string, kind ItemKind) {
	if text == "" || d.seen[text] {
		return
	}
	d.seen[text] = true
	d.items = append(d.items, Item{Text: text, Kind: kind})
}

func (d *Declarations) AddItems(texts []string, kind ItemKind) {
	for _, t := range texts {
		d.AddItem(t, kind)
	}
}

// ExcludeItems removes every candidate whose text is in texts.
func (d *Declarations) ExcludeItems(texts []string) {
	if len(texts) == 0 {
		return
	}
	drop := make(map[string]bool, len(texts))
	for _, t := range texts {
		drop[t] = true
	}
	kept := d.items[:0]
	for _, it := range d.items {
		if drop[it.Text] {
			delete(d.seen, it.Text)
			continue
		}
		kept = append(kept, it)
	}
	d.items = kept
}

func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// Items returns the candidates in presentation order.
func (d *Declarations) Items() []Item {
	if d == nil {
		return nil
	}
	out := make([]Item, len(d.items))
	copy(out, d.items)
	if !d.unsorted {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := strings.ToLower(out[i].Text), strings.ToLower(out[j].Text)
			if a == b {
				return out[i].Text < out[j].Text
			}
			return a < b
		})
	}
	return out
}

// Texts returns the candidate texts in presentation order.
func (d *Declarations) Texts() []string {
	items := d.Items()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

// Contains reports whether a candidate with the given text is present.
func (d *Declarations) Contains(text string) bool {
	return d != nil && d.seen[text]
}

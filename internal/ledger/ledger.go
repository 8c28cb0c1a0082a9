// Package ledger models the historical Statutes at Large ledger: one
// ordered list of entries per volume, used to disambiguate early statute
// citations whose page numbers are not unique in the canonical source.
package ledger

import "fmt"

// Entry is one row of historical statute data.
type Entry struct {
	Volume   int    `yaml:"volume" json:"volume"`
	Page     int    `yaml:"page" json:"page"`
	NPages   int    `yaml:"npages,omitempty" json:"npages,omitempty"`
	Type     string `yaml:"type" json:"type"` // e.g. "publaw", "pvtlaw", "reorg"
	Congress int    `yaml:"congress" json:"congress"`
	Number   int    `yaml:"number" json:"number"`
	Title    string `yaml:"title,omitempty" json:"title,omitempty"`
	Topic    string `yaml:"topic,omitempty" json:"topic,omitempty"`
	File     string `yaml:"file,omitempty" json:"file,omitempty"`
	Citation string `yaml:"citation,omitempty" json:"citation,omitempty"`
}

// DisplayTitle returns the entry's title, falling back to its topic.
func (e Entry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Topic
}

// Matches reports whether the entry claims the queried page: either the
// entry starts on that page, or the page falls within [Page, Page+NPages).
func (e Entry) Matches(volume, page int) bool {
	if e.Volume != volume {
		return false
	}
	if e.Page == page {
		return true
	}
	return e.NPages > 0 && page >= e.Page && page < e.Page+e.NPages
}

// StatCitation renders the entry's true start-page citation string.
func (e Entry) StatCitation() string {
	return fmt.Sprintf("%d Stat. %d", e.Volume, e.Page)
}

// Query returns entries matching the volume/page reference, in preference
// order: entries that start on the queried page before entries that merely
// span over it, and within each class later-listed entries first. When
// several entries could claim a page this ordering puts the most specific
// claim first without an explicit sort.
func Query(entries []Entry, volume, page int) []Entry {
	var exact, span []Entry
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if !e.Matches(volume, page) {
			continue
		}
		if e.Page == page {
			exact = append(exact, e)
		} else {
			span = append(span, e)
		}
	}
	return append(exact, span...)
}

// FindLaw returns the entry for a numbered law of a congress, searching in
// ledger order. ok is false when the volume holds no such law.
func FindLaw(entries []Entry, entryType string, congress, number int) (Entry, bool) {
	for _, e := range entries {
		if e.Type == entryType && e.Congress == congress && e.Number == number {
			return e, true
		}
	}
	return Entry{}, false
}

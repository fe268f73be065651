package profanity

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"campus-events-backend/cmd/campus-events/model"

	"github.com/gocarina/gocsv"
)

// LoadDenylistCSV reads a CSV file with a "word" column. Entries are trimmed
// and lowercased; blanks and duplicates are dropped, order is kept.
func LoadDenylistCSV(r io.Reader) (Denylist, error) {
	var rows []model.DenyWordCSV
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse denylist: %w", err)
	}

	seen := make(map[string]struct{}, len(rows))
	list := make(Denylist, 0, len(rows))
	for _, row := range rows {
		w := strings.ToLower(strings.TrimSpace(row.Word))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		list = append(list, w)
	}

	return list, nil
}

// Holder keeps the active denylist. Snapshots are never mutated, so a
// validation call keeps a consistent list while Replace swaps in a new one.
type Holder struct {
	current atomic.Pointer[Denylist]
}

func NewHolder(initial Denylist) *Holder {
	h := &Holder{}
	h.Replace(initial)
	return h
}

func (h *Holder) Snapshot() Denylist {
	p := h.current.Load()
	if p == nil {
		return nil
	}
	return *p
}

func (h *Holder) Replace(list Denylist) {
	cp := make(Denylist, len(list))
	copy(cp, list)
	h.current.Store(&cp)
}

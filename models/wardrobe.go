package models

import (
	"sync"

	"github.com/google/uuid"
)

// Closed category set. The validator tags on the request structs must stay in
// sync with these values.
const (
	CategoryTops         = "tops"
	CategoryBottomsPants = "bottoms-pants"
	CategoryBottomsSkirt = "bottoms-skirt"
	CategoryOnePiece     = "one-piece"
	CategoryOuterwear    = "outerwear"
	CategoryFootwear     = "footwear"
	CategoryAccessory    = "accessory"
)

const (
	SeasonAll          = "all-season"
	SeasonSpringSummer = "spring-summer"
	SeasonAutumnWinter = "autumn-winter"
)

// SizeAttributes is a sparse set of measurements; absent fields stay empty.
type SizeAttributes struct {
	Length string `json:"length,omitempty"`
	Width  string `json:"width,omitempty"`
	Waist  string `json:"waist,omitempty"`
}

// Summary renders the non-empty measurements for prompt lines, e.g. "L:60 W:44".
func (s SizeAttributes) Summary() string {
	out := ""
	if s.Length != "" {
		out += "L:" + s.Length
	}
	if s.Width != "" {
		if out != "" {
			out += " "
		}
		out += "W:" + s.Width
	}
	if s.Waist != "" {
		if out != "" {
			out += " "
		}
		out += "Waist:" + s.Waist
	}
	return out
}

// TransportImage is the prepared, request-ready form of an item photo. Data and
// DataURI are computed once at upload time and owned exclusively by the item.
type TransportImage struct {
	Data     []byte `json:"-"`
	MIMEType string `json:"mime_type"`
	DataURI  string `json:"-"`
}

type WardrobeItem struct {
	// ID is stable for the whole session; display indexes are not stored on
	// the item, they only exist inside a snapshot.
	ID       string         `json:"id"`
	Category string         `json:"category"`
	Season   string         `json:"season"`
	Size     SizeAttributes `json:"size"`
	Image    TransportImage `json:"image"`
}

// WardrobeSnapshot freezes order and count at prompt-construction time. Index i
// in the snapshot is the display index the model is told to reference.
type WardrobeSnapshot struct {
	Items []WardrobeItem
}

func (s WardrobeSnapshot) Len() int {
	return len(s.Items)
}

// WardrobeStore is the ordered, in-memory source of truth for item identity.
// The session is logically single-user, but handlers run on server goroutines,
// so mutations and snapshots are guarded.
type WardrobeStore struct {
	mu    sync.RWMutex
	items []WardrobeItem
}

func NewWardrobeStore() *WardrobeStore {
	return &WardrobeStore{}
}

// Add stores a new item and returns it with its assigned ID and current
// display index.
func (w *WardrobeStore) Add(category, season string, size SizeAttributes, image TransportImage) (WardrobeItem, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	item := WardrobeItem{
		ID:       uuid.NewString(),
		Category: category,
		Season:   season,
		Size:     size,
		Image:    image,
	}
	w.items = append(w.items, item)
	return item, len(w.items) - 1
}

func (w *WardrobeStore) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

// Snapshot copies the current ordering; later store mutations do not affect it.
func (w *WardrobeStore) Snapshot() WardrobeSnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	items := make([]WardrobeItem, len(w.items))
	copy(items, w.items)
	return WardrobeSnapshot{Items: items}
}

// Get returns the item at the given display index of the current ordering.
func (w *WardrobeStore) Get(index int) (WardrobeItem, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if index < 0 || index >= len(w.items) {
		return WardrobeItem{}, false
	}
	return w.items[index], true
}

// GetByID resolves a stable ID to the item and its current display index.
func (w *WardrobeStore) GetByID(id string) (WardrobeItem, int, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for i, item := range w.items {
		if item.ID == id {
			return item, i, true
		}
	}
	return WardrobeItem{}, -1, false
}

// Update mutates category/season/size of the item with the given ID in place.
func (w *WardrobeStore) Update(id, category, season string, size SizeAttributes) (WardrobeItem, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == id {
			if category != "" {
				w.items[i].Category = category
			}
			if season != "" {
				w.items[i].Season = season
			}
			w.items[i].Size = size
			return w.items[i], true
		}
	}
	return WardrobeItem{}, false
}

// Remove deletes by stable ID. Items after it shift down, so any display index
// computed before the call is stale afterwards.
func (w *WardrobeStore) Remove(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every item.
func (w *WardrobeStore) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = nil
}

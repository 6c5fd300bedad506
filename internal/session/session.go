// Package session tracks the caller's selected team and favorites list.
// It sits outside the stats pipeline; the pipeline only ever receives a
// team id.
package session

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ErrMalformedEntry reports a favorites entry that does not parse as an
// id:number:name triple.
var ErrMalformedEntry = errors.New("session: malformed favorites entry")

// SelectedTeam is the team the session is currently pinned to.
type SelectedTeam struct {
	ID     int    `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
}

// Header is the display label shown for the selected team.
func (t SelectedTeam) Header() string {
	if t.Name == "" {
		return t.Number
	}
	return t.Number + " - " + t.Name
}

// Favorite is one saved team. Favorites round-trip through a compact
// colon-delimited "id:number:name" encoding.
type Favorite struct {
	ID     int    `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
}

// String encodes the favorite as an id:number:name triple. Colons in the
// name survive because decoding only splits twice.
func (f Favorite) String() string {
	return fmt.Sprintf("%d:%s:%s", f.ID, f.Number, f.Name)
}

// ParseEntry decodes an id:number:name triple.
func ParseEntry(raw string) (Favorite, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return Favorite{}, fmt.Errorf("%w: %q", ErrMalformedEntry, raw)
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Favorite{}, fmt.Errorf("%w: %q", ErrMalformedEntry, raw)
	}
	return Favorite{ID: id, Number: parts[1], Name: parts[2]}, nil
}

// Manager holds the session state behind a mutex so handlers can share it.
type Manager struct {
	mu        sync.RWMutex
	selected  *SelectedTeam
	favorites map[int]Favorite
}

func NewManager() *Manager {
	return &Manager{
		favorites: make(map[int]Favorite),
	}
}

// Select pins the session to a team.
func (m *Manager) Select(team SelectedTeam) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := team
	m.selected = &copied
}

// Selected returns the pinned team, if any.
func (m *Manager) Selected() (SelectedTeam, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.selected == nil {
		return SelectedTeam{}, false
	}
	return *m.selected, true
}

// ClearSelected unpins the session.
func (m *Manager) ClearSelected() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.selected = nil
}

// AddFavorite saves a team; re-adding the same id replaces the entry.
func (m *Manager) AddFavorite(f Favorite) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.favorites[f.ID] = f
}

// RemoveFavorite deletes a saved team by id.
func (m *Manager) RemoveFavorite(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.favorites, id)
}

// ClearFavorites drops every saved team.
func (m *Manager) ClearFavorites() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.favorites = make(map[int]Favorite)
}

// Favorites lists saved teams sorted by team number.
func (m *Manager) Favorites() []Favorite {
	return m.FilterFavorites("")
}

// FilterFavorites lists saved teams whose number or name contains the
// query, case-insensitively, sorted by team number.
func (m *Manager) FilterFavorites(query string) []Favorite {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]Favorite, 0, len(m.favorites))
	for _, f := range m.favorites {
		if query != "" &&
			!strings.Contains(strings.ToLower(f.Number), query) &&
			!strings.Contains(strings.ToLower(f.Name), query) {
			continue
		}
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Number < result[j].Number
	})
	return result
}

// Encode serializes the favorites list as triples, sorted by number.
func (m *Manager) Encode() []string {
	favs := m.Favorites()
	encoded := make([]string, 0, len(favs))
	for _, f := range favs {
		encoded = append(encoded, f.String())
	}
	return encoded
}

// Restore replaces the favorites list from encoded triples. Malformed
// entries are skipped rather than failing the whole restore.
func (m *Manager) Restore(entries []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.favorites = make(map[int]Favorite, len(entries))
	for _, raw := range entries {
		f, err := ParseEntry(raw)
		if err != nil {
			continue
		}
		m.favorites[f.ID] = f
	}
}

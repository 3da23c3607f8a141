package world

import (
	"fmt"
	"os"
	"sort"

	"pacmaze/internal/config"
	"pacmaze/internal/level"

	"gopkg.in/yaml.v3"
)

// TileManager resolves tile kinds to their catalog entries
type TileManager struct {
	tileData     map[string]*config.TileData
	kindToKey    map[level.TileKind]string
	letterToKind map[string]level.TileKind
}

// NewTileManager creates an empty tile manager
func NewTileManager() *TileManager {
	return &TileManager{
		tileData:     make(map[string]*config.TileData),
		kindToKey:    make(map[level.TileKind]string),
		letterToKind: make(map[string]level.TileKind),
	}
}

// LoadTileConfig loads the tile catalog from a YAML file
func (tm *TileManager) LoadTileConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read tile config file: %w", err)
	}

	var tileConfig config.TileConfig
	if err := yaml.Unmarshal(data, &tileConfig); err != nil {
		return fmt.Errorf("failed to parse tile config: %w", err)
	}

	return tm.SetTiles(tileConfig.TileData)
}

// SetTiles replaces the catalog. Entries are matched to kinds by key, and
// an entry's code, when set, must agree with the kind it is keyed under.
func (tm *TileManager) SetTiles(tiles map[string]config.TileData) error {
	tm.tileData = make(map[string]*config.TileData, len(tiles))
	tm.kindToKey = make(map[level.TileKind]string)
	tm.letterToKind = make(map[string]level.TileKind)

	for key, tileData := range tiles {
		// Make a copy to avoid pointer issues
		tileCopy := tileData
		tm.tileData[key] = &tileCopy

		kind, ok := level.KindFromKey(key)
		if !ok {
			continue
		}
		if tileCopy.Code != 0 && tileCopy.Code != int(kind) {
			return fmt.Errorf("tile %q has code %d, expected %d", key, tileCopy.Code, int(kind))
		}
		tm.kindToKey[kind] = key
		if tileCopy.Letter != "" {
			tm.letterToKind[tileCopy.Letter] = kind
		}
	}
	return nil
}

// GetTileData returns the catalog entry for a kind, or nil when the catalog
// has no asset for it
func (tm *TileManager) GetTileData(kind level.TileKind) *config.TileData {
	key, ok := tm.kindToKey[kind]
	if !ok {
		return nil
	}
	return tm.tileData[key]
}

// HasKind reports whether the catalog can instantiate kind
func (tm *TileManager) HasKind(kind level.TileKind) bool {
	return tm.GetTileData(kind) != nil
}

// GetName returns the display name for a kind, falling back to its enum name
func (tm *TileManager) GetName(kind level.TileKind) string {
	if data := tm.GetTileData(kind); data != nil && data.Name != "" {
		return data.Name
	}
	return kind.String()
}

// GetColor returns the colour for a kind
func (tm *TileManager) GetColor(kind level.TileKind) [3]int {
	data := tm.GetTileData(kind)
	if data == nil {
		return [3]int{128, 128, 128} // Default gray
	}
	return data.Color
}

// GetLetter returns the single-letter symbol of a kind
func (tm *TileManager) GetLetter(kind level.TileKind) string {
	if data := tm.GetTileData(kind); data != nil {
		return data.Letter
	}
	return "?"
}

// GetKindFromLetter returns the kind whose letter matches
func (tm *TileManager) GetKindFromLetter(letter string) (level.TileKind, bool) {
	kind, ok := tm.letterToKind[letter]
	return kind, ok
}

// Kinds returns the kinds present in the catalog in code order
func (tm *TileManager) Kinds() []level.TileKind {
	kinds := make([]level.TileKind, 0, len(tm.kindToKey))
	for kind := range tm.kindToKey {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// UnknownKeys returns catalog keys that do not name any tile kind
func (tm *TileManager) UnknownKeys() []string {
	var keys []string
	for key := range tm.tileData {
		if _, ok := level.KindFromKey(key); !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

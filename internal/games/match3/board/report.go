package board

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Report is the record of one board session: the values an external
// recorder needs to reproduce and compare play on a seed.
type Report struct {
	Seed            int64 `json:"seed"`
	BlockTypes      int   `json:"types"`
	Moves           int   `json:"moves"`
	BlocksRemaining int   `json:"tilesLeft"`
}

// Cleared reports whether the session ended with an empty board.
func (r Report) Cleared() bool {
	return r.BlocksRemaining == 0
}

// reportExport is the JSON envelope of an export.
type reportExport struct {
	Results []Report `json:"results"`
}

// SortBySeed orders reports by ascending seed, keeping the original order of
// reports that share a seed.
func SortBySeed(reports []Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Seed < reports[j].Seed
	})
}

// ExportJSON encodes reports as {"results":[...]} sorted by seed.
// The input slice is not modified.
func ExportJSON(reports []Report) ([]byte, error) {
	sorted := make([]Report, len(reports))
	copy(sorted, reports)
	SortBySeed(sorted)

	data, err := json.Marshal(reportExport{Results: sorted})
	if err != nil {
		return nil, fmt.Errorf("encoding reports: %w", err)
	}
	return data, nil
}

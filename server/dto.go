package server

import (
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// SearchRequest is the body of both search endpoints.
type SearchRequest struct {
	Algorithm string   `json:"algorithm" binding:"required"`
	Layout    []string `json:"layout" binding:"required,min=1"`
	Delay     string   `json:"delay"` // stream only: duration or fast, medium, slow
}

// SearchResponse is returned by POST /v1/search.
type SearchResponse struct {
	RunID     string           `json:"run_id"`
	Algorithm search.Algorithm `json:"algorithm"`
	Found     bool             `json:"found"`
	Path      [][2]int         `json:"path"`
	Visited   [][2]int         `json:"visited"`
	PathEdges int              `json:"path_edges"`
	Cached    bool             `json:"cached"`
}

// VisitedEvent is the payload of a "visited" SSE event.
type VisitedEvent struct {
	Step int `json:"step"`
	Row  int `json:"row"`
	Col  int `json:"col"`
}

// PathEvent is the payload of the "path" SSE event.
type PathEvent struct {
	Found     bool     `json:"found"`
	Path      [][2]int `json:"path"`
	PathEdges int      `json:"path_edges"`
}

// DoneEvent is the payload of the final "done" SSE event.
type DoneEvent struct {
	RunID   string `json:"run_id"`
	Visited int    `json:"visited"`
}

// pairs converts cells to [row, col] pairs.
func pairs(cells []grid.Cell) [][2]int {
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.Row, c.Col}
	}

	return out
}

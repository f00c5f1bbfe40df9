package search

import (
	"github.com/poiesic/roomsearch/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterParse(terms []core.SearchTerm)
	RoomScored(result *core.ScoredResult)
	Finish(results []*core.ScoredResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                  {}
func (n *noopMonitor) AfterParse(_ []core.SearchTerm)  {}
func (n *noopMonitor) RoomScored(_ *core.ScoredResult) {}
func (n *noopMonitor) Finish(_ []*core.ScoredResult)   {}

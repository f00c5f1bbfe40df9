package search

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/poiesic/roomsearch/config"
	"github.com/poiesic/roomsearch/core"
	"github.com/poiesic/roomsearch/match"
	"github.com/poiesic/roomsearch/query"
	"github.com/poiesic/roomsearch/tags"
)

const (
	// nearMissCount is how many rooms are logged when a query finds nothing.
	nearMissCount = 5

	exactRoomMultiplier    = 2.0
	highPriorityMultiplier = 1.5
)

// Searcher ranks rooms against free-text queries.
type Searcher struct {
	config      *config.Config
	parser      *query.Parser
	synthesizer *tags.Synthesizer
	matcher     *match.Matcher
	logger      *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig sets the abbreviation table and stop words.
// Default is config.DefaultConfig().
func WithConfig(cfg *config.Config) Option {
	return func(s *Searcher) error {
		if cfg == nil {
			return ErrConfigRequired
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		s.config = cfg
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(opts ...Option) (*Searcher, error) {
	s := &Searcher{
		config: config.DefaultConfig(),
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.parser = query.NewParser(s.config.StopWordSet())
	s.synthesizer = tags.NewSynthesizer(s.config.Abbreviations)
	s.matcher = match.NewMatcher(s.config.Abbreviations)
	return s, nil
}

// Parse returns the terms q parses to.
func (s *Searcher) Parse(q string) []core.SearchTerm {
	return s.parser.Parse(q)
}

// UnifiedTags returns the tags a room is matched against given its annotations.
func (s *Searcher) UnifiedTags(room *core.Room, annotations core.Annotations) tags.Set {
	if room == nil {
		return tags.Set{}
	}
	key := room.Key()
	return s.synthesizer.Synthesize(room, annotations.CustomFor(key), annotations.StaffFor(key))
}

// Search returns the rooms matching q, most relevant first.
// A blank query, or one made only of stop words, returns every room in
// its original order.
func (s *Searcher) Search(q string, rooms []*core.Room, annotations core.Annotations) []*core.Room {
	return s.SearchWithMonitor(q, rooms, annotations, nil)
}

// SearchWithMonitor searches like Search while reporting each stage to monitor.
func (s *Searcher) SearchWithMonitor(q string, rooms []*core.Room, annotations core.Annotations, monitor SearchMonitor) []*core.Room {
	results := s.rank(q, rooms, annotations, monitor)
	if results == nil {
		return slices.Clone(rooms)
	}
	out := make([]*core.Room, 0, len(results))
	for _, result := range results {
		out = append(out, result.Room)
	}
	return out
}

// Rank returns the scoring details for the rooms matching q, most relevant
// first. It returns nil when q has no terms.
func (s *Searcher) Rank(q string, rooms []*core.Room, annotations core.Annotations) []*core.ScoredResult {
	return s.rank(q, rooms, annotations, nil)
}

// Score returns the scoring details for every room, in input order, including
// the rooms that fall short of the threshold. It returns nil when q has no terms.
func (s *Searcher) Score(q string, rooms []*core.Room, annotations core.Annotations) []*core.ScoredResult {
	terms := s.parser.Parse(q)
	if len(terms) == 0 {
		return nil
	}
	results := make([]*core.ScoredResult, 0, len(rooms))
	for _, room := range rooms {
		results = append(results, s.scoreRoom(terms, room, annotations))
	}
	return results
}

func (s *Searcher) rank(q string, rooms []*core.Room, annotations core.Annotations, monitor SearchMonitor) []*core.ScoredResult {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(q)

	terms := s.parser.Parse(q)
	monitor.AfterParse(terms)
	if len(terms) == 0 || len(rooms) == 0 {
		s.logger.Debug("query has no terms or no rooms, passing through", "query", q, "rooms", len(rooms))
		monitor.Finish(nil)
		return nil
	}
	s.logger.Debug("parsed query", "query", q, "terms", len(terms))

	scored := make([]*core.ScoredResult, 0, len(rooms))
	results := make([]*core.ScoredResult, 0)
	for _, room := range rooms {
		result := s.scoreRoom(terms, room, annotations)
		monitor.RoomScored(result)
		scored = append(scored, result)
		if result.Included {
			results = append(results, result)
		}
	}

	slices.SortStableFunc(results, func(a, b *core.ScoredResult) int {
		return cmp.Or(
			cmp.Compare(b.Score, a.Score),
			cmp.Compare(b.HighPriorityMatches, a.HighPriorityMatches),
			cmp.Compare(b.MatchedTerms, a.MatchedTerms),
		)
	})

	if len(results) == 0 {
		s.logNearMisses(q, terms, scored)
	}

	monitor.Finish(results)
	return results
}

// scoreRoom matches every term against room and applies the threshold and
// score adjustments. Excluded rooms keep their match counts but score zero.
func (s *Searcher) scoreRoom(terms []core.SearchTerm, room *core.Room, annotations core.Annotations) *core.ScoredResult {
	result := &core.ScoredResult{Room: room, TotalTerms: len(terms)}
	if room == nil {
		return result
	}

	key := room.Key()
	staff := annotations.StaffFor(key)
	unified := s.synthesizer.Synthesize(room, annotations.CustomFor(key), staff)

	var score float64
	for _, term := range terms {
		m := s.matcher.Match(term, room, staff, unified)
		if !m.Matched {
			continue
		}
		score += m.Score * term.Boost
		result.MatchedTerms++
		if term.HighPriority() {
			result.HighPriorityMatches++
		}
		result.Details = append(result.Details, core.MatchDetail{
			Term:  term.Original,
			Type:  term.Type,
			Score: m.Score,
			Boost: term.Boost,
		})
	}

	if exactRoomNumber(terms, room) {
		score *= exactRoomMultiplier
	}
	if result.HighPriorityMatches > 1 {
		score *= highPriorityMultiplier
	}

	result.Included = Sufficient(len(terms), result.MatchedTerms, result.HighPriorityMatches)
	if result.Included {
		result.Score = score
	}
	return result
}

// Sufficient reports whether a room matching matched of total terms, with
// highPriority of those on room numbers or floors, belongs in the results.
func Sufficient(total, matched, highPriority int) bool {
	switch {
	case total <= 0:
		return false
	case total == 1:
		return matched >= 1
	case total == 2:
		return matched >= 2 || highPriority >= 1
	}
	base := int(math.Ceil(float64(total) * 0.6))
	threshold := max(min(2, total), base)
	if highPriority > 0 {
		return matched >= max(1, threshold-1)
	}
	return matched >= threshold
}

func exactRoomNumber(terms []core.SearchTerm, room *core.Room) bool {
	if room.RoomNumber.IsEmpty() {
		return false
	}
	number := room.RoomNumber.Lower()
	for _, term := range terms {
		if term.Type == core.TermRoomNumber && strings.ToLower(term.Value) == number {
			return true
		}
	}
	return false
}

// logNearMisses logs the rooms that came closest to matching.
func (s *Searcher) logNearMisses(q string, terms []core.SearchTerm, scored []*core.ScoredResult) {
	if !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	s.logger.Debug("no results for query", "query", q, "terms", len(terms))

	misses := slices.Clone(scored)
	slices.SortStableFunc(misses, func(a, b *core.ScoredResult) int {
		return cmp.Or(
			cmp.Compare(b.MatchedTerms, a.MatchedTerms),
			cmp.Compare(b.Score, a.Score),
		)
	})
	for _, miss := range misses[:min(nearMissCount, len(misses))] {
		if miss.Room == nil {
			continue
		}
		s.logger.Debug("near miss",
			"room", miss.Room.RoomNumber.String(),
			"matched", miss.MatchedTerms,
			"total", miss.TotalTerms,
			"score", miss.Score)
	}
}

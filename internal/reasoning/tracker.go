package reasoning

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/Harshitk-cp/logos/internal/domain"
)

var (
	ErrTrackerWrite  = errors.New("tracker write rejected")
	ErrTrackerClosed = errors.New("tracker closed")
)

// PatternKey is the key of the pattern counter for a structure type and
// complexity tier.
func PatternKey(st domain.StructureType, tier domain.ComplexityTier) string {
	return string(st) + "|" + string(tier)
}

// Tracker keeps a bounded case history and observational counters. All
// writes hold one lock, so the history bound and the running averages stay
// consistent under concurrent calls.
type Tracker struct {
	mu sync.RWMutex

	cap         int
	maxProfiles int
	cases       []domain.CaseRecord
	head        int

	fallacyCounts map[string]int
	patternCounts map[string]int
	profiles      map[string]*domain.UserProfile

	total         int
	qualitySum    float64
	complexitySum float64
	skipped       int
	closed        bool

	now func() time.Time
}

func NewTracker(historyCap, maxProfiles int) *Tracker {
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	if maxProfiles <= 0 {
		maxProfiles = DefaultMaxProfiles
	}
	t := &Tracker{cap: historyCap, maxProfiles: maxProfiles, now: time.Now}
	t.clear()
	return t
}

func (t *Tracker) clear() {
	t.cases = make([]domain.CaseRecord, 0, t.cap)
	t.head = 0
	t.fallacyCounts = make(map[string]int)
	t.patternCounts = make(map[string]int)
	t.profiles = make(map[string]*domain.UserProfile)
	t.total = 0
	t.qualitySum = 0
	t.complexitySum = 0
	t.skipped = 0
}

func validScore(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// Record appends c and updates every counter, or changes nothing and
// returns an error wrapping ErrTrackerWrite or ErrTrackerClosed.
func (t *Tracker) Record(c domain.CaseRecord) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		t.skipped++
		return ErrTrackerClosed
	}
	if !validScore(c.QualityScore) || !validScore(c.Complexity) {
		t.skipped++
		return fmt.Errorf("%w: score out of range (quality=%v complexity=%v)", ErrTrackerWrite, c.QualityScore, c.Complexity)
	}
	if c.UserID != "" {
		if _, ok := t.profiles[c.UserID]; !ok && len(t.profiles) >= t.maxProfiles {
			t.skipped++
			return fmt.Errorf("%w: profile limit %d reached", ErrTrackerWrite, t.maxProfiles)
		}
	}

	t.appendCase(c)
	for _, id := range c.FallacyIDs {
		t.fallacyCounts[id]++
	}
	t.patternCounts[PatternKey(c.StructureType, c.ComplexityTier)]++
	t.total++
	t.qualitySum += c.QualityScore
	t.complexitySum += c.Complexity

	if c.UserID != "" {
		t.updateProfile(c)
	}
	return nil
}

// appendCase writes into the ring buffer, evicting the oldest record once
// the buffer is full.
func (t *Tracker) appendCase(c domain.CaseRecord) {
	if len(t.cases) < t.cap {
		t.cases = append(t.cases, c)
		return
	}
	t.cases[t.head] = c
	t.head = (t.head + 1) % t.cap
}

func (t *Tracker) updateProfile(c domain.CaseRecord) {
	p, ok := t.profiles[c.UserID]
	if !ok {
		p = &domain.UserProfile{
			UserID:          c.UserID,
			TopicCounts:     make(map[string]int),
			StructureCounts: make(map[domain.StructureType]int),
		}
		t.profiles[c.UserID] = p
	}
	p.ConsultCount++
	n := float64(p.ConsultCount)
	p.AvgQuality += (c.QualityScore - p.AvgQuality) / n
	p.AvgComplexity += (c.Complexity - p.AvgComplexity) / n
	for _, topic := range c.Topics {
		p.TopicCounts[topic]++
	}
	p.StructureCounts[c.StructureType]++
	p.LastSeen = c.Timestamp
}

// ordered returns history oldest first. Caller holds the lock.
func (t *Tracker) ordered() []domain.CaseRecord {
	out := make([]domain.CaseRecord, len(t.cases))
	for i := range t.cases {
		out[i] = cloneCase(t.cases[(t.head+i)%len(t.cases)])
	}
	return out
}

func cloneCase(c domain.CaseRecord) domain.CaseRecord {
	c.FallacyIDs = append([]string(nil), c.FallacyIDs...)
	c.Topics = append([]string(nil), c.Topics...)
	c.TopicVector = append([]float32(nil), c.TopicVector...)
	return c
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (t *Tracker) History() []domain.CaseRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ordered()
}

func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cases)
}

func (t *Tracker) Cap() int {
	return t.cap
}

func (t *Tracker) Statistics() domain.Statistics {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := domain.Statistics{
		TotalProcessed:   t.total,
		HistoryLength:    len(t.cases),
		HistoryCap:       t.cap,
		FallacyCounts:    copyCounts(t.fallacyCounts),
		PatternCounts:    copyCounts(t.patternCounts),
		UserProfileCount: len(t.profiles),
		SkippedWrites:    t.skipped,
	}
	if t.total > 0 {
		s.AvgQuality = t.qualitySum / float64(t.total)
		s.AvgComplexity = t.complexitySum / float64(t.total)
	}
	return s
}

func (t *Tracker) Profile(userID string) (*domain.UserProfile, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.profiles[userID]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

func (t *Tracker) Export() domain.LearningSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	profiles := make(map[string]*domain.UserProfile, len(t.profiles))
	for id, p := range t.profiles {
		profiles[id] = p.Clone()
	}
	return domain.LearningSnapshot{
		Cases:          t.ordered(),
		FallacyCounts:  copyCounts(t.fallacyCounts),
		PatternCounts:  copyCounts(t.patternCounts),
		Profiles:       profiles,
		TotalProcessed: t.total,
		QualitySum:     t.qualitySum,
		ComplexitySum:  t.complexitySum,
		ExportedAt:     t.now().UTC(),
	}
}

// Reset drops all history and counters.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clear()
}

// Restore replaces the tracker state with a snapshot. Only the newest cases
// that fit the history cap are kept.
func (t *Tracker) Restore(snap domain.LearningSnapshot) error {
	if snap.TotalProcessed < 0 {
		return fmt.Errorf("%w: negative total %d", ErrTrackerWrite, snap.TotalProcessed)
	}
	if len(snap.Profiles) > t.maxProfiles {
		return fmt.Errorf("%w: %d profiles exceed limit %d", ErrTrackerWrite, len(snap.Profiles), t.maxProfiles)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrTrackerClosed
	}

	t.clear()
	cases := snap.Cases
	if len(cases) > t.cap {
		cases = cases[len(cases)-t.cap:]
	}
	for _, c := range cases {
		t.cases = append(t.cases, cloneCase(c))
	}
	t.fallacyCounts = copyCounts(snap.FallacyCounts)
	t.patternCounts = copyCounts(snap.PatternCounts)
	for id, p := range snap.Profiles {
		if p == nil {
			continue
		}
		t.profiles[id] = p.Clone()
	}
	t.total = snap.TotalProcessed
	t.qualitySum = snap.QualitySum
	t.complexitySum = snap.ComplexitySum
	return nil
}

// SimilarCases returns the cases closest to vector by Euclidean distance and
// bumps their Referenced counter. Ties favour the more recent case.
func (t *Tracker) SimilarCases(vector []float32, limit int) []domain.CaseWithScore {
	if limit <= 0 || len(vector) == 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	type hit struct {
		idx  int
		age  int
		dist float64
	}
	var hits []hit
	for i := range t.cases {
		idx := (t.head + i) % len(t.cases)
		c := t.cases[idx]
		if len(c.TopicVector) != len(vector) {
			continue
		}
		hits = append(hits, hit{idx: idx, age: len(t.cases) - i, dist: euclidean(vector, c.TopicVector)})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].age < hits[j].age
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]domain.CaseWithScore, len(hits))
	for i, h := range hits {
		t.cases[h.idx].Referenced++
		out[i] = domain.CaseWithScore{CaseRecord: cloneCase(t.cases[h.idx]), Distance: h.dist}
	}
	return out
}

func euclidean(a, b []float32) float64 {
	sum := 0.0
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Close rejects further writes.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
}

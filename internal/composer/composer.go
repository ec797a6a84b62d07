// Package composer implements the route-composition state machine: collecting
// stops from free-text search, resolving them to coordinates, aggregating the
// total distance on submit and persisting the result. It has no HTTP or
// rendering concerns and talks to its collaborators through interfaces, so a
// full compose/edit session can be driven in tests with mocks.
package composer

import (
	"context"
	"errors"
	"sync"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/domain"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/service"
)

// State is the composer lifecycle state for the route in progress.
type State int

const (
	// StateIdle means no route is being composed.
	StateIdle State = iota
	// StateComposing means stops are being collected.
	StateComposing
	// StateResolving means the distance aggregation call is in flight.
	StateResolving
	// StatePersisting means the store call is in flight.
	StatePersisting
)

// SlotKind identifies which stop of the route a slot addresses.
type SlotKind int

const (
	SlotStart SlotKind = iota
	SlotVia
	SlotEnd
)

// Slot addresses one stop position. Index is only meaningful for SlotVia.
type Slot struct {
	Kind  SlotKind
	Index int
}

var (
	// ErrSubmitInFlight is returned when Submit is called while a previous
	// submit has not finished. Exactly one persist can result from a burst
	// of submit events.
	ErrSubmitInFlight = errors.New("submit already in flight")

	// ErrInvalidSlot is returned for a via index that does not exist.
	ErrInvalidSlot = errors.New("invalid stop slot")
)

// Resolver is the location-resolution collaborator.
type Resolver interface {
	Search(ctx context.Context, query string) ([]domain.SearchCandidate, error)
	Resolve(ctx context.Context, placeID string) (domain.Location, error)
}

// Aggregator is the distance-aggregation collaborator.
type Aggregator interface {
	Aggregate(ctx context.Context, start, end domain.Location, via []domain.Location) (float64, bool, error)
}

// Store is the route-persistence collaborator.
type Store interface {
	Create(ctx context.Context, req service.CreateRouteRequest) (*domain.Route, error)
	Update(ctx context.Context, req service.UpdateRouteRequest) (*domain.Route, error)
}

// Ensure the real collaborators satisfy the contracts.
var (
	_ Resolver   = (*service.LocationResolver)(nil)
	_ Aggregator = (*service.DistanceAggregator)(nil)
	_ Store      = (*service.RouteService)(nil)
)

// Composer drives one operator's route-in-progress. Methods are safe for
// concurrent use; per-stop searches are independent while Submit is
// single-flight.
type Composer struct {
	resolver   Resolver
	aggregator Aggregator
	store      Store

	companyID  string
	operatorID string

	mu         sync.Mutex
	state      State
	start      *domain.Location
	end        *domain.Location
	via        []domain.Location
	editingID  string
	inFlight   bool
	searchGen  map[Slot]uint64
	candidates map[Slot][]domain.SearchCandidate
}

// New creates a composer for the given company and operator.
func New(resolver Resolver, aggregator Aggregator, store Store, companyID, operatorID string) *Composer {
	return &Composer{
		resolver:   resolver,
		aggregator: aggregator,
		store:      store,
		companyID:  companyID,
		operatorID: operatorID,
		state:      StateIdle,
		searchGen:  make(map[Slot]uint64),
		candidates: make(map[Slot][]domain.SearchCandidate),
	}
}

// State returns the current lifecycle state.
func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// EditingID returns the id of the route being edited, or "" outside an edit
// session.
func (c *Composer) EditingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID
}

// Start returns the current start location, or nil if not yet selected.
func (c *Composer) Start() *domain.Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyLocation(c.start)
}

// End returns the current end location, or nil if not yet selected.
func (c *Composer) End() *domain.Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyLocation(c.end)
}

// Via returns the via stops in operator order, placeholders included.
func (c *Composer) Via() []domain.Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Location, len(c.via))
	copy(out, c.via)
	return out
}

// Candidates returns the most recent applied search results for a slot.
func (c *Composer) Candidates(slot Slot) []domain.SearchCandidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.candidates[slot]
}

// SearchStop runs a free-text search for one stop slot. Each dispatch carries
// a per-slot generation token; a completed search is applied only while its
// token is still the slot's latest, so an out-of-order late response can
// never overwrite the results of a newer query. A discarded stale response
// returns (nil, nil).
func (c *Composer) SearchStop(ctx context.Context, slot Slot, query string) ([]domain.SearchCandidate, error) {
	c.mu.Lock()
	if c.state == StateIdle {
		c.state = StateComposing
	}
	c.searchGen[slot]++
	token := c.searchGen[slot]
	c.mu.Unlock()

	results, err := c.resolver.Search(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.searchGen[slot] != token {
		// Superseded by a newer dispatch for this slot.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.candidates[slot] = results
	return results, nil
}

// SelectCandidate resolves the chosen candidate and places it into the slot.
// The resolved name is overridden with the candidate description so the
// persisted label matches what the operator saw, not the detail service's
// reformatted address. An unresolvable candidate leaves the slot unchanged.
func (c *Composer) SelectCandidate(ctx context.Context, slot Slot, candidate domain.SearchCandidate) error {
	loc, err := c.resolver.Resolve(ctx, candidate.PlaceID)
	if err != nil {
		return err
	}
	if loc.IsZero() {
		return nil
	}

	loc.Name = candidate.Description
	loc.Kind = domain.LocationKindCustom

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setSlot(slot, loc)
}

// SelectOffice places a company office into the slot without any upstream
// call; office coordinates are already known.
func (c *Composer) SelectOffice(slot Slot, office domain.Office) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setSlot(slot, office.AsLocation())
}

func (c *Composer) setSlot(slot Slot, loc domain.Location) error {
	if c.state == StateIdle {
		c.state = StateComposing
	}
	switch slot.Kind {
	case SlotStart:
		c.start = &loc
	case SlotEnd:
		c.end = &loc
	case SlotVia:
		if slot.Index < 0 || slot.Index >= len(c.via) {
			return ErrInvalidSlot
		}
		c.via[slot.Index] = loc
	default:
		return ErrInvalidSlot
	}
	return nil
}

// AddStop appends a placeholder via entry. No resolution is triggered.
func (c *Composer) AddStop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle {
		c.state = StateComposing
	}
	c.via = append(c.via, domain.Location{})
}

// RemoveStop removes one via entry by index. The distance is not recomputed
// until the next Submit.
func (c *Composer) RemoveStop(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.via) {
		return ErrInvalidSlot
	}
	c.via = append(c.via[:index], c.via[index+1:]...)
	return nil
}

// BeginEdit loads a working copy of an existing route. Only one route can be
// in edit at a time; starting a new edit discards any previous working copy.
func (c *Composer) BeginEdit(route *domain.Route) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := route.Start
	end := route.End
	c.start = &start
	c.end = &end
	c.via = make([]domain.Location, len(route.Via))
	copy(c.via, route.Via)
	c.editingID = route.ID
	c.state = StateComposing
}

// CancelEdit discards the working copy without any store call.
func (c *Composer) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// Submit aggregates the distance for the current stop sequence and persists
// the route (create, or update when editing). The aggregate call always
// completes before the persist is issued because the persist payload embeds
// its result. The composer returns to an interactable state on every path:
// Idle after success, Composing with fields intact after a failure so the
// operator can retry.
func (c *Composer) Submit(ctx context.Context) (*domain.Route, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if c.start == nil {
		c.mu.Unlock()
		return nil, service.ErrMissingStart
	}
	if c.end == nil {
		c.mu.Unlock()
		return nil, service.ErrMissingEnd
	}

	c.inFlight = true
	c.state = StateResolving
	start := *c.start
	end := *c.end
	via := resolvedVia(c.via)
	editingID := c.editingID
	c.mu.Unlock()

	fail := func(err error) (*domain.Route, error) {
		c.mu.Lock()
		c.inFlight = false
		c.state = StateComposing
		c.mu.Unlock()
		return nil, err
	}

	km, resolved, err := c.aggregator.Aggregate(ctx, start, end, via)
	if err != nil {
		return fail(err)
	}

	c.mu.Lock()
	c.state = StatePersisting
	c.mu.Unlock()

	var route *domain.Route
	if editingID != "" {
		route, err = c.store.Update(ctx, service.UpdateRouteRequest{
			RouteID:          editingID,
			Start:            start,
			Via:              via,
			End:              end,
			DistanceKm:       km,
			DistanceResolved: resolved,
		})
	} else {
		route, err = c.store.Create(ctx, service.CreateRouteRequest{
			CompanyID:        c.companyID,
			CreatorID:        c.operatorID,
			Start:            start,
			Via:              via,
			End:              end,
			DistanceKm:       km,
			DistanceResolved: resolved,
		})
	}
	if err != nil {
		return fail(err)
	}

	c.mu.Lock()
	c.inFlight = false
	c.reset()
	c.mu.Unlock()
	return route, nil
}

// reset clears all composer-local fields. Callers must hold c.mu.
func (c *Composer) reset() {
	c.start = nil
	c.end = nil
	c.via = nil
	c.editingID = ""
	c.state = StateIdle
	c.candidates = make(map[Slot][]domain.SearchCandidate)
}

// resolvedVia drops placeholder rows the operator added but never filled in;
// the order of the remaining stops is preserved exactly.
func resolvedVia(via []domain.Location) []domain.Location {
	out := make([]domain.Location, 0, len(via))
	for _, v := range via {
		if v.IsZero() {
			continue
		}
		out = append(out, v)
	}
	return out
}

func copyLocation(l *domain.Location) *domain.Location {
	if l == nil {
		return nil
	}
	cp := *l
	return &cp
}

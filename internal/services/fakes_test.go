package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"eventlisting/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// moscowClock is fixedNow seen from a host whose local zone is UTC+3.
func moscowClock() time.Time { return fixedNow.In(time.FixedZone("MSK", 3*60*60)) }

// fakeEventRepo is an in-memory EventRepository for tests. Reads return copies.
type fakeEventRepo struct {
	byID      map[int64]*domain.Event
	nextID    int64
	createErr error
	updateErr error
	// searchResult, when set, is returned by Search as is.
	searchResult []*domain.Event
	lastFilter   domain.EventFilter
	updates      int
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[int64]*domain.Event), nextID: 100}
	for _, e := range events {
		cp := *e
		f.byID[e.ID] = &cp
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = f.nextID
	f.nextID++
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("event with id=%d was not found", id)
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeEventRepo) ListByInitiator(ctx context.Context, initiatorID int64, page domain.PageRequest) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.sorted() {
		if e.Initiator.ID == initiatorID {
			out = append(out, e)
		}
	}
	return paginate(out, page), nil
}

func (f *fakeEventRepo) Search(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.lastFilter = filter
	if f.searchResult != nil {
		return f.searchResult, nil
	}
	var out []*domain.Event
	for _, e := range f.sorted() {
		if filter.State != "" && e.State != filter.State {
			continue
		}
		if e.EventDate.Before(filter.RangeStart) || e.EventDate.After(filter.RangeEnd) {
			continue
		}
		out = append(out, e)
	}
	return paginate(out, filter.Page), nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[e.ID]; !ok {
		return domain.NewNotFoundError("event with id=%d was not found", e.ID)
	}
	cp := *e
	cp.ConfirmedRequests, cp.Views = 0, 0
	f.byID[e.ID] = &cp
	f.updates++
	return nil
}

func (f *fakeEventRepo) sorted() []*domain.Event {
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func paginate(events []*domain.Event, page domain.PageRequest) []*domain.Event {
	off := page.Offset()
	if off >= len(events) {
		return []*domain.Event{}
	}
	end := off + page.Limit()
	if page.Limit() <= 0 || end > len(events) {
		end = len(events)
	}
	return events[off:end]
}

type fakeUserRepo struct {
	byID map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.NewNotFoundError("user with id=%d was not found", id)
}

type fakeCategoryRepo struct {
	byID map[int64]*domain.Category
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.NewNotFoundError("category with id=%d was not found", id)
}

type fakeLocationRepo struct {
	created []domain.Location
}

func (f *fakeLocationRepo) Create(ctx context.Context, loc *domain.Location) error {
	loc.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *loc)
	return nil
}

// fakeParticipationRepo counts confirmed requests from a fixed map.
type fakeParticipationRepo struct {
	confirmed map[int64]int64
	err       error
}

func (f *fakeParticipationRepo) CountByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if status != domain.RequestConfirmed {
		return 0, nil
	}
	return f.confirmed[eventID], nil
}

func (f *fakeParticipationRepo) CountByEventsAndStatus(ctx context.Context, eventIDs []int64, status domain.RequestStatus) (map[int64]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[int64]int64)
	if status != domain.RequestConfirmed {
		return out, nil
	}
	for _, id := range eventIDs {
		if n, ok := f.confirmed[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

type fakeCommentRepo struct {
	byEvent map[int64][]*domain.Comment
}

func (f *fakeCommentRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
	return f.byEvent[eventID], nil
}

// fakeTransactor runs fn directly and records whether it committed.
type fakeTransactor struct {
	commits   int
	rollbacks int
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

// fakeStatsClient serves hits from a URI map and records every call.
type fakeStatsClient struct {
	hits     map[string]int64
	hitErr   error
	statsErr error
	sent     []domain.EndpointHit
	queries  []domain.StatsQuery
}

func (f *fakeStatsClient) Hit(ctx context.Context, hit domain.EndpointHit) error {
	f.sent = append(f.sent, hit)
	return f.hitErr
}

func (f *fakeStatsClient) Stats(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	f.queries = append(f.queries, q)
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	var out []domain.ViewStats
	for _, uri := range q.URIs {
		if n, ok := f.hits[uri]; ok {
			out = append(out, domain.ViewStats{App: "main_server", URI: uri, Hits: n})
		}
	}
	return out, nil
}

type fakeNotifier struct {
	created  []int64
	canceled []int64
	err      error
}

func (f *fakeNotifier) EventCreated(ctx context.Context, initiator *domain.User, event *domain.Event) error {
	f.created = append(f.created, event.ID)
	return f.err
}

func (f *fakeNotifier) EventCanceled(ctx context.Context, initiator *domain.User, event *domain.Event) error {
	f.canceled = append(f.canceled, event.ID)
	return f.err
}

func newTestGateway(client domain.StatsClient, events domain.EventRepository) *statsGateway {
	g := NewStatisticsGateway(client, events, "main_server", testLogger()).(*statsGateway)
	g.now = fixedClock
	return g
}

func ptr[T any](v T) *T { return &v }

var (
	alice   = domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	bob     = domain.User{ID: 2, Name: "Bob", Email: "bob@example.com"}
	music   = domain.Category{ID: 10, Name: "Music"}
	theatre = domain.Category{ID: 11, Name: "Theatre"}
)

func testEvent(id int64, initiator domain.User, state domain.State, date time.Time) *domain.Event {
	return &domain.Event{
		ID:               id,
		Title:            "Event",
		Annotation:       "Annotation",
		Description:      "Description",
		Category:         music,
		Initiator:        initiator,
		Location:         domain.Location{ID: 1, Lat: 55.75, Lon: 37.61},
		ParticipantLimit: 10,
		EventDate:        date,
		CreatedOn:        fixedNow.Add(-24 * time.Hour),
		State:            state,
	}
}

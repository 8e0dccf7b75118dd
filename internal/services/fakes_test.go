package services

import (
	"context"
	"sort"

	"conferencehub/internal/domain"
)

// fakeConferenceRepo is an in-memory ConferenceRepository for tests. Rows are stored by value
// so callers never share state with the store.
type fakeConferenceRepo struct {
	byID   map[int64]domain.Conference
	nextID int64
	err    error // if set, every call returns this error
}

func newFakeConferenceRepo() *fakeConferenceRepo {
	return &fakeConferenceRepo{byID: make(map[int64]domain.Conference), nextID: 1}
}

func (f *fakeConferenceRepo) Create(ctx context.Context, c *domain.Conference) error {
	if f.err != nil {
		return f.err
	}
	c.ID = f.nextID
	f.nextID++
	f.byID[c.ID] = *c
	return nil
}

func (f *fakeConferenceRepo) GetByID(ctx context.Context, id int64) (*domain.Conference, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f *fakeConferenceRepo) GetByTitle(ctx context.Context, title string) (*domain.Conference, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, id := range sortedKeys(f.byID) {
		if c := f.byID[id]; c.Title == title {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeConferenceRepo) List(ctx context.Context) ([]*domain.Conference, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Conference, 0, len(f.byID))
	for _, id := range sortedKeys(f.byID) {
		c := f.byID[id]
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeConferenceRepo) Update(ctx context.Context, id int64, fields domain.ConferenceFields) (*domain.Conference, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return nil, domain.ErrNotFound
	}
	c := *domain.NewConference(fields)
	c.ID = id
	f.byID[id] = c
	return &c, nil
}

// fakeTalkRepo is an in-memory TalkRepository for tests.
type fakeTalkRepo struct {
	byID    map[int64]domain.Talk
	nextID  int64
	err     error
	creates int
}

func newFakeTalkRepo() *fakeTalkRepo {
	return &fakeTalkRepo{byID: make(map[int64]domain.Talk), nextID: 1}
}

func (f *fakeTalkRepo) Create(ctx context.Context, t *domain.Talk) error {
	if f.err != nil {
		return f.err
	}
	f.creates++
	t.ID = f.nextID
	f.nextID++
	f.byID[t.ID] = *t
	return nil
}

func (f *fakeTalkRepo) GetByID(ctx context.Context, id int64) (*domain.Talk, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTalkRepo) ListByConferenceID(ctx context.Context, conferenceID int64) ([]*domain.Talk, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Talk, 0)
	for _, id := range sortedKeys(f.byID) {
		if t := f.byID[id]; t.ConferenceID == conferenceID {
			out = append(out, &t)
		}
	}
	return out, nil
}

func (f *fakeTalkRepo) Update(ctx context.Context, id int64, fields domain.TalkFields) (*domain.Talk, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return nil, domain.ErrNotFound
	}
	t := *domain.NewTalk(fields)
	t.ID = id
	f.byID[id] = t
	return &t, nil
}

// fakeSpeakerRepo is an in-memory SpeakerRepository for tests.
type fakeSpeakerRepo struct {
	byID   map[int64]domain.Speaker
	nextID int64
	err    error
}

func newFakeSpeakerRepo() *fakeSpeakerRepo {
	return &fakeSpeakerRepo{byID: make(map[int64]domain.Speaker), nextID: 1}
}

func (f *fakeSpeakerRepo) Create(ctx context.Context, s *domain.Speaker) error {
	if f.err != nil {
		return f.err
	}
	s.ID = f.nextID
	f.nextID++
	f.byID[s.ID] = *s
	return nil
}

func (f *fakeSpeakerRepo) GetByID(ctx context.Context, id int64) (*domain.Speaker, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSpeakerRepo) ListByTalkID(ctx context.Context, talkID int64) ([]*domain.Speaker, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Speaker, 0)
	for _, id := range sortedKeys(f.byID) {
		if s := f.byID[id]; s.TalkID == talkID {
			out = append(out, &s)
		}
	}
	return out, nil
}

func (f *fakeSpeakerRepo) AssignTalk(ctx context.Context, id, talkID int64) (*domain.Speaker, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.TalkID = talkID
	f.byID[id] = s
	return &s, nil
}

// fakeParticipantRepo is an in-memory ParticipantRepository for tests.
type fakeParticipantRepo struct {
	byID   map[int64]domain.Participant
	nextID int64
	err    error
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{byID: make(map[int64]domain.Participant), nextID: 1}
}

func (f *fakeParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	if f.err != nil {
		return f.err
	}
	p.ID = f.nextID
	f.nextID++
	f.byID[p.ID] = *p
	return nil
}

func (f *fakeParticipantRepo) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeParticipantRepo) ListByTalkID(ctx context.Context, talkID int64) ([]*domain.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Participant, 0)
	for _, id := range sortedKeys(f.byID) {
		if p := f.byID[id]; p.TalkID == talkID {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) AssignTalk(ctx context.Context, id, talkID int64) (*domain.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.TalkID = talkID
	f.byID[id] = p
	return &p, nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

package service

import (
	"context"
	"time"

	"smartcharge/internal/models"
	"smartcharge/internal/repository"
)

type fakeStationStore struct {
	stations   map[int64]*models.Station
	heartbeats int
}

func newFakeStationStore(stations ...*models.Station) *fakeStationStore {
	f := &fakeStationStore{stations: make(map[int64]*models.Station)}
	for _, s := range stations {
		f.stations[s.ID] = s
	}
	return f
}

func (f *fakeStationStore) GetByID(_ context.Context, id int64) (*models.Station, error) {
	s, ok := f.stations[id]
	if !ok {
		return nil, repository.ErrStationNotFound
	}
	snapshot := *s
	return &snapshot, nil
}

func (f *fakeStationStore) List(_ context.Context) ([]models.Station, error) {
	var out []models.Station
	for _, s := range f.stations {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStationStore) UpdateHeartbeat(_ context.Context, id int64, status *models.StationStatus) (*models.Station, error) {
	s, ok := f.stations[id]
	if !ok {
		return nil, repository.ErrStationNotFound
	}
	now := time.Now().UTC()
	s.LastPing = &now
	if status != nil {
		s.Status = *status
	}
	f.heartbeats++
	snapshot := *s
	return &snapshot, nil
}

type fakeTelemetryStore struct {
	samples []*models.TelemetrySample
	nextID  int64
}

func (f *fakeTelemetryStore) Insert(_ context.Context, sample *models.TelemetrySample) error {
	f.nextID++
	sample.ID = f.nextID
	sample.RecordedAt = time.Now().UTC()
	f.samples = append(f.samples, sample)
	return nil
}

func (f *fakeTelemetryStore) RecentByStation(_ context.Context, stationID int64, limit int) ([]models.TelemetrySample, error) {
	var out []models.TelemetrySample
	for i := len(f.samples) - 1; i >= 0 && len(out) < limit; i-- {
		if f.samples[i].StationID == stationID {
			out = append(out, *f.samples[i])
		}
	}
	return out, nil
}

type fakeCommandStore struct {
	commands []*models.Command
	nextID   int64
	base     time.Time
}

func (f *fakeCommandStore) Create(_ context.Context, cmd *models.Command) error {
	if f.base.IsZero() {
		f.base = time.Now().UTC()
	}
	f.nextID++
	cmd.ID = f.nextID
	cmd.Status = models.CommandPending
	cmd.CreatedAt = f.base.Add(time.Duration(f.nextID) * time.Second)
	f.commands = append(f.commands, cmd)
	return nil
}

func (f *fakeCommandStore) ClaimOldestPending(_ context.Context, stationID int64) (*models.Command, error) {
	var oldest *models.Command
	for _, cmd := range f.commands {
		if cmd.StationID != stationID || cmd.Status != models.CommandPending {
			continue
		}
		if oldest == nil || cmd.CreatedAt.Before(oldest.CreatedAt) ||
			(cmd.CreatedAt.Equal(oldest.CreatedAt) && cmd.ID < oldest.ID) {
			oldest = cmd
		}
	}
	if oldest == nil {
		return nil, nil
	}
	now := time.Now().UTC()
	oldest.Status = models.CommandSent
	oldest.SentAt = &now
	snapshot := *oldest
	return &snapshot, nil
}

func (f *fakeCommandStore) RecentByStation(_ context.Context, stationID int64, limit int) ([]models.Command, error) {
	var out []models.Command
	for i := len(f.commands) - 1; i >= 0 && len(out) < limit; i-- {
		if f.commands[i].StationID == stationID {
			out = append(out, *f.commands[i])
		}
	}
	return out, nil
}

func (f *fakeCommandStore) sentCount() int {
	n := 0
	for _, cmd := range f.commands {
		if cmd.Status == models.CommandSent {
			n++
		}
	}
	return n
}

// fakeReservationStore mirrors the repository's half-open overlap predicate.
type fakeReservationStore struct {
	existing []models.Reservation
	nextID   int64
}

func (f *fakeReservationStore) Create(_ context.Context, res *models.Reservation) error {
	for _, e := range f.existing {
		if e.StationID != res.StationID || e.Status.Terminal() {
			continue
		}
		if res.StartTime.Before(e.EndTime) && res.EndTime.After(e.StartTime) {
			return repository.ErrReservationConflict
		}
	}
	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now().UTC()
	f.existing = append(f.existing, *res)
	return nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	user.CreatedAt = time.Now().UTC()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			snapshot := *u
			return &snapshot, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	snapshot := *u
	return &snapshot, nil
}

func fptr(v float64) *float64 {
	return &v
}

func sptr(v string) *string {
	return &v
}

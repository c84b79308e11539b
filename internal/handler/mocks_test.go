package handler_test

import (
	"context"
	"time"

	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/repository"
)

// In-memory store fakes backing the handler tests. They mirror the
// repository semantics: sentinel errors, store-assigned ids, join on list.

type fakeUsers struct {
	seq    uint64
	byID   map[uint64]model.User
	byName map[string]model.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uint64]model.User{}, byName: map[string]model.User{}}
}

func (f *fakeUsers) Create(ctx context.Context, username, passwordHash string) (model.User, error) {
	if _, ok := f.byName[username]; ok {
		return model.User{}, repository.ErrUsernameExists
	}
	f.seq++
	u := model.User{ID: f.seq, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now().UTC()}
	f.byID[u.ID] = u
	f.byName[u.Username] = u
	return u, nil
}

func (f *fakeUsers) GetByUsername(ctx context.Context, username string) (model.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

type sessionRow struct {
	userID uint64
	exp    time.Time
}

// fakeSessions satisfies both the handler's SessionStore (Create/Delete)
// and the middleware's (Validate/Touch), so one instance can back a whole
// routed test server.
type fakeSessions struct {
	byHash map[string]sessionRow
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byHash: map[string]sessionRow{}}
}

func (f *fakeSessions) Create(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
	f.byHash[tokenHash] = sessionRow{userID: userID, exp: exp}
	return nil
}

func (f *fakeSessions) Delete(ctx context.Context, tokenHash string) error {
	delete(f.byHash, tokenHash)
	return nil
}

func (f *fakeSessions) Validate(ctx context.Context, tokenHash string) (uint64, error) {
	row, ok := f.byHash[tokenHash]
	if !ok || time.Now().UTC().After(row.exp) {
		return 0, repository.ErrNotFound
	}
	return row.userID, nil
}

func (f *fakeSessions) Touch(ctx context.Context, tokenHash string, exp time.Time) error {
	if row, ok := f.byHash[tokenHash]; ok {
		row.exp = exp
		f.byHash[tokenHash] = row
	}
	return nil
}

type fakeTours struct {
	tours []model.Tour
}

func (f *fakeTours) ListAll(ctx context.Context) ([]model.Tour, error) {
	return append([]model.Tour(nil), f.tours...), nil
}

func (f *fakeTours) GetByID(ctx context.Context, id uint64) (model.Tour, error) {
	for _, t := range f.tours {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Tour{}, repository.ErrNotFound
}

type fakeBookings struct {
	seq   uint64
	items []model.Booking
	tours *fakeTours
}

func (f *fakeBookings) Create(ctx context.Context, userID, tourID uint64) (model.Booking, error) {
	f.seq++
	b := model.Booking{ID: f.seq, UserID: userID, TourID: tourID, BookedAt: time.Now().UTC()}
	f.items = append(f.items, b)
	return b, nil
}

func (f *fakeBookings) ListByUser(ctx context.Context, userID uint64) ([]repository.BookingWithTour, error) {
	out := make([]repository.BookingWithTour, 0)
	for _, b := range f.items {
		if b.UserID != userID {
			continue
		}
		t, err := f.tours.GetByID(ctx, b.TourID)
		if err != nil {
			continue // inner join: bookings without a tour do not appear
		}
		out = append(out, repository.BookingWithTour{Booking: b, Tour: t})
	}
	return out, nil
}

package booking

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"meetspace/internal/domain"
	"meetspace/internal/pkg/interval"
	"meetspace/internal/queue"
	"meetspace/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	store     BookingStore
	directory Directory
	events    EventPublisher
	now       func() time.Time
}

// NewService wires the admission service. events may be nil.
func NewService(store BookingStore, directory Directory, events EventPublisher) *Service {
	return &Service{
		store:     store,
		directory: directory,
		events:    events,
		now:       time.Now,
	}
}

// CreateBooking admits a booking or returns the first failing check, in
// this order: office, room, room/office match, interval, title, overlap.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (string, error) {
	office, err := s.directory.GetOffice(ctx, in.OfficeID)
	if err != nil {
		return "", mapLookup(err, ErrOfficeNotFound)
	}
	if !office.IsActive() {
		return "", ErrOfficeInactive
	}

	room, err := s.directory.GetRoom(ctx, in.RoomID)
	if err != nil {
		return "", mapLookup(err, ErrRoomNotFound)
	}
	if !room.IsActive() {
		return "", ErrRoomInactive
	}
	if room.OfficeID != office.ID {
		return "", ErrMismatch
	}

	start := interval.Compose(in.Date, in.Start)
	end := interval.Compose(in.Date, in.End)
	if !end.After(start) {
		return "", ErrInvalidInterval
	}

	title := strings.TrimSpace(in.Title)
	if utf8.RuneCountInString(title) > domain.MaxBookingTitleLen {
		return "", ErrTitleTooLong
	}

	b := &domain.Booking{
		ID:          uuid.NewString(),
		RoomID:      room.ID,
		OwnerUserID: in.OwnerUserID,
		StartUTC:    start,
		EndUTC:      end,
		Title:       title,
		State:       domain.BookingActive,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.store.TryInsertIfNoConflict(ctx, b); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return "", ErrConflict
		case errors.Is(err, repository.ErrNotFound):
			return "", ErrRoomNotFound
		}
		return "", err
	}

	s.publish(ctx, queue.Event{
		Type:      queue.EventBookingCreated,
		BookingID: b.ID,
		RoomID:    b.RoomID,
		OfficeID:  office.ID,
		UserID:    b.OwnerUserID,
		ActorID:   b.OwnerUserID,
		StartUTC:  b.StartUTC,
		EndUTC:    b.EndUTC,
	})

	return b.ID, nil
}

// CancelBooking cancels the booking when the caller owns it or is elevated.
// Cancelling an already cancelled booking succeeds without writing.
func (s *Service) CancelBooking(ctx context.Context, bookingID, requestingUserID string, isElevated bool) error {
	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return mapLookup(err, ErrBookingNotFound)
	}

	if !isElevated && b.OwnerUserID != requestingUserID {
		return ErrForbidden
	}

	if !b.Cancel() {
		return nil
	}

	if err := s.store.Update(ctx, b); err != nil {
		return mapLookup(err, ErrBookingNotFound)
	}

	s.publish(ctx, queue.Event{
		Type:      queue.EventBookingCancelled,
		BookingID: b.ID,
		RoomID:    b.RoomID,
		UserID:    b.OwnerUserID,
		ActorID:   requestingUserID,
		StartUTC:  b.StartUTC,
		EndUTC:    b.EndUTC,
	})
	return nil
}

// ListAvailableRooms returns the office's active rooms that satisfy the
// capacity filter and, when a full window is given, have no active booking
// overlapping it.
func (s *Service) ListAvailableRooms(ctx context.Context, q AvailabilityQuery) ([]RoomSummary, error) {
	office, err := s.directory.GetOffice(ctx, q.OfficeID)
	if err != nil {
		return nil, mapLookup(err, ErrOfficeNotFound)
	}
	if !office.IsActive() {
		return nil, ErrOfficeInactive
	}

	filterByWindow := q.Date != nil && q.Start != nil && q.End != nil
	var winStart, winEnd time.Time
	if filterByWindow {
		winStart = interval.Compose(*q.Date, *q.Start)
		winEnd = interval.Compose(*q.Date, *q.End)
		if !winEnd.After(winStart) {
			return nil, ErrInvalidInterval
		}
	}

	rooms, err := s.directory.ListActiveRoomsByOffice(ctx, office.ID, q.MinCapacity)
	if err != nil {
		return nil, err
	}

	busy := map[string]bool{}
	if filterByWindow {
		bookings, err := s.store.ListByOfficeAndDate(ctx, office.ID, *q.Date)
		if err != nil {
			return nil, err
		}
		for _, b := range bookings {
			if b.IsCancelled() {
				continue
			}
			if interval.Overlaps(b.StartUTC, b.EndUTC, winStart, winEnd) {
				busy[b.RoomID] = true
			}
		}
	}

	out := make([]RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		if busy[r.ID] {
			continue
		}
		out = append(out, RoomSummary{
			ID:          r.ID,
			OfficeID:    r.OfficeID,
			Name:        r.Name,
			Capacity:    r.Capacity,
			Description: r.Description,
		})
	}
	return out, nil
}

// ListUserBookings returns all bookings of the user, cancelled ones
// included, newest start first.
func (s *Service) ListUserBookings(ctx context.Context, userID string) ([]BookingSummary, error) {
	rows, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingSummary, 0, len(rows))
	for _, b := range rows {
		item := BookingSummary{
			ID:          b.ID,
			RoomID:      b.RoomID,
			Date:        b.StartUTC.UTC().Format(interval.DateLayout),
			StartTime:   b.StartUTC.UTC().Format(interval.ClockLayout),
			EndTime:     b.EndUTC.UTC().Format(interval.ClockLayout),
			Title:       b.Title,
			IsCancelled: b.IsCancelled(),
		}
		if b.Room != nil {
			item.RoomName = b.Room.Name
			item.OfficeID = b.Room.OfficeID
			if b.Room.Office != nil {
				item.OfficeName = b.Room.Office.Name
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *Service) publish(ctx context.Context, ev queue.Event) {
	if s.events == nil {
		return
	}
	ev.OccurredAt = s.now().UTC()
	if err := s.events.Publish(ctx, ev); err != nil {
		log.Printf("booking_event_publish_failed type=%s booking_id=%s error=%v", ev.Type, ev.BookingID, err)
	}
}

func mapLookup(err, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return err
}

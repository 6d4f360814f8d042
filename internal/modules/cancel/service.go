package cancel

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/pkg/recurring"
)

// Layout matching the confirmation screen: "15:04, Monday 02 January 2026".
const displayTimeLayout = "15:04, Monday 02 January 2006"

type Service struct {
	bookings   BookingRepository
	displayLoc *time.Location
}

func NewService(bookings BookingRepository, displayLoc *time.Location) *Service {
	if displayLoc == nil {
		displayLoc = time.Local
	}
	return &Service{
		bookings:   bookings,
		displayLoc: displayLoc,
	}
}

// PageData resolves everything the cancellation confirmation screen needs.
// sessionUserID is 0 for anonymous visitors. Pure read; eligibility is
// evaluated against the wall clock on every call. An unknown uid is not an
// error: the screen renders its terminal message off a null booking.
func (s *Service) PageData(ctx context.Context, uid string, allRemaining bool, sessionUserID int64) (*PageData, error) {
	b, err := s.bookings.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return &PageData{}, nil
	}

	now := time.Now()
	allowed := (sessionUserID != 0 && sessionUserID == b.UserID) || !b.StartTime.Before(now)

	var rec *recurring.Event
	if b.EventType != nil {
		rec = recurring.Parse(b.EventType.RecurringEvent)
	}

	var instances []InstanceView
	if rec != nil && allRemaining && b.RecurringEventID != "" {
		rows, err := s.bookings.FindRecurringInstances(ctx, b.RecurringEventID, now)
		if err != nil {
			return nil, err
		}
		instances = make([]InstanceView, 0, len(rows))
		for _, r := range rows {
			instances = append(instances, InstanceView{
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
				Display:   r.StartTime.In(s.displayLoc).Format(displayTimeLayout),
			})
		}
	}

	view := &BookingView{
		UID:            b.UID,
		Title:          b.Title,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         b.Status,
		Team:           hasTeam(b),
		RecurringEvent: rec,
	}
	if rec != nil && instances != nil {
		view.RecurringDescription = recurring.Describe(rec, len(instances))
	}

	return &PageData{
		Profile:             profileFor(b),
		Booking:             view,
		RecurringInstances:  instances,
		CancellationAllowed: allowed,
		RescheduleURL:       "/reschedule/" + url.PathEscape(uid),
	}, nil
}

// Cancel marks the booking cancelled and, when requested for a recurring
// series, every remaining future instance too. Returns the success
// navigation target.
func (s *Service) Cancel(ctx context.Context, req CancelRequest) (*CancelResult, error) {
	b, err := s.bookings.GetByUID(ctx, req.UID)
	if err != nil {
		return nil, err
	}
	if b == nil || b.Status == domain.BookingCancelled {
		return nil, ErrNotFound
	}

	now := time.Now()

	var rec *recurring.Event
	if b.EventType != nil {
		rec = recurring.Parse(b.EventType.RecurringEvent)
	}
	cancelSeries := req.AllRemainingBookings && rec != nil && b.RecurringEventID != ""

	ok, err := s.bookings.CancelWithReason(ctx, req.UID, req.CancellationReason, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	cancelled := int64(1)
	if cancelSeries {
		n, err := s.bookings.CancelRemainingInSeries(ctx, b.RecurringEventID, req.CancellationReason, now, now)
		if err != nil {
			return nil, err
		}
		cancelled += n
	}

	return &CancelResult{
		SuccessURL: successURL(profileFor(b), b, cancelSeries),
		Cancelled:  cancelled,
	}, nil
}

func profileFor(b *domain.Booking) Profile {
	var p Profile
	if b.User != nil {
		p.Name = b.User.Name
		p.Slug = b.User.Username
		p.BrandColor = b.User.BrandColor
		p.DarkBrandColor = b.User.DarkBrandColor
	}
	// Team name and slug take precedence over the individual user's.
	if b.EventType != nil && b.EventType.Team != nil {
		p.Name = b.EventType.Team.Name
		p.Slug = b.EventType.Team.Slug
	}
	return p
}

func hasTeam(b *domain.Booking) bool {
	return b.EventType != nil && b.EventType.Team != nil
}

func successURL(p Profile, b *domain.Booking, recurringAll bool) string {
	team := "0"
	if hasTeam(b) {
		team = "1"
	}

	q := url.Values{}
	q.Set("name", p.Name)
	q.Set("title", b.Title)
	q.Set("eventPage", p.Slug)
	q.Set("team", team)
	q.Set("recurring", strconv.FormatBool(recurringAll))
	return "/cancel/success?" + q.Encode()
}

package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/repositories"
	"github.com/meinhoongagan/skillverify/utils"
	"github.com/sirupsen/logrus"
)

type BookingService struct {
	store    *repositories.Store
	notifier *Notifier
}

func NewBookingService(store *repositories.Store, notifier *Notifier) *BookingService {
	if notifier == nil {
		notifier = NewNotifier(nil)
	}
	return &BookingService{store: store, notifier: notifier}
}

// CreateBooking books a worker for the customer. The amount is the worker's
// hourly rate right now; later rate changes never reprice the booking.
func (s *BookingService) CreateBooking(ctx context.Context, customerID uuid.UUID, req *dtos.CreateBookingRequest) (*dtos.BookingResponse, error) {
	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return nil, ErrWorkerNotFound
	}
	worker, err := s.store.Workers.FindByID(ctx, workerID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}
	if !worker.IsAvailable {
		return nil, ErrWorkerUnavailable
	}

	date, err := utils.ParseScheduledDate(req.ScheduledDate)
	if err != nil {
		return nil, ErrInvalidScheduledDate.Wrap(err)
	}
	if !utils.ValidClock(req.ScheduledTime) {
		return nil, ErrInvalidScheduledTime
	}

	booking := &models.Booking{
		CustomerID:    customerID,
		WorkerID:      worker.ID,
		Service:       strings.TrimSpace(req.Service),
		Description:   req.Description,
		ScheduledDate: date,
		ScheduledTime: req.ScheduledTime,
		Address:       strings.TrimSpace(req.Address),
		Status:        models.BookingPending,
		Amount:        worker.HourlyRate,
		PaymentStatus: models.PaymentPending,
	}

	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Bookings.Create(ctx, booking); err != nil {
			return err
		}
		return tx.Workers.IncrementBookings(ctx, worker.ID)
	})
	if err != nil {
		return nil, utils.Internal(err)
	}

	created, err := s.store.Bookings.FindWithParties(ctx, booking.ID)
	if err != nil {
		return nil, utils.Internal(err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"booking_id":  created.ID,
		"customer_id": customerID,
		"worker_id":   worker.ID,
		"amount":      created.Amount,
	}).Info("booking created")

	s.notifier.BookingCreated(created)

	return dtos.NewBookingResponse(created).WithWorker(&created.Worker).WithCustomer(&created.Customer), nil
}

// GetCustomerBookings lists the customer's bookings, newest first, each with
// the worker card and whether it has been reviewed.
func (s *BookingService) GetCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*dtos.BookingResponse, error) {
	bookings, err := s.store.Bookings.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	out := make([]*dtos.BookingResponse, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		out = append(out, dtos.NewBookingResponse(b).WithWorker(&b.Worker).WithReviewFlag(b))
	}
	return out, nil
}

// GetWorkerBookings lists bookings made with the caller's worker profile.
// A worker without a profile has no bookings.
func (s *BookingService) GetWorkerBookings(ctx context.Context, userID uuid.UUID) ([]*dtos.BookingResponse, error) {
	profile, err := s.store.Workers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if profile == nil {
		return []*dtos.BookingResponse{}, nil
	}

	bookings, err := s.store.Bookings.ListByWorker(ctx, profile.ID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	out := make([]*dtos.BookingResponse, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		out = append(out, dtos.NewBookingResponse(b).WithCustomer(&b.Customer))
	}
	return out, nil
}

// UpdateBookingStatus applies one edge of the booking state machine. Only the
// booking's customer or its worker may act, and customers may only cancel.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, session *models.Session, bookingID uuid.UUID, status string) (*dtos.BookingResponse, error) {
	next := models.BookingStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	booking, err := s.store.Bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	isCustomer := booking.CustomerID == session.UserID
	isWorker := booking.Worker.UserID == session.UserID
	if !isCustomer && !isWorker {
		return nil, ErrForbidden
	}

	actor := models.RoleWorker
	if isCustomer {
		actor = models.RoleCustomer
		if next != models.BookingCancelled {
			return nil, ErrCustomersCanOnlyCancel
		}
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	ok, err := s.store.Bookings.UpdateStatus(ctx, booking.ID, booking.Status, next)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if !ok {
		return nil, ErrStatusConflict
	}

	updated, err := s.store.Bookings.FindWithParties(ctx, booking.ID)
	if err != nil {
		return nil, utils.Internal(err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"from":       booking.Status,
		"to":         next,
		"actor":      actor,
	}).Info("booking status changed")

	s.notifier.StatusChanged(updated, actor)

	return dtos.NewBookingResponse(updated).
		WithWorker(&updated.Worker).
		WithCustomer(&updated.Customer).
		WithReviewFlag(updated), nil
}

package services_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/repositories"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/meinhoongagan/skillverify/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type sentMail struct {
	To, Subject, Body string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *recordingMailer) Sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

type memoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func (r *memoryRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[tokenID] = ttl
	return nil
}

func (r *memoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[tokenID]
	return ok, nil
}

type fakeUploader struct {
	publicID string
}

func (u *fakeUploader) UploadImage(_ context.Context, file any, publicID string) (string, error) {
	if r, ok := file.(io.Reader); ok {
		_, _ = io.Copy(io.Discard, r)
	}
	u.publicID = publicID
	return "https://res.cloudinary.com/demo/image/upload/" + publicID + ".jpg", nil
}

type env struct {
	db       *gorm.DB
	store    *repositories.Store
	tokens   *services.TokenService
	revoker  *memoryRevoker
	mailer   *recordingMailer
	notifier *services.Notifier
	uploader *fakeUploader
	seq      int

	auth     *services.AuthService
	workers  *services.WorkerService
	bookings *services.BookingService
	reviews  *services.ReviewService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gdb := testutil.NewDB(t)

	e := &env{
		db:       gdb,
		store:    repositories.NewStore(gdb),
		revoker:  &memoryRevoker{revoked: map[string]time.Duration{}},
		mailer:   &recordingMailer{},
		uploader: &fakeUploader{},
	}
	e.tokens = services.NewTokenService("test-secret", 7*24*time.Hour, e.revoker)
	e.notifier = services.NewNotifier(e.mailer)
	e.auth = services.NewAuthService(e.store, e.tokens, e.uploader, bcrypt.MinCost)
	e.workers = services.NewWorkerService(e.store)
	e.bookings = services.NewBookingService(e.store, e.notifier)
	e.reviews = services.NewReviewService(e.store)
	return e
}

func (e *env) customer(t *testing.T, name, email, phone string) *models.User {
	return testutil.CreateUser(t, e.db, models.RoleCustomer, name, email, phone)
}

func (e *env) worker(t *testing.T, opts testutil.WorkerOptions) *models.WorkerProfile {
	return testutil.CreateWorker(t, e.db, opts)
}

func workerSession(w *models.WorkerProfile) *models.Session {
	return &models.Session{UserID: w.UserID, Email: w.User.Email, Role: models.RoleWorker}
}

func customerSession(u *models.User) *models.Session {
	return &models.Session{UserID: u.ID, Email: u.Email, Role: models.RoleCustomer}
}

func (e *env) book(t *testing.T, customer *models.User, worker *models.WorkerProfile) *dtos.BookingResponse {
	t.Helper()
	b, err := e.bookings.CreateBooking(context.Background(), customer.ID, &dtos.CreateBookingRequest{
		WorkerID:      worker.ID.String(),
		Service:       "Pipe repair",
		Description:   "Kitchen sink leaking",
		ScheduledDate: "2025-06-01",
		ScheduledTime: "10:00",
		Address:       "12 MG Road, Pune",
	})
	require.NoError(t, err)
	return b
}

// complete drives a booking PENDING -> CONFIRMED -> COMPLETED as its worker.
func (e *env) complete(t *testing.T, worker *models.WorkerProfile, booking *dtos.BookingResponse) {
	t.Helper()
	ctx := context.Background()
	_, err := e.bookings.UpdateBookingStatus(ctx, workerSession(worker), booking.ID, string(models.BookingConfirmed))
	require.NoError(t, err)
	_, err = e.bookings.UpdateBookingStatus(ctx, workerSession(worker), booking.ID, string(models.BookingCompleted))
	require.NoError(t, err)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

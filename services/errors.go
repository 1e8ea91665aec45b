package services

import (
	"net/http"

	"github.com/meinhoongagan/skillverify/utils"
)

var (
	ErrEmailTaken         = utils.NewAppError(http.StatusConflict, "email_taken", "Email is already registered")
	ErrPhoneTaken         = utils.NewAppError(http.StatusConflict, "phone_taken", "Phone number is already registered")
	ErrInvalidRole        = utils.NewAppError(http.StatusBadRequest, "invalid_role", "Role must be CUSTOMER or WORKER")
	ErrInvalidCredentials = utils.NewAppError(http.StatusUnauthorized, "invalid_credentials", "Invalid email, password or account type")
	ErrNotFound           = utils.NewAppError(http.StatusNotFound, "not_found", "User not found")
	ErrUnauthorized       = utils.NewAppError(http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
	ErrUploadUnavailable  = utils.NewAppError(http.StatusServiceUnavailable, "upload_unavailable", "Image uploads are not available")

	ErrWorkerNotFound      = utils.NewAppError(http.StatusNotFound, "worker_not_found", "Worker not found")
	ErrWorkerUnavailable   = utils.NewAppError(http.StatusBadRequest, "worker_unavailable", "Worker is not available for bookings")
	ErrInvalidVerification = utils.NewAppError(http.StatusBadRequest, "invalid_verification_status", "Unknown verification status")

	ErrInvalidScheduledDate   = utils.NewAppError(http.StatusBadRequest, "invalid_scheduled_date", "Scheduled date must be YYYY-MM-DD between 2020 and 2100")
	ErrInvalidScheduledTime   = utils.NewAppError(http.StatusBadRequest, "invalid_scheduled_time", "Scheduled time must be HH:MM")
	ErrBookingNotFound        = utils.NewAppError(http.StatusNotFound, "booking_not_found", "Booking not found")
	ErrForbidden              = utils.NewAppError(http.StatusForbidden, "forbidden", "You are not a party to this booking")
	ErrCustomersCanOnlyCancel = utils.NewAppError(http.StatusForbidden, "customers_can_only_cancel", "Customers can only cancel bookings")
	ErrInvalidStatus          = utils.NewAppError(http.StatusBadRequest, "invalid_status", "Unknown booking status")
	ErrInvalidTransition      = utils.NewAppError(http.StatusBadRequest, "invalid_status_transition", "Booking cannot move to that status")
	ErrStatusConflict         = utils.NewAppError(http.StatusConflict, "status_conflict", "Booking was updated by someone else, reload and retry")

	ErrInvalidRating       = utils.NewAppError(http.StatusBadRequest, "invalid_rating", "Rating must be between 1 and 5")
	ErrNotYourBooking      = utils.NewAppError(http.StatusForbidden, "not_your_booking", "You can only review your own bookings")
	ErrBookingNotCompleted = utils.NewAppError(http.StatusBadRequest, "booking_not_completed", "Only completed bookings can be reviewed")
	ErrAlreadyReviewed     = utils.NewAppError(http.StatusConflict, "already_reviewed", "This booking has already been reviewed")
)

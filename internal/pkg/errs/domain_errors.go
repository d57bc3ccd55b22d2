package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Validation errors
	ErrInvalidStayRange    = errors.New("check-out date must be after check-in date")
	ErrInvalidPeopleCount  = errors.New("people count must be between 1 and 4")
	ErrInvalidRoomType     = errors.New("invalid room type")
	ErrInvalidPagination   = errors.New("invalid pagination arguments")
	ErrDomainValidation    = errors.New("domain validation error")

	// Reservation errors
	ErrReservationNotFound         = errors.New("reservation not found")
	ErrReservationAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrReservationConflict         = errors.New("reservation conflicts with an existing booking")

	// Availability errors
	ErrNoRoomsAvailable = errors.New("no rooms available for the selected dates and people count")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

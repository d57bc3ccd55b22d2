//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/domain/room"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/clock"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/errs"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Validation failures must short-circuit before any transaction is opened,
// so the command is constructed without a pool here on purpose.
func TestCreateReservation_InputValidation(t *testing.T) {
	cmd := commands.NewReservationCommands(nil, nil, nil, nil, clock.NewMockClock(time.Now()))

	checkIn := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)

	validInput := func() commands.CreateReservationInput {
		return commands.CreateReservationInput{
			CheckIn:  checkIn,
			CheckOut: checkOut,
			People:   2,
			RoomType: room.TypeDouble,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*commands.CreateReservationInput)
		wantErr error
	}{
		{
			name:    "check-out before check-in",
			mutate:  func(in *commands.CreateReservationInput) { in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn },
			wantErr: errs.ErrInvalidStayRange,
		},
		{
			name:    "same-day stay",
			mutate:  func(in *commands.CreateReservationInput) { in.CheckOut = in.CheckIn },
			wantErr: errs.ErrInvalidStayRange,
		},
		{
			name:    "zero people",
			mutate:  func(in *commands.CreateReservationInput) { in.People = 0 },
			wantErr: errs.ErrInvalidPeopleCount,
		},
		{
			name:    "too many people",
			mutate:  func(in *commands.CreateReservationInput) { in.People = 5 },
			wantErr: errs.ErrInvalidPeopleCount,
		},
		{
			name:    "unknown room type",
			mutate:  func(in *commands.CreateReservationInput) { in.RoomType = room.Type("PENTHOUSE") },
			wantErr: errs.ErrInvalidRoomType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := cmd.CreateReservation(context.Background(), uuid.New(), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/library-seat-booking/internal/model"
)

func booked(user uint64, shiftID, seat string) model.SeatBooking {
	return model.SeatBooking{UserID: user, Shift: shiftID, SeatNumber: seat, Status: model.BookingBooked}
}

func TestNewBoardPartitionsByOwner(t *testing.T) {
	all := []model.SeatBooking{
		booked(1, "morning", "S1"),
		booked(2, "morning", "S2"),
		booked(1, "evening", "S7"),
	}
	b := NewBoard(all, 1)
	assert.Len(t, b.All, 3)
	assert.Len(t, b.Mine, 2)
	for _, row := range b.Mine {
		assert.Equal(t, uint64(1), row.UserID)
	}
}

func TestCheckShiftAlreadyBooked(t *testing.T) {
	b := NewBoard([]model.SeatBooking{booked(1, "morning", "S3")}, 1)

	// Every seat for that shift is rejected, including the held one.
	assert.ErrorIs(t, b.Check("morning", "S10"), ErrShiftAlreadyBooked)
	assert.ErrorIs(t, b.Check("morning", "S3"), ErrShiftAlreadyBooked)

	// A different shift is still open.
	assert.NoError(t, b.Check("evening", "S3"))
}

func TestCheckSeatTaken(t *testing.T) {
	// Seat S5 held by user A for evening; user B wants it too.
	b := NewBoard([]model.SeatBooking{booked(7, "evening", "S5")}, 42)

	assert.ErrorIs(t, b.Check("evening", "S5"), ErrSeatTaken)
	// Same seat on another shift is free.
	assert.NoError(t, b.Check("night", "S5"))
	// Another seat on the same shift is free.
	assert.NoError(t, b.Check("evening", "S6"))
}

func TestCheckIgnoresNonBookedRows(t *testing.T) {
	released := model.SeatBooking{UserID: 7, Shift: "noon", SeatNumber: "S12", Status: model.BookingAvailable}
	b := NewBoard([]model.SeatBooking{released}, 42)
	assert.NoError(t, b.Check("noon", "S12"))

	mine := model.SeatBooking{UserID: 42, Shift: "noon", SeatNumber: "S12", Status: model.BookingAvailable}
	b = NewBoard([]model.SeatBooking{mine}, 42)
	assert.False(t, b.UserHasShift("noon"))
}

func TestUserSeatForShift(t *testing.T) {
	b := NewBoard([]model.SeatBooking{booked(1, "morning", "S3"), booked(2, "morning", "S4")}, 1)
	assert.Equal(t, "S3", b.UserSeatForShift("morning"))
	assert.Equal(t, "", b.UserSeatForShift("noon"))
	assert.True(t, b.SeatBooked("morning", "S4"))
	assert.False(t, b.SeatBooked("morning", "S5"))
}

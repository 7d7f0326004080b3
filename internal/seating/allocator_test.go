package seating

import (
	"errors"
	"testing"

	"edufleet-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func roster(rolls ...int32) []domain.Student {
	students := make([]domain.Student, len(rolls))
	for i, roll := range rolls {
		students[i] = domain.Student{
			ID:         roll + 100,
			ClassID:    1,
			SectionID:  2,
			RollNumber: roll,
			Name:       "Student",
		}
	}
	return students
}

func TestAllocate(t *testing.T) {
	t.Run("Range filters roster", func(t *testing.T) {
		rules := []domain.SeatRule{{StartRoll: 1, EndRoll: 10, Row: "A", RoomNumber: "101"}}

		seats, err := Allocate(roster(1, 2, 50), rules, 1, 2, 3)
		assert.NoError(t, err)
		assert.Len(t, seats, 2)
		assert.Equal(t, int32(1), seats[0].SeatNumber)
		assert.Equal(t, int32(101), *seats[0].StudentID)
		assert.Equal(t, int32(2), seats[1].SeatNumber)
		assert.Equal(t, int32(102), *seats[1].StudentID)
	})

	t.Run("Empty range yields one placeholder", func(t *testing.T) {
		rules := []domain.SeatRule{{StartRoll: 100, EndRoll: 110, Row: "B", RoomNumber: "102"}}

		seats, err := Allocate(roster(1), rules, 1, 2, 3)
		assert.NoError(t, err)
		assert.Len(t, seats, 1)
		assert.Equal(t, int32(1), seats[0].SeatNumber)
		assert.Nil(t, seats[0].StudentID)
		assert.Nil(t, seats[0].StudentName)
		assert.Equal(t, "B", seats[0].Row)
	})

	t.Run("Counter runs across rules", func(t *testing.T) {
		rules := []domain.SeatRule{
			{StartRoll: 1, EndRoll: 2, Row: "A", RoomNumber: "101"},
			{StartRoll: 3, EndRoll: 4, Row: "B", RoomNumber: "101"},
		}

		seats, err := Allocate(roster(1, 2, 3, 4), rules, 1, 2, 3)
		assert.NoError(t, err)
		assert.Len(t, seats, 4)
		for i, seat := range seats {
			assert.Equal(t, int32(i+1), seat.SeatNumber)
		}
		assert.Equal(t, "A", seats[1].Row)
		assert.Equal(t, "B", seats[2].Row)
	})

	t.Run("Overlapping rules duplicate students", func(t *testing.T) {
		rules := []domain.SeatRule{
			{StartRoll: 1, EndRoll: 5, Row: "A", RoomNumber: "101"},
			{StartRoll: 4, EndRoll: 8, Row: "B", RoomNumber: "102"},
		}

		seats, err := Allocate(roster(4, 5), rules, 1, 2, 3)
		assert.NoError(t, err)
		assert.Len(t, seats, 4)
		assert.Equal(t, int32(104), *seats[0].StudentID)
		assert.Equal(t, int32(104), *seats[2].StudentID)
		assert.Equal(t, "A", seats[0].Row)
		assert.Equal(t, "B", seats[2].Row)
	})

	t.Run("No placeholder when row already seated", func(t *testing.T) {
		// Second rule matches nobody but targets an already occupied row.
		rules := []domain.SeatRule{
			{StartRoll: 1, EndRoll: 5, Row: "A", RoomNumber: "101"},
			{StartRoll: 90, EndRoll: 99, Row: "A", RoomNumber: "101"},
		}

		seats, err := Allocate(roster(1), rules, 1, 2, 3)
		assert.NoError(t, err)
		assert.Len(t, seats, 1)
		assert.NotNil(t, seats[0].StudentID)
	})

	t.Run("Empty roster places one placeholder per rule", func(t *testing.T) {
		rules := []domain.SeatRule{
			{StartRoll: 1, EndRoll: 10, Row: "A", RoomNumber: "101"},
			{StartRoll: 11, EndRoll: 20, Row: "B", RoomNumber: "102"},
		}

		seats, err := Allocate(nil, rules, 1, 2, 3)
		assert.NoError(t, err)
		assert.Len(t, seats, 2)
		assert.Nil(t, seats[0].StudentID)
		assert.Nil(t, seats[1].StudentID)
		assert.Equal(t, int32(1), seats[0].SeatNumber)
		assert.Equal(t, int32(2), seats[1].SeatNumber)
	})

	t.Run("Seat numbers strictly increasing with no gaps", func(t *testing.T) {
		rules := []domain.SeatRule{
			{StartRoll: 1, EndRoll: 3, Row: "A", RoomNumber: "101"},
			{StartRoll: 50, EndRoll: 60, Row: "B", RoomNumber: "102"},
			{StartRoll: 2, EndRoll: 6, Row: "C", RoomNumber: "103"},
		}

		seats, err := Allocate(roster(1, 2, 3, 4, 5, 6), rules, 1, 2, 3)
		assert.NoError(t, err)
		for i, seat := range seats {
			assert.Equal(t, int32(i+1), seat.SeatNumber)
		}
	})

	t.Run("No rules", func(t *testing.T) {
		_, err := Allocate(roster(1), nil, 1, 2, 3)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("Missing exam", func(t *testing.T) {
		rules := []domain.SeatRule{{StartRoll: 1, EndRoll: 10, Row: "A"}}
		_, err := Allocate(roster(1), rules, 1, 2, 0)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("Inverted rule range", func(t *testing.T) {
		rules := []domain.SeatRule{{StartRoll: 10, EndRoll: 1, Row: "A"}}
		_, err := Allocate(roster(1), rules, 1, 2, 3)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}

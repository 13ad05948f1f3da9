package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyTimetable(t *testing.T) {
	dataset := threeSlotDataset()

	valid := []TimetableEntry{
		entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1"),
		entryAt("slot_2", "subj_1", "fac_1", "room_1", "batch_1"),
	}

	t.Run("accepts a feasible timetable", func(t *testing.T) {
		assert.True(t, VerifyTimetable(valid, dataset))
		assert.True(t, VerifyTimetable(nil, dataset))
	})

	t.Run("rejects a double-booked faculty member", func(t *testing.T) {
		timetable := []TimetableEntry{
			entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1"),
			entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1"),
		}
		assert.False(t, VerifyTimetable(timetable, dataset))
	})

	t.Run("rejects entries on break slots", func(t *testing.T) {
		scoped := dataset.Clone()
		scoped.TimeSlots[0].IsBreak = true
		assert.False(t, VerifyTimetable(valid, scoped))
	})

	t.Run("rejects an unqualified faculty member", func(t *testing.T) {
		timetable := []TimetableEntry{entryAt("slot_1", "subj_404", "fac_1", "room_1", "batch_1")}
		assert.False(t, VerifyTimetable(timetable, dataset))
	})

	t.Run("rejects a room smaller than its batch", func(t *testing.T) {
		scoped := dataset.Clone()
		scoped.Classrooms = []Classroom{{ID: "room_1", Name: "Room 101", Capacity: 10, Type: "lecture_hall"}}
		assert.False(t, VerifyTimetable(valid, scoped))
	})

	t.Run("rejects workload cap overruns", func(t *testing.T) {
		scoped := dataset.Clone()
		scoped.Faculty = []Faculty{{ID: "fac_1", Name: "Dr. Smith", DepartmentID: "dept_1", MaxClassesPerDay: 1, MaxClassesPerWeek: 20, Subjects: []string{"subj_1"}}}
		assert.False(t, VerifyTimetable(valid, scoped))
	})

	t.Run("rejects references to unknown catalog ids", func(t *testing.T) {
		assert.False(t, VerifyTimetable([]TimetableEntry{entryAt("slot_404", "subj_1", "fac_1", "room_1", "batch_1")}, dataset))
		assert.False(t, VerifyTimetable([]TimetableEntry{entryAt("slot_1", "subj_1", "fac_404", "room_1", "batch_1")}, dataset))
		assert.False(t, VerifyTimetable([]TimetableEntry{entryAt("slot_1", "subj_1", "fac_1", "room_404", "batch_1")}, dataset))
		assert.False(t, VerifyTimetable([]TimetableEntry{entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_404")}, dataset))
	})

	t.Run("accepts scheduler output end to end", func(t *testing.T) {
		// Arrange
		generator := NewGenerator(threeSlotDataset(), 0, nil)

		// Act
		timetable, _ := generator.Generate("", DefaultBaseSeed)

		// Assert
		assert.True(t, VerifyTimetable(timetable, threeSlotDataset()))
	})
}

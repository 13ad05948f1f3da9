package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entryAt(slotID, subjectID, facultyID, roomID, batchID string) TimetableEntry {
	return TimetableEntry{
		TimeSlotID:  slotID,
		SubjectID:   subjectID,
		FacultyID:   facultyID,
		ClassroomID: roomID,
		BatchID:     batchID,
		ClassType:   "lecture",
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("empty constraint catalog scores zero", func(t *testing.T) {
		// Arrange
		dataset := threeSlotDataset()
		dataset.Constraints = nil
		evaluator := NewFitnessEvaluator(dataset)

		// Act / Assert
		assert.Equal(t, 0.0, evaluator.Evaluate([]TimetableEntry{entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1")}))
	})

	t.Run("all-zero weights score zero", func(t *testing.T) {
		// Arrange
		dataset := threeSlotDataset()
		dataset.Constraints = []Constraint{{Name: NoFacultyDoubleBooking, Type: Hard, Weight: 0}}
		evaluator := NewFitnessEvaluator(dataset)

		// Act / Assert
		assert.Equal(t, 0.0, evaluator.Evaluate(nil))
	})

	t.Run("unknown constraint names are trivially satisfied", func(t *testing.T) {
		// Arrange
		dataset := threeSlotDataset()
		dataset.Constraints = []Constraint{{Name: "Faculty Lunch Break", Type: Soft, Weight: 5}}
		evaluator := NewFitnessEvaluator(dataset)

		// Act / Assert
		assert.Equal(t, 1.0, evaluator.Evaluate(nil))
	})

	t.Run("weights average across constraints", func(t *testing.T) {
		// Arrange
		dataset := threeSlotDataset()
		dataset.Constraints = []Constraint{
			{Name: NoFacultyDoubleBooking, Type: Hard, Weight: 10},
			{Name: "Faculty Lunch Break", Type: Soft, Weight: 10},
		}
		evaluator := NewFitnessEvaluator(dataset)

		// fac_1 is double-booked at slot_1: 1 violation over 2 checks
		timetable := []TimetableEntry{
			entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1"),
			entryAt("slot_1", "subj_1", "fac_1", "room_2", "batch_2"),
		}

		// Act / Assert
		assert.InDelta(t, 0.75, evaluator.Evaluate(timetable), 1e-9)
	})

	t.Run("violation-ratio rules give an empty timetable full marks", func(t *testing.T) {
		// The max(denominator, 1) guard makes zero-activity checks score 1.0.
		// Deliberately preserved vacuous-truth behavior.

		// Arrange
		dataset := threeSlotDataset()
		dataset.Constraints = []Constraint{
			{Name: NoFacultyDoubleBooking, Type: Hard, Weight: 1},
			{Name: NoClassroomDoubleBooking, Type: Hard, Weight: 1},
			{Name: NoBatchDoubleBooking, Type: Hard, Weight: 1},
			{Name: FacultyWorkloadLimit, Type: Hard, Weight: 1},
			{Name: ClassroomCapacity, Type: Hard, Weight: 1},
			{Name: SubjectFacultyMatching, Type: Hard, Weight: 1},
		}
		evaluator := NewFitnessEvaluator(dataset)

		// Act / Assert
		assert.Equal(t, 1.0, evaluator.Evaluate(nil))
	})
}

func TestDoubleBookingRules(t *testing.T) {
	dataset := threeSlotDataset()
	dataset.Classrooms = append(dataset.Classrooms, Classroom{ID: "room_2", Name: "Room 102", Capacity: 60, Type: "lecture_hall"})
	dataset.Batches = append(dataset.Batches, Batch{ID: "batch_2", Name: "CS-2023-B", StudentCount: 40, DepartmentID: "dept_1"})

	score := func(name string, timetable []TimetableEntry) float64 {
		scoped := dataset.Clone()
		scoped.Constraints = []Constraint{{Name: name, Type: Hard, Weight: 10}}
		return NewFitnessEvaluator(scoped).Evaluate(timetable)
	}

	t.Run("clean single-entry slots score 1.0", func(t *testing.T) {
		timetable := []TimetableEntry{
			entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1"),
			entryAt("slot_2", "subj_1", "fac_1", "room_1", "batch_1"),
			entryAt("slot_3", "subj_1", "fac_1", "room_1", "batch_1"),
		}
		assert.Equal(t, 1.0, score(NoFacultyDoubleBooking, timetable))
		assert.Equal(t, 1.0, score(NoClassroomDoubleBooking, timetable))
		assert.Equal(t, 1.0, score(NoBatchDoubleBooking, timetable))
	})

	t.Run("each rule keys on its own resource", func(t *testing.T) {
		// Two entries share slot_1 with the same faculty but distinct rooms and batches
		timetable := []TimetableEntry{
			entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1"),
			entryAt("slot_1", "subj_1", "fac_1", "room_2", "batch_2"),
		}
		assert.InDelta(t, 0.5, score(NoFacultyDoubleBooking, timetable), 1e-9)
		assert.Equal(t, 1.0, score(NoClassroomDoubleBooking, timetable))
		assert.Equal(t, 1.0, score(NoBatchDoubleBooking, timetable))
	})

	t.Run("entries on break slots are not checked", func(t *testing.T) {
		scoped := dataset.Clone()
		scoped.TimeSlots[0].IsBreak = true
		scoped.Constraints = []Constraint{{Name: NoFacultyDoubleBooking, Type: Hard, Weight: 10}}

		timetable := []TimetableEntry{
			entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1"),
			entryAt("slot_1", "subj_1", "fac_1", "room_2", "batch_2"),
		}
		assert.Equal(t, 1.0, NewFitnessEvaluator(scoped).Evaluate(timetable))
	})
}

func TestFacultyWorkloadRule(t *testing.T) {
	// Arrange
	dataset := threeSlotDataset()
	dataset.Faculty[0].MaxClassesPerDay = 1
	dataset.Constraints = []Constraint{{Name: FacultyWorkloadLimit, Type: Hard, Weight: 10}}
	evaluator := NewFitnessEvaluator(dataset)

	// Two Monday classes against a daily cap of 1: one violation over
	// 1 faculty member * 6 checks
	timetable := []TimetableEntry{
		entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1"),
		entryAt("slot_2", "subj_1", "fac_1", "room_1", "batch_1"),
	}

	// Act / Assert
	assert.InDelta(t, 1.0-1.0/6.0, evaluator.Evaluate(timetable), 1e-9)
}

func TestClassroomCapacityRule(t *testing.T) {
	// Arrange
	dataset := threeSlotDataset()
	dataset.Classrooms = append(dataset.Classrooms, Classroom{ID: "room_small", Name: "Room 10", Capacity: 20, Type: "lecture_hall"})
	dataset.Constraints = []Constraint{{Name: ClassroomCapacity, Type: Hard, Weight: 10}}
	evaluator := NewFitnessEvaluator(dataset)

	// Act / Assert: batch of 45 in a 20-seat room violates, 60-seat room does not
	assert.Equal(t, 0.0, evaluator.Evaluate([]TimetableEntry{entryAt("slot_1", "subj_1", "fac_1", "room_small", "batch_1")}))
	assert.Equal(t, 1.0, evaluator.Evaluate([]TimetableEntry{entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1")}))
}

func TestSubjectFacultyRule(t *testing.T) {
	// Arrange
	dataset := threeSlotDataset()
	dataset.Subjects = append(dataset.Subjects, Subject{ID: "subj_2", Name: "Algorithms", DepartmentID: "dept_1"})
	dataset.Constraints = []Constraint{{Name: SubjectFacultyMatching, Type: Hard, Weight: 10}}
	evaluator := NewFitnessEvaluator(dataset)

	// Act / Assert: fac_1 is qualified for subj_1 only
	assert.Equal(t, 1.0, evaluator.Evaluate([]TimetableEntry{entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1")}))
	assert.Equal(t, 0.0, evaluator.Evaluate([]TimetableEntry{entryAt("slot_1", "subj_2", "fac_1", "room_1", "batch_1")}))
}

func TestConsecutiveClassesRule(t *testing.T) {
	// Arrange
	dataset := threeSlotDataset()
	dataset.Subjects = append(dataset.Subjects, Subject{ID: "subj_2", Name: "Algorithms", DepartmentID: "dept_1"})
	dataset.Constraints = []Constraint{{Name: ConsecutiveClasses, Type: Soft, Weight: 10}}
	evaluator := NewFitnessEvaluator(dataset)

	t.Run("adjacent same-subject pairs count towards the score", func(t *testing.T) {
		// Slots 1, 2, 3 host subj_1, subj_2, subj_2: one consecutive pair of two
		timetable := []TimetableEntry{
			entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1"),
			entryAt("slot_2", "subj_2", "fac_1", "room_1", "batch_1"),
			entryAt("slot_3", "subj_2", "fac_1", "room_1", "batch_1"),
		}
		assert.InDelta(t, 0.5, evaluator.Evaluate(timetable), 1e-9)
	})

	t.Run("no adjacent pairs scores zero", func(t *testing.T) {
		timetable := []TimetableEntry{entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1")}
		assert.Equal(t, 0.0, evaluator.Evaluate(timetable))
	})
}

func TestBalancedScheduleRule(t *testing.T) {
	// Arrange
	dataset := threeSlotDataset()
	dataset.Constraints = []Constraint{{Name: BalancedDailySchedule, Type: Soft, Weight: 10}}
	evaluator := NewFitnessEvaluator(dataset)

	// Two Monday classes: counts (2,0,0,0,0), mean 0.4, variance 0.64
	timetable := []TimetableEntry{
		entryAt("slot_1", "subj_1", "fac_1", "room_1", "batch_1"),
		entryAt("slot_2", "subj_1", "fac_1", "room_1", "batch_1"),
	}

	// Act / Assert
	assert.InDelta(t, 1.0/1.64, evaluator.Evaluate(timetable), 1e-9)

	// A batch with no classes contributes nothing rather than full marks
	assert.Equal(t, 0.0, evaluator.Evaluate(nil))
}

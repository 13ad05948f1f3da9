package model

import (
	"math/rand"
	"slices"

	"github.com/samber/lo"
)

const classTypeLecture = "lecture"

// Scheduler places a sequence of required assignments into time slots, rooms and
// faculty. The random source is threaded explicitly so that a run is reproducible
// given its seed.
type Scheduler interface {
	// Schedule returns the committed timetable and whether every assignment was
	// placed. On failure the returned timetable is the best-effort partial one
	// left when the search unwound.
	Schedule(assignments []Assignment, rng *rand.Rand) ([]TimetableEntry, bool)
}

// NewScheduler builds a backtracking scheduler over the dataset. A positive
// maxNodes caps the number of visited search nodes and turns budget exhaustion
// into ordinary failure; 0 leaves the search unbounded.
func NewScheduler(dataset *Dataset, maxNodes uint64) Scheduler {
	return &backtrackingScheduler{
		dataset:  dataset,
		oracle:   NewAvailabilityOracle(dataset),
		maxNodes: maxNodes,
	}
}

type backtrackingScheduler struct {
	dataset  *Dataset
	oracle   AvailabilityOracle
	maxNodes uint64
	visited  uint64
}

func (scheduler *backtrackingScheduler) Schedule(assignments []Assignment, rng *rand.Rand) ([]TimetableEntry, bool) {
	timetable := make([]TimetableEntry, 0, len(assignments))
	scheduler.visited = 0
	success := scheduler.backtrack(assignments, 0, &timetable, rng)
	return timetable, success
}

func (scheduler *backtrackingScheduler) backtrack(assignments []Assignment, index int, timetable *[]TimetableEntry, rng *rand.Rand) bool {
	if index >= len(assignments) {
		return true
	}
	if scheduler.maxNodes > 0 {
		if scheduler.visited++; scheduler.visited > scheduler.maxNodes {
			return false
		}
	}

	assignment := assignments[index]

	// Candidates are filtered only by the batch's own occupancy; faculty and room
	// feasibility is discovered lazily per candidate
	candidates := scheduler.candidateSlots(*timetable, assignment.BatchID)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, slot := range candidates {
		entry, ok := scheduler.tryAssign(*timetable, assignment, slot)
		if !ok {
			continue
		}

		*timetable = append(*timetable, entry)
		if scheduler.backtrack(assignments, index+1, timetable, rng) {
			return true
		}
		*timetable = (*timetable)[:len(*timetable)-1] // Undo the last commit
	}

	return false
}

func (scheduler *backtrackingScheduler) candidateSlots(timetable []TimetableEntry, batchID string) []TimeSlot {
	return lo.Filter(scheduler.dataset.TimeSlots, func(slot TimeSlot, _ int) bool {
		return !slot.IsBreak && !scheduler.oracle.BatchOccupied(timetable, batchID, slot.ID)
	})
}

func (scheduler *backtrackingScheduler) tryAssign(timetable []TimetableEntry, assignment Assignment, slot TimeSlot) (TimetableEntry, bool) {
	faculty, found := scheduler.availableFaculty(timetable, assignment.SubjectID, slot)
	if !found {
		return TimetableEntry{}, false
	}

	classroom, found := scheduler.availableClassroom(timetable, assignment.BatchID, assignment.SubjectID, slot)
	if !found {
		return TimetableEntry{}, false
	}

	if scheduler.oracle.FacultyDayLoad(timetable, faculty.ID, slot.DayOfWeek) >= faculty.MaxClassesPerDay ||
		scheduler.oracle.FacultyWeekLoad(timetable, faculty.ID) >= faculty.MaxClassesPerWeek {
		return TimetableEntry{}, false
	}

	return TimetableEntry{
		TimeSlotID:  slot.ID,
		SubjectID:   assignment.SubjectID,
		FacultyID:   faculty.ID,
		ClassroomID: classroom.ID,
		BatchID:     assignment.BatchID,
		ClassType:   classTypeLecture,
	}, true
}

// availableFaculty returns the first qualified faculty member, in catalog order,
// that is not already booked at the slot. First match, not best match.
func (scheduler *backtrackingScheduler) availableFaculty(timetable []TimetableEntry, subjectID string, slot TimeSlot) (Faculty, bool) {
	qualified := lo.Filter(scheduler.dataset.Faculty, func(faculty Faculty, _ int) bool {
		return slices.Contains(faculty.Subjects, subjectID)
	})

	return lo.Find(qualified, func(faculty Faculty) bool {
		return !scheduler.oracle.FacultyBusy(timetable, faculty.ID, slot.ID)
	})
}

func (scheduler *backtrackingScheduler) availableClassroom(timetable []TimetableEntry, batchID, subjectID string, slot TimeSlot) (Classroom, bool) {
	batch, foundBatch := scheduler.dataset.BatchByID(batchID)
	subject, foundSubject := scheduler.dataset.SubjectByID(subjectID)
	if !foundBatch || !foundSubject {
		return Classroom{}, false
	}

	suitable := lo.Filter(scheduler.dataset.Classrooms, func(classroom Classroom, _ int) bool {
		return classroom.Capacity >= batch.StudentCount
	})

	// Lab preference is soft: it narrows the candidates only when at least one
	// capacity-suitable laboratory exists
	if subject.RequiresLab {
		laboratories := lo.Filter(suitable, func(classroom Classroom, _ int) bool {
			return classroom.Type == RoomLaboratory
		})
		if len(laboratories) > 0 {
			suitable = laboratories
		}
	}

	return lo.Find(suitable, func(classroom Classroom) bool {
		return !scheduler.oracle.RoomOccupied(timetable, classroom.ID, slot.ID)
	})
}

package model

import "github.com/samber/lo"

// AvailabilityOracle answers feasibility queries against a partial timetable.
// All queries are pure and re-derived from the entries passed in; implementations
// must not retain or mutate the timetable.
type AvailabilityOracle interface {
	// Checks whether the batch already holds a class at the time slot
	BatchOccupied(timetable []TimetableEntry, batchID, timeSlotID string) bool

	// Checks whether the faculty member is already teaching at the time slot
	FacultyBusy(timetable []TimetableEntry, facultyID, timeSlotID string) bool

	// Checks whether the room already hosts a class at the time slot
	RoomOccupied(timetable []TimetableEntry, classroomID, timeSlotID string) bool

	// Counts the faculty member's classes on the given day of week
	FacultyDayLoad(timetable []TimetableEntry, facultyID string, dayOfWeek int) int

	// Counts the faculty member's classes across the whole week
	FacultyWeekLoad(timetable []TimetableEntry, facultyID string) int
}

func NewAvailabilityOracle(dataset *Dataset) AvailabilityOracle {
	return &linearScanOracle{dataset: dataset}
}

// linearScanOracle answers every query by scanning the timetable, which is
// acceptable at catalog scale. An indexed implementation keyed by
// (slot, resource) must return identical answers.
type linearScanOracle struct {
	dataset *Dataset
}

func (oracle *linearScanOracle) BatchOccupied(timetable []TimetableEntry, batchID, timeSlotID string) bool {
	return lo.SomeBy(timetable, func(entry TimetableEntry) bool {
		return entry.BatchID == batchID && entry.TimeSlotID == timeSlotID
	})
}

func (oracle *linearScanOracle) FacultyBusy(timetable []TimetableEntry, facultyID, timeSlotID string) bool {
	return lo.SomeBy(timetable, func(entry TimetableEntry) bool {
		return entry.FacultyID == facultyID && entry.TimeSlotID == timeSlotID
	})
}

func (oracle *linearScanOracle) RoomOccupied(timetable []TimetableEntry, classroomID, timeSlotID string) bool {
	return lo.SomeBy(timetable, func(entry TimetableEntry) bool {
		return entry.ClassroomID == classroomID && entry.TimeSlotID == timeSlotID
	})
}

func (oracle *linearScanOracle) FacultyDayLoad(timetable []TimetableEntry, facultyID string, dayOfWeek int) int {
	return lo.CountBy(timetable, func(entry TimetableEntry) bool {
		if entry.FacultyID != facultyID {
			return false
		}
		slot, found := oracle.dataset.TimeSlotByID(entry.TimeSlotID)
		return found && slot.DayOfWeek == dayOfWeek
	})
}

func (oracle *linearScanOracle) FacultyWeekLoad(timetable []TimetableEntry, facultyID string) int {
	return lo.CountBy(timetable, func(entry TimetableEntry) bool {
		return entry.FacultyID == facultyID
	})
}

package model

import "slices"

type facultyDay struct {
	facultyID string
	dayOfWeek int
}

// VerifyTimetable checks the hard feasibility rules over a finished timetable:
// no faculty, room or batch is booked twice at a slot, no entry sits on a break
// slot, every faculty member is qualified for its subject and within workload
// caps, and every room fits its batch. Entries referencing ids absent from the
// catalogs fail verification.
func VerifyTimetable(timetable []TimetableEntry, dataset *Dataset) bool {
	facultyAssistance := make(map[[2]string]bool) // (slot, faculty)
	roomAssistance := make(map[[2]string]bool)    // (slot, room)
	batchAssistance := make(map[[2]string]bool)   // (slot, batch)
	dayLoad := make(map[facultyDay]int)
	weekLoad := make(map[string]int)

	for _, entry := range timetable {
		slot, found := dataset.TimeSlotByID(entry.TimeSlotID)
		if !found || slot.IsBreak {
			return false
		}

		faculty, found := dataset.FacultyByID(entry.FacultyID)
		if !found || !slices.Contains(faculty.Subjects, entry.SubjectID) {
			return false
		}

		batch, foundBatch := dataset.BatchByID(entry.BatchID)
		classroom, foundClassroom := dataset.ClassroomByID(entry.ClassroomID)
		if !foundBatch || !foundClassroom || classroom.Capacity < batch.StudentCount {
			return false
		}

		if facultyAssistance[[2]string{slot.ID, faculty.ID}] ||
			roomAssistance[[2]string{slot.ID, classroom.ID}] ||
			batchAssistance[[2]string{slot.ID, batch.ID}] {
			return false
		}
		facultyAssistance[[2]string{slot.ID, faculty.ID}] = true
		roomAssistance[[2]string{slot.ID, classroom.ID}] = true
		batchAssistance[[2]string{slot.ID, batch.ID}] = true

		if dayLoad[facultyDay{faculty.ID, slot.DayOfWeek}]++; dayLoad[facultyDay{faculty.ID, slot.DayOfWeek}] > faculty.MaxClassesPerDay {
			return false
		}
		if weekLoad[faculty.ID]++; weekLoad[faculty.ID] > faculty.MaxClassesPerWeek {
			return false
		}
	}

	return true
}

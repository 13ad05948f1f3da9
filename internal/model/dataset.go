package model

import "github.com/samber/lo"

func (dataset *Dataset) TimeSlotByID(id string) (TimeSlot, bool) {
	return lo.Find(dataset.TimeSlots, func(slot TimeSlot) bool { return slot.ID == id })
}

func (dataset *Dataset) ClassroomByID(id string) (Classroom, bool) {
	return lo.Find(dataset.Classrooms, func(classroom Classroom) bool { return classroom.ID == id })
}

func (dataset *Dataset) SubjectByID(id string) (Subject, bool) {
	return lo.Find(dataset.Subjects, func(subject Subject) bool { return subject.ID == id })
}

func (dataset *Dataset) FacultyByID(id string) (Faculty, bool) {
	return lo.Find(dataset.Faculty, func(faculty Faculty) bool { return faculty.ID == id })
}

func (dataset *Dataset) BatchByID(id string) (Batch, bool) {
	return lo.Find(dataset.Batches, func(batch Batch) bool { return batch.ID == id })
}

// FilterByDepartment narrows subjects, faculty and batches to the given department
// in place. Classrooms stay untouched since rooms are shareable across departments.
// Callers that need the unfiltered catalogs afterwards must Clone first.
func (dataset *Dataset) FilterByDepartment(departmentID string) {
	dataset.Subjects = lo.Filter(dataset.Subjects, func(subject Subject, _ int) bool {
		return subject.DepartmentID == departmentID
	})
	dataset.Faculty = lo.Filter(dataset.Faculty, func(faculty Faculty, _ int) bool {
		return faculty.DepartmentID == departmentID
	})
	dataset.Batches = lo.Filter(dataset.Batches, func(batch Batch, _ int) bool {
		return batch.DepartmentID == departmentID
	})
}

// Clone returns a dataset sharing no slice headers with the receiver. Records
// themselves are value copies, so a clone survives a destructive filter.
func (dataset *Dataset) Clone() *Dataset {
	return &Dataset{
		TimeSlots:   append([]TimeSlot(nil), dataset.TimeSlots...),
		Classrooms:  append([]Classroom(nil), dataset.Classrooms...),
		Subjects:    append([]Subject(nil), dataset.Subjects...),
		Faculty:     append([]Faculty(nil), dataset.Faculty...),
		Batches:     append([]Batch(nil), dataset.Batches...),
		Constraints: append([]Constraint(nil), dataset.Constraints...),
	}
}

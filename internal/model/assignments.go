package model

// Assignment is one (batch, subject) obligation that must receive exactly one
// time-slot/faculty/room triple during scheduling.
type Assignment struct {
	BatchID   string
	SubjectID string
}

// RequiredAssignments expands the batches' subject lists into the ordered sequence
// of obligations the scheduler must place: batches in catalog order, each subject
// contributing one pair per weekly occurrence. Subject ids absent from the catalog
// are skipped silently, leaving the timetable quietly incomplete rather than
// failing the run. The resulting order is the fixed recursion order of the search.
func RequiredAssignments(dataset *Dataset) []Assignment {
	assignments := []Assignment{}

	for _, batch := range dataset.Batches {
		for _, subjectID := range batch.Subjects {
			subject, found := dataset.SubjectByID(subjectID)
			if !found {
				continue
			}
			for i := 0; i < subject.ClassesPerWeek; i++ {
				assignments = append(assignments, Assignment{BatchID: batch.ID, SubjectID: subjectID})
			}
		}
	}

	return assignments
}

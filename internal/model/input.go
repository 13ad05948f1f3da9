package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

type ConstraintKind string

const (
	Hard ConstraintKind = "hard"
	Soft ConstraintKind = "soft"
)

const RoomLaboratory = "laboratory"

type TimeSlot struct {
	ID         string `mapstructure:"id"`
	DayOfWeek  int    `mapstructure:"day_of_week"` // 1 = Monday, ..., 7 = Sunday
	SlotNumber int    `mapstructure:"slot_number"`
	StartTime  string `mapstructure:"start_time"`
	EndTime    string `mapstructure:"end_time"`
	IsBreak    bool   `mapstructure:"is_break"`
	Shift      string `mapstructure:"shift"`
}

type Classroom struct {
	ID           string   `mapstructure:"id"`
	Name         string   `mapstructure:"name"`
	Capacity     int      `mapstructure:"capacity"`
	Type         string   `mapstructure:"type"`
	Equipment    []string `mapstructure:"equipment"`
	DepartmentID string   `mapstructure:"department_id"`
}

type Subject struct {
	ID              string `mapstructure:"id"`
	Name            string `mapstructure:"name"`
	Code            string `mapstructure:"code"`
	Credits         int    `mapstructure:"credits"`
	ClassesPerWeek  int    `mapstructure:"classes_per_week"`
	DurationMinutes int    `mapstructure:"duration_minutes"`
	RequiresLab     bool   `mapstructure:"requires_lab"`
	SubjectType     string `mapstructure:"subject_type"`
	DepartmentID    string `mapstructure:"department_id"`
}

type Faculty struct {
	ID                string   `mapstructure:"id"`
	Name              string   `mapstructure:"name"`
	DepartmentID      string   `mapstructure:"department_id"`
	MaxClassesPerDay  int      `mapstructure:"max_classes_per_day"`
	MaxClassesPerWeek int      `mapstructure:"max_classes_per_week"`
	Specializations   []string `mapstructure:"specializations"`
	Subjects          []string `mapstructure:"subjects"` // Subject ids the faculty member is qualified to teach
}

type Batch struct {
	ID           string   `mapstructure:"id"`
	Name         string   `mapstructure:"name"`
	Year         int      `mapstructure:"year"`
	Semester     int      `mapstructure:"semester"`
	StudentCount int      `mapstructure:"student_count"`
	DepartmentID string   `mapstructure:"department_id"`
	Subjects     []string `mapstructure:"subjects"` // Subject ids the batch must take
}

type Constraint struct {
	Name        string         `mapstructure:"name"`
	Type        ConstraintKind `mapstructure:"type"`
	Weight      int            `mapstructure:"weight"`
	Description string         `mapstructure:"description"`
}

// TimetableEntry is the join of exactly one time slot, subject, faculty member,
// classroom and batch. A timetable is an ordered collection of entries, ordered by
// commit order so that the scheduler can undo the last commit in O(1).
type TimetableEntry struct {
	TimeSlotID  string `mapstructure:"time_slot_id"`
	SubjectID   string `mapstructure:"subject_id"`
	FacultyID   string `mapstructure:"faculty_id"`
	ClassroomID string `mapstructure:"classroom_id"`
	BatchID     string `mapstructure:"batch_id"`
	ClassType   string `mapstructure:"class_type"`
}

// Dataset holds the entity catalogs for one generation run. It is treated as
// read-only by the engine except for FilterByDepartment, which narrows the
// working lists in place.
type Dataset struct {
	TimeSlots   []TimeSlot
	Classrooms  []Classroom
	Subjects    []Subject
	Faculty     []Faculty
	Batches     []Batch
	Constraints []Constraint
}

var (
	timeSlotFields   = []string{"id", "day_of_week", "slot_number", "start_time", "end_time", "is_break", "shift"}
	classroomFields  = []string{"id", "name", "capacity", "type", "equipment", "department_id"}
	subjectFields    = []string{"id", "name", "code", "credits", "classes_per_week", "duration_minutes", "requires_lab", "subject_type", "department_id"}
	facultyFields    = []string{"id", "name", "department_id", "max_classes_per_day", "max_classes_per_week", "specializations", "subjects"}
	batchFields      = []string{"id", "name", "year", "semester", "student_count", "department_id", "subjects"}
	constraintFields = []string{"name", "type", "weight", "description"}
)

// DatasetFromMap builds a Dataset from a loosely-typed payload (e.g. unmarshalled
// JSON). Missing top-level arrays are treated as empty catalogs; a record missing
// one of its required fields fails eagerly.
func DatasetFromMap(data map[string]any) (*Dataset, error) {
	dataset := &Dataset{}
	var err error

	if dataset.TimeSlots, err = decodeRecords[TimeSlot]("time_slots", data["time_slots"], timeSlotFields); err != nil {
		return nil, err
	}
	if dataset.Classrooms, err = decodeRecords[Classroom]("classrooms", data["classrooms"], classroomFields); err != nil {
		return nil, err
	}
	if dataset.Subjects, err = decodeRecords[Subject]("subjects", data["subjects"], subjectFields); err != nil {
		return nil, err
	}
	if dataset.Faculty, err = decodeRecords[Faculty]("faculty", data["faculty"], facultyFields); err != nil {
		return nil, err
	}
	if dataset.Batches, err = decodeRecords[Batch]("batches", data["batches"], batchFields); err != nil {
		return nil, err
	}
	if dataset.Constraints, err = decodeRecords[Constraint]("constraints", data["constraints"], constraintFields); err != nil {
		return nil, err
	}

	for i, constraint := range dataset.Constraints {
		if constraint.Type != Hard && constraint.Type != Soft {
			return nil, fmt.Errorf("constraints[%v]: unknown constraint type %q", i, constraint.Type)
		}
	}

	return dataset, nil
}

func DatasetFromJSON(file string) (*Dataset, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset file: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("cannot parse dataset file: %w", err)
	}

	return DatasetFromMap(data)
}

func decodeRecords[T any](field string, raw any, required []string) ([]T, error) {
	if raw == nil {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q must be an array", field)
	}

	records := make([]T, 0, len(items))
	for i, item := range items {
		attributes, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%v[%v] must be an object", field, i)
		}

		for _, key := range required {
			if _, present := attributes[key]; !present {
				return nil, fmt.Errorf("%v[%v] is missing required field %q", field, i, key)
			}
		}

		var record T
		if err := mapstructure.Decode(attributes, &record); err != nil {
			return nil, fmt.Errorf("cannot decode %v[%v]: %w", field, i, err)
		}
		records = append(records, record)
	}

	return records, nil
}

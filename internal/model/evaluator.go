package model

import (
	"slices"
	"sort"

	"github.com/samber/lo"
)

// Constraint names recognized by the evaluator. Any other name scores 1.0, i.e.
// an unknown constraint is treated as trivially satisfied.
const (
	NoFacultyDoubleBooking   = "No Faculty Double Booking"
	NoClassroomDoubleBooking = "No Classroom Double Booking"
	NoBatchDoubleBooking     = "No Batch Double Booking"
	FacultyWorkloadLimit     = "Faculty Workload Limit"
	ClassroomCapacity        = "Classroom Capacity"
	SubjectFacultyMatching   = "Subject-Faculty Matching"
	ConsecutiveClasses       = "Consecutive Classes Preference"
	BalancedDailySchedule    = "Balanced Daily Schedule"
)

// FitnessEvaluator scores a timetable (complete or partial) against the dataset's
// weighted constraint catalog.
//
// Every per-rule ratio divides by max(denominator, 1), so a rule with nothing to
// check scores 1.0. An empty timetable therefore gets full marks on every rule;
// that vacuous-truth convention is deliberate and pinned by tests.
type FitnessEvaluator interface {
	// Evaluate returns sum(score_i * weight_i) / sum(weight_i) over all
	// constraints, in [0, 1], or 0.0 when the catalog is empty or all weights
	// are zero.
	Evaluate(timetable []TimetableEntry) float64
}

type scoringRule func(timetable []TimetableEntry) float64

func NewFitnessEvaluator(dataset *Dataset) FitnessEvaluator {
	evaluator := &weightedEvaluator{
		dataset: dataset,
		oracle:  NewAvailabilityOracle(dataset),
	}

	// Closed dispatch: names outside this map fall through to the unknown-rule
	// branch in Evaluate
	evaluator.rules = map[string]scoringRule{
		NoFacultyDoubleBooking: func(timetable []TimetableEntry) float64 {
			return evaluator.doubleBookingScore(timetable, func(entry TimetableEntry) string { return entry.FacultyID })
		},
		NoClassroomDoubleBooking: func(timetable []TimetableEntry) float64 {
			return evaluator.doubleBookingScore(timetable, func(entry TimetableEntry) string { return entry.ClassroomID })
		},
		NoBatchDoubleBooking: func(timetable []TimetableEntry) float64 {
			return evaluator.doubleBookingScore(timetable, func(entry TimetableEntry) string { return entry.BatchID })
		},
		FacultyWorkloadLimit:   evaluator.facultyWorkloadScore,
		ClassroomCapacity:      evaluator.classroomCapacityScore,
		SubjectFacultyMatching: evaluator.subjectFacultyScore,
		ConsecutiveClasses:     evaluator.consecutiveClassesScore,
		BalancedDailySchedule:  evaluator.balancedScheduleScore,
	}

	return evaluator
}

type weightedEvaluator struct {
	dataset *Dataset
	oracle  AvailabilityOracle
	rules   map[string]scoringRule
}

func (evaluator *weightedEvaluator) Evaluate(timetable []TimetableEntry) float64 {
	totalScore := 0.0
	maxPossibleScore := 0.0

	for _, constraint := range evaluator.dataset.Constraints {
		score := 1.0 // Unknown constraint, assume satisfied
		if rule, known := evaluator.rules[constraint.Name]; known {
			score = rule(timetable)
		}
		totalScore += score * float64(constraint.Weight)
		maxPossibleScore += float64(constraint.Weight)
	}

	if maxPossibleScore == 0 {
		return 0.0
	}
	return totalScore / maxPossibleScore
}

// doubleBookingScore counts, per non-break slot, how many entries share a key
// value with an earlier entry at that slot. checks = entries at non-break slots.
func (evaluator *weightedEvaluator) doubleBookingScore(timetable []TimetableEntry, key func(entry TimetableEntry) string) float64 {
	violations := 0
	totalChecks := 0

	for _, slot := range evaluator.dataset.TimeSlots {
		if slot.IsBreak {
			continue
		}

		keysAtSlot := lo.FilterMap(timetable, func(entry TimetableEntry, _ int) (string, bool) {
			return key(entry), entry.TimeSlotID == slot.ID
		})

		totalChecks += len(keysAtSlot)
		violations += len(keysAtSlot) - len(lo.Uniq(keysAtSlot))
	}

	return 1.0 - float64(violations)/float64(max(totalChecks, 1))
}

func (evaluator *weightedEvaluator) facultyWorkloadScore(timetable []TimetableEntry) float64 {
	violations := 0

	for _, faculty := range evaluator.dataset.Faculty {
		for day := 1; day <= 5; day++ { // Monday to Friday
			if evaluator.oracle.FacultyDayLoad(timetable, faculty.ID, day) > faculty.MaxClassesPerDay {
				violations++
			}
		}
		if evaluator.oracle.FacultyWeekLoad(timetable, faculty.ID) > faculty.MaxClassesPerWeek {
			violations++
		}
	}

	// 5 daily checks plus 1 weekly check per faculty member
	return 1.0 - float64(violations)/float64(max(len(evaluator.dataset.Faculty)*6, 1))
}

func (evaluator *weightedEvaluator) classroomCapacityScore(timetable []TimetableEntry) float64 {
	violations := lo.CountBy(timetable, func(entry TimetableEntry) bool {
		batch, foundBatch := evaluator.dataset.BatchByID(entry.BatchID)
		classroom, foundClassroom := evaluator.dataset.ClassroomByID(entry.ClassroomID)
		return foundBatch && foundClassroom && batch.StudentCount > classroom.Capacity
	})

	return 1.0 - float64(violations)/float64(max(len(timetable), 1))
}

func (evaluator *weightedEvaluator) subjectFacultyScore(timetable []TimetableEntry) float64 {
	violations := lo.CountBy(timetable, func(entry TimetableEntry) bool {
		faculty, found := evaluator.dataset.FacultyByID(entry.FacultyID)
		return found && !slices.Contains(faculty.Subjects, entry.SubjectID)
	})

	return 1.0 - float64(violations)/float64(max(len(timetable), 1))
}

// consecutiveClassesScore rewards adjacent same-subject pairs within a batch's
// day, taken over all adjacent pairs in slot-number order.
func (evaluator *weightedEvaluator) consecutiveClassesScore(timetable []TimetableEntry) float64 {
	consecutivePairs := 0
	totalPairs := 0

	for _, batch := range evaluator.dataset.Batches {
		for day := 1; day <= 5; day++ {
			dayEntries := lo.Filter(timetable, func(entry TimetableEntry, _ int) bool {
				if entry.BatchID != batch.ID {
					return false
				}
				slot, found := evaluator.dataset.TimeSlotByID(entry.TimeSlotID)
				return found && slot.DayOfWeek == day
			})

			sort.SliceStable(dayEntries, func(i, j int) bool {
				return evaluator.slotNumber(dayEntries[i].TimeSlotID) < evaluator.slotNumber(dayEntries[j].TimeSlotID)
			})

			for i := 0; i+1 < len(dayEntries); i++ {
				totalPairs++
				if dayEntries[i].SubjectID == dayEntries[i+1].SubjectID {
					consecutivePairs++
				}
			}
		}
	}

	return float64(consecutivePairs) / float64(max(totalPairs, 1))
}

// balancedScheduleScore averages 1/(1+variance) of each batch's daily class
// counts across the five weekdays. A batch with no classes contributes 0.
func (evaluator *weightedEvaluator) balancedScheduleScore(timetable []TimetableEntry) float64 {
	balanceScore := 0.0

	for _, batch := range evaluator.dataset.Batches {
		dailyCounts := make([]int, 5)
		for _, entry := range timetable {
			if entry.BatchID != batch.ID {
				continue
			}
			slot, found := evaluator.dataset.TimeSlotByID(entry.TimeSlotID)
			if found && slot.DayOfWeek >= 1 && slot.DayOfWeek <= 5 {
				dailyCounts[slot.DayOfWeek-1]++
			}
		}

		total := lo.Sum(dailyCounts)
		if total == 0 {
			continue
		}

		mean := float64(total) / 5
		variance := 0.0
		for _, count := range dailyCounts {
			deviation := float64(count) - mean
			variance += deviation * deviation
		}
		variance /= 5

		balanceScore += 1.0 / (1.0 + variance)
	}

	return balanceScore / float64(max(len(evaluator.dataset.Batches), 1))
}

func (evaluator *weightedEvaluator) slotNumber(timeSlotID string) int {
	slot, found := evaluator.dataset.TimeSlotByID(timeSlotID)
	if !found {
		return 0
	}
	return slot.SlotNumber
}

package model

import (
	"cmp"
	"math/rand"
	"slices"

	"go.uber.org/zap"
)

// DefaultBaseSeed is the base seed used by the CLI drivers; attempt i runs under
// seed DefaultBaseSeed + i.
const DefaultBaseSeed int64 = 42

// Option is one generated candidate timetable with its fitness.
type Option struct {
	Timetable []TimetableEntry
	Fitness   float64
}

// Generator runs the scheduler/evaluator pipeline over a dataset. Filtering by
// department is destructive to the generator's dataset; pass a Clone when the
// unfiltered catalogs must survive.
type Generator struct {
	dataset      *Dataset
	searchBudget uint64
	log          *zap.Logger
}

// NewGenerator wires a generator over the dataset. searchBudget caps the
// scheduler's visited nodes (0 = unbounded). A nil logger disables tracing.
func NewGenerator(dataset *Dataset, searchBudget uint64, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{dataset: dataset, searchBudget: searchBudget, log: logger}
}

// Generate runs one scheduling attempt under the given seed and returns the
// timetable with its fitness. On failure the timetable may be partial or empty
// and the fitness is 0.0 regardless of how the partial timetable would score;
// the ranking in GenerateOptions depends on that contract.
func (generator *Generator) Generate(departmentID string, seed int64) ([]TimetableEntry, float64) {
	generator.log.Info("starting timetable generation",
		zap.String("department", departmentID),
		zap.Int64("seed", seed),
	)

	if departmentID != "" {
		generator.dataset.FilterByDepartment(departmentID)
	}

	assignments := RequiredAssignments(generator.dataset)
	generator.log.Info("required assignments enumerated", zap.Int("count", len(assignments)))

	rng := rand.New(rand.NewSource(seed))
	scheduler := NewScheduler(generator.dataset, generator.searchBudget)

	timetable, success := scheduler.Schedule(assignments, rng)
	if !success {
		generator.log.Warn("failed to generate complete timetable",
			zap.Int("scheduled", len(timetable)),
			zap.Int("required", len(assignments)),
		)
		return timetable, 0.0
	}

	fitness := NewFitnessEvaluator(generator.dataset).Evaluate(timetable)
	generator.log.Info("timetable generated", zap.Float64("fitness", fitness))
	return timetable, fitness
}

// GenerateOptions runs count attempts under seeds baseSeed, baseSeed+1, ... and
// returns every candidate (failed attempts included, with fitness 0.0) sorted by
// fitness descending. The sort is stable, so equal scores keep generation order.
func (generator *Generator) GenerateOptions(departmentID string, count int, baseSeed int64) []Option {
	options := make([]Option, 0, count)

	for attempt := 0; attempt < count; attempt++ {
		generator.log.Info("generating timetable option",
			zap.Int("attempt", attempt+1),
			zap.Int("total", count),
		)

		timetable, fitness := generator.Generate(departmentID, baseSeed+int64(attempt))
		options = append(options, Option{Timetable: timetable, Fitness: fitness})
	}

	slices.SortStableFunc(options, func(a, b Option) int {
		return cmp.Compare(b.Fitness, a.Fitness)
	})

	return options
}

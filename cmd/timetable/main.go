package main

import (
	"fmt"
	"log"
	"slices"

	"github.com/spf13/cobra"

	"github.com/smartcampus/timetable/internal/model"
	"github.com/smartcampus/timetable/pkg/config"
	"github.com/smartcampus/timetable/pkg/logger"
)

var days = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	root := &cobra.Command{
		Use:           "timetable",
		Short:         "Generate academic timetables from an entity dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Data, "data", cfg.Data, "dataset JSON file")
	root.PersistentFlags().StringVar(&cfg.Department, "department", cfg.Department, "restrict generation to one department")
	root.PersistentFlags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "base random seed")
	root.PersistentFlags().Uint64Var(&cfg.SearchBudget, "budget", cfg.SearchBudget, "search node budget (0 = unbounded)")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := model.DatasetFromJSON(cfg.Data)
			if err != nil {
				return err
			}

			generator := model.NewGenerator(dataset, cfg.SearchBudget, zapLogger)
			timetable, fitness := generator.Generate(cfg.Department, cfg.Seed)

			printTimetable(timetable, dataset)
			fmt.Printf("Fitness: %.2f\n", fitness)
			if model.VerifyTimetable(timetable, dataset) {
				fmt.Println("Hard constraints verified")
			} else {
				fmt.Println("Verification failed")
			}
			return nil
		},
	}

	optionsCmd := &cobra.Command{
		Use:   "options",
		Short: "Generate multiple candidate timetables ranked by fitness",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := model.DatasetFromJSON(cfg.Data)
			if err != nil {
				return err
			}

			generator := model.NewGenerator(dataset, cfg.SearchBudget, zapLogger)
			options := generator.GenerateOptions(cfg.Department, cfg.Options, cfg.Seed)

			for i, option := range options {
				fmt.Printf("\nOption %v (Fitness: %.2f):\n", i+1, option.Fitness)
				printTimetable(option.Timetable, dataset)
			}
			return nil
		},
	}
	optionsCmd.Flags().IntVar(&cfg.Options, "count", cfg.Options, "number of candidates to generate")

	root.AddCommand(generateCmd, optionsCmd)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func printTimetable(timetable []model.TimetableEntry, dataset *model.Dataset) {
	sorted := append([]model.TimetableEntry(nil), timetable...)

	position := func(entry model.TimetableEntry) (int, int) {
		slot, found := dataset.TimeSlotByID(entry.TimeSlotID)
		if !found {
			return 0, 0
		}
		return slot.DayOfWeek, slot.SlotNumber
	}
	slices.SortStableFunc(sorted, func(a, b model.TimetableEntry) int {
		aDay, aSlot := position(a)
		bDay, bSlot := position(b)
		if aDay != bDay {
			return aDay - bDay
		}
		return aSlot - bSlot
	})

	for _, entry := range sorted {
		day, slotNumber := position(entry)
		fmt.Printf("Day: %v, Slot: %v, Subject: %v, Faculty: %v, Room: %v, Batch: %v\n",
			days[day],
			slotNumber,
			lookupName(entry.SubjectID, dataset),
			lookupName(entry.FacultyID, dataset),
			lookupName(entry.ClassroomID, dataset),
			lookupName(entry.BatchID, dataset),
		)
	}
}

func lookupName(id string, dataset *model.Dataset) string {
	if subject, found := dataset.SubjectByID(id); found {
		return subject.Name
	}
	if faculty, found := dataset.FacultyByID(id); found {
		return faculty.Name
	}
	if classroom, found := dataset.ClassroomByID(id); found {
		return classroom.Name
	}
	if batch, found := dataset.BatchByID(id); found {
		return batch.Name
	}
	return id
}

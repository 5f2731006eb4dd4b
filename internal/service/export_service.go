package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/personatable/timetable-api/internal/models"
	appErrors "github.com/personatable/timetable-api/pkg/errors"
	"github.com/personatable/timetable-api/pkg/export"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(table export.TimetableTable, title string) ([]byte, error)
}

// ExportService renders the stored timetable as CSV or PDF.
type ExportService struct {
	settings    settingsRepository
	instructors instructorLister
	courses     courseLister
	schedule    scheduleRepository
	csv         csvRenderer
	pdf         pdfRenderer
	pdfTitle    string
	logger      *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(
	settings settingsRepository,
	instructors instructorLister,
	courses courseLister,
	schedule scheduleRepository,
	pdfTitle string,
	logger *zap.Logger,
	csv csvRenderer,
	pdf pdfRenderer,
) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if pdfTitle == "" {
		pdfTitle = "Weekly Timetable"
	}
	return &ExportService{
		settings:    settings,
		instructors: instructors,
		courses:     courses,
		schedule:    schedule,
		csv:         csv,
		pdf:         pdf,
		pdfTitle:    pdfTitle,
		logger:      logger,
	}
}

// RenderCSV produces one row per placed session ordered by day then hour.
func (s *ExportService) RenderCSV(ctx context.Context) ([]byte, error) {
	view, err := s.loadView(ctx)
	if err != nil {
		return nil, err
	}

	placements := sortedPlacements(view.schedule.Placements, view.settings)
	rows := make([]map[string]string, 0, len(placements))
	for _, p := range placements {
		course := view.coursesByID[p.CourseID]
		rows = append(rows, map[string]string{
			"Course Code":  course.Code,
			"Course Title": course.Title,
			"Instructor":   view.instructorNames[p.InstructorID],
			"Day":          p.Day,
			"Start":        fmt.Sprintf("%02d:00", p.StartHour),
			"End":          fmt.Sprintf("%02d:00", p.StartHour+p.Duration),
			"Duration (h)": fmt.Sprintf("%d", p.Duration),
		})
	}

	dataset := export.Dataset{
		Headers: []string{"Course Code", "Course Title", "Instructor", "Day", "Start", "End", "Duration (h)"},
		Rows:    rows,
	}
	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	return payload, nil
}

// RenderPDF produces a week grid PDF of the stored timetable.
func (s *ExportService) RenderPDF(ctx context.Context) ([]byte, error) {
	view, err := s.loadView(ctx)
	if err != nil {
		return nil, err
	}

	table := export.TimetableTable{
		Days:      view.settings.Days,
		StartHour: view.settings.StartHour,
		Cells:     make([][]export.TimetableCell, view.settings.HoursCount()),
	}
	for hi := range table.Cells {
		table.Cells[hi] = make([]export.TimetableCell, len(view.settings.Days))
	}

	for _, p := range view.schedule.Placements {
		dayIdx := view.settings.DayIndex(p.Day)
		if dayIdx < 0 {
			continue
		}
		startIdx := p.StartHour - view.settings.StartHour
		course := view.coursesByID[p.CourseID]
		for offset := 0; offset < p.Duration; offset++ {
			hi := startIdx + offset
			if hi < 0 || hi >= len(table.Cells) {
				continue
			}
			table.Cells[hi][dayIdx] = export.TimetableCell{
				Code:       course.Code,
				Title:      course.Title,
				Instructor: view.instructorNames[p.InstructorID],
				Continues:  offset > 0,
			}
		}
	}

	payload, err := s.pdf.Render(table, s.pdfTitle)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
	}
	return payload, nil
}

type exportView struct {
	settings        models.Settings
	schedule        models.Schedule
	coursesByID     map[string]models.Course
	instructorNames map[string]string
}

func (s *ExportService) loadView(ctx context.Context) (*exportView, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}
	schedule, err := s.schedule.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	instructors, err := s.instructors.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}

	view := &exportView{
		settings:        settings,
		schedule:        schedule,
		coursesByID:     make(map[string]models.Course, len(courses)),
		instructorNames: make(map[string]string, len(instructors)),
	}
	for _, course := range courses {
		view.coursesByID[course.ID] = course
	}
	for _, inst := range instructors {
		view.instructorNames[inst.ID] = inst.Name
	}
	return view, nil
}

func sortedPlacements(placements []models.Placement, settings models.Settings) []models.Placement {
	sorted := make([]models.Placement, len(placements))
	copy(sorted, placements)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := settings.DayIndex(sorted[i].Day), settings.DayIndex(sorted[j].Day)
		if di != dj {
			return di < dj
		}
		return sorted[i].StartHour < sorted[j].StartHour
	})
	return sorted
}

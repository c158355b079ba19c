package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Devendra616/collectEmpData-sub000/internal/repository"
)

// Export business errors.
var (
	ErrExportNoEmployees = errors.New("no employees to export")
	ErrExportNoBirthdays = errors.New("no personal details saved yet")
)

// ExportService produces admin downloads.
//
// Exports are returned as buffers; the handler sets the download headers.
type ExportService interface {
	// ExportEmployees builds the submission roster as an .xlsx workbook.
	ExportEmployees(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportBirthdays builds a yearly-recurring birthday calendar (.ics)
	// from the saved personal details.
	ExportBirthdays(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportEmployees(ctx context.Context) (*bytes.Buffer, string, error) {
	employees, err := s.repo.Employee.ListAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, "", err
	}
	if len(employees) == 0 {
		return nil, "", ErrExportNoEmployees
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Employees"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"SAP ID", "First Name", "Last Name", "Email", "Submitted", "Registered On"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	for row, e := range employees {
		submitted := "No"
		if e.IsSubmitted {
			submitted = "Yes"
		}
		values := []interface{}{
			e.SapID, e.FirstName, e.LastName, e.Email,
			submitted, e.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("generate xlsx failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("employees-%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

func (s *exportService) ExportBirthdays(ctx context.Context) (*bytes.Buffer, string, error) {
	details, err := s.repo.Personal.ListAll(ctx)
	if err != nil {
		s.logger.Error("list personal details failed", zap.Error(err))
		return nil, "", err
	}
	if len(details) == 0 {
		return nil, "", ErrExportNoBirthdays
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//collect-emp-data//birthday-calendar//EN")

	now := time.Now()
	for _, d := range details {
		if d.DateOfBirth.IsZero() {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("birthday-%s@collect-emp-data", d.EmployeeID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		// anchor on this year's occurrence and recur yearly
		anchor := time.Date(now.Year(), d.DateOfBirth.Month(), d.DateOfBirth.Day(), 0, 0, 0, 0, time.UTC)
		event.SetAllDayStartAt(anchor)
		event.SetAllDayEndAt(anchor.AddDate(0, 0, 1))
		event.AddRrule("FREQ=YEARLY")
		event.SetSummary(fmt.Sprintf("Birthday: %s %s", d.FirstName, d.LastName))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("birthdays-%s.ics", now.Format("20060102"))
	return buf, filename, nil
}

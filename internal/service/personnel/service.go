package personnel

import (
	"context"
	"fmt"

	"github.com/restotrack/personnel-backend-go/internal/domain/audit"
	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
	auditService "github.com/restotrack/personnel-backend-go/internal/service/audit"
)

// WageConstants are the calendar divisors the rate deriver works with.
// Validated positive at startup, never re-checked here.
type WageConstants struct {
	DaysPerMonth int
	HoursPerDay  int
}

type PersonnelService interface {
	Create(ctx context.Context, actorID string, req personnel.CreatePersonnelRequest) (personnel.PersonnelResponse, error)
	Update(ctx context.Context, actorID string, req personnel.UpdatePersonnelRequest) (personnel.PersonnelResponse, error)
	Get(ctx context.Context, id string) (personnel.PersonnelResponse, error)
	List(ctx context.Context, activeOnly bool) ([]personnel.PersonnelResponse, error)
	Deactivate(ctx context.Context, actorID, id string) error
}

type personnelServiceImpl struct {
	personnelRepo personnel.PersonnelRepository
	tx            database.TxRunner
	recorder      auditService.Recorder
	wage          WageConstants
}

func NewPersonnelService(personnelRepo personnel.PersonnelRepository, tx database.TxRunner, recorder auditService.Recorder, wage WageConstants) PersonnelService {
	return &personnelServiceImpl{
		personnelRepo: personnelRepo,
		tx:            tx,
		recorder:      recorder,
		wage:          wage,
	}
}

func (s *personnelServiceImpl) Create(ctx context.Context, actorID string, req personnel.CreatePersonnelRequest) (personnel.PersonnelResponse, error) {
	if err := req.Validate(); err != nil {
		return personnel.PersonnelResponse{}, err
	}

	rates := personnel.DeriveWageRates(req.MonthlySalary, s.wage.DaysPerMonth, s.wage.HoursPerDay)

	p := personnel.Personnel{
		PersonnelNo:        req.PersonnelNo,
		Name:               req.Name,
		Surname:            req.Surname,
		MonthlySalary:      req.MonthlySalary,
		DailyWage:          rates.Daily,
		HourlyWage:         rates.Hourly,
		MinuteWage:         rates.Minute,
		ShiftStart:         req.ShiftStart,
		ShiftEnd:           req.ShiftEnd,
		MonthlyLeaveDays:   req.MonthlyLeaveDays,
		RemainingLeaveDays: req.MonthlyLeaveDays,
		IsActive:           true,
	}

	created, err := s.personnelRepo.Create(ctx, p)
	if err != nil {
		return personnel.PersonnelResponse{}, fmt.Errorf("failed to create personnel: %w", err)
	}

	s.recorder.Record(ctx, actorID, audit.ActionPersonnelCreate, "personnel", created.ID, map[string]interface{}{
		"personnel_no":   created.PersonnelNo,
		"monthly_salary": created.MonthlySalary,
	})

	return mapToResponse(created), nil
}

func (s *personnelServiceImpl) Update(ctx context.Context, actorID string, req personnel.UpdatePersonnelRequest) (personnel.PersonnelResponse, error) {
	if err := req.Validate(); err != nil {
		return personnel.PersonnelResponse{}, err
	}

	// The read locks the row so a concurrent update cannot commit between
	// the read and the full-row write and get silently overwritten.
	var current personnel.Personnel
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		current, err = s.personnelRepo.GetByIDForUpdate(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			current.Name = *req.Name
		}
		if req.Surname != nil {
			current.Surname = *req.Surname
		}
		if req.ShiftStart != nil {
			current.ShiftStart = *req.ShiftStart
		}
		if req.ShiftEnd != nil {
			current.ShiftEnd = *req.ShiftEnd
		}
		if req.MonthlyLeaveDays != nil {
			current.MonthlyLeaveDays = *req.MonthlyLeaveDays
		}
		if req.IsActive != nil {
			current.IsActive = *req.IsActive
		}

		// A salary change rewrites the salary and all derived rates together
		// so no reader ever sees rates from two different salaries.
		if req.MonthlySalary != nil {
			rates := personnel.DeriveWageRates(*req.MonthlySalary, s.wage.DaysPerMonth, s.wage.HoursPerDay)
			current.MonthlySalary = *req.MonthlySalary
			current.DailyWage = rates.Daily
			current.HourlyWage = rates.Hourly
			current.MinuteWage = rates.Minute
		}

		if err := s.personnelRepo.Update(ctx, current); err != nil {
			return fmt.Errorf("failed to update personnel: %w", err)
		}
		return nil
	})
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}

	s.recorder.Record(ctx, actorID, audit.ActionPersonnelUpdate, "personnel", current.ID, map[string]interface{}{
		"monthly_salary": current.MonthlySalary,
	})

	return mapToResponse(current), nil
}

func (s *personnelServiceImpl) Get(ctx context.Context, id string) (personnel.PersonnelResponse, error) {
	p, err := s.personnelRepo.GetByID(ctx, id)
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}
	return mapToResponse(p), nil
}

func (s *personnelServiceImpl) List(ctx context.Context, activeOnly bool) ([]personnel.PersonnelResponse, error) {
	people, err := s.personnelRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}

	result := make([]personnel.PersonnelResponse, 0, len(people))
	for _, p := range people {
		result = append(result, mapToResponse(p))
	}
	return result, nil
}

func (s *personnelServiceImpl) Deactivate(ctx context.Context, actorID, id string) error {
	var current personnel.Personnel
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		current, err = s.personnelRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		current.IsActive = false
		if err := s.personnelRepo.Update(ctx, current); err != nil {
			return fmt.Errorf("failed to deactivate personnel: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, audit.ActionPersonnelDeactivate, "personnel", id, map[string]interface{}{
		"personnel_no": current.PersonnelNo,
	})
	return nil
}

func mapToResponse(p personnel.Personnel) personnel.PersonnelResponse {
	return personnel.PersonnelResponse{
		ID:                 p.ID,
		PersonnelNo:        p.PersonnelNo,
		Name:               p.Name,
		Surname:            p.Surname,
		MonthlySalary:      p.MonthlySalary,
		DailyWage:          p.DailyWage,
		HourlyWage:         p.HourlyWage,
		MinuteWage:         p.MinuteWage,
		ShiftStart:         p.ShiftStart,
		ShiftEnd:           p.ShiftEnd,
		MonthlyLeaveDays:   p.MonthlyLeaveDays,
		RemainingLeaveDays: p.RemainingLeaveDays,
		IsActive:           p.IsActive,
	}
}

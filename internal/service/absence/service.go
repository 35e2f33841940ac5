package absence

import (
	"context"
	"fmt"

	"github.com/restotrack/personnel-backend-go/internal/domain/absence"
	"github.com/restotrack/personnel-backend-go/internal/domain/audit"
	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
	auditService "github.com/restotrack/personnel-backend-go/internal/service/audit"
	"github.com/shopspring/decimal"
)

type AbsenceService interface {
	Create(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error)
	Delete(ctx context.Context, req absence.DeleteAbsenceRequest) error
	Get(ctx context.Context, id string) (absence.AbsenceResponse, error)
	List(ctx context.Context, filter absence.Filter) (absence.ListAbsenceResponse, error)
}

type absenceServiceImpl struct {
	absenceRepo   absence.AbsenceRepository
	personnelRepo personnel.PersonnelRepository
	recorder      auditService.Recorder
}

func NewAbsenceService(
	absenceRepo absence.AbsenceRepository,
	personnelRepo personnel.PersonnelRepository,
	recorder auditService.Recorder,
) AbsenceService {
	return &absenceServiceImpl{
		absenceRepo:   absenceRepo,
		personnelRepo: personnelRepo,
		recorder:      recorder,
	}
}

// Create records an absence with the penalty resolved from the request and
// the personnel's daily wage at creation time. The stored amount is final;
// later wage changes do not rewrite it.
func (s *absenceServiceImpl) Create(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	p, err := s.personnelRepo.GetByID(ctx, req.PersonnelID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	kind := absence.Kind(req.Kind)
	record := absence.AbsenceRecord{
		PersonnelID:   req.PersonnelID,
		Date:          req.Day(),
		Kind:          kind,
		Excused:       req.Excused,
		PenaltyAmount: absence.ResolvePenalty(kind, req.Excused, req.Penalty, p.DailyWage),
		Reason:        req.Reason,
		CreatedBy:     req.CreatedBy,
	}

	created, err := s.absenceRepo.Create(ctx, record)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to create absence: %w", err)
	}

	s.recorder.Record(ctx, req.CreatedBy, audit.ActionAbsenceCreate, "absence_records", created.ID, map[string]interface{}{
		"personnel_id":   created.PersonnelID,
		"kind":           string(created.Kind),
		"excused":        created.Excused,
		"penalty_amount": created.PenaltyAmount,
	})

	return mapToResponse(created), nil
}

func (s *absenceServiceImpl) Delete(ctx context.Context, req absence.DeleteAbsenceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	record, err := s.absenceRepo.GetByID(ctx, req.AbsenceID)
	if err != nil {
		return err
	}

	if err := s.absenceRepo.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to delete absence: %w", err)
	}

	s.recorder.Record(ctx, req.DeletedBy, audit.ActionAbsenceDelete, "absence_records", record.ID, map[string]interface{}{
		"personnel_id":   record.PersonnelID,
		"kind":           string(record.Kind),
		"penalty_amount": record.PenaltyAmount,
	})
	return nil
}

func (s *absenceServiceImpl) Get(ctx context.Context, id string) (absence.AbsenceResponse, error) {
	record, err := s.absenceRepo.GetByID(ctx, id)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}
	return mapToResponse(record), nil
}

func (s *absenceServiceImpl) List(ctx context.Context, filter absence.Filter) (absence.ListAbsenceResponse, error) {
	records, err := s.absenceRepo.List(ctx, filter)
	if err != nil {
		return absence.ListAbsenceResponse{}, fmt.Errorf("failed to list absences: %w", err)
	}

	resp := absence.ListAbsenceResponse{
		Absences: make([]absence.AbsenceResponse, 0, len(records)),
		Stats: absence.AbsenceStats{
			TotalPenalty: decimal.Zero,
		},
	}
	for _, record := range records {
		resp.Absences = append(resp.Absences, mapToResponse(record))
		resp.Stats.TotalAbsences++
		if record.Excused {
			resp.Stats.ExcusedCount++
		} else {
			resp.Stats.UnexcusedCount++
		}
		resp.Stats.TotalPenalty = resp.Stats.TotalPenalty.Add(record.PenaltyAmount)
	}
	return resp, nil
}

func mapToResponse(record absence.AbsenceRecord) absence.AbsenceResponse {
	return absence.AbsenceResponse{
		ID:            record.ID,
		PersonnelID:   record.PersonnelID,
		PersonnelName: record.PersonnelName,
		Date:          record.Date.Format("2006-01-02"),
		Kind:          string(record.Kind),
		Excused:       record.Excused,
		PenaltyAmount: record.PenaltyAmount,
		Reason:        record.Reason,
		CreatedBy:     record.CreatedBy,
	}
}

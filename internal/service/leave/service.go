package leave

import (
	"context"
	"fmt"

	"github.com/restotrack/personnel-backend-go/internal/domain/audit"
	"github.com/restotrack/personnel-backend-go/internal/domain/leave"
	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
	auditService "github.com/restotrack/personnel-backend-go/internal/service/audit"
)

type LeaveService interface {
	Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.CreateLeaveResponse, error)
	Delete(ctx context.Context, req leave.DeleteLeaveRequest) (leave.DeleteLeaveResponse, error)
	Get(ctx context.Context, id string) (leave.LeaveResponse, error)
	List(ctx context.Context, personnelID string) ([]leave.LeaveResponse, error)
}

type leaveServiceImpl struct {
	leaveRepo     leave.LeaveRepository
	personnelRepo personnel.PersonnelRepository
	tx            database.TxRunner
	recorder      auditService.Recorder
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	personnelRepo personnel.PersonnelRepository,
	tx database.TxRunner,
	recorder auditService.Recorder,
) LeaveService {
	return &leaveServiceImpl{
		leaveRepo:     leaveRepo,
		personnelRepo: personnelRepo,
		tx:            tx,
		recorder:      recorder,
	}
}

// Create records a leave and, for the annual kind, deducts the inclusive day
// count from the remaining balance. Record and balance move in one
// transaction: a failed deduction rolls the record back.
func (s *leaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.CreateLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.CreateLeaveResponse{}, err
	}

	p, err := s.personnelRepo.GetByID(ctx, req.PersonnelID)
	if err != nil {
		return leave.CreateLeaveResponse{}, err
	}
	if !p.IsActive {
		return leave.CreateLeaveResponse{}, personnel.ErrPersonnelInactive
	}

	start, end := req.Dates()
	record := leave.LeaveRecord{
		PersonnelID: req.PersonnelID,
		Kind:        leave.Kind(req.Kind),
		StartDate:   start,
		EndDate:     end,
		TotalDays:   leave.TotalDaysInclusive(start, end),
		Reason:      req.Reason,
		ApprovedBy:  req.ApprovedBy,
		Status:      "approved",
	}

	var created leave.LeaveRecord
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.leaveRepo.Create(ctx, record)
		if txErr != nil {
			return fmt.Errorf("failed to create leave record: %w", txErr)
		}
		if created.Kind == leave.KindAnnual {
			if txErr = s.personnelRepo.DeductLeaveDays(ctx, created.PersonnelID, created.TotalDays); txErr != nil {
				return fmt.Errorf("failed to deduct leave days: %w", txErr)
			}
		}
		return nil
	})
	if err != nil {
		return leave.CreateLeaveResponse{}, err
	}

	s.recorder.Record(ctx, req.ApprovedBy, audit.ActionLeaveCreate, "leave_records", created.ID, map[string]interface{}{
		"personnel_id": created.PersonnelID,
		"kind":         string(created.Kind),
		"total_days":   created.TotalDays,
	})

	after, err := s.personnelRepo.GetByID(ctx, created.PersonnelID)
	if err != nil {
		return leave.CreateLeaveResponse{}, err
	}

	return leave.CreateLeaveResponse{
		Leave:              mapToResponse(created),
		RemainingLeaveDays: after.RemainingLeaveDays,
	}, nil
}

// Delete removes a leave record and, for the annual kind, restores its full
// day count to the balance. The restore is uncapped: the balance may exceed
// the monthly allotment afterwards.
func (s *leaveServiceImpl) Delete(ctx context.Context, req leave.DeleteLeaveRequest) (leave.DeleteLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.DeleteLeaveResponse{}, err
	}

	record, err := s.leaveRepo.GetByID(ctx, req.LeaveID)
	if err != nil {
		return leave.DeleteLeaveResponse{}, err
	}

	restore := record.Kind == leave.KindAnnual
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if txErr := s.leaveRepo.Delete(ctx, record.ID); txErr != nil {
			return fmt.Errorf("failed to delete leave record: %w", txErr)
		}
		if restore {
			if txErr := s.personnelRepo.RestoreLeaveDays(ctx, record.PersonnelID, record.TotalDays); txErr != nil {
				return fmt.Errorf("failed to restore leave days: %w", txErr)
			}
		}
		return nil
	})
	if err != nil {
		return leave.DeleteLeaveResponse{}, err
	}

	s.recorder.Record(ctx, req.DeletedBy, audit.ActionLeaveDelete, "leave_records", record.ID, map[string]interface{}{
		"personnel_id": record.PersonnelID,
		"kind":         string(record.Kind),
		"total_days":   record.TotalDays,
	})

	after, err := s.personnelRepo.GetByID(ctx, record.PersonnelID)
	if err != nil {
		return leave.DeleteLeaveResponse{}, err
	}

	resp := leave.DeleteLeaveResponse{
		RemainingLeaveDays: after.RemainingLeaveDays,
		BalanceRestored:    restore,
	}
	if restore {
		resp.RestoredDays = record.TotalDays
	}
	return resp, nil
}

func (s *leaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	record, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapToResponse(record), nil
}

func (s *leaveServiceImpl) List(ctx context.Context, personnelID string) ([]leave.LeaveResponse, error) {
	var (
		records []leave.LeaveRecord
		err     error
	)
	if personnelID != "" {
		records, err = s.leaveRepo.ListByPersonnel(ctx, personnelID)
	} else {
		records, err = s.leaveRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}

	result := make([]leave.LeaveResponse, 0, len(records))
	for _, record := range records {
		result = append(result, mapToResponse(record))
	}
	return result, nil
}

func mapToResponse(record leave.LeaveRecord) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:            record.ID,
		PersonnelID:   record.PersonnelID,
		PersonnelName: record.PersonnelName,
		Kind:          string(record.Kind),
		StartDate:     record.StartDate.Format("2006-01-02"),
		EndDate:       record.EndDate.Format("2006-01-02"),
		TotalDays:     record.TotalDays,
		Reason:        record.Reason,
		ApprovedBy:    record.ApprovedBy,
		Status:        record.Status,
	}
}

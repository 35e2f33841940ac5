package adjustment

import (
	"context"
	"fmt"

	"github.com/restotrack/personnel-backend-go/internal/domain/adjustment"
	"github.com/restotrack/personnel-backend-go/internal/domain/audit"
	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
	auditService "github.com/restotrack/personnel-backend-go/internal/service/audit"
)

type AdjustmentService interface {
	Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error)
	Get(ctx context.Context, id string) (adjustment.AdjustmentResponse, error)
	List(ctx context.Context, personnelID string) ([]adjustment.AdjustmentResponse, error)
}

type adjustmentServiceImpl struct {
	adjustmentRepo adjustment.AdjustmentRepository
	personnelRepo  personnel.PersonnelRepository
	recorder       auditService.Recorder
}

func NewAdjustmentService(
	adjustmentRepo adjustment.AdjustmentRepository,
	personnelRepo personnel.PersonnelRepository,
	recorder auditService.Recorder,
) AdjustmentService {
	return &adjustmentServiceImpl{
		adjustmentRepo: adjustmentRepo,
		personnelRepo:  personnelRepo,
		recorder:       recorder,
	}
}

// Create stores a salary adjustment. Only approved entries reach summaries,
// so auto-approved ones take effect immediately and pending ones wait.
func (s *adjustmentServiceImpl) Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	if _, err := s.personnelRepo.GetByID(ctx, req.PersonnelID); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	status := adjustment.StatusPending
	if req.AutoApprove {
		status = adjustment.StatusApproved
	}

	created, err := s.adjustmentRepo.Create(ctx, adjustment.SalaryAdjustment{
		PersonnelID:  req.PersonnelID,
		Kind:         adjustment.Kind(req.Kind),
		Amount:       req.Amount,
		AttendanceID: req.AttendanceID,
		Reason:       req.Reason,
		Status:       status,
		CreatedBy:    req.CreatedBy,
	})
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	s.recorder.Record(ctx, req.CreatedBy, audit.ActionAdjustmentCreate, "salary_adjustments", created.ID, map[string]interface{}{
		"personnel_id": created.PersonnelID,
		"kind":         string(created.Kind),
		"amount":       created.Amount,
		"status":       string(created.Status),
	})

	return mapToResponse(created), nil
}

func (s *adjustmentServiceImpl) Get(ctx context.Context, id string) (adjustment.AdjustmentResponse, error) {
	adj, err := s.adjustmentRepo.GetByID(ctx, id)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	return mapToResponse(adj), nil
}

func (s *adjustmentServiceImpl) List(ctx context.Context, personnelID string) ([]adjustment.AdjustmentResponse, error) {
	adjustments, err := s.adjustmentRepo.ListByPersonnel(ctx, personnelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}

	result := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	for _, adj := range adjustments {
		result = append(result, mapToResponse(adj))
	}
	return result, nil
}

func mapToResponse(adj adjustment.SalaryAdjustment) adjustment.AdjustmentResponse {
	return adjustment.AdjustmentResponse{
		ID:            adj.ID,
		PersonnelID:   adj.PersonnelID,
		PersonnelName: adj.PersonnelName,
		Kind:          string(adj.Kind),
		Amount:        adj.Amount,
		AttendanceID:  adj.AttendanceID,
		Reason:        adj.Reason,
		Status:        string(adj.Status),
		CreatedBy:     adj.CreatedBy,
	}
}

package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/restotrack/personnel-backend-go/internal/domain/absence"
	"github.com/restotrack/personnel-backend-go/internal/domain/adjustment"
	"github.com/restotrack/personnel-backend-go/internal/domain/attendance"
	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
	"github.com/restotrack/personnel-backend-go/internal/domain/summary"
)

type SummaryService interface {
	Range(ctx context.Context, personnelID string, from, to time.Time) (summary.Summary, error)
	CurrentMonth(ctx context.Context, personnelID string, now time.Time) (summary.Summary, error)
	Trailing30(ctx context.Context, personnelID string, now time.Time) (summary.Summary, error)
}

type summaryServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	absenceRepo    absence.AbsenceRepository
	adjustmentRepo adjustment.AdjustmentRepository
	personnelRepo  personnel.PersonnelRepository
}

func NewSummaryService(
	attendanceRepo attendance.AttendanceRepository,
	absenceRepo absence.AbsenceRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
	personnelRepo personnel.PersonnelRepository,
) SummaryService {
	return &summaryServiceImpl{
		attendanceRepo: attendanceRepo,
		absenceRepo:    absenceRepo,
		adjustmentRepo: adjustmentRepo,
		personnelRepo:  personnelRepo,
	}
}

// Range recomputes the aggregate for [from, to] inclusive from the three
// ledgers. Nothing is cached: a deleted absence or a newly approved
// adjustment changes the next call's result.
func (s *summaryServiceImpl) Range(ctx context.Context, personnelID string, from, to time.Time) (summary.Summary, error) {
	if to.Before(from) {
		return summary.Summary{}, fmt.Errorf("summary range end %s before start %s", to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	if _, err := s.personnelRepo.GetByID(ctx, personnelID); err != nil {
		return summary.Summary{}, err
	}

	result := summary.Zero(personnelID, from, to)

	attendances, err := s.attendanceRepo.ListCompletedInRange(ctx, personnelID, from, to)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("failed to load attendance for summary: %w", err)
	}
	for _, a := range attendances {
		result.WorkedDays++
		result.WorkedMinutes += a.WorkedMinutes
		result.GrossEarnings = result.GrossEarnings.Add(a.GrossEarnings)
		result.OvertimeAmount = result.OvertimeAmount.Add(a.OvertimeAmount)
		result.LatePenalty = result.LatePenalty.Add(a.LatePenalty)
		result.EarlyLeavePenalty = result.EarlyLeavePenalty.Add(a.EarlyLeavePenalty)
		result.NetEarnings = result.NetEarnings.Add(a.NetEarnings)
	}

	absences, err := s.absenceRepo.ListInRange(ctx, personnelID, from, to)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("failed to load absences for summary: %w", err)
	}
	for _, rec := range absences {
		result.AbsencePenalty = result.AbsencePenalty.Add(rec.PenaltyAmount)
	}
	result.NetEarnings = result.NetEarnings.Sub(result.AbsencePenalty)

	adjustments, err := s.adjustmentRepo.ListApprovedInRange(ctx, personnelID, from, to)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("failed to load adjustments for summary: %w", err)
	}
	penaltyAdjustments := result.AdjustmentTotal
	for _, adj := range adjustments {
		result.AdjustmentTotal = result.AdjustmentTotal.Add(adj.Signed())
		result.NetEarnings = result.NetEarnings.Add(adj.Signed())
		if adj.Kind == adjustment.KindPenalty {
			penaltyAdjustments = penaltyAdjustments.Add(adj.Amount)
		}
	}

	result.TotalDeductions = result.LatePenalty.
		Add(result.EarlyLeavePenalty).
		Add(result.AbsencePenalty).
		Add(penaltyAdjustments)

	return result, nil
}

// CurrentMonth covers the first of now's month through now's day.
func (s *summaryServiceImpl) CurrentMonth(ctx context.Context, personnelID string, now time.Time) (summary.Summary, error) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.Range(ctx, personnelID, from, to)
}

// Trailing30 covers the 30 calendar days ending on now's day, inclusive.
func (s *summaryServiceImpl) Trailing30(ctx context.Context, personnelID string, now time.Time) (summary.Summary, error) {
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -29)
	return s.Range(ctx, personnelID, from, to)
}

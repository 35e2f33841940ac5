package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/restotrack/personnel-backend-go/internal/domain/attendance"
	"github.com/restotrack/personnel-backend-go/internal/domain/audit"
	"github.com/restotrack/personnel-backend-go/internal/domain/kiosk"
	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
	auditService "github.com/restotrack/personnel-backend-go/internal/service/audit"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error)
	CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error)
	Recompute(ctx context.Context, actorID, attendanceID string) (attendance.AttendanceResponse, error)
	Get(ctx context.Context, id string) (attendance.AttendanceResponse, error)
	List(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error)
}

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	personnelRepo  personnel.PersonnelRepository
	kioskRepo      kiosk.KioskRepository
	tx             database.TxRunner
	recorder       auditService.Recorder
	policy         attendance.EarningsPolicy
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	personnelRepo personnel.PersonnelRepository,
	kioskRepo kiosk.KioskRepository,
	tx database.TxRunner,
	recorder auditService.Recorder,
	policy attendance.EarningsPolicy,
) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		personnelRepo:  personnelRepo,
		kioskRepo:      kioskRepo,
		tx:             tx,
		recorder:       recorder,
		policy:         policy,
	}
}

// CheckIn opens an attendance session for the check-in instant's calendar
// day. A second check-in on the same day is rejected whether or not the
// first session is closed.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	p, err := s.personnelRepo.GetByID(ctx, req.PersonnelID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !p.IsActive {
		return attendance.AttendanceResponse{}, personnel.ErrPersonnelInactive
	}

	at := req.At()
	workDate := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.attendanceRepo.GetByPersonnelAndDate(ctx, req.PersonnelID, workDate)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	// Token consumption and the session insert commit or roll back together:
	// a failed insert must not burn the single-use token.
	var created attendance.Attendance
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if req.QRToken != "" {
			if _, err := s.kioskRepo.ConsumeToken(ctx, req.QRToken); err != nil {
				return err
			}
		}

		created, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
			PersonnelID: req.PersonnelID,
			WorkDate:    workDate,
			CheckIn:     at,
		})
		if err != nil {
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.recorder.Record(ctx, req.PersonnelID, audit.ActionAttendanceCheckIn, "attendance_records", created.ID, map[string]interface{}{
		"work_date": workDate.Format("2006-01-02"),
		"check_in":  at.Format(time.RFC3339),
	})

	return mapToResponse(created), nil
}

// CheckOut closes the session and prices the shift against the personnel's
// current shift window and minute wage. Later rate changes do not rewrite
// the stored breakdown unless Recompute is called.
func (s *attendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a, err := s.attendanceRepo.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if a.Completed() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	p, err := s.personnelRepo.GetByID(ctx, a.PersonnelID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at := req.At()
	breakdown, err := attendance.ComputeEarnings(p.ShiftStart, p.ShiftEnd, a.CheckIn, at, p.MinuteWage, s.policy)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.CheckOut = &at
	applyBreakdown(&a, breakdown)

	if err := s.attendanceRepo.Update(ctx, a); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to store check-out: %w", err)
	}

	s.recorder.Record(ctx, a.PersonnelID, audit.ActionAttendanceCheckOut, "attendance_records", a.ID, map[string]interface{}{
		"check_out":    at.Format(time.RFC3339),
		"net_earnings": a.NetEarnings,
	})

	return mapToResponse(a), nil
}

// Recompute reprices a completed record with the personnel's current shift
// window and minute wage. Used after a salary or shift correction.
func (s *attendanceServiceImpl) Recompute(ctx context.Context, actorID, attendanceID string) (attendance.AttendanceResponse, error) {
	a, err := s.attendanceRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !a.Completed() {
		return attendance.AttendanceResponse{}, attendance.ErrNotCompleted
	}

	p, err := s.personnelRepo.GetByID(ctx, a.PersonnelID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	breakdown, err := attendance.ComputeEarnings(p.ShiftStart, p.ShiftEnd, a.CheckIn, *a.CheckOut, p.MinuteWage, s.policy)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	applyBreakdown(&a, breakdown)
	if err := s.attendanceRepo.Update(ctx, a); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to store recompute: %w", err)
	}

	s.recorder.Record(ctx, actorID, audit.ActionAttendanceRecompute, "attendance_records", a.ID, map[string]interface{}{
		"net_earnings": a.NetEarnings,
	})

	return mapToResponse(a), nil
}

func (s *attendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	a, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapToResponse(a), nil
}

func (s *attendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		result = append(result, mapToResponse(a))
	}
	return result, nil
}

func applyBreakdown(a *attendance.Attendance, b attendance.EarningsBreakdown) {
	a.WorkedMinutes = b.WorkedMinutes
	a.OvertimeMinutes = b.OvertimeMinutes
	a.LateMinutes = b.LateMinutes
	a.EarlyLeaveMinutes = b.EarlyLeaveMinutes
	a.GrossEarnings = b.Gross
	a.OvertimeAmount = b.OvertimeAmount
	a.LatePenalty = b.LatePenalty
	a.EarlyLeavePenalty = b.EarlyLeavePenalty
	a.NetEarnings = b.Net
}

func mapToResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                a.ID,
		PersonnelID:       a.PersonnelID,
		PersonnelName:     a.PersonnelName,
		WorkDate:          a.WorkDate.Format("2006-01-02"),
		CheckIn:           a.CheckIn.Format(time.RFC3339),
		WorkedMinutes:     a.WorkedMinutes,
		OvertimeMinutes:   a.OvertimeMinutes,
		LateMinutes:       a.LateMinutes,
		EarlyLeaveMinutes: a.EarlyLeaveMinutes,
		GrossEarnings:     a.GrossEarnings,
		OvertimeAmount:    a.OvertimeAmount,
		LatePenalty:       a.LatePenalty,
		EarlyLeavePenalty: a.EarlyLeavePenalty,
		NetEarnings:       a.NetEarnings,
		Completed:         a.Completed(),
	}
	if a.CheckOut != nil {
		out := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &out
	}
	return resp
}

package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/settings"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type SalaryServiceImpl struct {
	settingsRepo   settings.SettingsRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	policy         payroll.Policy
}

func NewSalaryService(
	settingsRepo settings.SettingsRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	policy payroll.Policy,
) payroll.SalaryService {
	return &SalaryServiceImpl{
		settingsRepo:   settingsRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		policy:         policy,
	}
}

// monthContext holds the per-month calendar derivation shared by every
// employee calculated against the same period.
type monthContext struct {
	month int
	year  int

	firstOfMonth time.Time
	lastOfMonth  time.Time

	weekendDays []string
	holidays    []time.Time
	workingDays int
	dailyHours  float64

	// expected check-in clock time, from the settings' working-hours start
	startHour   int
	startMinute int
}

// buildMonthContext derives the month calendar from the settings record.
func (s *SalaryServiceImpl) buildMonthContext(st settings.Settings, month, year int) (monthContext, error) {
	weekendDays := s.policy.WeekendDays
	if len(weekendDays) == 0 {
		weekendDays = st.EffectiveWeekendDays()
	}

	startHour, startMinute, err := calendar.ParseTimeOfDay(st.WorkingHoursStart)
	if err != nil {
		return monthContext{}, fmt.Errorf("working hours start: %w", err)
	}

	dailyHours := s.policy.DailyHours
	if s.policy.DeriveDailyHours {
		dailyHours, err = calendar.WorkingHours(st.WorkingHoursStart, st.WorkingHoursEnd)
		if err != nil {
			return monthContext{}, fmt.Errorf("working hours span: %w", err)
		}
	}
	if dailyHours <= 0 {
		return monthContext{}, payroll.ErrInvalidDailyHours
	}

	workingDays := calendar.WorkingDaysInMonth(year, month, weekendDays, st.HolidayDates)
	if workingDays == 0 {
		return monthContext{}, payroll.ErrNoWorkingDays
	}

	return monthContext{
		month:        month,
		year:         year,
		firstOfMonth: time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		lastOfMonth:  time.Date(year, time.Month(month), calendar.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC),
		weekendDays:  weekendDays,
		holidays:     st.HolidayDates,
		workingDays:  workingDays,
		dailyHours:   dailyHours,
		startHour:    startHour,
		startMinute:  startMinute,
	}, nil
}

func (s *SalaryServiceImpl) CalculateSalary(ctx context.Context, req payroll.CalculateSalaryRequest) (payroll.SalaryCalculation, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryCalculation{}, err
	}

	firstOfMonth := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := time.Date(req.Year, time.Month(req.Month), calendar.DaysInMonth(req.Year, req.Month), 0, 0, 0, 0, time.UTC)

	// The three reads are independent, fetch them concurrently.
	var (
		st            settings.Settings
		records       []attendance.Attendance
		leaveRequests []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		st, err = s.settingsRepo.Get(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.GetByEmployeeAndDateRange(gCtx, req.EmployeeID, firstOfMonth, lastOfMonth)
		if err != nil {
			return fmt.Errorf("failed to get attendance records: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		leaveRequests, err = s.leaveRepo.GetApprovedByEmployeeOverlapping(gCtx, req.EmployeeID, firstOfMonth, lastOfMonth)
		if err != nil {
			return fmt.Errorf("failed to get leave requests: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return payroll.SalaryCalculation{}, err
	}

	mc, err := s.buildMonthContext(st, req.Month, req.Year)
	if err != nil {
		return payroll.SalaryCalculation{}, err
	}

	return s.classifyMonth(mc, req.EmployeeID, req.BaseSalary, records, leaveRequests)
}

func (s *SalaryServiceImpl) CalculateMonth(ctx context.Context, month, year int, employees []payroll.EmployeeSalaryInput) ([]payroll.EmployeeSalaryResult, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, payroll.ErrInvalidPeriod
	}

	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	// Settings load and calendar derivation happen once for the whole run.
	mc, err := s.buildMonthContext(st, month, year)
	if err != nil {
		return nil, err
	}

	results := make([]payroll.EmployeeSalaryResult, len(employees))
	for i, emp := range employees {
		results[i] = payroll.EmployeeSalaryResult{EmployeeID: emp.EmployeeID}

		if emp.EmployeeID == "" {
			results[i].Err = payroll.ErrEmployeeIDRequired
			continue
		}
		if !emp.BaseSalary.IsPositive() {
			results[i].Err = payroll.ErrInvalidBaseSalary
			continue
		}

		records, err := s.attendanceRepo.GetByEmployeeAndDateRange(ctx, emp.EmployeeID, mc.firstOfMonth, mc.lastOfMonth)
		if err != nil {
			results[i].Err = fmt.Errorf("failed to get attendance records: %w", err)
			continue
		}
		leaveRequests, err := s.leaveRepo.GetApprovedByEmployeeOverlapping(ctx, emp.EmployeeID, mc.firstOfMonth, mc.lastOfMonth)
		if err != nil {
			results[i].Err = fmt.Errorf("failed to get leave requests: %w", err)
			continue
		}

		calc, err := s.classifyMonth(mc, emp.EmployeeID, emp.BaseSalary, records, leaveRequests)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Calculation = calc
	}

	return results, nil
}

func (s *SalaryServiceImpl) WorkingDaysPreview(ctx context.Context, from time.Time, count int) ([]payroll.MonthWorkingDays, error) {
	if count <= 0 {
		count = 6
	}

	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	weekendDays := s.policy.WeekendDays
	if len(weekendDays) == 0 {
		weekendDays = st.EffectiveWeekendDays()
	}

	months := calendar.UpcomingMonths(from, count, weekendDays, st.HolidayDates)
	result := make([]payroll.MonthWorkingDays, 0, len(months))
	for _, m := range months {
		result = append(result, payroll.MonthWorkingDays{
			Year:        m.Year,
			Month:       m.Month,
			MonthName:   m.MonthName,
			TotalDays:   m.TotalDays,
			WorkingDays: m.WorkingDays,
			WeekendDays: m.WeekendDays,
		})
	}
	return result, nil
}

// classifyMonth walks every calendar day of the month in ascending order and
// folds attendance, leave, and the calendar into counters and deductions.
func (s *SalaryServiceImpl) classifyMonth(
	mc monthContext,
	employeeID string,
	baseSalary decimal.Decimal,
	records []attendance.Attendance,
	leaveRequests []leave.LeaveRequest,
) (payroll.SalaryCalculation, error) {
	rates, err := CalculateRates(baseSalary, mc.workingDays, mc.dailyHours)
	if err != nil {
		return payroll.SalaryCalculation{}, err
	}

	recordsByDate := make(map[string]attendance.Attendance, len(records))
	for _, r := range records {
		recordsByDate[r.Date.Format("2006-01-02")] = r
	}

	var (
		presentDays           int
		absentDays            int
		leaveDays             int
		lateCount             int
		totalLateMinutes      int
		deductibleLateMinutes int
		consecutiveLeaveDays  int
		maxConsecutiveLeave   int
	)

	for day := 1; day <= calendar.DaysInMonth(mc.year, mc.month); day++ {
		date := time.Date(mc.year, time.Month(mc.month), day, 0, 0, 0, 0, time.UTC)

		record, hasRecord := recordsByDate[date.Format("2006-01-02")]
		onLeave := false
		for _, lr := range leaveRequests {
			if lr.Covers(date) {
				onLeave = true
				break
			}
		}

		// Weekend days are paid non-working days: never present, absent or
		// late. A leave that brackets a weekend day pulls it into the
		// consecutive-leave streak.
		if calendar.IsWeekend(date, mc.weekendDays) {
			if onLeave {
				consecutiveLeaveDays++
				if consecutiveLeaveDays > maxConsecutiveLeave {
					maxConsecutiveLeave = consecutiveLeaveDays
				}
			} else {
				consecutiveLeaveDays = 0
			}
			continue
		}

		// Holidays are skipped without touching any counter. The streak
		// survives a holiday unless the policy says otherwise.
		if calendar.IsHoliday(date, mc.holidays) {
			if s.policy.HolidayResetsLeaveStreak {
				consecutiveLeaveDays = 0
			}
			continue
		}

		switch {
		case hasRecord:
			consecutiveLeaveDays = 0
			if record.IsAbsent() {
				absentDays++
				continue
			}

			presentDays++
			if record.IsLate {
				lateCount++
				if record.CheckInTime != nil {
					expected := time.Date(date.Year(), date.Month(), date.Day(),
						mc.startHour, mc.startMinute, 0, 0, record.CheckInTime.Location())
					lateMinutes := int(record.CheckInTime.Sub(expected) / time.Minute)
					if lateMinutes > 0 {
						totalLateMinutes += lateMinutes
						if lateMinutes > s.policy.LateGraceMinutes {
							deductibleLateMinutes += lateMinutes - s.policy.LateGraceMinutes
						}
					}
				}
			}

		case onLeave:
			leaveDays++
			consecutiveLeaveDays++
			if consecutiveLeaveDays > maxConsecutiveLeave {
				maxConsecutiveLeave = consecutiveLeaveDays
			}

		default:
			// No record, no leave: an unexcused absence.
			absentDays++
			consecutiveLeaveDays = 0
		}
	}

	lateDeductions := rates.MinuteRate.Mul(decimal.NewFromInt(int64(deductibleLateMinutes)))
	absentDeductions := rates.DailyRate.Mul(decimal.NewFromInt(int64(absentDays)))

	// A leave streak of two or more days (weekend-bracketing included) is
	// charged for the whole span; otherwise each leave day is charged
	// individually.
	var leaveDeductions decimal.Decimal
	if maxConsecutiveLeave >= 2 {
		leaveDeductions = rates.DailyRate.Mul(decimal.NewFromInt(int64(maxConsecutiveLeave)))
	} else {
		leaveDeductions = rates.DailyRate.Mul(decimal.NewFromInt(int64(leaveDays)))
	}

	totalDeductions := lateDeductions.Add(leaveDeductions).Add(absentDeductions)

	totalSalary := baseSalary.Sub(totalDeductions)
	if totalSalary.IsNegative() {
		totalSalary = decimal.Zero
	}

	return payroll.SalaryCalculation{
		EmployeeID:           employeeID,
		Month:                mc.month,
		Year:                 mc.year,
		BaseSalary:           baseSalary,
		WorkingDays:          mc.workingDays,
		PresentDays:          presentDays,
		AbsentDays:           absentDays,
		LeaveDays:            leaveDays,
		LateCount:            lateCount,
		TotalLateMinutes:     totalLateMinutes,
		ConsecutiveLeaveDays: maxConsecutiveLeave,
		LateDeductions:       lateDeductions,
		LeaveDeductions:      leaveDeductions,
		AbsentDeductions:     absentDeductions,
		TotalDeductions:      totalDeductions,
		TotalSalary:          totalSalary,
		DailyRate:            rates.DailyRate,
		HourlyRate:           rates.HourlyRate,
		MinuteRate:           rates.MinuteRate,
	}, nil
}

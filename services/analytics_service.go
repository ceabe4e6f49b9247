package services

import (
	"context"
	"math"
	"time"

	"github.com/edulizanay/voice-food-logger-ios/models"

	"gorm.io/gorm"
)

// AnalyticsService rolls logged entries up into daily totals and
// period-windowed chart series with goal overlays. It only ever reads
// stored records; totals are recomputed from source rows on every call
// so edits and deletes can never leave a stale cached sum behind.
type AnalyticsService struct {
	db      *gorm.DB
	goals   *GoalService
	weights *WeightService
}

func NewAnalyticsService(db *gorm.DB, goals *GoalService, weights *WeightService) *AnalyticsService {
	return &AnalyticsService{db: db, goals: goals, weights: weights}
}

// ---------- periods ----------

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// PeriodRange maps a period name to an inclusive day range ending
// today. Unknown periods fall back to a week.
func PeriodRange(period string, now time.Time) (from, to time.Time) {
	today := dayStart(now)
	switch period {
	case PeriodToday:
		return today, today
	case PeriodMonth:
		return today.AddDate(0, 0, -30), today
	case PeriodWeek:
		return today.AddDate(0, 0, -7), today
	default:
		return today.AddDate(0, 0, -7), today
	}
}

// ---------- daily totals ----------

// DailyTotals sums macros over every item logged on the given calendar
// day.
func (s *AnalyticsService) DailyTotals(ctx context.Context, date time.Time) (models.MacroTotals, error) {
	start := dayStart(date)
	end := start.Add(24 * time.Hour)

	var rows []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("ate_at >= ? AND ate_at < ?", start, end).
		Find(&rows).Error
	if err != nil {
		return models.MacroTotals{}, err
	}
	return sumMacros(rows), nil
}

func sumMacros(rows []models.FoodEntry) models.MacroTotals {
	var t models.MacroTotals
	for _, r := range rows {
		t.Calories += r.Calories
		t.ProteinG += r.Protein
		t.CarbsG += r.Carbs
		t.FatG += r.Fat
	}
	return models.MacroTotals{
		Calories: math.Round(t.Calories),
		ProteinG: round1(t.ProteinG),
		CarbsG:   round1(t.CarbsG),
		FatG:     round1(t.FatG),
	}
}

// ---------- calorie history ----------

// CalorieHistoryRow is one day of the chart series. The goal value is a
// snapshot taken at query time, not a historical record.
type CalorieHistoryRow struct {
	Date         string  `json:"date"`
	Calories     float64 `json:"calories"`
	GoalCalories int     `json:"goal_calories"`
	ProteinG     float64 `json:"protein_g"`
	CarbsG       float64 `json:"carbs_g"`
	FatG         float64 `json:"fat_g"`
}

// CalorieHistory produces one row per calendar day in the period's
// inclusive range, zero-filled on days without entries. Chart consumers
// depend on the series being contiguous.
func (s *AnalyticsService) CalorieHistory(ctx context.Context, period string, now time.Time) ([]CalorieHistoryRow, error) {
	from, to := PeriodRange(period, now)

	var rows []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("ate_at >= ? AND ate_at < ?", from, to.Add(24*time.Hour)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.Current(ctx)
	if err != nil {
		return nil, err
	}

	return buildCalorieHistory(from, to, rows, goal.CalorieGoal), nil
}

func buildCalorieHistory(from, to time.Time, rows []models.FoodEntry, goalCalories int) []CalorieHistoryRow {
	byDay := map[string][]models.FoodEntry{}
	for _, r := range rows {
		key := r.AteAt.Format("2006-01-02")
		byDay[key] = append(byDay[key], r)
	}

	var out []CalorieHistoryRow
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		totals := sumMacros(byDay[key])
		out = append(out, CalorieHistoryRow{
			Date:         key,
			Calories:     totals.Calories,
			GoalCalories: goalCalories,
			ProteinG:     totals.ProteinG,
			CarbsG:       totals.CarbsG,
			FatG:         totals.FatG,
		})
	}
	return out
}

// CalorieSummary aggregates a period's history into goal-adherence
// statistics.
type CalorieSummary struct {
	Period        string  `json:"period"`
	AvgCalories   float64 `json:"avg_calories"`
	GoalCalories  int     `json:"goal_calories"`
	DaysUnderGoal int     `json:"days_under_goal"`
	DaysOverGoal  int     `json:"days_over_goal"`
	DaysAtGoal    int     `json:"days_at_goal"`
	TotalDays     int     `json:"total_days"`
}

func (s *AnalyticsService) CalorieSummaryFor(ctx context.Context, period string, now time.Time) (CalorieSummary, error) {
	history, err := s.CalorieHistory(ctx, period, now)
	if err != nil {
		return CalorieSummary{}, err
	}
	return summarizeCalories(period, history), nil
}

func summarizeCalories(period string, history []CalorieHistoryRow) CalorieSummary {
	out := CalorieSummary{Period: period, GoalCalories: DefaultCalorieGoal}
	if len(history) == 0 {
		return out
	}

	out.GoalCalories = history[0].GoalCalories
	out.TotalDays = len(history)

	var total float64
	for _, day := range history {
		total += day.Calories
		switch {
		case day.Calories < float64(out.GoalCalories):
			out.DaysUnderGoal++
		case day.Calories > float64(out.GoalCalories):
			out.DaysOverGoal++
		default:
			out.DaysAtGoal++
		}
	}
	out.AvgCalories = math.Round(total / float64(len(history)))
	return out
}

// ---------- progress ----------

// ProgressSummary compares current intake against a goal.
type ProgressSummary struct {
	Remaining  int     `json:"remaining"`
	Percentage float64 `json:"percentage"`
	IsOver     bool    `json:"is_over"`
}

// ComputeProgress never divides by zero: a zero goal reports zero
// percent rather than infinity.
func ComputeProgress(currentCalories, goalCalories int) ProgressSummary {
	remaining := goalCalories - currentCalories
	if remaining < 0 {
		remaining = 0
	}
	var percentage float64
	if goalCalories > 0 {
		percentage = round1(float64(currentCalories) / float64(goalCalories) * 100)
	}
	return ProgressSummary{
		Remaining:  remaining,
		Percentage: percentage,
		IsOver:     currentCalories > goalCalories,
	}
}

// TodayProgress pairs today's intake with the active calorie goal.
type TodayProgress struct {
	Date         string  `json:"date"`
	Calories     float64 `json:"calories"`
	GoalCalories int     `json:"goal_calories"`
	Remaining    int     `json:"remaining"`
	Percentage   float64 `json:"percentage"`
	IsOver       bool    `json:"is_over"`
}

// TodayProgressFor reports how far today's intake has come against the
// current goal.
func (s *AnalyticsService) TodayProgressFor(ctx context.Context, now time.Time) (TodayProgress, error) {
	totals, err := s.DailyTotals(ctx, now)
	if err != nil {
		return TodayProgress{}, err
	}
	goal, err := s.goals.Current(ctx)
	if err != nil {
		return TodayProgress{}, err
	}
	return todayProgress(dayStart(now).Format("2006-01-02"), totals, goal), nil
}

func todayProgress(date string, totals models.MacroTotals, goal models.UserGoal) TodayProgress {
	p := ComputeProgress(int(totals.Calories), goal.CalorieGoal)
	return TodayProgress{
		Date:         date,
		Calories:     totals.Calories,
		GoalCalories: goal.CalorieGoal,
		Remaining:    p.Remaining,
		Percentage:   p.Percentage,
		IsOver:       p.IsOver,
	}
}

// ---------- weight history ----------

type WeightHistoryRow struct {
	Date         string  `json:"date"`
	WeightKg     float64 `json:"weight_kg"`
	GoalWeightKg float64 `json:"goal_weight_kg"`
	EntryID      uint    `json:"entry_id"`
}

// WeightHistory lists the period's weight entries in ascending order
// with the current goal weight attached to every point. Weight charts
// are sparse by nature; days without a weigh-in produce no row.
func (s *AnalyticsService) WeightHistory(ctx context.Context, period string, now time.Time) ([]WeightHistoryRow, error) {
	from, to := PeriodRange(period, now)

	entries, err := s.weights.ListRange(ctx, from, to.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.Current(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]WeightHistoryRow, 0, len(entries))
	for _, e := range entries {
		out = append(out, WeightHistoryRow{
			Date:         e.CreatedAt.Format("2006-01-02"),
			WeightKg:     e.WeightKg,
			GoalWeightKg: goal.WeightGoalKg,
			EntryID:      e.ID,
		})
	}
	return out, nil
}

// WeightSummary reports current weight, recent change and progress
// toward the goal.
type WeightSummary struct {
	CurrentWeight     float64 `json:"current_weight"`
	GoalWeight        float64 `json:"goal_weight"`
	WeightChangeMonth float64 `json:"weight_change_month"`
	WeightChangeWeek  float64 `json:"weight_change_week"`
	ProgressToGoal    float64 `json:"progress_to_goal"`
	EntriesCount      int     `json:"entries_count"`
}

func (s *AnalyticsService) WeightSummaryFor(ctx context.Context, now time.Time) (WeightSummary, error) {
	history, err := s.WeightHistory(ctx, PeriodMonth, now)
	if err != nil {
		return WeightSummary{}, err
	}
	return summarizeWeight(history, now), nil
}

func summarizeWeight(history []WeightHistoryRow, now time.Time) WeightSummary {
	if len(history) == 0 {
		return WeightSummary{}
	}

	current := history[len(history)-1].WeightKg
	goal := history[len(history)-1].GoalWeightKg

	out := WeightSummary{
		CurrentWeight: current,
		GoalWeight:    goal,
		EntriesCount:  len(history),
	}

	if len(history) > 1 {
		out.WeightChangeMonth = round1(current - history[0].WeightKg)

		weekAgo := dayStart(now).AddDate(0, 0, -7).Format("2006-01-02")
		var weekEntries []WeightHistoryRow
		for _, h := range history {
			if h.Date >= weekAgo {
				weekEntries = append(weekEntries, h)
			}
		}
		if len(weekEntries) > 1 {
			out.WeightChangeWeek = round1(current - weekEntries[0].WeightKg)
		}
	}

	// Progress is window-relative: measured against the earliest entry
	// in the queried range, not the all-time first weigh-in.
	out.ProgressToGoal = weightProgress(history[0].WeightKg, current, goal)
	return out
}

// weightProgress computes a directional percentage toward the goal. A
// loss goal measures weight shed, a gain goal weight added; when the
// window started at the goal there is nothing to progress toward.
func weightProgress(initial, current, goal float64) float64 {
	switch {
	case goal <= 0 || initial == goal:
		return 0
	case goal < initial:
		return round1((initial - current) / (initial - goal) * 100)
	default:
		return round1((current - initial) / (goal - initial) * 100)
	}
}

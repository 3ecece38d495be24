package metrics

import (
	"math"
	"sort"

	"github.com/julianstephens/studylit/internal/models"
)

// round rounds half up, so 2.5 -> 3 and -2.5 -> -2.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Percent returns round(part/whole*100), or 0 when whole is not positive.
func Percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	return round(part / whole * 100)
}

// MockTestAverage is the rounded mean actual score, 0 with no tests.
func MockTestAverage(tests []models.MockTest) int {
	if len(tests) == 0 {
		return 0
	}
	sum := 0
	for _, test := range tests {
		sum += test.ActualScore
	}
	return round(float64(sum) / float64(len(tests)))
}

// OverallProgress is the average as a percentage of the profile's target score,
// capped at 100. Without a profile or a positive target it is 0.
func OverallProgress(profile *models.Profile, average int) int {
	if profile == nil || profile.TargetScore <= 0 {
		return 0
	}
	return min(100, Percent(float64(average), float64(profile.TargetScore)))
}

// SubjectProgress is completed/total chapters as an integer percentage in [0,100].
func SubjectProgress(completed, total int) int {
	return max(0, min(100, Percent(float64(completed), float64(total))))
}

// Accuracy is a test's actual score as a percentage of its target score.
func Accuracy(test models.MockTest) int {
	return Percent(float64(test.ActualScore), float64(test.TargetScore))
}

// TotalStudyHours sums every study-hours entry.
func TotalStudyHours(hours map[string]float64) float64 {
	total := 0.0
	for _, h := range hours {
		total += h
	}
	return total
}

// StudyHoursSeries returns the hours logged on each of days, 0 where absent.
func StudyHoursSeries(hours map[string]float64, days []string) []float64 {
	series := make([]float64, len(days))
	for i, day := range days {
		series[i] = hours[day]
	}
	return series
}

// RecentTests returns up to n of the newest tests, newest first. The input is
// expected in the stored (descending date) order.
func RecentTests(tests []models.MockTest, n int) []models.MockTest {
	if n <= 0 {
		return []models.MockTest{}
	}
	if len(tests) < n {
		n = len(tests)
	}
	recent := make([]models.MockTest, n)
	copy(recent, tests[:n])
	return recent
}

// TrendTests returns up to n of the newest tests ordered oldest first, suitable
// for plotting a score trend.
func TrendTests(tests []models.MockTest, n int) []models.MockTest {
	trend := RecentTests(tests, n)
	sort.SliceStable(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})
	return trend
}

// HabitRate is the overall completion rate of a single daily habit.
type HabitRate struct {
	HabitID string
	Name    string
	Rate    int
}

// HabitCompletionRates returns, per daily habit, completed entries over all
// recorded entries as a percentage. Habits with no entries rate 0.
func HabitCompletionRates(habits []models.Habit) []HabitRate {
	rates := make([]HabitRate, 0, len(habits))
	for _, habit := range habits {
		completed := 0
		for _, done := range habit.Progress.Days {
			if done {
				completed++
			}
		}
		rates = append(rates, HabitRate{
			HabitID: habit.ID,
			Name:    habit.Name,
			Rate:    Percent(float64(completed), float64(len(habit.Progress.Days))),
		})
	}
	return rates
}

// ChallengePercent is how far a challenge habit is towards its target.
func ChallengePercent(c models.ChallengeProgress) int {
	return SubjectProgress(c.Current, c.Target)
}

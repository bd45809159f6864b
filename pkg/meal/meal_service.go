package meal

import (
	"context"
	"time"

	"nutrilog/domain"
	"nutrilog/entities"
	"nutrilog/pkg/profile"
)

const calendarLayout = "2006-01-02"

var validUnits = func() map[string]bool {
	units := map[string]bool{entities.UnitPlaceholder: true}
	for _, u := range entities.MeasurementUnits {
		units[u] = true
	}
	return units
}()

type (
	MealService interface {
		ListMeals(ctx context.Context, date string) ([]entities.Meal, error)
		LogMeal(ctx context.Context, req domain.LogMealRequest) (entities.Meal, error)
		UpdateMeal(ctx context.Context, id int64, req domain.UpdateMealRequest) (entities.Meal, error)
		DeleteMeal(ctx context.Context, id int64) error
		GetProgress(ctx context.Context, date string) (domain.DailyProgressResponse, error)
		GetProgressHistory(ctx context.Context, days int) ([]domain.DailyProgressResponse, error)
	}

	mealService struct {
		mealRepository    MealRepository
		profileRepository profile.ProfileRepository
		now               func() time.Time
	}
)

func NewMealService(mealRepository MealRepository, profileRepository profile.ProfileRepository) MealService {
	return &mealService{
		mealRepository:    mealRepository,
		profileRepository: profileRepository,
		now:               time.Now,
	}
}

// ListMeals returns the meals for one calendar day, today when date is
// empty. Legacy records carrying a full timestamp are matched by prefix
// and get a category inferred for display.
func (s *mealService) ListMeals(ctx context.Context, date string) ([]entities.Meal, error) {
	if date == "" {
		date = s.now().Format(calendarLayout)
	} else if _, err := time.Parse(calendarLayout, date); err != nil {
		return nil, domain.ErrInvalidDateFormat
	}

	meals, err := s.mealRepository.ListMeals(ctx)
	if err != nil {
		return nil, err
	}

	matched := []entities.Meal{}
	for _, m := range meals {
		if len(m.Date) >= len(date) && m.Date[:len(date)] == date {
			matched = append(matched, Normalize(m))
		}
	}
	SortByCategory(matched)
	return matched, nil
}

// LogMeal persists a finalized meal draft. The server assigns the id
// (millisecond timestamp), today's date and a time-of-day category, and
// recomputes totals from the ingredients before writing.
func (s *mealService) LogMeal(ctx context.Context, req domain.LogMealRequest) (entities.Meal, error) {
	ingredients := make([]entities.Ingredient, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		if ing.Unit == "" {
			ing.Unit = entities.UnitPlaceholder
		}
		if !validUnits[ing.Unit] {
			return entities.Meal{}, domain.ErrInvalidUnitMeasure
		}
		if ing.Quantity < 0 {
			ing.Quantity = 0
		}
		ingredients[i] = ing
	}

	now := s.now()
	m := entities.Meal{
		ID:            now.UnixMilli(),
		Date:          now.Format(calendarLayout),
		Category:      CategoryForTime(now),
		MealName:      req.MealName,
		TotalCalories: req.TotalCalories,
		Macros:        req.Macros,
		Ingredients:   ingredients,
	}
	Recalculate(&m)

	return s.mealRepository.CreateMeal(ctx, m)
}

func (s *mealService) UpdateMeal(ctx context.Context, id int64, req domain.UpdateMealRequest) (entities.Meal, error) {
	return s.mealRepository.UpdateMeal(ctx, id, req.Date, req.Category)
}

func (s *mealService) DeleteMeal(ctx context.Context, id int64) error {
	return s.mealRepository.DeleteMeal(ctx, id)
}

// GetProgress aggregates one day's meals against the profile targets.
func (s *mealService) GetProgress(ctx context.Context, date string) (domain.DailyProgressResponse, error) {
	if date == "" {
		date = s.now().Format(calendarLayout)
	}

	meals, err := s.ListMeals(ctx, date)
	if err != nil {
		return domain.DailyProgressResponse{}, err
	}

	p, err := s.profileRepository.GetProfile(ctx)
	if err != nil {
		return domain.DailyProgressResponse{}, err
	}

	return buildProgress(date, meals, p.Targets), nil
}

// GetProgressHistory reports per-day totals for the trailing days
// (today included), most recent first.
func (s *mealService) GetProgressHistory(ctx context.Context, days int) ([]domain.DailyProgressResponse, error) {
	if days <= 0 {
		days = 7
	}

	p, err := s.profileRepository.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	history := make([]domain.DailyProgressResponse, 0, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -i).Format(calendarLayout)
		meals, err := s.ListMeals(ctx, date)
		if err != nil {
			return nil, err
		}
		history = append(history, buildProgress(date, meals, p.Targets))
	}
	return history, nil
}

func buildProgress(date string, meals []entities.Meal, targets entities.Targets) domain.DailyProgressResponse {
	totals := Aggregate(meals)
	return domain.DailyProgressResponse{
		Date:    date,
		Totals:  totals,
		Targets: targets,
		Percentages: domain.ProgressPercentages{
			Calories:      PercentOfTarget(totals.Calories, targets.Calories),
			Protein:       PercentOfTarget(totals.Protein, targets.Protein),
			Carbohydrates: PercentOfTarget(totals.Carbohydrates, targets.Carbohydrates),
			Fat:           PercentOfTarget(totals.Fat, targets.Fat),
		},
	}
}

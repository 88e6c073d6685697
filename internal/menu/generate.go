package menu

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
	"github.com/famplan/famplan-server/internal/event"
	"github.com/famplan/famplan-server/internal/logger"
)

// Generate regenerates every meal of the menu. For each day in the menu's
// range and each slot the calendar defines for that weekday, it picks one
// eligible recipe uniformly at random. A slot with no eligible recipe is
// still created, with no recipe assigned; generation only fails when the
// menu does not exist, its range is invalid, or storage fails.
func (s *service) Generate(ctx context.Context, menuID uuid.UUID, opts GenerateOptions) (*domain.Menu, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGenerateCalled, "menu_id", menuID,
		"exclude_recipes", len(opts.ExcludeRecipeIDs), "require_tags", opts.RequireTags)

	menu, err := s.menuRepo.GetMenu(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetMenu, err)
	}
	if err := menu.ValidateRange(); err != nil {
		return nil, err
	}

	filter, err := s.buildFilter(ctx, menu.UserID, opts)
	if err != nil {
		return nil, err
	}

	// Candidate recipes are fetched once per distinct slot, not per day;
	// the same slot repeats across the week.
	candidates := make(map[domain.Slot][]domain.Recipe)

	var meals []domain.Meal
	var assigned, unfilled int
	for _, day := range menu.Days() {
		for _, slot := range s.calendar.SlotsFor(day) {
			if _, ok := candidates[slot]; !ok {
				recipes, err := s.recipeRepo.ListRecipesForSlot(ctx, slot.MealType, slot.Audience)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", ErrCtxFailedToListRecipes, err)
				}
				candidates[slot] = recipes
			}

			meal := domain.Meal{
				ID:       uuid.New(),
				MenuID:   menu.ID,
				Date:     day,
				MealType: slot.MealType,
				Audience: slot.Audience,
			}

			eligible := eligibleRecipes(candidates[slot], filter)
			if len(eligible) == 0 {
				log.Debug(LogMsgSlotUnfilled, "date", day, "meal_type", slot.MealType, "audience", slot.Audience)
				unfilled++
			} else {
				chosen := eligible[s.pick(len(eligible))]
				recipeID := chosen.ID
				meal.RecipeID = &recipeID
				assigned++
			}

			meals = append(meals, meal)
		}
	}

	if err := s.menuRepo.ReplaceMeals(ctx, menu.ID, meals); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToReplaceMeals, err)
	}
	menu.Meals = meals

	log.Info(LogMsgGenerateComplete, "menu_id", menu.ID, "meals", len(meals),
		"assigned", assigned, "unfilled", unfilled)

	s.publishGenerated(ctx, menu, assigned, unfilled)

	return menu, nil
}

// buildFilter merges the request options with the menu owner's stored
// dietary policy. Request tags, when present, replace the stored ones;
// excluded ingredient substrings are additive.
func (s *service) buildFilter(ctx context.Context, userID uuid.UUID, opts GenerateOptions) (Filter, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return Filter{}, fmt.Errorf("%s: %w", ErrCtxFailedToGetUser, err)
	}

	requiredTags := opts.RequireTags
	if requiredTags == nil {
		requiredTags = user.RequiredTags
	}

	excludeIDs := make(map[uuid.UUID]bool, len(opts.ExcludeRecipeIDs))
	for _, id := range opts.ExcludeRecipeIDs {
		excludeIDs[id] = true
	}

	excluded := make([]string, 0, len(user.ExcludedIngredients)+len(opts.ExcludeIngredients))
	excluded = append(excluded, user.ExcludedIngredients...)
	excluded = append(excluded, opts.ExcludeIngredients...)

	return Filter{
		RequiredTags:       requiredTags,
		ExcludeRecipeIDs:   excludeIDs,
		ExcludeIngredients: excluded,
	}, nil
}

func (s *service) publishGenerated(ctx context.Context, menu *domain.Menu, assigned, unfilled int) {
	if s.eventBus == nil {
		return
	}
	err := s.eventBus.Publish(ctx, event.Event{
		Version: "1.0",
		Type:    event.MenuGenerated,
		Payload: event.MenuGeneratedPayloadV1{
			MenuID:        menu.ID.String(),
			UserID:        menu.UserID.String(),
			MealsAssigned: assigned,
			SlotsUnfilled: unfilled,
		},
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishError, "error", err)
	}
}

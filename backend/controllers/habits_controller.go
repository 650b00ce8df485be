package controllers

import (
	"errors"

	"habit-tracker/backend/models"
	"habit-tracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// HabitStore is the subset of the habit store the HTTP layer needs.
type HabitStore interface {
	Create(name string) (models.Habit, error)
	List() []models.Habit
	Get(id string) (models.Habit, bool)
	MarkDone(id string) (models.Habit, error)
	Delete(id string) bool
	Stats() models.Stats
}

type HabitsController struct {
	Store HabitStore
}

func NewHabitsController(store HabitStore) *HabitsController {
	return &HabitsController{Store: store}
}

// ListHabits godoc
// @Summary List habits
// @Tags habits
// @Produce json
// @Success 200 {array} models.Habit
// @Router /habits [get]
func (hc *HabitsController) ListHabits(c *fiber.Ctx) error {
	return c.JSON(hc.Store.List())
}

// GetHabit godoc
// @Summary Get a habit
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} models.Habit
// @Failure 404 {object} utils.ErrorResponse
// @Router /habits/{id} [get]
func (hc *HabitsController) GetHabit(c *fiber.Ctx) error {
	habit, ok := hc.Store.Get(c.Params("id"))
	if !ok {
		return utils.NotFound(c, models.ErrNotFound.Error())
	}
	return c.JSON(habit)
}

// CreateHabit godoc
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param habit body models.CreateHabitRequest true "Habit name"
// @Success 201 {object} models.Habit
// @Failure 400 {object} utils.ErrorResponse
// @Router /habits [post]
func (hc *HabitsController) CreateHabit(c *fiber.Ctx) error {
	var req models.CreateHabitRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.BadRequest(c, "Invalid request body")
		}
	}

	name, ok := req.Name.(string)
	if !ok {
		return utils.BadRequest(c, models.ErrValidation.Error())
	}

	habit, err := hc.Store.Create(name)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return utils.BadRequest(c, models.ErrValidation.Error())
		}
		return err
	}
	return utils.Created(c, habit)
}

// MarkDone godoc
// @Summary Mark a habit done for today
// @Description Records a completion for the current UTC day. Repeated calls on the same day do not score again.
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} models.Habit
// @Failure 404 {object} utils.ErrorResponse
// @Router /habits/{id}/done [post]
func (hc *HabitsController) MarkDone(c *fiber.Ctx) error {
	habit, err := hc.Store.MarkDone(c.Params("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return utils.NotFound(c, models.ErrNotFound.Error())
		}
		return err
	}
	return c.JSON(habit)
}

// DeleteHabit godoc
// @Summary Delete a habit
// @Tags habits
// @Param id path string true "Habit ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /habits/{id} [delete]
func (hc *HabitsController) DeleteHabit(c *fiber.Ctx) error {
	if !hc.Store.Delete(c.Params("id")) {
		return utils.NotFound(c, models.ErrNotFound.Error())
	}
	return utils.NoContent(c)
}

// GetStats godoc
// @Summary Aggregate points and streaks
// @Tags habits
// @Produce json
// @Success 200 {object} models.Stats
// @Router /stats [get]
func (hc *HabitsController) GetStats(c *fiber.Ctx) error {
	return c.JSON(hc.Store.Stats())
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

package api

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// dateLayout is the calendar-date format used on the wire.
const dateLayout = "2006-01-02"

// welcomeMessage greets callers hitting the API root.
const welcomeMessage = "Welcome to the Training Tracker API! Use /add to add data and /get to view records."

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseResponse is the DTO for returning a recorded exercise.
type ExerciseResponse struct {
	ID             int64          `json:"id"`
	Date           string         `json:"date"`
	Sport          string         `json:"sport"`
	Details        map[string]any `json:"details"`
	CaloriesBurned float64        `json:"calories_burned"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:             ex.ID,
		Date:           ex.Date.Format(dateLayout),
		Sport:          string(ex.Sport),
		Details:        ex.Details,
		CaloriesBurned: ex.CaloriesBurned,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapExerciseToResponse(&ex)
	}
	return responses
}

// --- Handler Methods ---

// Home godoc
// @Summary API welcome message
// @Description Returns a short pointer to the record and list endpoints.
// @Tags Exercises
// @Produce json
// @Success 200 {object} gin.H "Welcome message"
// @Router / [get]
func (h *ExerciseHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
}

// AddExercise godoc
// @Summary Record an exercise session
// @Description Validates the sport-specific payload, derives the calorie estimate and stores the record.
// @Tags Exercises
// @Accept json
// @Produce json
// @Param exercise body object true "Exercise payload with a 'sport' key plus the sport's attributes"
// @Success 201 {object} gin.H "Exercise recorded"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /add [post]
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// A missing or non-string sport key falls through to the unsupported
	// sport rejection, same as any unknown sport name.
	sport, _ := payload["sport"].(string)

	exercise, err := h.exerciseService.Record(c.Request.Context(), sport, payload)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			abortWithError(c, http.StatusBadRequest, validationErr.Message)
			return
		}
		requestID, _ := getRequestIDFromContext(c)
		log.Printf("ERROR: [%s] recording exercise: %v", requestID, err)
		abortWithErrorDetails(c, http.StatusInternalServerError, "An unexpected error occurred", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Exercise added successfully!",
		"exercise":        exercise.Details,
		"calories_burned": exercise.CaloriesBurned,
	})
}

// GetExercises godoc
// @Summary List recorded exercises
// @Description Retrieves every stored exercise in insertion order.
// @Tags Exercises
// @Produce json
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /get [get]
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	exercises, err := h.exerciseService.List(c.Request.Context())
	if err != nil {
		requestID, _ := getRequestIDFromContext(c)
		log.Printf("ERROR: [%s] listing exercises: %v", requestID, err)
		abortWithErrorDetails(c, http.StatusInternalServerError, "An unexpected error occurred", err)
		return
	}

	if exercises == nil { // Service might return nil slice if no error but no exercises
		c.JSON(http.StatusOK, []ExerciseResponse{}) // Return empty array
		return
	}

	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// Favicon godoc
// @Summary Favicon placeholder
// @Description Browsers probe this path; there is no icon to serve.
// @Tags Exercises
// @Success 204 "No Content"
// @Router /favicon.ico [get]
func (h *ExerciseHandler) Favicon(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

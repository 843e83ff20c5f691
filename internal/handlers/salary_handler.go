package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/repositories"
	"fintrack/internal/services"
)

// SalaryHandler handles salary-related requests.
type SalaryHandler struct {
	salaryService services.SalaryServicer
}

// NewSalaryHandler creates a new SalaryHandler.
func NewSalaryHandler(salaryService services.SalaryServicer) *SalaryHandler {
	return &SalaryHandler{salaryService: salaryService}
}

// UpsertSalaryRequest represents the request payload for recording a salary.
// The (month, year) period is the natural key: posting the same period twice
// overwrites the amount instead of creating a second row.
type UpsertSalaryRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
	Month  int   `json:"month" binding:"required,min=1,max=12"`
	Year   int   `json:"year" binding:"required,salary_year"`
}

// UpdateSalaryRequest represents a partial update to a salary row.
type UpdateSalaryRequest struct {
	Amount *int64 `json:"amount" binding:"omitempty,gt=0"`
	Month  *int   `json:"month" binding:"omitempty,min=1,max=12"`
	Year   *int   `json:"year" binding:"omitempty,salary_year"`
}

// SalaryResponse represents a salary in the response
type SalaryResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Amount     int64     `json:"amount"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	RecordedAt time.Time `json:"recorded_at"`
}

// UpsertSalary records the salary for a period
// @Summary     Record a salary
// @Description Create or overwrite the salary for a (month, year) period
// @Tags        salaries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertSalaryRequest true "Salary details"
// @Success     200 {object} SalaryResponse "Salary recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     409 {object} ErrorResponse "Concurrent period conflict"
// @Router      /salaries [put]
func (h *SalaryHandler) UpsertSalary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	salary, err := h.salaryService.UpsertSalary(userID, req.Amount, req.Month, req.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"salary": salary})
}

// GetSalaries lists all salary rows for the user
// @Summary     List salaries
// @Description List all of the user's salary rows, most recent period first
// @Tags        salaries
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SalaryResponse "Salaries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salaries [get]
func (h *SalaryHandler) GetSalaries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	salaries, err := h.salaryService.ListSalaries(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"salaries": salaries})
}

// GetSalaryByPeriod returns the salary for one period
// @Summary     Get salary by period
// @Description Get the salary for a (month, year) period; absence yields a null salary, not an error
// @Tags        salaries
// @Produce     json
// @Security    BearerAuth
// @Param       month query int true "Month (1-12)"
// @Param       year query int true "Year"
// @Success     200 {object} SalaryResponse "Salary or null"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /salaries/period [get]
func (h *SalaryHandler) GetSalaryByPeriod(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseOptionalIntQuery(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}
	year, err := parseOptionalIntQuery(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if month == nil || year == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "month and year are required"))
		return
	}

	salary, err := h.salaryService.GetSalary(userID, *month, *year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"salary": salary})
}

// UpdateSalary applies a partial update to a salary row
// @Summary     Update a salary
// @Description Patch a salary row; omitted fields keep their values
// @Tags        salaries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Salary ID"
// @Param       request body UpdateSalaryRequest true "Fields to change"
// @Success     200 {object} SalaryResponse "Updated salary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Salary not found"
// @Failure     409 {object} ErrorResponse "Period already occupied"
// @Router      /salaries/{id} [put]
func (h *SalaryHandler) UpdateSalary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	salaryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	salary, err := h.salaryService.UpdateSalary(userID, salaryID, repositories.SalaryPatch{
		Amount: req.Amount,
		Month:  req.Month,
		Year:   req.Year,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"salary": salary})
}

// DeleteSalary removes a salary row
// @Summary     Delete a salary
// @Description Delete one of the user's salary rows
// @Tags        salaries
// @Security    BearerAuth
// @Param       id path int true "Salary ID"
// @Success     204 "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Salary not found"
// @Router      /salaries/{id} [delete]
func (h *SalaryHandler) DeleteSalary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	salaryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.salaryService.DeleteSalary(userID, salaryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// BalanceHandler handles balance queries.
type BalanceHandler struct {
	balanceService services.BalanceServicer
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceService services.BalanceServicer) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// GetBalance computes the user's balance over an optional period window
// @Summary     Get balance
// @Description Aggregate income minus expense plus the period salary; omitting month or year means no filter on that dimension
// @Tags        balance
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Filter by month (1-12)"
// @Param       year query int false "Filter by year"
// @Success     200 {object} services.BalanceSummary "Balance aggregate"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balance [get]
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parsePeriodQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.balanceService.CalculateBalance(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
	"bizledger/internal/services"
)

// ExpenseHandler serves expense category and expense endpoints.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseCategoryRequest represents the category upsert payload.
type ExpenseCategoryRequest struct {
	Name   models.CategoryName `json:"name" binding:"required,category_name"`
	Status models.RecordStatus `json:"status" binding:"omitempty,record_status"`
}

// ExpenseRequest represents the expense upsert payload.
type ExpenseRequest struct {
	ExpenseCategoryID string                  `json:"expense_category_id" binding:"required,uuid"`
	Name              string                  `json:"name" binding:"required,max=200"`
	Frequency         models.ExpenseFrequency `json:"frequency" binding:"required,expense_frequency"`
	Status            models.RecordStatus     `json:"status" binding:"omitempty,record_status"`
}

// ListCategories returns all expense categories for the caller's profile.
// @Summary     List expense categories
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.ExpenseCategory "Expense categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expense-categories [get]
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.expenseService.ListCategories(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory adds a new expense category.
// @Summary     Create expense category
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseCategoryRequest true "Category fields"
// @Success     201 {object} models.ExpenseCategory "Created category"
// @Failure     400 {object} ErrorResponse "Invalid or duplicate category"
// @Router      /expense-categories [post]
func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.expenseService.UpsertCategory(userID, services.ExpenseCategoryInput{
		Name:   req.Name,
		Status: req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory rewrites an existing expense category.
func (h *ExpenseHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.expenseService.UpsertCategory(userID, services.ExpenseCategoryInput{
		ID:     c.Param("id"),
		Name:   req.Name,
		Status: req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory removes an expense category.
func (h *ExpenseHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.expenseService.DeleteCategory(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// ListExpenses returns all expenses for the caller's profile.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense adds a new expense under one of the caller's categories.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpsertExpense(userID, services.ExpenseInput{
		ExpenseCategoryID: req.ExpenseCategoryID,
		Name:              req.Name,
		Frequency:         req.Frequency,
		Status:            req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// UpdateExpense rewrites an existing expense.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpsertExpense(userID, services.ExpenseInput{
		ID:                c.Param("id"),
		ExpenseCategoryID: req.ExpenseCategoryID,
		Name:              req.Name,
		Frequency:         req.Frequency,
		Status:            req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense removes an expense.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.DeleteExpense(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

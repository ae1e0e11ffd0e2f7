package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"dompet/internal/pagination"
	"dompet/internal/response"
	"dompet/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// TransactionQuery holds the list filters and page parameters.
type TransactionQuery struct {
	pagination.PageRequest
	Description string `form:"description"`
	CategoryID  string `form:"category_id" binding:"omitempty,uuid"`
	WalletID    string `form:"wallet_id" binding:"omitempty,uuid"`
	From        string `form:"from"`
	To          string `form:"to"`
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	WalletID    *string    `json:"wallet_id" binding:"omitempty,uuid"`
	CategoryID  *string    `json:"category_id" binding:"omitempty,uuid"`
	BudgetID    *string    `json:"budget_id" binding:"omitempty,uuid"`
	Description string     `json:"description" example:"Lunch with friends"`
	Amount      int64      `json:"amount" binding:"gte=0" example:"45000"`
	SpentAt     *time.Time `json:"spent_at"`
	Date        *time.Time `json:"date"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	WalletID    *string    `json:"wallet_id" binding:"omitempty,uuid"`
	CategoryID  *string    `json:"category_id" binding:"omitempty,uuid"`
	BudgetID    *string    `json:"budget_id" binding:"omitempty,uuid"`
	Description *string    `json:"description"`
	Amount      *int64     `json:"amount" binding:"omitempty,gte=0"`
	SpentAt     *time.Time `json:"spent_at"`
	Date        *time.Time `json:"date"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ListTransactions returns the caller's transactions
// @Summary     List transactions
// @Description List the authenticated user's live transactions, newest first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(20)
// @Param       description query string false "Description prefix"
// @Param       category_id query string false "Category ID"
// @Param       wallet_id query string false "Wallet ID"
// @Param       from query string false "Earliest date (YYYY-MM-DD or RFC 3339)"
// @Param       to query string false "Latest date, inclusive (YYYY-MM-DD covers the whole day, or RFC 3339)"
// @Success     200 {object} response.Body{data=pagination.PageResponse[models.Transaction]} "Page of transactions"
// @Failure     400 {object} response.ErrorBody "Invalid filter"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var query TransactionQuery
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}

	from, _, err := parseDate("from", query.From)
	if err != nil {
		response.Error(c, err)
		return
	}
	to, toDateOnly, err := parseDate("to", query.To)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := services.TransactionFilter{
		Description: query.Description,
		CategoryID:  optional(query.CategoryID),
		WalletID:    optional(query.WalletID),
		From:        from,
	}
	// A calendar date covers the whole day.
	if to != nil && toDateOnly {
		next := to.AddDate(0, 0, 1)
		filter.Before = &next
	} else {
		filter.To = to
	}

	page, err := h.transactionService.List(c.Request.Context(), userID, filter, query.PageRequest)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, page)
}

// GetTransaction returns a single transaction
// @Summary     Get a transaction
// @Description Get one of the authenticated user's live transactions with its category
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} response.Body{data=models.Transaction} "Transaction"
// @Failure     400 {object} response.ErrorBody "Invalid id"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Failure     404 {object} response.ErrorBody "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := parsePathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tx, err := h.transactionService.Get(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, tx)
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a transaction. Amount is in minor currency units; date defaults to now.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     200 {object} response.Body{data=models.Transaction} "Transaction created"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Failure     404 {object} response.ErrorBody "Category not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	tx, err := h.transactionService.Create(c.Request.Context(), userID, services.TransactionInput{
		WalletID:    req.WalletID,
		CategoryID:  req.CategoryID,
		BudgetID:    req.BudgetID,
		Description: req.Description,
		Amount:      req.Amount,
		SpentAt:     req.SpentAt,
		Date:        req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditCreateTx, "transaction", tx.ID, c.ClientIP(),
		map[string]any{"amount": tx.Amount})
	response.OK(c, tx)
}

// UpdateTransaction handles updating a transaction
// @Summary     Update a transaction
// @Description Patch one of the authenticated user's live transactions
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to change"
// @Success     200 {object} response.Body{data=models.Transaction} "Transaction updated"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Failure     404 {object} response.ErrorBody "Transaction not found"
// @Router      /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := parsePathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	tx, err := h.transactionService.Update(c.Request.Context(), userID, id, services.TransactionPatch{
		WalletID:    req.WalletID,
		CategoryID:  req.CategoryID,
		BudgetID:    req.BudgetID,
		Description: req.Description,
		Amount:      req.Amount,
		SpentAt:     req.SpentAt,
		Date:        req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditUpdateTx, "transaction", id, c.ClientIP(), nil)
	response.OK(c, tx)
}

// DeleteTransactions soft-deletes transactions
// @Summary     Delete transactions
// @Description Soft-delete the listed transactions of the authenticated user. Returns the number of rows deleted.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DeleteRequest true "Transaction IDs"
// @Success     200 {object} response.Body{data=int} "Number of transactions deleted"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Router      /transactions [delete]
func (h *TransactionHandler) DeleteTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req DeleteRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	affected, err := h.transactionService.Delete(c.Request.Context(), userID, req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDeleteTx, "transaction", "", c.ClientIP(),
		map[string]any{"ids": req.IDs, "deleted": affected})
	response.OK(c, affected)
}

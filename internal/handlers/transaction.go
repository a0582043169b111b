package handlers

import (
	"errors"
	"log"
	"time"

	"fraudeye/internal/repositories"
	"fraudeye/internal/services/export"
	"fraudeye/internal/services/transaction"
	"fraudeye/internal/utils/pagination"
	"fraudeye/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type TransactionHandler struct {
	store     repositories.SessionStore
	txService transaction.Service
	now       func() time.Time
}

func NewTransactionHandler(store repositories.SessionStore, txService transaction.Service) *TransactionHandler {
	return &TransactionHandler{
		store:     store,
		txService: txService,
		now:       time.Now,
	}
}

func filterFrom(c *fiber.Ctx) export.Filter {
	return export.Filter{
		Query:  c.Query("q"),
		Status: c.Query("status", export.StatusAll),
	}.Normalize()
}

// GetTransactions lists one page of the filtered session ledger, most recent first.
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	txns, err := h.store.List(c.Context())
	if err != nil {
		log.Printf("Transaction list error: %v", err)
		return response.ServerError(c, "Failed to retrieve transactions")
	}

	filter := filterFrom(c)
	filtered := export.Apply(txns, filter)

	page := pagination.ParseFromRequest(c, defaultPageSize, maxPageSize)
	start, end := page.Window(len(filtered))
	return c.JSON(fiber.Map{
		"transactions": filtered[start:end],
		"total":        len(filtered),
		"filter": fiber.Map{
			"q":      filter.Query,
			"status": filter.Status,
		},
		"meta": pagination.Meta(page),
	})
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	txn, err := h.store.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.ServerError(c, "Failed to retrieve transaction")
	}
	return c.JSON(txn)
}

// ExportTransactions downloads the filtered ledger as CSV.
func (h *TransactionHandler) ExportTransactions(c *fiber.Ctx) error {
	txns, err := h.store.List(c.Context())
	if err != nil {
		log.Printf("Transaction export error: %v", err)
		return response.ServerError(c, "Failed to export transactions")
	}

	c.Attachment(export.Filename(h.now()))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.SendString(export.CSV(export.Apply(txns, filterFrom(c))))
}

// SimulateTransactions appends synthetic activity to the session.
func (h *TransactionHandler) SimulateTransactions(c *fiber.Ctx) error {
	var input struct {
		Count int `json:"count"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}
	if input.Count == 0 {
		input.Count = c.QueryInt("count", transaction.DefaultSimulateCount)
	}

	txns, err := h.txService.Simulate(c.Context(), input.Count)
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidCount) {
			return response.BadRequest(c, err.Error())
		}
		log.Printf("Simulation error: %v", err)
		return response.ServerError(c, "Failed to simulate transactions")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"transactions": txns,
		"count":        len(txns),
	})
}

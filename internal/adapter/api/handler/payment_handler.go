package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealmate/internal/domain/entity"
	"mealmate/internal/usecase"
	"mealmate/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type paymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	secret, err := h.paymentUseCase.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"clientSecret": secret})
}

type paymentRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	Name          string  `json:"name"`
	Badge         string  `json:"badge" validate:"required,oneof=Bronze Silver Gold Platinum"`
	Price         float64 `json:"price" validate:"gte=0"`
	TransactionID string  `json:"transactionId"`
	Date          string  `json:"date"`
}

func (h *PaymentHandler) Record(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	res, err := h.paymentUseCase.Record(c.Request().Context(), &entity.Payment{
		Email:         req.Email,
		Name:          req.Name,
		Badge:         req.Badge,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          req.Date,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *PaymentHandler) History(c echo.Context) error {
	payments, err := h.paymentUseCase.History(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) HistoryByEmail(c echo.Context) error {
	payments, err := h.paymentUseCase.HistoryByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, payments)
}

// HasPaid answers the membership gate probe with a bare boolean.
func (h *PaymentHandler) HasPaid(c echo.Context) error {
	paid, err := h.paymentUseCase.HasPaid(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, paid)
}

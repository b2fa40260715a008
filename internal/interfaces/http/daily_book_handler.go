package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/ledger"
)

// DailyBookHandler maneja la consulta del libro diario.
type DailyBookHandler struct {
	uc *ledger.DailyBookUseCase
}

// NewDailyBookHandler construye el handler.
func NewDailyBookHandler(uc *ledger.DailyBookUseCase) *DailyBookHandler {
	return &DailyBookHandler{uc: uc}
}

// Get godoc
// @Summary      Libro diario
// @Description  Reconstruye el libro diario del rango de fechas (inclusive) a partir de ventas, gastos y compras.
// @Tags         daily-book
// @Produce      json
// @Param        start_date       query  string  true   "Fecha inicial YYYY-MM-DD"
// @Param        end_date         query  string  true   "Fecha final YYYY-MM-DD"
// @Param        opening_balance  query  number  false  "Saldo de apertura"  default(0)
// @Success      200  {object}  dto.DailyBookResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/daily-book [get]
func (h *DailyBookHandler) Get(c *fiber.Ctx) error {
	opening, err := decimal.NewFromString(c.Query("opening_balance", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "opening_balance inválido"})
	}
	in := dto.DailyBookRequest{
		StartDate:      c.Query("start_date"),
		EndDate:        c.Query("end_date"),
		OpeningBalance: opening,
	}
	out, err := h.uc.Build(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

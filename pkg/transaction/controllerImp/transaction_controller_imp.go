package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/middleware"
	"farmdash/pkg/transaction/service"
)

type TxnCtrl struct{ svc service.Service }

func New(svc service.Service) *TxnCtrl { return &TxnCtrl{svc} }

type createReq struct {
	FarmID         string  `json:"farm_id"`
	Type           string  `json:"type"` // revenue|expense
	TotalAmount    float64 `json:"total_amount"`
	Date           string  `json:"date"`
	Vendor         string  `json:"vendor"`
	Description    string  `json:"description"`
	ReceiptRef     *string `json:"receipt_ref"`
	OrganizationID string  `json:"organization_id"`
}

func (h *TxnCtrl) Create(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date"})
	}
	t := &entities.Transaction{
		FarmID:         req.FarmID,
		Type:           entities.TransactionType(req.Type),
		TotalAmount:    req.TotalAmount,
		Date:           d,
		Vendor:         req.Vendor,
		Description:    req.Description,
		ReceiptRef:     req.ReceiptRef,
		OrganizationID: req.OrganizationID,
	}
	if err := t.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.svc.Create(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"transaction_id": t.TransactionID})
}

func (h *TxnCtrl) Get(c echo.Context) error {
	t, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TxnCtrl) ListByFarm(c echo.Context) error {
	out, err := h.svc.ListByFarm(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TxnCtrl) ListByOrganization(c echo.Context) error {
	out, err := h.svc.ListByOrganization(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TxnCtrl) Patch(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var patch service.TransactionPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if patch.Date != nil {
		if _, err := time.Parse("2006-01-02", *patch.Date); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date"})
		}
	}
	t, err := h.svc.UpdatePartial(c.Param("id"), patch)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TxnCtrl) Delete(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type itemReq struct {
	FarmID         string  `json:"farm_id"`
	Category       string  `json:"category"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description"`
	RelatedKind    string  `json:"related_kind"`
	RelatedID      string  `json:"related_id"`
	OrganizationID string  `json:"organization_id"`
}

func (h *TxnCtrl) AddItem(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	i := &entities.TransactionItem{
		TransactionID:  c.Param("id"),
		FarmID:         req.FarmID,
		Category:       req.Category,
		Amount:         req.Amount,
		Description:    req.Description,
		RelatedKind:    entities.RelatedKind(req.RelatedKind),
		RelatedID:      req.RelatedID,
		OrganizationID: req.OrganizationID,
	}
	if err := i.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.svc.AddItem(i); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"item_id": i.ItemID})
}

func (h *TxnCtrl) ListItems(c echo.Context) error {
	out, err := h.svc.ListItems(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TxnCtrl) DeleteItem(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	if err := h.svc.DeleteItem(c.Param("itemId")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

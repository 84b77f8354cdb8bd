package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/middleware"
	"farmdash/pkg/task/repository"
)

type TaskCtrl struct{ repo repository.TaskRepository }

func New(repo repository.TaskRepository) *TaskCtrl { return &TaskCtrl{repo} }

type createReq struct {
	FarmID         string `json:"farm_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	DueDate        string `json:"due_date"` // 2006-01-02
	Status         string `json:"status"`
	AssignedTo     string `json:"assigned_to"`
	RelatedKind    string `json:"related_kind"`
	RelatedID      string `json:"related_id"`
	OrganizationID string `json:"organization_id"`
}

func (h *TaskCtrl) Create(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	dd, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad due_date"})
	}
	t := &entities.Task{
		FarmID:         req.FarmID,
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        dd,
		Status:         entities.TaskStatus(req.Status),
		AssignedTo:     req.AssignedTo,
		RelatedKind:    entities.RelatedKind(req.RelatedKind),
		RelatedID:      req.RelatedID,
		OrganizationID: req.OrganizationID,
	}
	if err := t.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.repo.Create(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"task_id": t.TaskID})
}

func (h *TaskCtrl) Get(c echo.Context) error {
	t, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) ListByFarm(c echo.Context) error {
	out, err := h.repo.ListByFarm(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) ListByOrganization(c echo.Context) error {
	out, err := h.repo.ListByOrganization(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) ListPending(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	out, err := h.repo.ListPending(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type patchReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

func (h *TaskCtrl) Patch(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	upd := map[string]any{}
	if req.Title != nil {
		upd["title"] = *req.Title
	}
	if req.Description != nil {
		upd["description"] = *req.Description
	}
	if req.DueDate != nil {
		d, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad due_date"})
		}
		upd["due_date"] = d
	}
	if req.Status != nil {
		if !entities.ValidTaskStatus(entities.TaskStatus(*req.Status)) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid task status"})
		}
		upd["status"] = *req.Status
	}
	if err := h.repo.UpdatePartial(c.Param("id"), upd); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TaskCtrl) PatchStatus(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if !entities.ValidTaskStatus(entities.TaskStatus(body.Status)) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid task status"})
	}
	if err := h.repo.UpdatePartial(c.Param("id"), map[string]any{"status": body.Status}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TaskCtrl) PatchDueDate(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var body struct {
		DueDate string `json:"due_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d, err := time.Parse("2006-01-02", body.DueDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad due_date"})
	}
	if err := h.repo.UpdatePartial(c.Param("id"), map[string]any{"due_date": d}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

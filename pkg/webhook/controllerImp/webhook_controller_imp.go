package controllerImp

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/pkg/farm/service"
	"farmdash/pkg/webhook"
)

// WebhookCtrl receives provisioning events from the identity provider.
type WebhookCtrl struct {
	secret  string
	farmSvc service.FarmService
}

func New(secret string, farmSvc service.FarmService) *WebhookCtrl {
	return &WebhookCtrl{secret: secret, farmSvc: farmSvc}
}

type event struct {
	Type string `json:"type"`
	Data struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Slug      string `json:"slug"`
		CreatedBy string `json:"created_by"`
	} `json:"data"`
}

func (h *WebhookCtrl) Handle(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad body"})
	}

	hdr := c.Request().Header
	if err := webhook.Verify(
		h.secret,
		hdr.Get("svix-id"),
		hdr.Get("svix-timestamp"),
		hdr.Get("svix-signature"),
		body,
	); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid signature"})
	}

	var evt event
	if err := json.Unmarshal(body, &evt); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	switch evt.Type {
	case "organization.created":
		if evt.Data.CreatedBy == "" {
			log.Printf("[webhook] organization %s has no creator, skipping", evt.Data.ID)
			break
		}
		farmID, err := h.farmSvc.CreateFromOrganization(service.BootstrapInput{
			OrganizationID:   evt.Data.ID,
			OrganizationName: evt.Data.Name,
			OrgSlug:          evt.Data.Slug,
			CreatedByAuthID:  evt.Data.CreatedBy,
		})
		if err != nil {
			log.Printf("[webhook] farm bootstrap for %s failed: %v", evt.Data.ID, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "error processing webhook"})
		}
		log.Printf("[webhook] farm %s ready for organization %s", farmID, evt.Data.ID)
	case "organizationMembership.created":
		// Acknowledged but nothing to do yet.
	default:
		log.Printf("[webhook] unhandled event type %q", evt.Type)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

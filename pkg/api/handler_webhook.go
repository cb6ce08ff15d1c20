package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agent-orchestra/orchestra/pkg/services"
)

// createWebhookHandler registers a delivery endpoint. The signing
// secret is returned exactly once, in this response; only a hash is
// stored.
func (s *Server) createWebhookHandler(c *echo.Context) error {
	p := currentPrincipal(c)

	var req CreateWebhookRequest
	if err := c.Bind(&req); err != nil {
		return apiError(http.StatusBadRequest, codeValidation, "invalid request body")
	}

	row, secret, err := s.hooks.Create(c.Request().Context(), p.Actor, services.CreateWebhookRequest{
		URL:    req.URL,
		Events: req.Events,
		Secret: req.Secret,
	})
	if err != nil {
		return mapServiceError(err)
	}

	resp := newWebhookResponse(row)
	resp.Secret = secret
	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) updateWebhookHandler(c *echo.Context) error {
	p := currentPrincipal(c)

	var req UpdateWebhookRequest
	if err := c.Bind(&req); err != nil {
		return apiError(http.StatusBadRequest, codeValidation, "invalid request body")
	}

	row, err := s.hooks.Update(c.Request().Context(), p.Actor, c.Param("id"), services.UpdateWebhookRequest{
		URL:    req.URL,
		Events: req.Events,
		Active: req.Active,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, newWebhookResponse(row))
}

func (s *Server) deleteWebhookHandler(c *echo.Context) error {
	p := currentPrincipal(c)

	if err := s.hooks.Delete(c.Request().Context(), p.Actor, c.Param("id")); err != nil {
		return mapServiceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// webhookStatsHandler reports delivery counts by state, the rolling
// success rate and the most recent delivery attempts.
func (s *Server) webhookStatsHandler(c *echo.Context) error {
	p := currentPrincipal(c)

	stats, err := s.hooks.Stats(c.Request().Context(), p.Actor, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, newWebhookStatsResponse(stats))
}

func newWebhookStatsResponse(stats *services.WebhookStats) *WebhookStatsResponse {
	recent := make([]*DeliveryResponse, 0, len(stats.Recent))
	for _, d := range stats.Recent {
		recent = append(recent, newDeliveryResponse(d))
	}
	return &WebhookStatsResponse{
		Pending:        stats.Pending,
		Delivering:     stats.Delivering,
		Delivered:      stats.Delivered,
		Retrying:       stats.Retrying,
		Failed:         stats.Failed,
		SuccessRate:    stats.SuccessRate,
		Active:         stats.Active,
		DisabledReason: stats.DisabledReason,
		DisabledAt:     stats.DisabledAt,
		Recent:         recent,
	}
}

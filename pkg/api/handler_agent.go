package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agent-orchestra/orchestra/pkg/services"
)

// createAgentHandler registers a new agent definition for the caller.
func (s *Server) createAgentHandler(c *echo.Context) error {
	p := currentPrincipal(c)

	var req CreateAgentRequest
	if err := c.Bind(&req); err != nil {
		return apiError(http.StatusBadRequest, codeValidation, "invalid request body")
	}

	row, err := s.agents.Create(c.Request().Context(), p.Actor, services.CreateAgentRequest{
		Name:          req.Name,
		Framework:     req.Framework,
		Configuration: req.Configuration,
		Tags:          req.Tags,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, newAgentResponse(row))
}

func (s *Server) getAgentHandler(c *echo.Context) error {
	p := currentPrincipal(c)

	row, err := s.agents.Get(c.Request().Context(), p.Actor, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, newAgentResponse(row))
}

// updateAgentHandler applies a partial update. Absent fields keep their
// current values; the framework tag is immutable after creation.
func (s *Server) updateAgentHandler(c *echo.Context) error {
	p := currentPrincipal(c)

	var req UpdateAgentRequest
	if err := c.Bind(&req); err != nil {
		return apiError(http.StatusBadRequest, codeValidation, "invalid request body")
	}

	row, err := s.agents.Update(c.Request().Context(), p.Actor, c.Param("id"), services.UpdateAgentRequest{
		Name:          req.Name,
		Configuration: req.Configuration,
		Tags:          req.Tags,
		Active:        req.Active,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, newAgentResponse(row))
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/herovault/hero-api/internal/core/ports"
)

// HeroHandler handles HTTP requests for the hero collection. Every operation
// is scoped to the identity resolved by the Session middleware; domain errors
// bubble up to the central error handler.
type HeroHandler struct {
	service ports.HeroService
}

func NewHeroHandler(service ports.HeroService) *HeroHandler {
	return &HeroHandler{service: service}
}

// List handles GET /api/heroes.
//
// @Summary      List the caller's heroes
// @Tags         heroes
// @Produce      json
// @Success      200  {object}  heroListResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/heroes [get]
func (h *HeroHandler) List(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	heroes, err := h.service.ListHeroes(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	resp := heroListResponse{Heroes: make([]heroResponse, 0, len(heroes))}
	for _, hero := range heroes {
		resp.Heroes = append(resp.Heroes, toHeroResponse(hero))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/heroes.
//
// @Summary      Create a hero
// @Tags         heroes
// @Accept       json
// @Produce      json
// @Param        body  body      createHeroRequest  true  "Hero attributes"
// @Success      201   {object}  heroEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/heroes [post]
func (h *HeroHandler) Create(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req createHeroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hero, err := h.service.CreateHero(c.Request().Context(), ports.CreateHeroInput{
		OwnerID:    ownerID,
		Name:       req.Name,
		Style:      req.Style,
		Health:     int(*req.Health),
		Damage:     int(*req.Damage),
		Resistance: *req.Resistance,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, heroEnvelope{Hero: toHeroResponse(*hero)})
}

// Update handles PUT /api/heroes.
//
// @Summary      Update a hero
// @Tags         heroes
// @Accept       json
// @Produce      json
// @Param        body  body      updateHeroRequest  true  "Hero attributes including id"
// @Success      200   {object}  heroEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/heroes [put]
func (h *HeroHandler) Update(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	var req updateHeroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Hero ID is required")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hero, err := h.service.UpdateHero(c.Request().Context(), ports.UpdateHeroInput{
		ID:         *req.ID,
		OwnerID:    ownerID,
		Name:       req.Name,
		Style:      req.Style,
		Health:     int(*req.Health),
		Damage:     int(*req.Damage),
		Resistance: *req.Resistance,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, heroEnvelope{Hero: toHeroResponse(*hero)})
}

// Delete handles DELETE /api/heroes?id=N.
//
// @Summary      Delete a hero
// @Tags         heroes
// @Produce      json
// @Param        id   query     int  true  "Hero id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/heroes [delete]
func (h *HeroHandler) Delete(c echo.Context) error {
	ownerID, err := ctxOwnerID(c)
	if err != nil {
		return err
	}

	rawID := c.QueryParam("id")
	if rawID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Hero ID is required")
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Hero ID is required")
	}

	if err := h.service.DeleteHero(c.Request().Context(), id, ownerID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Hero deleted successfully"})
}

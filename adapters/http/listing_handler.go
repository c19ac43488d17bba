package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	discoveryUC "github.com/tradehub-app/tradehub/internal/application/usecase/discovery"
	"github.com/tradehub-app/tradehub/pkg/apperror"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

type ListingHandler struct {
	discoveryUseCase *discoveryUC.DiscoveryUseCase
	templates        *template.Template
	logger           logger.Logger
}

func NewListingHandler(uc *discoveryUC.DiscoveryUseCase, templates *template.Template, log logger.Logger) *ListingHandler {
	return &ListingHandler{
		discoveryUseCase: uc,
		templates:        templates,
		logger:           log,
	}
}

// Index serves the full browse page, optionally narrowed by ?city=.
func (h *ListingHandler) Index(c *gin.Context) {
	city := c.Query("city")

	items, err := h.discoveryUseCase.Browse(c.Request.Context(), city)
	if err != nil {
		c.Error(err)
		return
	}

	h.render(c, "index.html", gin.H{"Listings": items, "City": city})
}

// Search serves the search-results fragment for ?q= and optional ?city=.
func (h *ListingHandler) Search(c *gin.Context) {
	query := c.Query("q")
	city := c.Query("city")

	items, err := h.discoveryUseCase.Search(c.Request.Context(), query, city)
	if err != nil {
		c.Error(err)
		return
	}

	h.render(c, "listings.html", gin.H{"Listings": items})
}

// CityListings serves the same fragment for the dynamic city filter. An
// empty city yields an empty fragment rather than the unfiltered catalog.
func (h *ListingHandler) CityListings(c *gin.Context) {
	city := c.Query("city")

	items, err := h.discoveryUseCase.FilterByCity(c.Request.Context(), city)
	if err != nil {
		c.Error(err)
		return
	}

	h.render(c, "listings.html", gin.H{"Listings": items})
}

// render materializes the template into a buffer first so a template failure
// becomes a RenderingFailure instead of a half-written response. The input
// handed to templates is always well-formed view items, so this class points
// at the templates themselves.
func (h *ListingHandler) render(c *gin.Context, name string, data gin.H) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("failed to render template", err)
		c.Error(apperror.NewRenderingFailure("template "+name, err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

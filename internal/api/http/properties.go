package http

import (
	"net/http"
	"strconv"

	"github.com/wanderstay/wanderstay/internal/api/domain"
	"github.com/wanderstay/wanderstay/internal/api/service"
	"github.com/wanderstay/wanderstay/pkg/httpx"
	"github.com/wanderstay/wanderstay/pkg/slogx"
)

// PropertiesHandler serves the read-only catalogue endpoints. They sit
// behind the optional-auth gate: anonymous browsing works, a logged-in
// viewer gets their identity echoed back so the frontend can personalize.
type PropertiesHandler struct {
	PropertyService *service.PropertyService
}

type propertyView struct {
	ID            string  `json:"id"`
	HostID        string  `json:"hostId"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight"`
	BedroomCount  int     `json:"bedroomCount"`
	BathroomCount int     `json:"bathRoomCount"`
	MaxGuestCount int     `json:"maxGuestCount"`
	Rating        int     `json:"rating,omitempty"`
	ImageURL      string  `json:"image,omitempty"`
}

type propertyListResponse struct {
	Properties []propertyView `json:"properties"`
	Count      int            `json:"count"`
	Viewer     string         `json:"viewer,omitempty"`
}

func toPropertyView(p domain.Property) propertyView {
	return propertyView{
		ID:            p.ID,
		HostID:        p.HostID,
		Title:         p.Title,
		Description:   p.Description,
		Location:      p.Location,
		PricePerNight: p.PricePerNight,
		BedroomCount:  p.BedroomCount,
		BathroomCount: p.BathroomCount,
		MaxGuestCount: p.MaxGuestCount,
		Rating:        p.Rating,
		ImageURL:      p.ImageURL,
	}
}

// HandleList godoc
//
//	@Summary		List properties
//	@Description	Returns the property catalogue, optionally filtered by location substring and guest count. Anonymous-friendly; includes the viewer's username when authenticated.
//	@Tags			Properties
//	@Produce		json
//	@Param			location	query		string					false	"Location substring filter"
//	@Param			guests		query		int						false	"Minimum guest capacity"
//	@Success		200			{object}	propertyListResponse	"Matching listings"
//	@Failure		500			{object}	httpx.ErrorResponse		"Internal error"
//	@Router			/properties [get].
func (h *PropertiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	location := r.URL.Query().Get("location")
	minGuests := 0
	if g := r.URL.Query().Get("guests"); g != "" {
		parsed, err := strconv.Atoi(g)
		if err != nil || parsed < 0 {
			httpx.WriteValidationError(w, "Validation failed", []httpx.FieldError{
				{Field: "guests", Message: "guests must be a non-negative integer"},
			})
			return
		}
		minGuests = parsed
	}

	properties, err := h.PropertyService.ListProperties(ctx, location, minGuests)
	if err != nil {
		log.Error("listing properties failed", "err", err)
		errServerError.Write(w)
		return
	}

	resp := propertyListResponse{
		Properties: make([]propertyView, 0, len(properties)),
		Count:      len(properties),
	}
	for _, p := range properties {
		resp.Properties = append(resp.Properties, toPropertyView(p))
	}

	// Personalization hook: present only for authenticated viewers.
	if claims, ok := httpx.ClaimsFromContext(ctx); ok {
		resp.Viewer = claims.Username
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Get a property
//	@Description	Returns a single listing by id.
//	@Tags			Properties
//	@Produce		json
//	@Param			id	path		string				true	"Property id"
//	@Success		200	{object}	propertyView		"The listing"
//	@Failure		404	{object}	httpx.ErrorResponse	"No such listing"
//	@Failure		500	{object}	httpx.ErrorResponse	"Internal error"
//	@Router			/properties/{id} [get].
func (h *PropertiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	property, err := h.PropertyService.GetPropertyByID(ctx, r.PathValue("id"))
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == errServerError {
			log.Error("loading property failed", "err", err)
		}
		apiErr.Write(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPropertyView(property))
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"estateBack/internal/models"
	"estateBack/internal/services"
)

type PropertyHandler struct {
	Service *services.PropertyService
	Images  *ImageStore
}

func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.PropertyFilter{
		Type:     q.Get("type"),
		Category: q.Get("category"),
		City:     q.Get("city"),
		Search:   q.Get("search"),
	}

	var err error
	if filter.MinPrice, err = parseOptionalFloat(q, "minPrice"); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.MaxPrice, err = parseOptionalFloat(q, "maxPrice"); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.BedRooms, err = parseOptionalInt(q, "bedRooms"); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.Page, filter.Limit = parsePagination(q)

	properties, pagination, err := h.Service.ListProperties(r.Context(), filter)
	if err != nil {
		serverError(w, "Server error while fetching properties", err)
		return
	}

	respondList(w, properties, pagination)
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	property, err := h.Service.GetProperty(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			WriteError(w, http.StatusNotFound, "Property not found")
			return
		}
		serverError(w, "Server error while fetching property", err)
		return
	}

	respondData(w, http.StatusOK, property)
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	actorID, _ := actorFromContext(r.Context())

	var (
		property  models.Property
		imageURLs []string
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}

		property = propertyFromForm(r)

		urls, err := h.Images.SaveAll(r.MultipartForm.File["images"])
		if err != nil {
			serverError(w, "Server error while saving images", err)
			return
		}
		imageURLs = urls
	} else {
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if msg := validateProperty(property); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	property.AgentID = actorID

	created, err := h.Service.CreateProperty(r.Context(), property, imageURLs)
	if err != nil {
		serverError(w, "Server error while creating property", err)
		return
	}

	respondCreated(w, created, "Property created successfully")
}

func propertyFromForm(r *http.Request) models.Property {
	var p models.Property
	p.Title = r.FormValue("title")
	p.Description = r.FormValue("description")
	p.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	p.Type = r.FormValue("type")
	p.Category = r.FormValue("category")
	p.Address = r.FormValue("address")
	p.City = r.FormValue("city")
	p.District = r.FormValue("district")
	p.BedRooms, _ = strconv.Atoi(r.FormValue("bed_rooms"))
	p.BathRooms, _ = strconv.Atoi(r.FormValue("bath_rooms"))
	p.LandSize, _ = strconv.ParseFloat(r.FormValue("land_size"), 64)
	p.BuildingSize, _ = strconv.ParseFloat(r.FormValue("building_size"), 64)
	p.IsFeatured, _ = strconv.ParseBool(r.FormValue("is_featured"))

	if raw := r.FormValue("facilities"); raw != "" {
		var facilities []string
		if err := json.Unmarshal([]byte(raw), &facilities); err == nil {
			p.Facilities = facilities
		}
	}

	return p
}

func validateProperty(p models.Property) string {
	if p.Title == "" {
		return "Title is required"
	}
	if p.Price <= 0 {
		return "Price must be positive"
	}
	if p.Type != models.PropertyTypeSale && p.Type != models.PropertyTypeRent {
		return "Type must be sale or rent"
	}
	switch p.Category {
	case "house", "apartment", "land":
	default:
		return "Category must be house, apartment or land"
	}
	return ""
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}
	actorID, role := actorFromContext(r.Context())

	var update models.PropertyUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Service.UpdateProperty(r.Context(), id, actorID, role, update)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPropertyNotFound):
			WriteError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, models.ErrNotOwner):
			WriteError(w, http.StatusForbidden, "Not authorized to update this property")
		case errors.Is(err, models.ErrNoUpdatableFields):
			WriteError(w, http.StatusBadRequest, "No valid fields to update")
		default:
			serverError(w, "Server error while updating property", err)
		}
		return
	}

	writeEnvelope(w, http.StatusOK, envelope{Success: true, Data: updated, Message: "Property updated successfully"})
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}
	actorID, role := actorFromContext(r.Context())

	err := h.Service.DeleteProperty(r.Context(), id, actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPropertyNotFound):
			WriteError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, models.ErrNotOwner):
			WriteError(w, http.StatusForbidden, "Not authorized to delete this property")
		default:
			serverError(w, "Server error while deleting property", err)
		}
		return
	}

	respondMessage(w, "Property deleted successfully")
}

func (h *PropertyHandler) SetPrimaryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}
	imageID, ok := pathID(w, r, ":image_id")
	if !ok {
		return
	}
	actorID, role := actorFromContext(r.Context())

	err := h.Service.SetPrimaryImage(r.Context(), id, imageID, actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPropertyNotFound):
			WriteError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, models.ErrImageNotFound):
			WriteError(w, http.StatusNotFound, "Property image not found")
		case errors.Is(err, models.ErrNotOwner):
			WriteError(w, http.StatusForbidden, "Not authorized to update this property")
		default:
			serverError(w, "Server error while updating property image", err)
		}
		return
	}

	respondMessage(w, "Primary image updated successfully")
}

func (h *PropertyHandler) GetMyProperties(w http.ResponseWriter, r *http.Request) {
	actorID, _ := actorFromContext(r.Context())

	properties, err := h.Service.GetPropertiesByAgentID(r.Context(), actorID)
	if err != nil {
		serverError(w, "Server error while fetching properties", err)
		return
	}

	respondData(w, http.StatusOK, properties)
}

// pathID reads a pat path parameter and rejects non-numeric values.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		WriteError(w, http.StatusBadRequest, "Missing id")
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

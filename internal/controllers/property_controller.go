package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/AxelVC22/Inmuebles-api/internal/dtos"
	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/services"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

// Uploads are capped before image processing sees them.
const maxUploadBytes = 10 << 20

type PropertyController struct {
	properties services.PropertyService
	search     services.SearchService
	validate   *validator.Validate
}

func NewPropertyController(properties services.PropertyService, search services.SearchService, validate *validator.Validate) *PropertyController {
	return &PropertyController{properties: properties, search: search, validate: validate}
}

func (c *PropertyController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreatePropertyRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	view, err := c.properties.Create(r.Context(), userID, req.ToInput())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, "Inmueble publicado", view)
}

func (c *PropertyController) Get(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid property id", nil, err)
		return
	}

	view, err := c.properties.Get(r.Context(), propertyID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", view)
}

func (c *PropertyController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	propertyID, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid property id", nil, err)
		return
	}

	var req dtos.UpdatePropertyRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	view, err := c.properties.Update(r.Context(), userID, propertyID, req.ToPatch())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Inmueble actualizado", view)
}

func (c *PropertyController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	rows, err := c.properties.ListMine(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", rows)
}

func (c *PropertyController) Search(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ListingFilter{
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "limit"),
	}
	if title := r.URL.Query().Get("titulo"); title != "" {
		filter.Title = &title
	}
	if raw := r.URL.Query().Get("idCategoria"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			utils.RespondErrorWithCode(w, http.StatusBadRequest,
				utils.ErrCodeValidation, "Invalid category id", nil, err)
			return
		}
		filter.CategoryID = &id
	}
	if min, ok := queryFloat(w, r, "presupuestoMin"); !ok {
		return
	} else {
		filter.BudgetMin = min
	}
	if max, ok := queryFloat(w, r, "presupuestoMax"); !ok {
		return
	} else {
		filter.BudgetMax = max
	}

	result, err := c.search.Search(r.Context(), filter)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", result)
}

func (c *PropertyController) Recommended(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	result, err := c.search.Recommended(r.Context(), userID, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", result)
}

func (c *PropertyController) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	propertyID, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid property id", nil, err)
		return
	}

	var req dtos.ChangeStatusRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	pub, err := c.properties.ChangeStatus(r.Context(), userID, propertyID,
		models.PublicationStatusType(req.Status), req.Reason)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Estado actualizado", pub)
}

func (c *PropertyController) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	propertyID, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid property id", nil, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeInvalidPayload, "Invalid multipart form", nil, err)
		return
	}
	file, header, err := r.FormFile("imagen")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Missing 'imagen' file", nil, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeInvalidPayload, "Could not read uploaded file", nil, err)
		return
	}
	isCover := r.FormValue("esPortada") == "true"

	img, err := c.properties.UploadImage(r.Context(), userID, propertyID, header.Filename, data, isCover)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, "Imagen guardada", dtos.NewImageResponse(img))
}

func (c *PropertyController) ListImages(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid property id", nil, err)
		return
	}

	images, err := c.properties.ListImages(r.Context(), propertyID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out := make([]dtos.ImageResponse, 0, len(images))
	for i := range images {
		out = append(out, dtos.NewImageResponse(&images[i]))
	}
	utils.RespondSuccess(w, http.StatusOK, "", out)
}

func (c *PropertyController) SetImageVisibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	propertyID, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid property id", nil, err)
		return
	}
	imageID, err := pathID(r, "imageId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid image id", nil, err)
		return
	}

	var req dtos.ImageVisibilityRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	if err := c.properties.SetImageVisibility(r.Context(), userID, propertyID, imageID, *req.Visible); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Visibilidad actualizada", nil)
}

func (c *PropertyController) DeleteImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	propertyID, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid property id", nil, err)
		return
	}
	imageID, err := pathID(r, "imageId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid image id", nil, err)
		return
	}

	if err := c.properties.DeleteImage(r.Context(), userID, propertyID, imageID); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "Imagen eliminada", nil)
}

func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}

// queryFloat parses an optional non-negative float query parameter.
// Returns ok=false after responding when the value is malformed.
func queryFloat(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		utils.RespondErrorWithCode(w, http.StatusBadRequest,
			utils.ErrCodeValidation, "Invalid "+name, nil, err)
		return nil, false
	}
	return &v, true
}

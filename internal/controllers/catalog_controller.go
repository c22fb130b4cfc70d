package controllers

import (
	"net/http"

	"github.com/AxelVC22/Inmuebles-api/internal/services"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type CatalogController struct {
	catalogs services.CatalogService
}

func NewCatalogController(catalogs services.CatalogService) *CatalogController {
	return &CatalogController{catalogs: catalogs}
}

func (c *CatalogController) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogs.ListCategories(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, "", categories)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/laundry-app/services"
	"github.com/yeremiapane/laundry-app/utils"
)

// CatalogController serves the laundry service catalog.
type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

type serviceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

func (r serviceRequest) input() services.ServiceInput {
	return services.ServiceInput{Name: r.Name, Description: r.Description, Price: r.Price}
}

func (cc *CatalogController) GetServices(c *gin.Context) {
	list, err := cc.Catalog.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar layanan", list)
}

func (cc *CatalogController) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Nama dan harga layanan diperlukan")
		return
	}

	id, err := cc.Catalog.Create(c.Request.Context(), req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Service added", gin.H{"id": id})
}

func (cc *CatalogController) UpdateService(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondMessage(c, http.StatusBadRequest, "Invalid id")
		return
	}
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Nama dan harga layanan diperlukan")
		return
	}

	if err := cc.Catalog.Update(c.Request.Context(), id, req.input()); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service updated", gin.H{"id": id})
}

func (cc *CatalogController) DeleteService(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondMessage(c, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := cc.Catalog.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service deleted", gin.H{"id": id})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/utils"
)

type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

// GetAllCombos -> the combo catalog
func (cc *CatalogController) GetAllCombos(c *gin.Context) {
	var combos []models.Combo
	if err := cc.DB.Find(&combos).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of combos", combos)
}

// GetAllDrinks -> the drink catalog, optionally filtered by category
func (cc *CatalogController) GetAllDrinks(c *gin.Context) {
	query := cc.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var drinks []models.Drink
	if err := query.Find(&drinks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of drinks", drinks)
}

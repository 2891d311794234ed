package handler

import (
	"net/http"

	"address-autocomplete/internal/address"
	"address-autocomplete/internal/models"

	"github.com/gin-gonic/gin"
)

// Decompose handles POST /api/decompose
//
//	@Summary	Decompose a place into an address record
//	@Accept		json
//	@Produce	json
//	@Param		place	body		models.Place	true	"place from the autocomplete widget"
//	@Success	200		{object}	models.AddressRecord
//	@Failure	400		{object}	map[string]string
//	@Router		/api/decompose [post]
func Decompose(c *gin.Context) {
	var place models.Place
	if err := c.ShouldBindJSON(&place); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place payload"})
		return
	}

	c.JSON(http.StatusOK, address.DecomposePlace(place))
}

// Validate handles POST /api/validate
//
//	@Summary	Check an address record
//	@Accept		json
//	@Produce	json
//	@Param		address	body		models.AddressRecord	true	"address"
//	@Success	200		{object}	map[string]any
//	@Failure	400		{object}	map[string]string
//	@Router		/api/validate [post]
func Validate(c *gin.Context) {
	var record models.AddressRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address payload"})
		return
	}

	errs := address.Validate(record)
	c.JSON(http.StatusOK, gin.H{"valid": len(errs) == 0, "errors": errs})
}

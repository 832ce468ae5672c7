package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bhavani-b03/Restaurant-app/middlewares"
	"github.com/bhavani-b03/Restaurant-app/models"
	"github.com/bhavani-b03/Restaurant-app/services"

	"github.com/gin-gonic/gin"
)

// parseListFilters converts the untrusted query string into typed filters.
// Malformed numeric input fails the whole request rather than being silently
// dropped.
func parseListFilters(c *gin.Context) (services.ListFilters, error) {
	var f services.ListFilters

	if v := c.Query("cost_for_two_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid cost_for_two_min %q", v)
		}
		f.CostForTwoMin = &n
	}
	if v := c.Query("cost_for_two_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid cost_for_two_max %q", v)
		}
		f.CostForTwoMax = &n
	}
	for _, v := range c.QueryArray("diet_type") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid diet_type %q", v)
		}
		f.DietTypes = append(f.DietTypes, models.DietType(n))
	}
	for _, v := range c.QueryArray("cuisines") {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return f, fmt.Errorf("invalid cuisine id %q", v)
		}
		f.CuisineIDs = append(f.CuisineIDs, uint(n))
	}
	for _, v := range c.QueryArray("rating") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid rating %q", v)
		}
		f.Ratings = append(f.Ratings, n)
	}
	if v := c.Query("is_spotlight"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("invalid is_spotlight %q", v)
		}
		f.IsSpotlight = &b
	}
	f.Search = c.Query("search")
	f.Sort = resolveSort(c)

	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, fmt.Errorf("invalid page %q", v)
		}
		f.Page = n
	}
	return f, nil
}

// resolveSort maps the sort parameters to a single directive. The `sort`
// enum is authoritative; the legacy sort_by / sort_by_rating pair is kept as
// a compatibility shim, with sort_by winning when both legacy values are
// present (the historical behavior). Unrecognized values mean no directive.
func resolveSort(c *gin.Context) services.SortOrder {
	switch services.SortOrder(c.Query("sort")) {
	case services.SortPriceLow:
		return services.SortPriceLow
	case services.SortPriceHigh:
		return services.SortPriceHigh
	case services.SortRatingHigh:
		return services.SortRatingHigh
	case services.SortRatingLow:
		return services.SortRatingLow
	}

	switch c.Query("sort_by") {
	case "price_low":
		return services.SortPriceLow
	case "price_high":
		return services.SortPriceHigh
	}
	switch c.Query("sort_by_rating") {
	case "rating_high":
		return services.SortRatingHigh
	case "rating_low":
		return services.SortRatingLow
	}
	return services.SortNone
}

// GET /restaurants
func ListRestaurants(c *gin.Context) {
	filters, err := parseListFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewRestaurantService()
	page, err := svc.List(filters, middlewares.CallerID(c))
	if err != nil {
		serverError(c, "failed to list restaurants", err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GET /restaurants/:id
func GetRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	svc := services.NewRestaurantService()
	detail, err := svc.Get(uint(id), middlewares.CallerID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		serverError(c, "failed to load restaurant", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

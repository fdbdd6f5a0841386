package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"globaltrotter/services"

	"github.com/gin-gonic/gin"
)

// filtersFromQuery reads the filter bar's state off the query string.
// Unparsable price bounds are carried through as-is; the query engine
// ignores them.
func filtersFromQuery(c *gin.Context) services.Filters {
	minRating, err := strconv.ParseFloat(c.Query("min_rating"), 64)
	if err != nil {
		minRating = 0
	}

	var tags []string
	if raw := c.Query("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	return services.Filters{
		MinPrice:  c.Query("min_price"),
		MaxPrice:  c.Query("max_price"),
		MinRating: minRating,
		Tags:      tags,
	}
}

func ListFlightsHandler(c *gin.Context) {
	items := services.Search(services.GetCatalog().Flights,
		c.Query("q"), filtersFromQuery(c), services.ParseSortOption(c.Query("sort")))
	c.JSON(http.StatusOK, gin.H{"flights": items, "count": len(items)})
}

func ListHotelsHandler(c *gin.Context) {
	items := services.Search(services.GetCatalog().Hotels,
		c.Query("q"), filtersFromQuery(c), services.ParseSortOption(c.Query("sort")))
	c.JSON(http.StatusOK, gin.H{"hotels": items, "count": len(items)})
}

func ListCarsHandler(c *gin.Context) {
	items := services.Search(services.GetCatalog().Cars,
		c.Query("q"), filtersFromQuery(c), services.ParseSortOption(c.Query("sort")))
	c.JSON(http.StatusOK, gin.H{"cars": items, "count": len(items)})
}

func ListExploreHandler(c *gin.Context) {
	items := services.Search(services.GetCatalog().ExploreItems,
		c.Query("q"), filtersFromQuery(c), services.ParseSortOption(c.Query("sort")))
	c.JSON(http.StatusOK, gin.H{"exploreItems": items, "count": len(items)})
}

func GetItemHandler(c *gin.Context) {
	id := c.Param("id")
	item, ok := services.GetCatalog().FindItem(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": item.Kind(), "item": item})
}

func FeaturedHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"featured": services.GetCatalog().Featured()})
}

func TestimonialsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"testimonials": services.GetCatalog().Testimonials})
}

func TravelTipsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tips": services.GetCatalog().TravelTips})
}

func TagsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tags": services.GetCatalog().AllTags()})
}

func HeroVideosHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"videos": services.GetCatalog().HeroVideos})
}

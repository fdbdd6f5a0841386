package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Catalog is the process-wide read-only dataset backing the browse
// pages. It is built once at startup and never mutated afterwards.
type Catalog struct {
	Flights      []Flight
	Hotels       []Hotel
	Cars         []Car
	ExploreItems []ExploreItem
	Testimonials []Testimonial
	TravelTips   []TravelTip
	HeroVideos   []string
}

var catalog *Catalog

func InitCatalog() {
	catalog = &Catalog{
		Flights:      seedFlights(),
		Hotels:       seedHotels(),
		Cars:         seedCars(),
		ExploreItems: seedExploreItems(),
		Testimonials: seedTestimonials,
		TravelTips:   seedTravelTips,
		HeroVideos:   heroVideos,
	}

	log.Printf("✅ Catalog loaded: %d flights, %d hotels, %d cars, %d experiences",
		len(catalog.Flights), len(catalog.Hotels), len(catalog.Cars), len(catalog.ExploreItems))
}

func GetCatalog() *Catalog {
	return catalog
}

// FindItem looks an id up across all four collections.
func (c *Catalog) FindItem(id string) (Item, bool) {
	for i := range c.Flights {
		if c.Flights[i].ID == id {
			return c.Flights[i], true
		}
	}
	for i := range c.Hotels {
		if c.Hotels[i].ID == id {
			return c.Hotels[i], true
		}
	}
	for i := range c.Cars {
		if c.Cars[i].ID == id {
			return c.Cars[i], true
		}
	}
	for i := range c.ExploreItems {
		if c.ExploreItems[i].ID == id {
			return c.ExploreItems[i], true
		}
	}
	return nil, false
}

// AllTags returns the tag universe across experiences, in first-seen
// order so the filter chips render stably.
func (c *Catalog) AllTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, item := range c.ExploreItems {
		for _, tag := range item.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// FeaturedItem is a catalog entry dressed up with a popularity label
// for the home page carousel.
type FeaturedItem struct {
	Item       any    `json:"item"`
	Kind       ItemKind `json:"kind"`
	Popularity string `json:"popularity"`
}

// Featured returns the first four hotels, experiences and cars with a
// synthesized popularity label derived from the item's ordinal.
func (c *Catalog) Featured() []FeaturedItem {
	var out []FeaturedItem
	for i := 0; i < 4 && i < len(c.Hotels); i++ {
		h := c.Hotels[i]
		out = append(out, FeaturedItem{Item: h, Kind: KindHotel,
			Popularity: fmt.Sprintf("%d%% booked", 98-itemOrdinal(h.ID))})
	}
	for i := 0; i < 4 && i < len(c.ExploreItems); i++ {
		e := c.ExploreItems[i]
		out = append(out, FeaturedItem{Item: e, Kind: KindExplore,
			Popularity: fmt.Sprintf("%d%% popular", 95-itemOrdinal(e.ID))})
	}
	for i := 0; i < 4 && i < len(c.Cars); i++ {
		car := c.Cars[i]
		out = append(out, FeaturedItem{Item: car, Kind: KindCar,
			Popularity: fmt.Sprintf("%d%% rented", 91-itemOrdinal(car.ID))})
	}
	return out
}

// itemOrdinal extracts the numeric suffix of ids like "hotel-3".
func itemOrdinal(id string) int {
	idx := strings.LastIndex(id, "-")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(id[idx+1:])
	if err != nil {
		return 0
	}
	return n
}

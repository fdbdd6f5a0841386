package services

// ─── Item model ───────────────────────────────────────────────────────────────

type ItemKind string

const (
	KindFlight  ItemKind = "flight"
	KindHotel   ItemKind = "hotel"
	KindCar     ItemKind = "car"
	KindExplore ItemKind = "explore"
)

type Review struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Text string `json:"text"`
}

type Description struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

// ItemCore is the shape shared by every bookable catalog entry. The
// variant structs embed it so their JSON stays flat.
type ItemCore struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Location    string      `json:"location"`
	PriceZAR    float64     `json:"priceZAR"`
	Images      []string    `json:"images"`
	Rating      float64     `json:"rating"`
	Reviews     []Review    `json:"reviews"`
	Description Description `json:"description"`
}

type Flight struct {
	ItemCore
	Airline  string `json:"airline"`
	Duration string `json:"duration"`
}

type Hotel struct {
	ItemCore
	Amenities []string `json:"amenities"`
}

type Car struct {
	ItemCore
	Type     string   `json:"type"`
	Seats    int      `json:"seats"`
	Features []string `json:"features"`
}

type ExploreItem struct {
	ItemCore
	Tags []string `json:"tags"`
}

// Item unifies the four variants behind an explicit kind discriminant.
// ItemTags is nil for variants that carry no tags.
type Item interface {
	Kind() ItemKind
	Core() ItemCore
	ItemTags() []string
}

func (f Flight) Kind() ItemKind          { return KindFlight }
func (f Flight) Core() ItemCore          { return f.ItemCore }
func (f Flight) ItemTags() []string      { return nil }
func (h Hotel) Kind() ItemKind           { return KindHotel }
func (h Hotel) Core() ItemCore           { return h.ItemCore }
func (h Hotel) ItemTags() []string       { return nil }
func (c Car) Kind() ItemKind             { return KindCar }
func (c Car) Core() ItemCore             { return c.ItemCore }
func (c Car) ItemTags() []string         { return nil }
func (e ExploreItem) Kind() ItemKind     { return KindExplore }
func (e ExploreItem) Core() ItemCore     { return e.ItemCore }
func (e ExploreItem) ItemTags() []string { return e.Tags }

// ─── Aggregates ───────────────────────────────────────────────────────────────

// SearchResults is what the AI search gateway returns. The four slices
// are always non-nil; absent categories become empty lists.
type SearchResults struct {
	Flights      []Flight      `json:"flights"`
	Hotels       []Hotel       `json:"hotels"`
	Cars         []Car         `json:"cars"`
	ExploreItems []ExploreItem `json:"exploreItems"`
}

// Normalize replaces nil category slices so callers never see null.
func (r *SearchResults) Normalize() {
	if r.Flights == nil {
		r.Flights = []Flight{}
	}
	if r.Hotels == nil {
		r.Hotels = []Hotel{}
	}
	if r.Cars == nil {
		r.Cars = []Car{}
	}
	if r.ExploreItems == nil {
		r.ExploreItems = []ExploreItem{}
	}
}

// Empty reports whether no category has any items.
func (r *SearchResults) Empty() bool {
	return len(r.Flights) == 0 && len(r.Hotels) == 0 &&
		len(r.Cars) == 0 && len(r.ExploreItems) == 0
}

// Find looks an item up across all four categories.
func (r *SearchResults) Find(id string) (Item, bool) {
	for i := range r.Flights {
		if r.Flights[i].ID == id {
			return r.Flights[i], true
		}
	}
	for i := range r.Hotels {
		if r.Hotels[i].ID == id {
			return r.Hotels[i], true
		}
	}
	for i := range r.Cars {
		if r.Cars[i].ID == id {
			return r.Cars[i], true
		}
	}
	for i := range r.ExploreItems {
		if r.ExploreItems[i].ID == id {
			return r.ExploreItems[i], true
		}
	}
	return nil, false
}

type Testimonial struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Quote    string `json:"quote"`
	Image    string `json:"image"`
}

type TravelTip struct {
	Title string `json:"title"`
	Tip   string `json:"tip"`
}

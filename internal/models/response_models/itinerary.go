package response_models

// Canonical slot times. The scheduler emits exactly these three per day.
const (
	MorningTime   = "09:00"
	AfternoonTime = "14:00"
	EveningTime   = "19:00"
)

const (
	GeneratedByData     = "data"
	GeneratedByFallback = "fallback"
)

type Activity struct {
	Time          string  `json:"time"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimatedCost"`
	Category      string  `json:"category"`
	Location      string  `json:"location,omitempty"`
	Source        string  `json:"source"`
}

type DayPlan struct {
	DayNumber int      `json:"dayNumber"`
	Date      string   `json:"date"`
	Title     string   `json:"title"`
	Morning   Activity `json:"morning"`
	Afternoon Activity `json:"afternoon"`
	Evening   Activity `json:"evening"`
}

type BudgetSummary struct {
	Activities     float64 `json:"activities"`
	Food           float64 `json:"food"`
	Transportation float64 `json:"transportation"`
	Accommodation  float64 `json:"accommodation"`
	Flights        float64 `json:"flights,omitempty"`
	Total          float64 `json:"total"`
}

type HotelOption struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight"`
	Rating        float64 `json:"rating"`
	Source        string  `json:"source"`
}

type FlightOption struct {
	Airline       string  `json:"airline"`
	Price         float64 `json:"price"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops"`
	Source        string  `json:"source"`
}

type Itinerary struct {
	ID            string         `json:"id"`
	Destination   string         `json:"destination"`
	Title         string         `json:"title"`
	Overview      string         `json:"overview"`
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	TravelerCount int            `json:"travelerCount"`
	Days          []DayPlan      `json:"days"`
	BudgetSummary BudgetSummary  `json:"budgetSummary"`
	Hotels        []HotelOption  `json:"hotels,omitempty"`
	Flights       []FlightOption `json:"flights,omitempty"`
	InsiderTips   []string       `json:"insiderTips"`
	GeneratedBy   string         `json:"generatedBy"`
}

package schema

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Year bounds offered by the form.
const (
	MinYear = 2010
	MaxYear = 2030
)

// Enumerated choices offered by the form.
var (
	Seasons     = []string{"Maha", "Yala"}
	Provinces   = []string{"Western", "Central", "Southern", "Northern", "Eastern", "North Western", "North Central", "Uva", "Sabaragamuwa"}
	Crops       = []string{"Paddy", "Maize", "Vegetables", "Onion", "Chili", "Coconut", "Rubber", "Tea"}
	SoilTypes   = []string{"Clay", "Sandy", "Loamy", "Laterite", "Alluvial"}
	Irrigations = []string{"Irrigated", "Rainfed"}
)

// Input is the raw set of values collected by the form for one submission.
type Input struct {
	Year                int
	Season              string
	Province            string
	District            string
	Crop                string
	SoilType            string
	Irrigation          string
	AreaSownHa          float64
	AreaHarvestedHa     float64
	RainfallMM          float64
	TemperatureC        float64
	FertilizerKgPerHa   float64
	MarketPriceLKRPerKg float64
	ProductionMT        float64
}

// DefaultInput returns the values the form is pre-filled with.
func DefaultInput() Input {
	return Input{
		Year:                2024,
		Season:              "Maha",
		Province:            "Western",
		Crop:                "Paddy",
		SoilType:            "Clay",
		Irrigation:          "Irrigated",
		AreaSownHa:          100,
		AreaHarvestedHa:     95,
		RainfallMM:          1500,
		TemperatureC:        28,
		FertilizerKgPerHa:   220,
		MarketPriceLKRPerKg: 120,
	}
}

// ValidationError describes the first out-of-bounds field of an Input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

type numField struct {
	field string
	value float64
}

// Validate checks the numeric bounds and enumerations that apply to rev.
// Fields the revision does not send to the model are not checked.
func (in Input) Validate(rev Revision) error {
	if in.Year < MinYear || in.Year > MaxYear {
		return &ValidationError{Field: "Year", Reason: fmt.Sprintf("must be between %d and %d", MinYear, MaxYear)}
	}
	choices := []struct {
		field string
		value string
		set   []string
	}{
		{"Season", in.Season, Seasons},
		{"Province", in.Province, Provinces},
		{"Crop", in.Crop, Crops},
		{"Soil_Type", in.SoilType, SoilTypes},
		{"Irrigation", in.Irrigation, Irrigations},
	}
	for _, c := range choices {
		if !slices.Contains(c.set, c.value) {
			return &ValidationError{Field: c.field, Reason: fmt.Sprintf("unknown choice %q", c.value)}
		}
	}
	nums := []numField{
		{"Area_Sown_ha", in.AreaSownHa},
		{"Rainfall_mm", in.RainfallMM},
		{"Temperature_C", in.TemperatureC},
		{"Fertilizer_kg_per_ha", in.FertilizerKgPerHa},
		{"Market_Price_LKR_per_kg", in.MarketPriceLKRPerKg},
	}
	if rev.HasHarvestedArea() {
		nums = append(nums,
			numField{"Area_Harvested_ha", in.AreaHarvestedHa},
			numField{"Production_mt", in.ProductionMT},
		)
	}
	for _, n := range nums {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return &ValidationError{Field: n.field, Reason: "must be a finite number"}
		}
		if n.value < 0 {
			return &ValidationError{Field: n.field, Reason: "must be >= 0"}
		}
	}
	return nil
}

// Normalize trims free text.
func (in Input) Normalize() Input {
	in.District = strings.TrimSpace(in.District)
	in.Season = strings.TrimSpace(in.Season)
	in.Province = strings.TrimSpace(in.Province)
	in.Crop = strings.TrimSpace(in.Crop)
	in.SoilType = strings.TrimSpace(in.SoilType)
	in.Irrigation = strings.TrimSpace(in.Irrigation)
	return in
}

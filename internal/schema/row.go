package schema

import (
	"fmt"
	"math"
	"sort"
)

// Column names shared with the training data set.
const (
	ColYear              = "Year"
	ColSeason            = "Season"
	ColProvince          = "Province"
	ColDistrict          = "District"
	ColCrop              = "Crop"
	ColSoilType          = "Soil_Type"
	ColIrrigation        = "Irrigation"
	ColAreaSown          = "Area_Sown_ha"
	ColAreaHarvested     = "Area_Harvested_ha"
	ColRainfall          = "Rainfall_mm"
	ColRainfallPerArea   = "Rainfall_per_area"
	ColTemperature       = "Temperature_C"
	ColFertilizer        = "Fertilizer_kg_per_ha"
	ColFertilizerPerArea = "Fertilizer_per_area"
	ColMarketPrice       = "Market_Price_LKR_per_kg"
	ColProduction        = "Production_mt"
)

var basicColumns = []string{
	ColYear, ColSeason, ColProvince, ColDistrict, ColCrop, ColSoilType, ColIrrigation,
	ColAreaSown, ColRainfall, ColTemperature, ColFertilizer, ColMarketPrice,
}

var fullColumns = []string{
	ColYear, ColSeason, ColProvince, ColDistrict, ColCrop, ColSoilType, ColIrrigation,
	ColAreaSown, ColAreaHarvested, ColRainfall, ColRainfallPerArea, ColTemperature,
	ColFertilizer, ColFertilizerPerArea, ColMarketPrice, ColProduction,
}

// Columns returns the column set the model of rev expects, in training order.
func Columns(rev Revision) []string {
	if rev.HasHarvestedArea() {
		return append([]string(nil), fullColumns...)
	}
	return append([]string(nil), basicColumns...)
}

// Value is one cell of a feature row: either numeric or categorical.
type Value struct {
	Num   float64
	Str   string
	IsStr bool
}

// Num wraps a numeric cell.
func Num(f float64) Value { return Value{Num: f} }

// Str wraps a categorical cell.
func Str(s string) Value { return Value{Str: s, IsStr: true} }

func (v Value) String() string {
	if v.IsStr {
		return v.Str
	}
	return fmt.Sprintf("%g", v.Num)
}

// Row is a single-record feature table keyed by column name.
type Row map[string]Value

// Columns returns the row's column names sorted lexically.
func (r Row) Columns() []string {
	out := make([]string, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DerivedRatios returns rainfall and fertilizer per sown hectare. A ratio is
// zero when no area was sown or when the division overflows.
func DerivedRatios(in Input) (rainfallPerArea, fertilizerPerArea float64) {
	if in.AreaSownHa <= 0 {
		return 0, 0
	}
	return perArea(in.RainfallMM, in.AreaSownHa), perArea(in.FertilizerKgPerHa, in.AreaSownHa)
}

func perArea(v, area float64) float64 {
	r := v / area
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0
	}
	return r
}

// BuildRow assembles the feature row for rev from in.
func BuildRow(rev Revision, in Input) Row {
	row := Row{
		ColYear:        Num(float64(in.Year)),
		ColSeason:      Str(in.Season),
		ColProvince:    Str(in.Province),
		ColDistrict:    Str(in.District),
		ColCrop:        Str(in.Crop),
		ColSoilType:    Str(in.SoilType),
		ColIrrigation:  Str(in.Irrigation),
		ColAreaSown:    Num(in.AreaSownHa),
		ColRainfall:    Num(in.RainfallMM),
		ColTemperature: Num(in.TemperatureC),
		ColFertilizer:  Num(in.FertilizerKgPerHa),
		ColMarketPrice: Num(in.MarketPriceLKRPerKg),
	}
	if rev.HasHarvestedArea() {
		rain, fert := DerivedRatios(in)
		row[ColAreaHarvested] = Num(in.AreaHarvestedHa)
		row[ColRainfallPerArea] = Num(rain)
		row[ColFertilizerPerArea] = Num(fert)
		row[ColProduction] = Num(in.ProductionMT)
	}
	return row
}

// ProductionArea is the area the predicted yield is multiplied by.
func ProductionArea(rev Revision, in Input) float64 {
	if rev.HasHarvestedArea() {
		return in.AreaHarvestedHa
	}
	return in.AreaSownHa
}

// EstimateProduction converts a per-hectare yield into total metric tons.
func EstimateProduction(rev Revision, in Input, yield float64) float64 {
	return yield * ProductionArea(rev, in)
}

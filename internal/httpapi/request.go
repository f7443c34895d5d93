package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"yieldd/internal/schema"
	"yieldd/pkg/types"
)

// toInput converts the JSON payload into the adapter's input type.
func toInput(req types.PredictRequest) schema.Input {
	return schema.Input{
		Year:                req.Year,
		Season:              req.Season,
		Province:            req.Province,
		District:            req.District,
		Crop:                req.Crop,
		SoilType:            req.SoilType,
		Irrigation:          req.Irrigation,
		AreaSownHa:          req.AreaSownHa,
		AreaHarvestedHa:     req.AreaHarvestedHa,
		RainfallMM:          req.RainfallMM,
		TemperatureC:        req.TemperatureC,
		FertilizerKgPerHa:   req.FertilizerKgPerHa,
		MarketPriceLKRPerKg: req.MarketPriceLKRPerKg,
		ProductionMT:        req.ProductionMT,
	}
}

// formError reports a form field that could not be parsed as a number.
type formError struct {
	field string
	value string
}

func (e formError) Error() string {
	return fmt.Sprintf("%s: %q is not a number", e.field, e.value)
}

type formNum struct {
	key string
	dst *float64
}

// parseForm reads the urlencoded form. Blank numeric fields keep their
// defaults, matching a pre-filled form the user did not touch. Fields the
// revision does not render are ignored.
func parseForm(v url.Values, rev schema.Revision) (schema.Input, error) {
	in := schema.DefaultInput()
	str := func(key string, dst *string) {
		if _, ok := v[key]; ok {
			*dst = v.Get(key)
		}
	}
	str("season", &in.Season)
	str("province", &in.Province)
	str("district", &in.District)
	str("crop", &in.Crop)
	str("soil_type", &in.SoilType)
	str("irrigation", &in.Irrigation)

	if s := strings.TrimSpace(v.Get("year")); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return in, formError{field: "year", value: s}
		}
		in.Year = y
	}
	nums := []formNum{
		{"area_sown_ha", &in.AreaSownHa},
		{"rainfall_mm", &in.RainfallMM},
		{"temperature_c", &in.TemperatureC},
		{"fertilizer_kg_per_ha", &in.FertilizerKgPerHa},
		{"market_price_lkr_per_kg", &in.MarketPriceLKRPerKg},
	}
	if rev.HasHarvestedArea() {
		nums = append(nums,
			formNum{"area_harvested_ha", &in.AreaHarvestedHa},
			formNum{"production_mt", &in.ProductionMT},
		)
	}
	for _, n := range nums {
		s := strings.TrimSpace(v.Get(n.key))
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return in, formError{field: n.key, value: s}
		}
		*n.dst = f
	}
	return in, nil
}

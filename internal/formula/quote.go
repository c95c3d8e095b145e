package formula

import "shipline_builder/internal/models"

// QuoteBuild evaluates a (possibly partial) build request exactly the way
// the build wizard stages it:
//
//	step 1: class + capacity        -> baseline stats, hull price
//	step 2: + engine model + power  -> engine speed/range, hull + engine price
//	step 3: + perks                 -> composed stats, full price
//
// Engine power is clamped into the model's band before interpolation, so a
// raw slider value is safe to pass through.
func QuoteBuild(req models.VesselBuildRequest) (models.BuildQuote, error) {
	r, err := ClassRange(req.Class)
	if err != nil {
		return models.BuildQuote{}, err
	}

	stats := BaseStats(r, req.Capacity)
	quote := models.BuildQuote{
		Unit:      r.Unit,
		BasePrice: BasePrice(r, req.Capacity),
	}

	if req.EngineID != "" {
		eng, err := EngineByID(req.EngineID)
		if err != nil {
			return models.BuildQuote{}, err
		}
		kw := ClampEngineKW(eng, req.EngineKW)
		point := EngineStats(r, eng, req.Capacity, kw)
		stats.RangeNm = point.RangeNm
		stats.SpeedKn = point.SpeedKn
		quote.EnginePrice = EnginePrice(eng, kw)
	}

	vesselPrice := quote.BasePrice + quote.EnginePrice
	quote.TotalPrice = vesselPrice

	if req.Perks != nil {
		stats, err = ComposePerks(stats, *req.Perks)
		if err != nil {
			return models.BuildQuote{}, err
		}
		total, err := TotalPrice(vesselPrice, req.Capacity, *req.Perks)
		if err != nil {
			return models.BuildQuote{}, err
		}
		quote.PerkCost = total - vesselPrice
		quote.TotalPrice = total
	}

	quote.Stats = stats
	return quote, nil
}

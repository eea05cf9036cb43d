package impact

// Deflator converts current-year dollars to the IO table's base-year dollars
// using a CPI series. Employment coefficients are calibrated to base-year
// dollar values, so GDP figures are deflated before coefficients apply;
// skipping this overstates jobs for every year after the base year.
type Deflator struct {
	baseYear int
	series   map[int]float64
}

func NewDeflator(baseYear int, series map[int]float64) *Deflator {
	return &Deflator{baseYear: baseYear, series: series}
}

func (d *Deflator) BaseYear() int { return d.baseYear }

// Factor returns CPI_base/CPI_year, or 1.0 when the year is zero, is the
// base year itself, or is missing from the series.
func (d *Deflator) Factor(year int) float64 {
	if year == 0 || year == d.baseYear {
		return 1.0
	}
	base, okBase := d.series[d.baseYear]
	current, okCurrent := d.series[year]
	if !okBase || !okCurrent || current == 0 {
		return 1.0
	}
	return base / current
}

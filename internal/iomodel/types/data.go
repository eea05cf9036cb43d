package types

// Value-added row codes as published in the BEA state tables.
const (
	VARowCompensation = "V001"
	VARowTaxes        = "V002"
	VARowSurplus      = "V003"
)

// PCEColumn is the personal consumption expenditure final-demand column of
// the Use table.
const PCEColumn = "F010"

type Sector struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TargetSectors are the gaming-adjacent industries the batch derives
// multipliers for. Coefficient vectors are still computed economy-wide;
// this list only selects which columns are persisted.
var TargetSectors = []Sector{
	{Code: "711", Name: "Performing arts and spectator sports"},
	{Code: "713", Name: "Amusement, gambling, and recreation"},
	{Code: "721", Name: "Accommodation"},
	{Code: "722", Name: "Food services and drinking places"},
}

func IsTargetSector(code string) bool {
	for _, s := range TargetSectors {
		if s.Code == code {
			return true
		}
	}
	return false
}

func SectorName(code string) string {
	for _, s := range TargetSectors {
		if s.Code == code {
			return s.Name
		}
	}
	return ""
}

type EmploymentRow struct {
	Jobs  float64
	Wages float64
}

// RawStateTables holds one state's source tables as loaded, keyed by
// industry/commodity code. Alignment into dense matrices happens later; at
// this stage the code sets of the individual tables may disagree.
type RawStateTables struct {
	State string

	// Make: industry -> commodity -> production value
	Make map[string]map[string]float64
	// Use: commodity -> industry -> purchase value
	Use map[string]map[string]float64

	IndustryOutput  map[string]float64
	CommodityOutput map[string]float64

	// ValueAdded: row code (V001..V003) -> industry -> value
	ValueAdded map[string]map[string]float64

	// PCE: commodity -> personal consumption expenditure
	PCE map[string]float64

	// Employment: industry -> jobs and total wages
	Employment map[string]EmploymentRow
}

package load

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/econlab/gaming_impact/internal/iomodel/types"
	"github.com/econlab/gaming_impact/internal/iomodel/utils"
	"github.com/econlab/gaming_impact/internal/logger"
	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/encoding/charmap"
)

const (
	makeFile            = "make.csv"
	useFile             = "use.csv"
	valueAddedFile      = "value_added.csv"
	industryOutputFile  = "industry_output.csv"
	commodityOutputFile = "commodity_output.csv"
	employmentFile      = "employment.csv"
)

// DiscoverStates lists the per-state subdirectories of a data directory.
func DiscoverStates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data dir %s: %w", dir, err)
	}

	states := []string{}
	for _, e := range entries {
		if e.IsDir() {
			states = append(states, e.Name())
		}
	}
	return states, nil
}

// LoadState reads one state's Make/Use/value-added/output/employment CSVs
// into raw tables. Agency exports arrive Windows-1252 encoded, so every file
// goes through a charmap decoder before gota parses it.
func LoadState(dir, state string, appLogger *logger.Logger) (*types.RawStateTables, error) {
	const component = "Loader"
	stateDir := filepath.Join(dir, state)

	appLogger.Debug(component, "Loading IO tables: state=%s dir=%s", state, stateDir)

	raw := &types.RawStateTables{
		State:           state,
		Make:            map[string]map[string]float64{},
		Use:             map[string]map[string]float64{},
		IndustryOutput:  map[string]float64{},
		CommodityOutput: map[string]float64{},
		ValueAdded:      map[string]map[string]float64{},
		PCE:             map[string]float64{},
		Employment:      map[string]types.EmploymentRow{},
	}

	df, err := readCSV(filepath.Join(stateDir, makeFile))
	if err != nil {
		return nil, err
	}
	for i := 0; i < df.Nrow(); i++ {
		code := utils.GetStr("Industry", i, &df)
		row := map[string]float64{}
		for _, col := range df.Names() {
			if col == "Industry" {
				continue
			}
			row[col] = utils.GetFloat(col, i, &df)
		}
		raw.Make[code] = row
	}

	df, err = readCSV(filepath.Join(stateDir, useFile))
	if err != nil {
		return nil, err
	}
	for i := 0; i < df.Nrow(); i++ {
		code := utils.GetStr("Commodity", i, &df)
		row := map[string]float64{}
		for _, col := range df.Names() {
			if col == "Commodity" {
				continue
			}
			if col == types.PCEColumn {
				raw.PCE[code] = utils.GetFloat(col, i, &df)
				continue
			}
			row[col] = utils.GetFloat(col, i, &df)
		}
		raw.Use[code] = row
	}

	df, err = readCSV(filepath.Join(stateDir, valueAddedFile))
	if err != nil {
		return nil, err
	}
	for i := 0; i < df.Nrow(); i++ {
		code := utils.GetStr("Code", i, &df)
		row := map[string]float64{}
		for _, col := range df.Names() {
			if col == "Code" {
				continue
			}
			row[col] = utils.GetFloat(col, i, &df)
		}
		raw.ValueAdded[code] = row
	}

	df, err = readCSV(filepath.Join(stateDir, industryOutputFile))
	if err != nil {
		return nil, err
	}
	for i := 0; i < df.Nrow(); i++ {
		raw.IndustryOutput[utils.GetStr("Code", i, &df)] = utils.GetFloat("Output", i, &df)
	}

	df, err = readCSV(filepath.Join(stateDir, commodityOutputFile))
	if err != nil {
		return nil, err
	}
	for i := 0; i < df.Nrow(); i++ {
		raw.CommodityOutput[utils.GetStr("Code", i, &df)] = utils.GetFloat("Output", i, &df)
	}

	// Employment is optional; coefficient fallbacks cover a missing file.
	empPath := filepath.Join(stateDir, employmentFile)
	if _, statErr := os.Stat(empPath); statErr == nil {
		df, err = readCSV(empPath)
		if err != nil {
			return nil, err
		}
		for i := 0; i < df.Nrow(); i++ {
			raw.Employment[utils.GetStr("Code", i, &df)] = types.EmploymentRow{
				Jobs:  utils.GetFloat("Jobs", i, &df),
				Wages: utils.GetFloat("Wages", i, &df),
			}
		}
	} else {
		appLogger.Warn(component, "No employment table for state=%s, coefficient fallbacks will apply", state)
	}

	return raw, nil
}

// LoadCPI reads a Year,Index CSV into a year-keyed series.
func LoadCPI(path string) (map[int]float64, error) {
	df, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	series := map[int]float64{}
	for i := 0; i < df.Nrow(); i++ {
		year, convErr := strconv.Atoi(utils.GetStr("Year", i, &df))
		if convErr != nil {
			continue
		}
		series[year] = utils.GetFloat("Index", i, &df)
	}
	return series, nil
}

func readCSV(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	decoded := charmap.Windows1252.NewDecoder().Reader(f)
	df := dataframe.ReadCSV(decoded)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse %s: %w", path, df.Err)
	}
	return df, nil
}

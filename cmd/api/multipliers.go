package main

import (
	"errors"
	"net/http"

	"github.com/econlab/gaming_impact/internal/iomodel/types"
	"github.com/econlab/gaming_impact/internal/response"
	"github.com/econlab/gaming_impact/internal/store"
)

type GetMultipliersResponse = response.APIResponse[[]store.MultiplierRecord]
type ListStatesResponse = response.APIResponse[[]string]
type ListSectorsResponse = response.APIResponse[[]types.Sector]

func (app *application) handleGetMultipliers(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	sector := r.URL.Query().Get("sector")

	if state == "" {
		writeJSONError(w, http.StatusBadRequest, "state parameter is required")
		return
	}

	ctx := r.Context()

	var records []store.MultiplierRecord
	if sector != "" {
		record, err := app.store.Multiplier.GetRecord(ctx, state, sector)
		if errors.Is(err, store.ErrRecordNotFound) {
			writeJSONError(w, http.StatusNotFound, "no multiplier record for this state and sector")
			return
		}
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to query multipliers: "+err.Error())
			return
		}
		records = []store.MultiplierRecord{*record}
	} else {
		var err error
		records, err = app.store.Multiplier.GetByState(ctx, state)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to query multipliers: "+err.Error())
			return
		}
		if len(records) == 0 {
			writeJSONError(w, http.StatusNotFound, "no multiplier records for this state")
			return
		}
	}

	resp := &GetMultipliersResponse{
		Success: true,
		Data:    records,
		Message: "Successfully retrieved multiplier records",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleListStates(w http.ResponseWriter, r *http.Request) {
	states, err := app.store.Multiplier.ListStates(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to list states: "+err.Error())
		return
	}

	resp := &ListStatesResponse{
		Success: true,
		Data:    states,
		Message: "Successfully listed states",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleListSectors(w http.ResponseWriter, r *http.Request) {
	resp := &ListSectorsResponse{
		Success: true,
		Data:    types.TargetSectors,
		Message: "Successfully listed target sectors",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

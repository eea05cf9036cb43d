package main

import (
	"errors"
	"net/http"

	"github.com/econlab/gaming_impact/internal/impact"
	"github.com/econlab/gaming_impact/internal/response"
)

type CreateImpactResponse = response.APIResponse[*impact.Result]

func (app *application) handleCreateImpact(w http.ResponseWriter, r *http.Request) {
	var query impact.Query
	if err := readJSON(w, r, &query); err != nil {
		return
	}

	result, err := app.engine.Decompose(r.Context(), query)
	if err != nil {
		var notFound *impact.StateNotFoundError
		var ambiguous *impact.AmbiguousInputError
		var noData *impact.NoDataError

		switch {
		case errors.Is(err, impact.ErrInvalidInput):
			writeJSONError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &notFound):
			writeJSONErrorWithSuggestions(w, http.StatusNotFound, err.Error(), notFound.Suggestions)
		case errors.As(err, &ambiguous):
			writeJSONErrorWithSuggestions(w, http.StatusConflict, err.Error(), ambiguous.Matches)
		case errors.As(err, &noData):
			writeJSONError(w, http.StatusNotFound, err.Error())
		default:
			writeJSONError(w, http.StatusInternalServerError, "failed to compute impact: "+err.Error())
		}
		return
	}

	resp := &CreateImpactResponse{
		Success: true,
		Data:    result,
		Message: "Successfully computed economic impact",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

package chi

import (
	"errors"
	"net/http"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
)

type dispatchResponse struct {
	Stats  dispatch.Stats `json:"stats"`
	Errors string         `json:"errors,omitempty"`
}

/* postDispatch runs one pass on demand.
 * Per-event errors do not fail the request, they are reported next to the stats.
 * A pass that could not list anything is a server error.
 */
func postDispatch(d dispatch.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := d.DispatchPending(r.Context())
		if errors.Is(err, dispatch.ErrPassInProgress) {
			writeError(w, err)
			return
		}
		if err != nil && stats.Claimed == 0 {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		result := dispatchResponse{Stats: stats}
		if err != nil {
			result.Errors = err.Error()
		}
		writeJSON(w, http.StatusOK, result)
	})
}

package transport

import (
	"net/http"

	"github.com/buildestate/backend/constant"
	utilsContext "github.com/buildestate/backend/utils/context"
	"github.com/buildestate/backend/utils/errors"
)

// adminOnly guards an endpoint behind the admin role set by AuthMiddleware.
func adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !utilsContext.IsAdmin(r.Context()) {
			writeError(w, errors.SetCustomError(constant.ErrForbidden))
			return
		}
		next(w, r)
	}
}

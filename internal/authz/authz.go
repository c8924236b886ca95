// Package authz holds the single ownership predicate every mutating
// handler funnels through.
package authz

import "github.com/garagehub/garagehub-api/internal/httperr"

// RequireOwner compares the acting identity against a stored owner
// reference. A zero actor means the request never authenticated.
func RequireOwner(actorID, ownerID uint, denied string) error {
	if actorID == 0 {
		return httperr.ErrUnauthorized("Unauthorized request")
	}
	if actorID != ownerID {
		return httperr.ErrForbidden(denied)
	}
	return nil
}

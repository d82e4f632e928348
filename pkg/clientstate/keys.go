package clientstate

import (
	"context"
	"errors"
	"log"
)

// Storage key layout. One global slot for the active identity, per-identity
// slots for feature state, one slot for the last selected project.
const (
	CurrentUserKey     = "rlc-current-user"
	CoachStatePrefix   = "rlc-aicoach-state"
	ReportStatePrefix  = "rlc-reportwriter-state"
	SelectedProjectKey = "selectedProjectId"
	GuestNamespace     = "guest"
)

// NamespaceFor derives the per-identity storage namespace. An empty email
// (no active identity) maps to the guest namespace.
func NamespaceFor(email string) string {
	if email == "" {
		return GuestNamespace
	}
	return email
}

// FeatureKey joins a feature prefix with an identity namespace.
func FeatureKey(prefix, namespace string) string {
	return prefix + "-" + namespace
}

// SelectedProject returns the last chosen project id, or "" when none is
// stored. Storage failures degrade to "no selection".
func SelectedProject(ctx context.Context, storage Storage) string {
	raw, err := storage.Get(ctx, SelectedProjectKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[clientstate] read %s failed: %v", SelectedProjectKey, err)
		}
		return ""
	}
	return string(raw)
}

// SetSelectedProject remembers the chosen project id; an empty id clears the
// slot.
func SetSelectedProject(ctx context.Context, storage Storage, projectId string) {
	var err error
	if projectId == "" {
		err = storage.Delete(ctx, SelectedProjectKey)
	} else {
		err = storage.Set(ctx, SelectedProjectKey, []byte(projectId))
	}
	if err != nil {
		log.Printf("[clientstate] write %s failed: %v", SelectedProjectKey, err)
	}
}

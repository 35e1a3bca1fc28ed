package models

// Activity is one extracurricular offering. Name is the registry key:
// clients address activities by the object key in GET /activities, so it
// is not repeated inside the serialized record.
//
// MaxParticipants is advisory. The registry stores and serves it but never
// compares it against the roster length.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HasParticipant reports whether email is on this activity's roster.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so store snapshots cannot alias live roster slices.
func (a *Activity) Clone() *Activity {
	copied := *a
	copied.Participants = make([]string, len(a.Participants))
	copy(copied.Participants, a.Participants)
	return &copied
}

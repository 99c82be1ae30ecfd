package models

// Submitter is the acting user of an upload request.
//
// The identity system owns submitter records; this service only reads them.
// An anonymous request is represented by the zero value (Authenticated is
// false and ID is 0).
type Submitter struct {
	// ID is the identity-system user id. Zero for anonymous requests.
	ID int64 `json:"id"`

	// Login is informational and only used for logging.
	Login string `json:"login,omitempty"`

	// Authenticated reports whether the request carried a valid bearer token.
	Authenticated bool `json:"authenticated"`

	// Blocked is the block/suspension flag set by moderators.
	Blocked bool `json:"blocked"`
}

// Anonymous returns the submitter used for requests without credentials.
func Anonymous() Submitter {
	return Submitter{}
}

// TableName returns the name of the database table
// associated with the Submitter model.
func (s Submitter) TableName() string {
	return "submitters"
}

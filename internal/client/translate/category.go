package translate

import "github.com/dmitrijs2005/clubauth/internal/client/models"

// Category classifies a submission failure.
type Category int

const (
	Unknown Category = iota
	InvalidCredentials
	NotRegistered
	AlreadyRegistered
	WeakSecret
	RateLimited
	NetworkUnavailable
	AccountDisabled
	InvalidFormat
)

var categoryNames = map[Category]string{
	Unknown:            "Unknown",
	InvalidCredentials: "InvalidCredentials",
	NotRegistered:      "NotRegistered",
	AlreadyRegistered:  "AlreadyRegistered",
	WeakSecret:         "WeakSecret",
	RateLimited:        "RateLimited",
	NetworkUnavailable: "NetworkUnavailable",
	AccountDisabled:    "AccountDisabled",
	InvalidFormat:      "InvalidFormat",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "Unknown"
}

// Failure is a translated submission failure. It implements error; Error
// returns the user-facing message.
type Failure struct {
	Screen   models.ScreenKind
	Code     string
	Category Category
	Message  string
}

func (f Failure) Error() string {
	return f.Message
}

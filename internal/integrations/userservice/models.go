package userservice

// UserProfile is the subset of the user record the booking service
// denormalizes onto booking rows for the admin's contact view.
type UserProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

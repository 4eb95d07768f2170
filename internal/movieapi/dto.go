package movieapi

// MovieDTO is the wire form of a movie record
type MovieDTO struct {
	ID     string `json:"_id,omitempty"`
	Title  string `json:"title"`
	Year   int    `json:"year"`
	Poster string `json:"poster"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /auth/login
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserDTO is the wire form of the authenticated user
type UserDTO struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// ErrorResponse is the body the API sends with non-2xx statuses
type ErrorResponse struct {
	Message string `json:"message"`
}

package supabase

// Access carries the per-request credentials for store calls.
// Elevated selects the service-role key, which bypasses row-level
// security for trusted server-side reads and writes.
type Access struct {
	Token    string
	Elevated bool
}

// Anonymous is the zero-credential access used for unauthenticated calls.
var Anonymous = Access{}

// WithToken builds an Access scoped to a user's bearer token.
func WithToken(token string) Access {
	return Access{Token: token}
}

// Elevated builds an Access that requests the service-role key.
func Elevated() Access {
	return Access{Elevated: true}
}

// User is the GoTrue representation of an authenticated account.
type User struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	EmailConfirmedAt *string `json:"email_confirmed_at"`
}

// Session holds the token pair returned by a password grant.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

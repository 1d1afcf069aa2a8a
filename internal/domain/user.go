package domain

// User is a frozen aggregate representing a system user. It is constructible
// only through NewUser, which validates every field.
type User struct {
	id               ID
	username         Username
	email            Email
	hashedPassword   AnyString
	createdTimestamp Timestamp
	confirmedEmail   Boolean
	refreshTokens    []string
}

// UserFields carries the raw input for NewUser. The password is hashed before
// entity construction; the plain text never reaches this layer.
type UserFields struct {
	ID               any
	Username         any
	Email            any
	HashedPassword   any
	CreatedTimestamp any
	ConfirmedEmail   any
	RefreshTokens    []string
}

// NewUser validates f and constructs the aggregate. It short-circuits on the
// first failure, checking the own id first, then username, email,
// hashedPassword, createdTimestamp and confirmedEmail.
func NewUser(f UserFields) (*User, error) {
	id, err := NewID(f.ID)
	if err != nil {
		return nil, err
	}

	username, err := NewUsername(f.Username)
	if err != nil {
		return nil, err
	}

	email, err := NewEmail(f.Email)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := NewAnyString(f.HashedPassword)
	if err != nil {
		return nil, AsParam(err, "hashedPassword")
	}

	createdTimestamp, err := NewTimestamp(f.CreatedTimestamp)
	if err != nil {
		return nil, AsParam(err, "createdTimestamp")
	}

	confirmedEmail, err := NewBoolean(f.ConfirmedEmail)
	if err != nil {
		return nil, AsParam(err, "confirmedEmail")
	}

	tokens := make([]string, len(f.RefreshTokens))
	copy(tokens, f.RefreshTokens)

	return &User{
		id:               id,
		username:         username,
		email:            email,
		hashedPassword:   hashedPassword,
		createdTimestamp: createdTimestamp,
		confirmedEmail:   confirmedEmail,
		refreshTokens:    tokens,
	}, nil
}

func (u *User) ID() string              { return u.id.String() }
func (u *User) Username() string        { return u.username.String() }
func (u *User) Email() string           { return u.email.String() }
func (u *User) HashedPassword() string  { return u.hashedPassword.String() }
func (u *User) CreatedTimestamp() int64 { return u.createdTimestamp.Millis() }
func (u *User) ConfirmedEmail() bool    { return u.confirmedEmail.Bool() }

// RefreshTokens returns a copy of the outstanding refresh tokens.
func (u *User) RefreshTokens() []string {
	tokens := make([]string, len(u.refreshTokens))
	copy(tokens, u.refreshTokens)
	return tokens
}

// HasRefreshToken reports whether token is outstanding for this user.
func (u *User) HasRefreshToken(token string) bool {
	for _, t := range u.refreshTokens {
		if t == token {
			return true
		}
	}
	return false
}

// UserData is the plain-data projection of a User, used as the persistence
// write payload. API responses strip the sensitive fields at the dto layer.
type UserData struct {
	ID               string   `json:"id"`
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	HashedPassword   string   `json:"hashedPassword"`
	CreatedTimestamp int64    `json:"createdTimestamp"`
	ConfirmedEmail   bool     `json:"confirmedEmail"`
	RefreshTokens    []string `json:"refreshTokens"`
}

// Data returns the plain-data projection.
func (u *User) Data() UserData {
	return UserData{
		ID:               u.ID(),
		Username:         u.Username(),
		Email:            u.Email(),
		HashedPassword:   u.HashedPassword(),
		CreatedTimestamp: u.CreatedTimestamp(),
		ConfirmedEmail:   u.ConfirmedEmail(),
		RefreshTokens:    u.RefreshTokens(),
	}
}

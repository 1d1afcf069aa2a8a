package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/metrics"
)

// UserUseCase handles user signup, authentication and profile management.
type UserUseCase struct {
	userRepo   UserRepository
	idGen      IDGenerator
	tokens     TokenManager
	mailer     Mailer
	confirm    ConfirmationTokenStore
	confirmTTL time.Duration
	logger     zerolog.Logger
	metrics    *metrics.Metrics
	bcryptCost int
}

// NewUserUseCase creates a new UserUseCase. A non-positive confirmTTL falls
// back to ConfirmationTokenTTL. m may be nil.
func NewUserUseCase(userRepo UserRepository, idGen IDGenerator, tokens TokenManager, mailer Mailer, confirm ConfirmationTokenStore, confirmTTL time.Duration, logger zerolog.Logger, m *metrics.Metrics) *UserUseCase {
	if confirmTTL <= 0 {
		confirmTTL = ConfirmationTokenTTL
	}
	return &UserUseCase{
		userRepo:   userRepo,
		idGen:      idGen,
		tokens:     tokens,
		mailer:     mailer,
		confirm:    confirm,
		confirmTTL: confirmTTL,
		logger:     logger,
		metrics:    m,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// SignUpInput represents input for creating a user.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// SignUp validates the password, hashes it and creates the user with an
// unconfirmed email. A confirmation token is stored and mailed; a mail
// delivery failure is logged but does not fail the signup.
func (uc *UserUseCase) SignUp(ctx context.Context, input SignUpInput) (*domain.User, error) {
	if _, err := domain.NewPassword(input.Password); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.ConflictError{Prop: "email", Value: input.Email}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	user, err := domain.NewUser(domain.UserFields{
		ID:               uc.idGen.Generate(),
		Username:         input.Username,
		Email:            input.Email,
		HashedPassword:   string(hashed),
		CreatedTimestamp: time.Now().UTC().UnixMilli(),
		ConfirmedEmail:   false,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Set(ctx, user); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.UsersRegistered.Inc()
	}

	uc.sendConfirmation(ctx, user)

	return user, nil
}

func (uc *UserUseCase) sendConfirmation(ctx context.Context, user *domain.User) {
	token := uc.idGen.Generate()

	if err := uc.confirm.Save(ctx, token, user.ID(), uc.confirmTTL); err != nil {
		uc.logger.Warn().Err(err).Str("user_id", user.ID()).
			Msg("failed to store email confirmation token")
		return
	}

	if err := uc.mailer.SendEmailConfirmation(ctx, user.Email(), token); err != nil {
		uc.logger.Warn().Err(err).Str("user_id", user.ID()).
			Msg("failed to send confirmation email")
	}
}

// ResendConfirmation issues a fresh confirmation token for an unconfirmed
// user.
func (uc *UserUseCase) ResendConfirmation(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.ConfirmedEmail() {
		return &domain.ConflictError{Prop: "confirmedEmail", Value: "true"}
	}

	token := uc.idGen.Generate()
	if err := uc.confirm.Save(ctx, token, user.ID(), uc.confirmTTL); err != nil {
		return err
	}

	return uc.mailer.SendEmailConfirmation(ctx, user.Email(), token)
}

// ConfirmEmail consumes the confirmation token and marks the user's email as
// confirmed.
func (uc *UserUseCase) ConfirmEmail(ctx context.Context, token string) error {
	userID, err := uc.confirm.Consume(ctx, token)
	if err != nil {
		return err
	}

	return uc.userRepo.UpdateConfirmedEmail(ctx, userID, true)
}

// TokenPair is the result of a successful authentication.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Login verifies the credentials and issues a fresh token pair. The refresh
// token is appended to the user's outstanding set. Wrong email and wrong
// password are indistinguishable to the caller.
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword()), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := uc.issueTokens(ctx, user, user.RefreshTokens())
	if err != nil {
		return nil, nil, err
	}

	if uc.metrics != nil {
		uc.metrics.Logins.Inc()
	}

	return user, pair, nil
}

// Refresh rotates a refresh token: the presented token must be outstanding
// for the user it names, and is replaced by a new one.
func (uc *UserUseCase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := uc.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.HasRefreshToken(refreshToken) {
		return nil, domain.ErrInvalidCredentials
	}

	kept := make([]string, 0, len(user.RefreshTokens()))
	for _, t := range user.RefreshTokens() {
		if t != refreshToken {
			kept = append(kept, t)
		}
	}

	return uc.issueTokens(ctx, user, kept)
}

func (uc *UserUseCase) issueTokens(ctx context.Context, user *domain.User, outstanding []string) (*TokenPair, error) {
	access, err := uc.tokens.GenerateAccess(user.ID(), user.Email())
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	refresh, err := uc.tokens.GenerateRefresh(user.ID())
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	outstanding = append(outstanding, refresh)
	if err := uc.userRepo.UpdateRefreshTokens(ctx, user.ID(), outstanding); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout invalidates the presented refresh token. An unknown token is a
// no-op.
func (uc *UserUseCase) Logout(ctx context.Context, userID, refreshToken string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.HasRefreshToken(refreshToken) {
		return nil
	}

	kept := make([]string, 0, len(user.RefreshTokens()))
	for _, t := range user.RefreshTokens() {
		if t != refreshToken {
			kept = append(kept, t)
		}
	}

	return uc.userRepo.UpdateRefreshTokens(ctx, userID, kept)
}

// GetUser retrieves a user by id.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// UpdateUserInput represents a partial update of a user profile.
type UpdateUserInput struct {
	ID       string
	Username domain.Optional[string]
	Password domain.Optional[string]
}

// UpdateUser re-validates the merged field set and persists a new entity
// instance. A password change re-hashes; refresh tokens survive untouched.
func (uc *UserUseCase) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	current, err := uc.userRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	fields := domain.UserFields{
		ID:               current.ID(),
		Username:         current.Username(),
		Email:            current.Email(),
		HashedPassword:   current.HashedPassword(),
		CreatedTimestamp: current.CreatedTimestamp(),
		ConfirmedEmail:   current.ConfirmedEmail(),
		RefreshTokens:    current.RefreshTokens(),
	}

	if input.Username.IsSet() {
		if input.Username.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "username"}
		}
		fields.Username = input.Username.Value()
	}

	if input.Password.IsSet() {
		if input.Password.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "password"}
		}
		if _, err := domain.NewPassword(input.Password.Value()); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password.Value()), uc.bcryptCost)
		if err != nil {
			return nil, domain.NewInternalError(err)
		}
		fields.HashedPassword = string(hashed)
	}

	updated, err := domain.NewUser(fields)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

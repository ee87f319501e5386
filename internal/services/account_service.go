package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"financas/internal/core"
	"financas/internal/log"
)

// RegisterInput is the registration form.
type RegisterInput struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=6,max=72"`
}

// AccountService registers users and checks their credentials.
type AccountService struct {
	store    AccountStore
	validate *validator.Validate
	cost     int
	logger   *log.Logger
}

type AccountOption func(*AccountService)

// WithHashCost sets the bcrypt cost; tests use bcrypt.MinCost.
func WithHashCost(cost int) AccountOption {
	return func(s *AccountService) { s.cost = cost }
}

// WithAccountLogger replaces the process default logger.
func WithAccountLogger(l *log.Logger) AccountOption {
	return func(s *AccountService) {
		if l != nil {
			s.logger = l.WithComponent(log.ComponentAccount)
		}
	}
}

func NewAccountService(store AccountStore, opts ...AccountOption) *AccountService {
	s := &AccountService{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cost:     bcrypt.DefaultCost,
		logger:   log.FromContext(context.Background()).WithComponent(log.ComponentAccount),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the form, hashes the password and stores the account.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if err := s.validate.StructCtx(ctx, in); err != nil {
		return 0, validationFailure(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return 0, fmt.Errorf("%w: password must have at most 72 bytes", core.ErrValidation)
	}
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.store.CreateAccount(ctx, in.Name, in.Email, string(hash))
	if err != nil {
		return 0, fmt.Errorf("register account: %w", err)
	}

	s.logger.InfoContext(ctx, "Account registered",
		log.FieldOwnerID, id,
		log.FieldOperation, log.OpRegister)
	return id, nil
}

// Login returns the account when email and password match. The
// returned account never carries the password hash.
func (s *AccountService) Login(ctx context.Context, email, password string) (*core.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, core.ErrInvalidCredentials
	}

	acc, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if acc == nil {
		s.logger.DebugContext(ctx, "Login for unknown email", log.FieldOperation, log.OpLogin)
		return nil, core.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password)); err != nil {
		s.logger.DebugContext(ctx, "Login with wrong password",
			log.FieldOwnerID, acc.ID,
			log.FieldOperation, log.OpLogin)
		return nil, core.ErrInvalidCredentials
	}

	acc.Password = ""
	return acc, nil
}

// Accounts lists registered accounts without their password hashes.
func (s *AccountService) Accounts(ctx context.Context) ([]core.Account, error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	for i := range accounts {
		accounts[i].Password = ""
	}
	return accounts, nil
}

// validationFailure turns validator errors into an ErrValidation with a
// readable field list.
func validationFailure(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", core.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have at least %s characters", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must have at most %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", core.ErrValidation, strings.Join(msgs, "; "))
}

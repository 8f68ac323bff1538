package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/storekit/catalog-api/internal/core/domain"
	"github.com/storekit/catalog-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.FullName != nil {
		u.FullName = *input.FullName
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubTokenStore struct {
	revoked map[string]bool
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{revoked: make(map[string]bool)}
}

func (s *stubTokenStore) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	s.revoked[tokenID] = true
	return nil
}

func (s *stubTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}

func newTestAuthService() (*AuthService, *stubUserRepo, *stubTokenStore) {
	repo := newStubUserRepo()
	tokens := newStubTokenStore()
	return NewAuthService(repo, tokens, "secret", time.Hour), repo, tokens
}

func register(t *testing.T, svc *AuthService, username, password, role string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test User",
		Password: password,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _ := newTestAuthService()

	user := register(t, svc, "alice", "pass123", "")
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected default role customer, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new user to be active")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Password: "pass"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass", Role: "superuser"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService()

	register(t, svc, "bob", "pass", "")
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Email:    "other@example.com",
		Password: "pass2",
	}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_LoginThenValidate_ReturnsIdentity(t *testing.T) {
	svc, _, _ := newTestAuthService()

	created := register(t, svc, "carol", "s3cret", domain.RoleAdmin)

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := svc.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != created.ID {
		t.Fatalf("expected user id %s, got %s", created.ID, claims.UserID)
	}
	if claims.Username != "carol" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	register(t, svc, "dave", "goodpass", "")
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService()

	// Unknown users surface the same error as a wrong password so the
	// response does not reveal which usernames exist.
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	svc, _, _ := newTestAuthService()

	past := time.Now().Add(-time.Hour)
	claims := tokenClaims{
		Username: "alice",
		Role:     domain.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			ID:        "jti_1",
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), expired); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	svc, _, _ := newTestAuthService()

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), forged); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_ValidateToken_MissingExpiry(t *testing.T) {
	svc, _, _ := newTestAuthService()

	// Correctly signed with the service secret but carrying no exp claim.
	// Such a token would never expire, so it must be rejected outright.
	claims := tokenClaims{
		Username: "alice",
		Role:     domain.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "user_1",
			ID:       "jti_1",
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	eternal, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), eternal); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.ValidateToken(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, tokens := newTestAuthService()

	register(t, svc, "erin", "pass", "")
	token, _, err := svc.Login(context.Background(), "erin", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(tokens.revoked) != 1 {
		t.Fatalf("expected one revoked token id, got %d", len(tokens.revoked))
	}

	if _, err := svc.ValidateToken(context.Background(), token); !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}

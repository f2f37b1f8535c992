package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/laundrymart/laundry-backend/internal/core/domain"
	"github.com/laundrymart/laundry-backend/internal/core/ports"
)

type stubUserRepo struct {
	users     map[string]*domain.User
	nextID    int
	updateErr error
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

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrDuplicateUser
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	if _, ok := r.users[user.Username]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.Username] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

// stubHasher is deterministic and cheap; bcrypt itself is covered by the
// crypto package tests.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (stubHasher) Verify(password, digest string) bool  { return digest == "hashed:"+password }

type stubIssuer struct{}

func (stubIssuer) Issue(username, role string) (string, error) {
	return "token:" + username + ":" + role, nil
}

func newTestService() (*AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	return NewAuthService(repo, stubHasher{}, stubIssuer{}), repo
}

func registerAlice(t *testing.T, svc *AuthService) *domain.User {
	t.Helper()
	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		FullName: "Alice Doe",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newTestService()

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		Phone:    "555-0100",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token != "token:alice:CUSTOMER" {
		t.Fatalf("unexpected token: %s", token)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected default role CUSTOMER, got %s", user.Role)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	// Same username always fails with ErrDuplicateUsername even when the
	// email is unique.
	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "pw1234",
	})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "pw1234",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_ExplicitRole(t *testing.T) {
	svc, _ := newTestService()

	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "root",
		Email:    "root@example.com",
		Password: "pw1234",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN role, got %s", user.Role)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	token, user, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Username != "alice" || user.FullName != "Alice Doe" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownUserIndistinguishable(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	_, _, wrongPass := svc.Login(context.Background(), "alice", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("errors must be identical: %q vs %q", wrongPass, unknown)
	}
}

func TestAuthService_UpdateProfile_PartialFields(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	updated, err := svc.UpdateProfile(context.Background(), "alice", ports.ProfileUpdate{
		Phone:   "  555-0199  ",
		Address: "1 Main St",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Phone != "555-0199" {
		t.Fatalf("expected trimmed phone, got %q", updated.Phone)
	}
	if updated.Address != "1 Main St" {
		t.Fatalf("unexpected address: %q", updated.Address)
	}
	if updated.FullName != "Alice Doe" {
		t.Fatalf("absent field must not change, got %q", updated.FullName)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("absent email must not change, got %q", updated.Email)
	}
}

func TestAuthService_UpdateProfile_WhitespaceIsNoop(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	updated, err := svc.UpdateProfile(context.Background(), "alice", ports.ProfileUpdate{
		FullName: "   ",
		Email:    "\t",
		Password: " ",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FullName != "Alice Doe" || updated.Email != "alice@example.com" {
		t.Fatalf("whitespace fields must be no-ops: %+v", updated)
	}
	if updated.PasswordHash != "hashed:s3cret" {
		t.Fatalf("password must be unchanged, got %q", updated.PasswordHash)
	}
}

func TestAuthService_UpdateProfile_EmailInUse(t *testing.T) {
	svc, repo := newTestService()
	registerAlice(t, svc)
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "pw1234",
	}); err != nil {
		t.Fatalf("register bob: %v", err)
	}

	_, err := svc.UpdateProfile(context.Background(), "alice", ports.ProfileUpdate{
		Email: "bob@example.com",
	})
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}

	// The stored record must be untouched.
	stored, _ := repo.FindByUsername(context.Background(), "alice")
	if stored.Email != "alice@example.com" {
		t.Fatalf("record changed despite failed update: %q", stored.Email)
	}
}

func TestAuthService_UpdateProfile_SameEmailIsNoop(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	updated, err := svc.UpdateProfile(context.Background(), "alice", ports.ProfileUpdate{
		Email: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %q", updated.Email)
	}
}

func TestAuthService_UpdateProfile_RehashesPassword(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	updated, err := svc.UpdateProfile(context.Background(), "alice", ports.ProfileUpdate{
		Password: "newpass",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash != "hashed:newpass" {
		t.Fatalf("expected re-hashed password, got %q", updated.PasswordHash)
	}

	if _, _, err := svc.Login(context.Background(), "alice", "newpass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password must be rejected, got %v", err)
	}
}

func TestAuthService_UpdateProfile_UserGone(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateProfile(context.Background(), "ghost", ports.ProfileUpdate{Phone: "1"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_UpdateProfile_PersistenceFailureWrapped(t *testing.T) {
	svc, repo := newTestService()
	registerAlice(t, svc)
	repo.updateErr = errors.New("connection reset")

	_, err := svc.UpdateProfile(context.Background(), "alice", ports.ProfileUpdate{Phone: "555"})
	if !errors.Is(err, domain.ErrUpdateFailed) {
		t.Fatalf("expected ErrUpdateFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("underlying message missing: %v", err)
	}
}

func TestAuthService_GetProfile(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)

	user, err := svc.GetProfile(context.Background(), "alice")
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetProfile(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ListUsers(t *testing.T) {
	svc, _ := newTestService()
	registerAlice(t, svc)
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "pw1234",
	}); err != nil {
		t.Fatalf("register bob: %v", err)
	}

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

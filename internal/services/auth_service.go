package services

import (
	"errors"
	"strings"

	"github.com/gipis/website/internal/config"
	"github.com/gipis/website/internal/models"
	"github.com/gipis/website/internal/store"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the single failure for login: unknown email and
// wrong password are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	config *config.Config
	store  *store.Store
}

func NewAuthService(cfg *config.Config, st *store.Store) *AuthService {
	return &AuthService{config: cfg, store: st}
}

// SetPassword replaces the member's stored hash with a bcrypt hash of the
// plaintext. Any non-empty string is accepted; there is no strength check
// (known hardening gap, carried from the original system).
func (s *AuthService) SetPassword(member *models.Member, password string) error {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(bytes)
	member.PasswordHash = &hash
	return nil
}

// CheckPassword verifies the plaintext against the member's stored hash.
// A member without a stored hash rejects every password.
func (s *AuthService) CheckPassword(member *models.Member, password string) bool {
	if member.PasswordHash == nil || *member.PasswordHash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(*member.PasswordHash), []byte(password))
	return err == nil
}

// Login authenticates by exact email match and opens a session. The returned
// token is an opaque identifier; it carries no claims.
func (s *AuthService) Login(email, password string) (*models.Member, string, error) {
	member, err := s.store.MemberByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !s.CheckPassword(member, password) {
		return nil, "", ErrInvalidCredentials
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	session := &models.Session{
		Token:    token,
		MemberID: member.ID,
	}
	if err := s.store.CreateSession(session); err != nil {
		return nil, "", err
	}

	return member, token, nil
}

// Logout invalidates the session identity.
func (s *AuthService) Logout(token string) error {
	return s.store.DeleteSession(token)
}

// LoadSessionUser resolves a session token back to a member. An unknown token
// or a token whose member no longer exists resolves to anonymous (nil member,
// nil error); the stale session row is removed on the way out.
func (s *AuthService) LoadSessionUser(token string) (*models.Member, error) {
	session, err := s.store.SessionByToken(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	member, err := s.store.MemberByID(session.MemberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = s.store.DeleteSession(token)
			return nil, nil
		}
		return nil, err
	}

	return member, nil
}

// ProfileUpdate carries the self-service editable fields. Empty fields are
// left untouched.
type ProfileUpdate struct {
	Name        string `json:"name"`
	Degree      string `json:"degree"`
	Position    string `json:"position"`
	Bio         string `json:"bio"`
	LinkedIn    string `json:"linkedin"`
	NewPassword string `json:"new_password"`
}

// EditProfile applies the update to the member bound to the session. The
// target record is never taken from the request, so a member cannot edit
// anyone else. All changes persist as a single save.
func (s *AuthService) EditProfile(member *models.Member, update ProfileUpdate) error {
	if update.Name != "" {
		member.Name = update.Name
	}
	if update.Degree != "" {
		member.Degree = update.Degree
	}
	if update.Position != "" {
		member.Position = update.Position
	}
	if update.Bio != "" {
		member.Bio = update.Bio
	}
	if update.LinkedIn != "" {
		member.LinkedIn = update.LinkedIn
	}
	if update.NewPassword != "" {
		if err := s.SetPassword(member, update.NewPassword); err != nil {
			return err
		}
	}
	return s.store.SaveMember(member)
}

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/store"
)

var (
	ErrEmailNotAllowed = errors.New("email is not on the admin list")
	ErrLinkInvalid     = errors.New("login link is invalid or expired")
)

// TokenStore is the persistence the login-link flow needs
type TokenStore interface {
	InsertLoginToken(ctx context.Context, token store.LoginToken) error
	PendingLoginToken(ctx context.Context, email string) (*store.LoginToken, error)
	DeleteLoginToken(ctx context.Context, id uuid.UUID) error
}

// LinkMailer delivers a login link to an address
type LinkMailer interface {
	SendLoginLink(ctx context.Context, to, link string) error
}

// LoginLinkService implements email-link authentication for the admin
// editor: a random single-use code is hashed into the store and mailed as a
// link; redeeming a valid code yields a session token.
type LoginLinkService struct {
	tokens      TokenStore
	mailer      LinkMailer
	jwt         *JWTService
	baseURL     string
	linkTTL     time.Duration
	adminEmails []string
}

func NewLoginLinkService(tokens TokenStore, mailer LinkMailer, jwt *JWTService, baseURL string, linkTTL time.Duration, adminEmails []string) *LoginLinkService {
	return &LoginLinkService{
		tokens:      tokens,
		mailer:      mailer,
		jwt:         jwt,
		baseURL:     strings.TrimRight(baseURL, "/"),
		linkTTL:     linkTTL,
		adminEmails: adminEmails,
	}
}

// RequestLink generates a login code for an allow-listed address and mails
// the link. The plain code never touches the store.
func (s *LoginLinkService) RequestLink(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !s.allowed(email) {
		return ErrEmailNotAllowed
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate login code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash login code: %w", err)
	}

	token := store.LoginToken{
		ID:        uuid.New(),
		Email:     email,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(s.linkTTL),
	}
	if err := s.tokens.InsertLoginToken(ctx, token); err != nil {
		return fmt.Errorf("store login token: %w", err)
	}

	link := fmt.Sprintf("%s/admin/login?email=%s&code=%s",
		s.baseURL, url.QueryEscape(email), url.QueryEscape(code))
	if err := s.mailer.SendLoginLink(ctx, email, link); err != nil {
		return fmt.Errorf("send login link: %w", err)
	}
	return nil
}

// Redeem validates a code against the pending token and, on success, burns
// the token and returns a session JWT
func (s *LoginLinkService) Redeem(ctx context.Context, email, code string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	token, err := s.tokens.PendingLoginToken(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrLinkInvalid
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(token.CodeHash), []byte(code)); err != nil {
		return "", ErrLinkInvalid
	}

	if err := s.tokens.DeleteLoginToken(ctx, token.ID); err != nil {
		return "", err
	}

	return s.jwt.GenerateToken(email)
}

func (s *LoginLinkService) allowed(email string) bool {
	for _, e := range s.adminEmails {
		if e == email {
			return true
		}
	}
	return false
}

func generateCode() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

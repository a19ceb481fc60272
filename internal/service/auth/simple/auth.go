package service_simple_auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Token = string

var (
	ErrInternal  = errors.New("internal error")
	ErrWrongCode = errors.New("wrong code")
)

const (
	defaultTokenTTL = 10 * time.Minute
	defaultSecret   = "shared"

	activeSession = "active"
)

type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
}

type Service struct {
	secret       string
	sessionCache SessionCache
	ttl          time.Duration
}

func New(
	secret string,
	sessionCache SessionCache,
	ttl time.Duration,
) *Service {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	if secret == "" {
		secret = defaultSecret
	}

	return &Service{
		secret:       secret,
		sessionCache: sessionCache,
		ttl:          ttl,
	}
}

// Auth trades the shared admin code for a short-lived session token.
func (s *Service) Auth(code string) (Token, error) {
	if code != s.secret {
		return "", ErrWrongCode
	}

	t := s.genToken()
	if err := s.sessionCache.Set(t, activeSession, s.ttl); err != nil {
		return "", errors.Join(ErrInternal, err)
	}

	return t, nil
}

func (s *Service) IsValid(t Token) (bool, error) {
	v, err := s.sessionCache.Get(t)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}

	return v != "", nil
}

func (s *Service) genToken() Token {
	return uuid.New().String()
}

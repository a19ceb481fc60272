//go:build !integration
// +build !integration

package service_simple_auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type AuthUnitSuite struct {
	suite.Suite
}

type MockSessionCache struct {
	mock.Mock
}

func (m *MockSessionCache) Set(key string, value string, ttl time.Duration) error {
	args := m.Called(key, value, ttl)
	return args.Error(0)
}

func (m *MockSessionCache) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (suite *AuthUnitSuite) TestAuth(t provider.T) {
	t.Parallel()

	t.Run("Should issue a session token for the right code", func(t provider.T) {
		t.Parallel()
		cache := new(MockSessionCache)
		cache.On("Set", mock.AnythingOfType("string"), activeSession, time.Minute).Return(nil).Once()
		service := New("secret", cache, time.Minute)

		token, err := service.Auth("secret")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		cache.AssertExpectations(t)
	})

	t.Run("Should reject a wrong code without touching the cache", func(t provider.T) {
		t.Parallel()
		cache := new(MockSessionCache)
		service := New("secret", cache, time.Minute)

		_, err := service.Auth("guess")

		assert.ErrorIs(t, err, ErrWrongCode)
		cache.AssertExpectations(t)
	})

	t.Run("Should wrap cache failure as internal", func(t provider.T) {
		t.Parallel()
		cache := new(MockSessionCache)
		cache.On("Set", mock.AnythingOfType("string"), activeSession, mock.AnythingOfType("time.Duration")).Return(errors.New("down")).Once()
		service := New("secret", cache, time.Minute)

		_, err := service.Auth("secret")

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (suite *AuthUnitSuite) TestIsValid(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		cached      string
		cacheErr    error
		expected    bool
		expectError bool
	}{
		{
			name:     "Should accept a live session",
			cached:   activeSession,
			expected: true,
		},
		{
			name:     "Should reject an expired session",
			cached:   "",
			expected: false,
		},
		{
			name:        "Should wrap cache failure as internal",
			cacheErr:    errors.New("down"),
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			cache := new(MockSessionCache)
			cache.On("Get", "token").Return(tc.cached, tc.cacheErr).Once()
			service := New("secret", cache, time.Minute)

			ok, err := service.IsValid("token")

			if tc.expectError {
				assert.ErrorIs(t, err, ErrInternal)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, ok)
			}
			cache.AssertExpectations(t)
		})
	}
}

func TestAuthUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(AuthUnitSuite))
}

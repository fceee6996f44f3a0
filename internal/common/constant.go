// Package common contains shared constants and sentinel errors used across
// TodoKeeper components.
package common

// AuthTokenHeaderName is the HTTP header that carries the signed access token
// on authenticated requests and on registration/login responses.
const AuthTokenHeaderName = "x-auth"

// TokenScopeAuth is the only access scope issued today.
const TokenScopeAuth = "auth"

// MinPasswordLength is the minimum accepted password length, enforced before
// any hashing takes place.
const MinPasswordLength = 6

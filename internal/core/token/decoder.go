// Package token decodes bearer credentials into claims. Decoding only — the
// gateway never verifies signatures; that is the commerce backend's job, and
// the decoded role is used purely for UX routing, never as a security
// boundary.
package token

import (
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
)

const rolePrefix = "ROLE_"

// Decode parses a compact JWT into claims without verifying its signature.
// Malformed input returns domain.ErrCredentialDecode; the caller must purge
// the stored credential and treat the session as anonymous.
func Decode(credential string) (domain.Claims, error) {
	raw := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, raw); err != nil {
		return domain.Claims{}, domain.ErrCredentialDecode
	}

	subject, _ := raw.GetSubject()

	return domain.Claims{
		ID:    idClaim(raw, subject),
		Email: emailClaim(raw, subject),
		Name:  stringClaim(raw, "name"),
		Role:  roleClaim(raw),
	}, nil
}

// roleClaim takes the first entry of the "roles" list, strips the ROLE_
// prefix and upper-cases the rest. Absent or empty lists default to USER.
func roleClaim(raw jwt.MapClaims) domain.Role {
	list, ok := raw["roles"].([]any)
	if !ok || len(list) == 0 {
		return domain.RoleUser
	}
	first, ok := list[0].(string)
	if !ok || first == "" {
		return domain.RoleUser
	}
	return domain.Role(strings.ToUpper(strings.TrimPrefix(first, rolePrefix)))
}

// emailClaim prefers the subject, falling back to an explicit email claim.
func emailClaim(raw jwt.MapClaims, subject string) string {
	if subject != "" {
		return subject
	}
	return stringClaim(raw, "email")
}

// idClaim prefers an explicit id claim, then a numeric subject, then 0.
func idClaim(raw jwt.MapClaims, subject string) int {
	switch v := raw["id"].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	if n, err := strconv.Atoi(subject); err == nil {
		return n
	}
	return 0
}

func stringClaim(raw jwt.MapClaims, key string) string {
	s, _ := raw[key].(string)
	return s
}

package environment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenMismatch = errors.New("token does not match environment")

// TokenReport describes an access token relative to an environment.
type TokenReport struct {
	Verified      bool       `json:"verified"`
	KeyID         string     `json:"kid,omitempty"`
	Issuer        string     `json:"iss"`
	Subject       string     `json:"sub,omitempty"`
	Audience      []string   `json:"aud"`
	Permissions   []string   `json:"permissions,omitempty"`
	ExpiresAt     *time.Time `json:"exp,omitempty"`
	Expired       bool       `json:"expired"`
	IssuerMatch   bool       `json:"issuer_match"`
	AudienceMatch bool       `json:"audience_match"`
}

// CheckToken parses an RS256 token and compares its issuer and audience with
// cfg. The signature is only verified when key is not nil. Expiry is reported
// but not enforced. On a mismatch the report is returned together with an
// error wrapping ErrTokenMismatch.
func CheckToken(cfg Config, raw string, key KeySource) (*TokenReport, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))

	claims := jwt.MapClaims{}
	var token *jwt.Token
	var err error
	if key == nil {
		token, _, err = jwt.NewParser().ParseUnverified(raw, claims)
		if err == nil && token.Method.Alg() != jwt.SigningMethodRS256.Alg() {
			err = fmt.Errorf("unexpected signing method %s", token.Method.Alg())
		}
	} else {
		token, err = jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			kid, _ := t.Header["kid"].(string)
			return key.PublicKey(kid)
		},
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to parse token: %w", err)
	}

	report := &TokenReport{Verified: key != nil}
	report.KeyID, _ = token.Header["kid"].(string)
	report.Issuer, _ = claims.GetIssuer()
	report.Subject, _ = claims.GetSubject()
	if aud, err := claims.GetAudience(); err == nil {
		report.Audience = aud
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		report.ExpiresAt = &t
		report.Expired = time.Now().After(t)
	}
	if perms, ok := claims["permissions"].([]interface{}); ok {
		for _, p := range perms {
			if s, ok := p.(string); ok {
				report.Permissions = append(report.Permissions, s)
			}
		}
	}

	report.IssuerMatch = report.Issuer == cfg.Auth0.Issuer()
	report.AudienceMatch = slices.Contains(report.Audience, cfg.Auth0.Audience)

	var problems []string
	if !report.IssuerMatch {
		problems = append(problems, fmt.Sprintf("issuer %q, expected %q", report.Issuer, cfg.Auth0.Issuer()))
	}
	if !report.AudienceMatch {
		problems = append(problems, fmt.Sprintf("audience %q does not contain %q", report.Audience, cfg.Auth0.Audience))
	}
	if len(problems) > 0 {
		return report, fmt.Errorf("%w: %s", ErrTokenMismatch, strings.Join(problems, "; "))
	}
	return report, nil
}

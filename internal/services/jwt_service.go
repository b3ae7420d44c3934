package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

// JWTService signs the session token carried in the session cookie.
type JWTService interface {
	GenerateSessionToken(p *models.Principal) (string, error)
	TTL() time.Duration
}

type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret []byte, ttl time.Duration) JWTService {
	return &jwtService{secret: secret, ttl: ttl, now: time.Now}
}

func (j *jwtService) TTL() time.Duration { return j.ttl }

func (j *jwtService) GenerateSessionToken(p *models.Principal) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{
		"iss":  utils.TokenIssuer,
		"sub":  p.SessionID(),
		"role": p.Role.String(),
		"exp":  now.Add(j.ttl).Unix(),
		"iat":  now.Unix(),
		"jti":  uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

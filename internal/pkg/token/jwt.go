package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"backoffice/internal/domain"
)

// Expiry é a validade fixa dos tokens. Não há lista de revogação: a
// expiração é a única mitigação para um token vazado.
const Expiry = 24 * time.Hour

const issuer = "backoffice-api"

// ErrInvalidToken cobre assinatura inválida, algoritmo inesperado, payload malformado e expiração.
var ErrInvalidToken = errors.New("invalid token")

// ErrMissingToken indica que o header Authorization não traz "Bearer <token>".
var ErrMissingToken = errors.New("missing bearer token")

// CustomClaims define as informações do administrador armazenadas no JWT.
type CustomClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Service emite e valida tokens HS256 com o segredo do processo.
type Service struct {
	secretKey []byte
	now       func() time.Time
}

// NewService cria uma nova instância do serviço Token.
func NewService(secretKey string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		now:       time.Now,
	}
}

// WithClock substitui o relógio (usado nos testes de expiração).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// IssueToken cria um novo JWT assinado contendo a identidade do administrador.
func (s *Service) IssueToken(p domain.Principal) (string, error) {
	if strings.TrimSpace(p.ID) == "" {
		return "", errors.New("principal sem id")
	}

	issuedAt := s.now()
	claims := CustomClaims{
		UserID:   p.ID,
		Username: p.Username,
		Email:    p.Email,
		Role:     string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(Expiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    issuer,
			Subject:   p.ID,
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken valida o token e devolve a identidade contida nele.
// Qualquer falha resulta em ErrInvalidToken e em um Principal vazio.
func (s *Service) VerifyToken(tokenString string) (domain.Principal, error) {
	claims := &CustomClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return domain.Principal{}, ErrInvalidToken
	}

	return domain.Principal{
		ID:       claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     domain.AdminRole(claims.Role),
	}, nil
}

// ExtractBearer extrai o token de um header no formato exato "Bearer <token>".
func ExtractBearer(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrMissingToken
	}
	tokenString := header[len(prefix):]
	if tokenString == "" {
		return "", ErrMissingToken
	}
	return tokenString, nil
}

package service

import (
	"errors"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tvhub/internal/config"
	"github.com/tvhub/internal/models"
	"github.com/tvhub/pkg/crypto"
)

var (
	ErrInvalidUsername    = errors.New("username must have at least 3 characters, letters and spaces only")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must have at least 8 characters")
	ErrPasswordTooWeak    = errors.New("password must contain a letter, a digit and a special character")
	ErrEmailTaken         = errors.New("email already taken")
	ErrNametagTaken       = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("wrong password")
	ErrInvalidToken       = errors.New("invalid token")
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z ]{3,}$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	letterRe   = regexp.MustCompile(`[a-zA-Z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
	specialRe  = regexp.MustCompile(`[!@#$%^&*]`)
)

// AuthService handles signup, login and token validation
type AuthService struct {
	users     UserStore
	jwtConfig config.JWTConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtConfig config.JWTConfig) *AuthService {
	return &AuthService{
		users:     users,
		jwtConfig: jwtConfig,
	}
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Avatar   string `json:"avatar"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Session is returned after a successful signup or login
type Session struct {
	Token    string `json:"token"`
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nametag  string `json:"tag"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// JWTClaims represents the JWT claims
type JWTClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Signup validates the request, creates the user and returns a session
func (s *AuthService) Signup(req *SignupRequest) (*Session, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	nametag := models.Nametag(req.Username)
	exists, err = s.users.ExistsByNametag(nametag)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNametagTaken
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Nametag:      nametag,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Avatar:       req.Avatar,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return s.newSession(user)
}

// Login authenticates a user by email and password. A missing user surfaces
// as ErrUserNotFound so the handler can answer 404, a wrong password as
// ErrInvalidCredentials for 401.
func (s *AuthService) Login(req *LoginRequest) (*Session, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(user)
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

func (s *AuthService) newSession(user *models.User) (*Session, error) {
	expiresIn := time.Duration(s.jwtConfig.ExpireHours) * time.Hour

	claims := &JWTClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "tvhub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:    tokenString,
		ID:       user.ID,
		Username: user.Username,
		Nametag:  user.Nametag,
		Email:    user.Email,
		Avatar:   user.Avatar,
	}, nil
}

func validateSignup(req *SignupRequest) error {
	if !usernameRe.MatchString(req.Username) {
		return ErrInvalidUsername
	}
	if !emailRe.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}
	if !letterRe.MatchString(req.Password) || !digitRe.MatchString(req.Password) || !specialRe.MatchString(req.Password) {
		return ErrPasswordTooWeak
	}
	return nil
}

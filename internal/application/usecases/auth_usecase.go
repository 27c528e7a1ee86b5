package usecases

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"github.com/surveyx/surveyx-api/internal/domain/repositories"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthUseCase implements signup and login for survey creator accounts
type AuthUseCase struct {
	userRepo  repositories.IUserRepository
	jwtSecret []byte
}

// NewAuthUseCase cria uma nova instância de AuthUseCase
func NewAuthUseCase(userRepo repositories.IUserRepository, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// Signup registers a new account. Username and email must both be unused.
func (u *AuthUseCase) Signup(username, email, password string) (*entities.User, error) {
	existing, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a signed token
func (u *AuthUseCase) Login(username, password string) (string, *entities.User, error) {
	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// VerifyToken parses a token issued by Login and returns the user id claim
func (u *AuthUseCase) VerifyToken(tokenStr string) (int64, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return u.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrBadCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrBadCredentials
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, ErrBadCredentials
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, ErrBadCredentials
	}

	return userID, nil
}

func (u *AuthUseCase) issueToken(user *entities.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(user.UserID, 10),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
	"github.com/babludoman333/rail-easy-seats/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret []byte

// SetAuthSecret installs the token signing key. Called once from the router
// before any auth handler can run.
func SetAuthSecret(secret []byte) {
	jwtSecret = secret
}

const tokenTTL = 24 * time.Hour

func signToken(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

type registerRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || strings.TrimSpace(req.FullName) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "full name, username and email are required")
		return
	}
	if len(req.Password) < 6 {
		respondError(c, http.StatusBadRequest, "validation_error", "password must be at least 6 characters")
		return
	}

	role := req.Role
	if role != "driver" {
		role = "user"
	}

	repo := repositories.UserRepository{}
	exists, err := repo.Exists(req.Email, req.Username)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "registration failed")
		return
	}
	if exists {
		respondError(c, http.StatusConflict, "conflict", "email or username already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "registration failed")
		return
	}

	user := models.User{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     role,
	}
	id, err := repo.Insert(user, string(hash))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "registration failed")
		return
	}
	user.ID = id

	token, err := signToken(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	login := strings.TrimSpace(req.Login)
	if login == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "login and password are required")
		return
	}

	repo := repositories.UserRepository{}
	user, hash, err := repo.GetByLogin(login)
	if err == sql.ErrNoRows {
		respondError(c, http.StatusUnauthorized, "auth_required", "invalid credentials")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "login failed")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "auth_required", "invalid credentials")
		return
	}

	token, err := signToken(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/charandeep-reddy/food-login/apierror"
	"github.com/charandeep-reddy/food-login/models"
)

const tokenTTL = 72 * time.Hour

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid input: "+err.Error())
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "User already exists")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to check existing user")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to hash password")
			return
		}

		user := models.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: string(hash),
			IsAdmin:      input.IsAdmin,
		}
		if err := db.Create(&user).Error; err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to create user")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "User created successfully",
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"is_admin": user.IsAdmin,
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid input: "+err.Error())
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			apierror.JSON(c, http.StatusUnauthorized, apierror.KindUnauthenticated, "Invalid email or password")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			apierror.JSON(c, http.StatusUnauthorized, apierror.KindUnauthenticated, "Invalid email or password")
			return
		}

		token, err := IssueToken(jwtSecret, user)
		if err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Token generation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user": gin.H{
				"id":       user.ID,
				"name":     user.Name,
				"email":    user.Email,
				"is_admin": user.IsAdmin,
			},
		})
	}
}

// IssueToken signs a session token carrying the account identity and the
// administrator flag.
func IssueToken(secret string, user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"backoffice/internal/app/config"
	"backoffice/internal/app/ds"
	"backoffice/internal/app/dto"
	"backoffice/internal/app/middleware"
	"backoffice/internal/app/redis"
	"backoffice/internal/app/repository"
	"backoffice/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "backoffice"

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
	Auth        *middleware.AuthMiddleware
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      config,
		Auth:        middleware.NewAuthMiddleware(redisClient, config),
	}
}

// HashPassword хеширует пароль bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func userView(user *ds.User) dto.UserView {
	return dto.UserView{
		PID:   user.PID,
		Login: user.Login,
		Name:  user.Name,
		Role:  user.Role.String(),
	}
}

// issueToken подписывает JWT для пользователя
func (h *AuthHandler) issueToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
			Subject:   user.PID.String(),
		},
		UserPID: user.PID,
		Role:    user.Role,
	})

	return token.SignedString([]byte(h.Config.JWT.Token))
}

// RegisterUser регистрация нового пользователя
// @Summary Регистрация пользователя
// @Description Создаёт оператора. Администратор заводится командой migrate.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} dto.UserView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if !bindJSON(ctx, &request) {
		return
	}

	// Проверяем существует ли пользователь
	exists, err := h.Repository.UserExistsByLogin(ctx.Request.Context(), request.Login)
	if err != nil {
		handleRepositoryError(ctx, err)
		return
	}
	if exists {
		errorHandler(ctx, http.StatusConflict, errors.New("пользователь с таким логином уже существует"))
		return
	}

	hashedPassword, err := HashPassword(request.Password)
	if err != nil {
		errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	user, err := h.Repository.CreateUser(ctx.Request.Context(), request.Login, hashedPassword, request.Name, role.Operator)
	if err != nil {
		handleRepositoryError(ctx, err)
		return
	}

	logrus.WithField("login", user.Login).Info("user registered")
	ctx.JSON(http.StatusCreated, userView(user))
}

// LoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация пользователя с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if !bindJSON(ctx, &request) {
		return
	}

	invalid := errors.New("неверный логин или пароль")

	user, err := h.Repository.GetUserByLogin(ctx.Request.Context(), request.Login)
	if errors.Is(err, repository.ErrNotFound) {
		errorHandler(ctx, http.StatusUnauthorized, invalid)
		return
	}
	if err != nil {
		handleRepositoryError(ctx, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		errorHandler(ctx, http.StatusUnauthorized, invalid)
		return
	}

	accessToken, err := h.issueToken(user)
	if err != nil {
		errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		TokenType: "Bearer",
		ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
	})
}

// LogoutUser выход пользователя из системы
// @Summary Выход из системы
// @Description Токен заносится в blacklist до истечения срока
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	tokenString := middleware.BearerToken(ctx)

	claims, err := h.Auth.ParseToken(tokenString)
	if err != nil {
		errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	// Вычисление TTL до истечения токена
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		err = h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl)
		if err != nil {
			errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "пользователь успешно вышел из системы",
	})
}

// GetCurrentUser текущий пользователь
// @Summary Текущий пользователь
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserView
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/current [get]
func (h *AuthHandler) GetCurrentUser(ctx *gin.Context) {
	current, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		errorHandler(ctx, http.StatusUnauthorized, errors.New("пользователь не авторизован"))
		return
	}

	user, err := h.Repository.GetUserByPID(ctx.Request.Context(), current.PID)
	if err != nil {
		handleRepositoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, userView(user))
}

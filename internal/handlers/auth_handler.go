package handlers

import (
	"github.com/gin-gonic/gin"

	"dompet/internal/response"
	"dompet/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService  services.AuthServicer
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{authService: authService, auditService: auditService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255" example:"alice@example.com"`
	Name     string `json:"name" binding:"required,max=100" example:"Alice"`
	Password string `json:"password" binding:"required,max=72" example:"s3cret-pass"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// ProfileRequest represents the profile edit payload. Omitted fields are
// left unchanged.
type ProfileRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100" example:"Alice Smith"`
	Picture *string `json:"picture" example:"https://example.com/alice.png"`
}

func (r RegisterRequest) input() services.RegisterInput {
	return services.RegisterInput{Email: r.Email, Name: r.Name, Password: r.Password}
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a USER account and receive a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     200 {object} response.TokenBody{data=models.User} "User registered and token generated"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Failure     409 {object} response.ErrorBody "Email already registered"
// @Router      /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req.input())
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Log(result.User.ID, services.AuditRegister, "user", result.User.ID, c.ClientIP(), nil)
	response.Token(c, result.Token, result.User)
}

// AddUser handles user creation by an admin
// @Summary     Create a user
// @Description Create a USER account on behalf of someone else. Requires an ADMIN token.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RegisterRequest true "User data"
// @Success     200 {object} response.Body{data=models.User} "User created"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Failure     403 {object} response.ErrorBody "Not an admin"
// @Failure     409 {object} response.ErrorBody "Email already registered"
// @Router      /users [post]
func (h *AuthHandler) AddUser(c *gin.Context) {
	adminID, err := getUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.authService.AddUser(c.Request.Context(), req.input())
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Log(adminID, services.AuditAddUser, "user", user.ID, c.ClientIP(),
		map[string]any{"email": user.Email})
	response.OK(c, user)
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} response.TokenBody{data=models.User} "User authenticated and token generated"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Failure     401 {object} response.ErrorBody "Password did not match"
// @Failure     404 {object} response.ErrorBody "Email not found"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Log(result.User.ID, services.AuditLogin, "user", result.User.ID, c.ClientIP(), nil)
	response.Token(c, result.Token, result.User)
}

// LoginAdmin handles admin login
// @Summary     Login admin
// @Description Authenticate an ADMIN user and get a token. No user record is returned.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Admin login credentials"
// @Success     200 {object} response.TokenBody "Admin authenticated and token generated"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Failure     401 {object} response.ErrorBody "Password did not match"
// @Failure     403 {object} response.ErrorBody "Access denied"
// @Failure     404 {object} response.ErrorBody "Email not found"
// @Router      /login/admin [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.authService.LoginAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Log(result.User.ID, services.AuditLoginAdmin, "user", result.User.ID, c.ClientIP(), nil)
	response.Token(c, result.Token, nil)
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Body{data=models.User} "User profile"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Failure     404 {object} response.ErrorBody "User not found"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, user)
}

// EditProfile updates the user's name and/or picture
// @Summary     Edit user profile
// @Description Update the authenticated user's name and/or picture
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ProfileRequest true "Fields to change"
// @Success     200 {object} response.Body{data=models.User} "Updated profile"
// @Failure     400 {object} response.ErrorBody "Invalid input"
// @Failure     401 {object} response.ErrorBody "Unauthorized"
// @Failure     404 {object} response.ErrorBody "User not found"
// @Router      /profile [patch]
func (h *AuthHandler) EditProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req ProfileRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.authService.EditProfile(c.Request.Context(), userID, services.ProfileInput{
		Name:    req.Name,
		Picture: req.Picture,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	changes := map[string]any{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Picture != nil {
		changes["picture"] = *req.Picture
	}
	h.auditService.Log(userID, services.AuditEditProfile, "user", userID, c.ClientIP(), changes)
	response.OK(c, user)
}

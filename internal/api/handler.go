package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"corpdirectory/internal/domain"
	"corpdirectory/internal/store"
	"corpdirectory/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the directory over HTTP.
type UserHandler struct {
	Store      *store.Database
	Controller *UserController
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *store.Database, ctl *UserController) *UserHandler {
	return &UserHandler{Store: db, Controller: ctl}
}

// CreateUserRequest is the request body for registering a user.
type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email" example:"jane@mycorp.com"`
	EmailConfirmed bool   `json:"email_confirmed" example:"false"`
}

// ChangeEmailRequest is the request body for changing a user's email.
type ChangeEmailRequest struct {
	NewEmail string `json:"new_email" binding:"required,email" example:"jane@gmail.com"`
}

// UserResponse is the wire representation of a user.
type UserResponse struct {
	ID             int    `json:"id"`
	Email          string `json:"email"`
	Type           string `json:"type"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// CompanyResponse is the wire representation of the company record.
type CompanyResponse struct {
	DomainName        string `json:"domain_name"`
	NumberOfEmployees int    `json:"number_of_employees"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Type:           u.Type.String(),
		EmailConfirmed: u.EmailConfirmed,
	}
}

// CreateUser godoc
// @Summary      Register a new user
// @Description  Classifies the address against the company domain and stores the user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      CreateUserRequest  true  "Create user request"
// @Success      201      {object}  UserResponse
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	correlationID := middleware.GetCorrelationID(c)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Controller.CreateUser(req.Email, req.EmailConfirmed)
	if err != nil {
		log.Printf("[API] Error creating user: %v correlation_id=%s", err, correlationID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	log.Printf("[API] User created: id=%d email=%s type=%s correlation_id=%s",
		user.ID, user.Email, user.Type, correlationID)
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// ChangeEmail godoc
// @Summary      Change a user's email
// @Description  Re-derives the employee/customer classification and notifies downstream systems
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "User ID"
// @Param        request  body      ChangeEmailRequest  true  "Change email request"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /users/{id}/email [put]
func (h *UserHandler) ChangeEmail(c *gin.Context) {
	correlationID := middleware.GetCorrelationID(c)

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.Controller.ChangeEmail(userID, req.NewEmail)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		log.Printf("[API] Error changing email: %v correlation_id=%s", err, correlationID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change email"})
		return
	}

	if status != StatusOK {
		log.Printf("[API] Email change rejected: id=%d reason=%q correlation_id=%s", userID, status, correlationID)
		c.JSON(http.StatusConflict, gin.H{"error": status})
		return
	}

	log.Printf("[API] Email changed: id=%d new_email=%s correlation_id=%s", userID, req.NewEmail, correlationID)
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// GetUser godoc
// @Summary      Get a user by ID
// @Produce      json
// @Tags         users
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.Store.GetUserByID(userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// ListUsers godoc
// @Summary      List all users
// @Produce      json
// @Tags         users
// @Success      200  {array}   UserResponse
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Store.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}

	out := []UserResponse{}
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	c.JSON(http.StatusOK, out)
}

// GetCompany godoc
// @Summary      Get the company record
// @Produce      json
// @Tags         company
// @Success      200  {object}  CompanyResponse
// @Failure      500  {object}  map[string]string
// @Router       /company [get]
func (h *UserHandler) GetCompany(c *gin.Context) {
	company, err := h.Store.GetCompany()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch company"})
		return
	}

	c.JSON(http.StatusOK, CompanyResponse{
		DomainName:        company.DomainName,
		NumberOfEmployees: company.NumberOfEmployees,
	})
}

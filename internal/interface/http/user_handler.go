package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-management-api/internal/application"
	"user-management-api/pkg/response"
	"user-management-api/pkg/validation"
)

// UserHandler serves the authenticated user CRUD endpoints.
type UserHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Age       int    `json:"age" binding:"required"`
}

type updateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Age       int    `json:"age" binding:"required"`
}

func (h *UserHandler) fail(c *gin.Context, err error, op string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError && h.Logger != nil {
		h.Logger.WithError(err).Error(op + " failed")
	}
	response.Error[any](c, status, messageFor(err, status), nil)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return 0, false
	}
	return id, true
}

// Create POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.CreateUser(c.Request.Context(), application.CreateUserCommand{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	})
	if err != nil {
		h.fail(c, err, "create user")
		return
	}

	response.Success(c, http.StatusCreated, res, "user created", nil)
}

// Get GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "get user")
		return
	}

	response.Success(c, http.StatusOK, res, "user", nil)
}

// List GET /api/users?page=&rows_per_page=
func (h *UserHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	rows, err := strconv.Atoi(c.DefaultQuery("rows_per_page", "10"))
	if err != nil || rows < 1 || rows > 100 {
		rows = 10
	}

	users, total, err := h.Svc.ListUsers(c.Request.Context(), application.ListUsersQuery{
		Page:        page,
		RowsPerPage: rows,
	})
	if err != nil {
		h.fail(c, err, "list users")
		return
	}

	response.Success(c, http.StatusOK, users, "users", response.Pagination{
		Total:       total,
		Page:        page,
		RowsPerPage: rows,
	})
}

// Update PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.UpdateUser(c.Request.Context(), id, application.UpdateUserCommand{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	})
	if err != nil {
		h.fail(c, err, "update user")
		return
	}

	response.Success(c, http.StatusOK, res, "user updated", nil)
}

// Search GET /api/users/search?q=
func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	res, err := h.Svc.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		h.fail(c, err, "search users")
		return
	}

	response.Success(c, http.StatusOK, res, "search results", nil)
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkovalev/todovault/internal/common"
	"github.com/dkovalev/todovault/internal/server/models"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createTodoRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// handleRegister creates a user account and returns its id.
func (s *HTTPServer) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	id, err := s.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUniqueViolation):
			return c.JSON(http.StatusConflict, errorBody("email already registered"))
		case errors.Is(err, common.ErrEmptyPassword):
			return c.JSON(http.StatusBadRequest, errorBody("password is required"))
		}
		s.logger.Error(c.Request().Context(), "register failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

// handleLogin verifies credentials and returns an access token.
func (s *HTTPServer) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return c.JSON(http.StatusUnauthorized, errorBody("invalid email or password"))
		}
		s.logger.Error(c.Request().Context(), "login failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// handleMe returns the id and email behind the presented token.
func (s *HTTPServer) handleMe(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		s.logger.Error(c.Request().Context(), "user lookup failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
	}
	if user == nil {
		// valid signature over an id that no longer exists
		return c.JSON(http.StatusNotFound, errorBody("user not found"))
	}

	return c.JSON(http.StatusOK, user)
}

// handleCreateTodo inserts a todo owned by the token's user and echoes back
// the persisted row.
func (s *HTTPServer) handleCreateTodo(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	todo, err := s.todos.Create(c.Request().Context(), &models.NewTodo{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrCheckViolation):
			return c.JSON(http.StatusBadRequest, errorBody("title must not be blank"))
		case errors.Is(err, common.ErrForeignKeyViolation):
			// the token outlived its user
			return c.JSON(http.StatusNotFound, errorBody("user not found"))
		}
		s.logger.Error(c.Request().Context(), "todo creation failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
	}

	return c.JSON(http.StatusCreated, todo)
}

// handleListTodos returns the token user's todos, most recent first.
func (s *HTTPServer) handleListTodos(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	list, err := s.todos.ListByUser(c.Request().Context(), userID)
	if err != nil {
		s.logger.Error(c.Request().Context(), "todo listing failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
	}

	return c.JSON(http.StatusOK, list)
}

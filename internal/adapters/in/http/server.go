// Package http exposes the account operations as an HTTP facade.
// It maps domain outcomes to the status-code contract of the courier account
// API; the Russian message texts are part of that contract.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"courieraccounts/internal/core/application/usecases/commands"
	"courieraccounts/internal/core/application/usecases/queries"
	"courieraccounts/internal/core/domain/model/account"

	"github.com/labstack/echo/v4"
)

// Contract messages. The create-conflict and missing-data texts are fixed by
// the API contract; callers assert on them verbatim.
const (
	msgNotEnoughDataToCreate = "Недостаточно данных для создания учетной записи"
	msgLoginAlreadyUsed      = "Этот логин уже используется. Попробуйте другой."
	msgNotEnoughDataToLogin  = "Недостаточно данных для входа"
	msgAccountNotFound       = "Учетная запись не найдена"
	msgNotEnoughDataToDelete = "Недостаточно данных для удаления курьера"
	msgCourierIDNotFound     = "Курьера с таким id нет."
)

// Server implements the HTTP handlers for the courier account API.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	// Command handlers
	createAccountHandler commands.CreateAccountCommandHandler
	deleteAccountHandler commands.DeleteAccountCommandHandler

	// Query handlers
	loginHandler queries.LoginQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createAccountHandler commands.CreateAccountCommandHandler,
	deleteAccountHandler commands.DeleteAccountCommandHandler,
	loginHandler queries.LoginQueryHandler,
) *Server {
	return &Server{
		createAccountHandler: createAccountHandler,
		deleteAccountHandler: deleteAccountHandler,
		loginHandler:         loginHandler,
	}
}

// RegisterRoutes attaches the account API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/courier", s.CreateCourier)
	e.POST("/api/v1/courier/login", s.LoginCourier)
	e.DELETE("/api/v1/courier/:id", s.DeleteCourier)
}

// NewCourier is the request body for courier account creation.
// Login and password are mandatory, the first name is not.
type NewCourier struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
}

// CourierCredentials is the request body for courier login.
type CourierCredentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// OK is the success body for creation and deletion.
type OK struct {
	Ok bool `json:"ok"`
}

// LoginResult carries the identifier issued for a successful login.
type LoginResult struct {
	ID int64 `json:"id"`
}

// Error is the failure body: a status code and a human-readable message.
// The message is never null for a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCourier handles POST /api/v1/courier - creates a new courier account.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var newCourier NewCourier
	if err := ctx.Bind(&newCourier); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateAccountCommand(newCourier.Login, newCourier.Password, newCourier.FirstName)
	if err != nil {
		// Only missing mandatory fields can fail command construction
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: msgNotEnoughDataToCreate,
		})
	}

	if handleErr := s.createAccountHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, account.ErrLoginAlreadyUsed) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: msgLoginAlreadyUsed,
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create courier account",
		})
	}

	return ctx.JSON(http.StatusCreated, OK{Ok: true})
}

// LoginCourier handles POST /api/v1/courier/login - resolves credentials to an id.
func (s *Server) LoginCourier(ctx echo.Context) error {
	var credentials CourierCredentials
	if err := ctx.Bind(&credentials); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewLoginQuery(credentials.Login, credentials.Password)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: msgNotEnoughDataToLogin,
		})
	}

	response, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		// Unknown login and wrong password are reported identically
		if errors.Is(err, account.ErrInvalidCredentials) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: msgAccountNotFound,
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to login",
		})
	}

	return ctx.JSON(http.StatusOK, LoginResult{ID: int64(response.ID)})
}

// DeleteCourier handles DELETE /api/v1/courier/:id - removes a courier account.
// Deleting an absent id is a benign outcome reported as not found, never a fault:
// cleanup callers may delete ids that were never issued.
func (s *Server) DeleteCourier(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: msgNotEnoughDataToDelete,
		})
	}

	cmd, err := commands.NewDeleteAccountCommand(account.ID(id))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: msgNotEnoughDataToDelete,
		})
	}

	if handleErr := s.deleteAccountHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, account.ErrAccountNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: msgCourierIDNotFound,
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete courier account",
		})
	}

	return ctx.JSON(http.StatusOK, OK{Ok: true})
}

package utils

import "github.com/gofiber/fiber/v2"

// APIResponse is the standard response envelope. Message is a string on
// success and business failures, a list of violation strings on validation
// failures.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    interface{} `json:"message"`
	Error      string      `json:"error,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

// PaginatedResponse is the search envelope with pagination metadata alongside
// the data.
type PaginatedResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Pagination Pagination  `json:"pagination"`
	Data       interface{} `json:"data"`
}

type Pagination struct {
	TotalItems  int64 `json:"totalItems"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

// SuccessResponse sends data with an HTTP status of httpStatus; the body
// statusCode is always 200, matching the service contract.
func SuccessResponse(c *fiber.Ctx, httpStatus int, message string, data interface{}) error {
	return c.Status(httpStatus).JSON(APIResponse{
		StatusCode: fiber.StatusOK,
		Message:    message,
		Data:       data,
	})
}

// SuccessWithPaginationResponse sends a paginated success response.
func SuccessWithPaginationResponse(c *fiber.Ctx, message string, pagination Pagination, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(PaginatedResponse{
		StatusCode: fiber.StatusOK,
		Message:    message,
		Pagination: pagination,
		Data:       data,
	})
}

// BadRequestResponse sends a 400 with a single business-rule message.
func BadRequestResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(APIResponse{
		StatusCode: fiber.StatusBadRequest,
		Error:      "Bad Request",
		Message:    message,
	})
}

// ValidationErrorResponse sends a 400 enumerating every violated field rule.
func ValidationErrorResponse(c *fiber.Ctx, violations []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(APIResponse{
		StatusCode: fiber.StatusBadRequest,
		Error:      "Bad Request",
		Message:    violations,
	})
}

// InternalErrorResponse sends a 500 with a fixed message; internal detail is
// logged by the caller, never exposed here.
func InternalErrorResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(APIResponse{
		StatusCode: fiber.StatusInternalServerError,
		Error:      "Internal Server Error",
		Message:    message,
	})
}

// NewPagination computes pagination metadata: totalPages is the ceiling of
// totalItems / pageSize.
func NewPagination(totalItems int64, currentPage, pageSize int) Pagination {
	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))

	return Pagination{
		TotalItems:  totalItems,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
	}
}

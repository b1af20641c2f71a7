package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrEmailRegistered
	ErrInvalidPassword
	ErrEmailNotFound
	ErrInvalidResetToken
	ErrSlotTaken
	ErrInvalidTransition
	ErrAlreadySubscribed
	ErrAlreadySaved
	ErrMailDelivery
	ErrInvalidCredentials
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "Server error",
	ErrNotFound:           "Resource not found",
	ErrInvalidRequest:     "Invalid request",
	ErrUnauthorize:        "Unauthorized request",
	ErrForbidden:          "Not authorized to perform this action",
	ErrEmailRegistered:    "Email already registered",
	ErrInvalidPassword:    "Invalid password",
	ErrEmailNotFound:      "Email not found",
	ErrInvalidResetToken:  "Invalid or expired token",
	ErrSlotTaken:          "This time slot is already booked",
	ErrInvalidTransition:  "Invalid appointment status change",
	ErrAlreadySubscribed:  "Email already subscribed to newsletter",
	ErrAlreadySaved:       "Property already saved",
	ErrMailDelivery:       "Failed to send email",
	ErrInvalidCredentials: "Invalid credentials",
	ErrTooManyRequests:    "Too many requests, please try again later",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrEmailRegistered:    http.StatusBadRequest,
	ErrInvalidPassword:    http.StatusBadRequest,
	ErrEmailNotFound:      http.StatusNotFound,
	ErrInvalidResetToken:  http.StatusBadRequest,
	ErrSlotTaken:          http.StatusBadRequest,
	ErrInvalidTransition:  http.StatusBadRequest,
	ErrAlreadySubscribed:  http.StatusBadRequest,
	ErrAlreadySaved:       http.StatusBadRequest,
	ErrMailDelivery:       http.StatusInternalServerError,
	ErrInvalidCredentials: http.StatusBadRequest,
	ErrTooManyRequests:    http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrForbidden:          "0005",
	ErrEmailRegistered:    "0006",
	ErrInvalidPassword:    "0007",
	ErrEmailNotFound:      "0008",
	ErrInvalidResetToken:  "0009",
	ErrSlotTaken:          "0010",
	ErrInvalidTransition:  "0011",
	ErrAlreadySubscribed:  "0012",
	ErrAlreadySaved:       "0013",
	ErrMailDelivery:       "0014",
	ErrInvalidCredentials: "0015",
	ErrTooManyRequests:    "0016",
}

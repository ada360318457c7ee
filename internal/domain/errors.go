package domain

import "errors"

var (
	// ErrIncompleteNutrition is returned when a food analysis is missing one
	// or more of the four macro values
	ErrIncompleteNutrition = errors.New("incomplete nutritional information")

	// ErrInvalidMealPlan is returned when the model's meal plan output does
	// not decode as JSON
	ErrInvalidMealPlan = errors.New("invalid JSON format")

	// ErrMissingKey is returned when a required meal plan key is absent
	ErrMissingKey = errors.New("missing required key")

	// ErrEmptyMessage is returned when a chat message is blank
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrMessageTooLong is returned when a chat message exceeds the limit
	ErrMessageTooLong = errors.New("message exceeds maximum length of 2000 characters")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrUpstreamFailure is returned when a collaborator (LLM, vision,
	// search) call fails
	ErrUpstreamFailure = errors.New("upstream collaborator request failed")
)

// Package models holds the request and response records exchanged with the
// fitness-scheduling API.
//
// Struct tags carry both the JSON shape and the validation rules applied to
// decoded responses (see github.com/go-playground/validator/v10).
package models

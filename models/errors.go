package models

import "errors"

var (
	ErrNotFound              = errors.New("record not found")
	ErrInsufficientReviewers = errors.New("not enough reviewers allocated to conference")
	ErrOrganizerNotAdmin     = errors.New("only admins can create conferences")
	ErrNotAReviewer          = errors.New("all users must have reviewer role")
	ErrEmailTaken            = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)

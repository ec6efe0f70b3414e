// Package dto defines Data Transfer Objects for authentication.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a back-office user
type LoginRequest struct {
	// Email is the user's email address.
	Email string `json:"email" binding:"required,email" example:"equipe@cafelagoa.com.br"`
	// Password is the user's password.
	Password string `json:"password" binding:"required,min=6"`
} // @name LoginRequest

// RegisterRequest represents the JSON request body for the register endpoint.
type RegisterRequest struct {
	// Email is the user's email address.
	Email string `json:"email" binding:"required,email"`
	// Password is the user's password (minimum 6 characters).
	Password string `json:"password" binding:"required,min=6"`
	// Name is the user's full name (optional).
	Name string `json:"name,omitempty"`
} // @name RegisterRequest

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
} // @name UserResponse

// LoginResponse represents the JSON response body for login and refresh.
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token"`
	// RefreshToken is the JWT refresh token.
	RefreshToken string `json:"refresh_token"`
	// User contains the authenticated user information.
	User UserResponse `json:"user"`
} // @name LoginResponse

// TokenPair holds an access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims holds the identity carried by a JWT.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
}

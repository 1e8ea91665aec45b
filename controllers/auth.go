package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/middleware"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/meinhoongagan/skillverify/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles user registration
// @Summary Register a customer or worker
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dtos.RegisterRequest true "Registration"
// @Success 201 {object} dtos.AuthResponse
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /api/auth/register [post]
func (h *AuthController) Register(c *fiber.Ctx) error {
	req := middleware.Body[dtos.RegisterRequest](c)

	res, err := h.auth.Register(c.UserContext(), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusCreated, "Registration successful", res)
}

// Login handles user authentication
// @Summary Log in with email, password and account type
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dtos.LoginRequest true "Credentials"
// @Success 200 {object} dtos.AuthResponse
// @Failure 401 {object} utils.Response
// @Router /api/auth/login [post]
func (h *AuthController) Login(c *fiber.Ctx) error {
	req := middleware.Body[dtos.LoginRequest](c)

	res, err := h.auth.Login(c.UserContext(), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Login successful", res)
}

// CheckEmail reports whether an email is already registered
// @Tags auth
// @Router /api/auth/check-email [post]
func (h *AuthController) CheckEmail(c *fiber.Ctx) error {
	req := middleware.Body[dtos.CheckEmailRequest](c)

	exists, err := h.auth.CheckEmail(c.UserContext(), req.Email)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "", dtos.ExistsResponse{Exists: exists})
}

// CheckPhone reports whether a phone number is already registered
// @Tags auth
// @Router /api/auth/check-phone [post]
func (h *AuthController) CheckPhone(c *fiber.Ctx) error {
	req := middleware.Body[dtos.CheckPhoneRequest](c)

	exists, err := h.auth.CheckPhone(c.UserContext(), req.Phone)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "", dtos.ExistsResponse{Exists: exists})
}

// GetProfile returns the current user's profile
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dtos.UserResponse
// @Failure 404 {object} utils.Response
// @Router /api/auth/profile [get]
func (h *AuthController) GetProfile(c *fiber.Ctx) error {
	session := middleware.SessionFrom(c)

	profile, err := h.auth.GetProfile(c.UserContext(), session.UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "", profile)
}

// UpdateProfile updates the supplied profile fields
// @Summary Update own profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dtos.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dtos.UserResponse
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /api/auth/profile [put]
func (h *AuthController) UpdateProfile(c *fiber.Ctx) error {
	req := middleware.Body[dtos.UpdateProfileRequest](c)

	profile, err := h.auth.UpdateProfile(c.UserContext(), middleware.SessionFrom(c), req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Profile updated", profile)
}

// UploadProfilePicture stores a new profile picture
// @Summary Upload profile picture
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param profilePicture formData file true "Image"
// @Success 200 {object} dtos.UserResponse
// @Failure 503 {object} utils.Response
// @Router /api/auth/profile/picture [post]
func (h *AuthController) UploadProfilePicture(c *fiber.Ctx) error {
	header, err := c.FormFile("profilePicture")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "No file uploaded",
			utils.FieldError{Field: "profilePicture", Message: "is required"})
	}

	file, err := header.Open()
	if err != nil {
		return utils.HandleError(c, err)
	}
	defer file.Close()

	profile, err := h.auth.UploadProfilePicture(c.UserContext(), middleware.SessionFrom(c).UserID, file)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Profile picture updated", profile)
}

// Logout revokes the current token
// @Tags auth
// @Security BearerAuth
// @Router /api/auth/logout [post]
func (h *AuthController) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext(), middleware.SessionFrom(c)); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Successfully logged out", nil)
}

package testutil

import (
	"mime/multipart"
	"net/textproto"

	"github.com/cinebook/backend/internal/models"
	"github.com/cinebook/backend/internal/utils"
	"github.com/google/uuid"
)

// CreateTestUser creates a test user with a real password hash.
func CreateTestUser(name, email, password string, role models.Role) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}, nil
}

// DefaultTestUser returns a default test user (regular user)
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("testuser", "test@example.com", "Test123456!", models.RoleUser)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("admin", "admin@example.com", "Admin123456!", models.RoleAdmin)
}

// AddFormFile attaches a file part with an explicit content type to a
// multipart body. multipart.Writer.CreateFormFile always claims
// application/octet-stream, which the upload validator rejects.
func AddFormFile(w *multipart.Writer, field, filename, contentType string, content []byte) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(content)
	return err
}

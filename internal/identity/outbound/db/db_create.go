package db

import (
	"context"

	"github.com/medivision/medivision/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, in entity.NewUser) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	user := entity.User{
		ID:          in.ID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Gender:      in.Gender,
		DateOfBirth: in.DateOfBirth,
		Role:        in.Role,
		Location:    in.Location,
		Bio:         in.Bio,
	}

	err = s.conn.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password, phone, gender, date_of_birth, role, location, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		in.ID,
		in.Name,
		in.Email,
		in.PasswordHash,
		in.Phone,
		int16(in.Gender),
		in.DateOfBirth,
		int16(in.Role),
		in.Location,
		in.Bio,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}

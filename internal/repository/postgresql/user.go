package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/itschool-lms/lms-backend-go/internal/domain/user"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	id, trainee_id, course_id, login_id, name, password_hash,
	role, leave_date, delete_flg, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var role string
	err := row.Scan(
		&u.ID, &u.TraineeID, &u.CourseID, &u.LoginID, &u.Name, &u.PasswordHash,
		&role, &u.LeaveDate, &u.DeleteFlag, &u.CreatedAt, &u.UpdatedAt,
	)
	u.Role = user.Role(role)
	return u, err
}

// GetByLoginID implements user.UserRepository.
func (r *userRepository) GetByLoginID(ctx context.Context, loginID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + userColumns + `
		FROM users
		WHERE login_id = $1
		  AND delete_flg = 0
	`

	u, err := scanUser(q.QueryRow(ctx, query, loginID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by login ID: %w", err)
	}

	return u, nil
}

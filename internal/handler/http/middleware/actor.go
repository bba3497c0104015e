package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/itschool-lms/lms-backend-go/internal/domain/auth"
	"github.com/itschool-lms/lms-backend-go/internal/domain/user"
)

// ActorFromRequest rebuilds the acting user from the verified token claims.
// Attendance operations take the actor as an explicit argument, so handlers
// call this once and pass the result down instead of reading claims deeper
// in the stack.
func ActorFromRequest(r *http.Request) (user.Actor, error) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, auth.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return user.Actor{}, auth.ErrInvalidToken
	}

	actor := user.Actor{
		UserID: userID,
		Role:   user.Role(role),
	}
	if traineeID, ok := claims["trainee_id"].(string); ok {
		actor.TraineeID = traineeID
	}
	if courseID, ok := claims["course_id"].(string); ok {
		actor.CourseID = courseID
	}

	return actor, nil
}

package graph

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Typed input structs per operation. Argument maps from the executor are
// decoded and validated here, at the API boundary, so resolvers never touch
// untyped values.

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateUserInput struct {
	Username string
	Email    string
}

type CreateMovieInput struct {
	MovieName   string
	Description string
	Director    string
	ReleaseDate time.Time
}

// UpdateMovieInput carries only the fields the caller supplied; nil means
// leave the column as is.
type UpdateMovieInput struct {
	MovieName   *string
	Description *string
	Director    *string
	ReleaseDate *time.Time
}

func decodeSignupInput(arg interface{}) (SignupInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return SignupInput{}, fmt.Errorf("signup: data must be an object")
	}
	in := SignupInput{
		Username: stringField(m, "username"),
		Email:    stringField(m, "email"),
		Password: stringField(m, "password"),
	}
	var missing []string
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return SignupInput{}, fmt.Errorf("signup: missing required fields: %s", strings.Join(missing, ", "))
	}
	return in, nil
}

func decodeLoginInput(arg interface{}) (LoginInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return LoginInput{}, fmt.Errorf("login: data must be an object")
	}
	in := LoginInput{
		Email:    stringField(m, "email"),
		Password: stringField(m, "password"),
	}
	if in.Email == "" || in.Password == "" {
		return LoginInput{}, fmt.Errorf("login: email and password are required")
	}
	return in, nil
}

func decodeUpdateUserInput(arg interface{}) (UpdateUserInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return UpdateUserInput{}, fmt.Errorf("updateUser: data must be an object")
	}
	in := UpdateUserInput{
		Username: stringField(m, "username"),
		Email:    stringField(m, "email"),
	}
	if in.Username == "" && in.Email == "" {
		return UpdateUserInput{}, fmt.Errorf("updateUser: nothing to update")
	}
	return in, nil
}

func decodeCreateMovieInput(arg interface{}) (CreateMovieInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return CreateMovieInput{}, fmt.Errorf("createMovie: data must be an object")
	}
	in := CreateMovieInput{
		MovieName:   stringField(m, "movieName"),
		Description: stringField(m, "description"),
		Director:    stringField(m, "director"),
	}
	if in.MovieName == "" {
		return CreateMovieInput{}, fmt.Errorf("createMovie: movieName is required")
	}
	rd, ok := timeField(m, "releaseDate")
	if !ok {
		return CreateMovieInput{}, fmt.Errorf("createMovie: releaseDate is required")
	}
	in.ReleaseDate = rd
	return in, nil
}

func decodeUpdateMovieInput(arg interface{}) (UpdateMovieInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return UpdateMovieInput{}, fmt.Errorf("updateMovie: data must be an object")
	}
	var in UpdateMovieInput
	if v, ok := m["movieName"].(string); ok {
		if v == "" {
			return UpdateMovieInput{}, fmt.Errorf("updateMovie: movieName cannot be empty")
		}
		in.MovieName = &v
	}
	if v, ok := m["description"].(string); ok {
		in.Description = &v
	}
	if v, ok := m["director"].(string); ok {
		in.Director = &v
	}
	if v, ok := timeField(m, "releaseDate"); ok {
		in.ReleaseDate = &v
	}
	if in.MovieName == nil && in.Description == nil && in.Director == nil && in.ReleaseDate == nil {
		return UpdateMovieInput{}, fmt.Errorf("updateMovie: nothing to update")
	}
	return in, nil
}

func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return strings.TrimSpace(v)
}

// timeField reads a DateTime input value. The executor coerces variables to
// time.Time; inline string literals arrive unparsed.
func timeField(m map[string]interface{}, key string) (time.Time, bool) {
	switch v := m[key].(type) {
	case time.Time:
		return v, true
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

// parseID coerces a GraphQL ID argument to a database id.
func parseID(v interface{}) (uint, error) {
	switch t := v.(type) {
	case string:
		n, err := strconv.ParseUint(t, 10, 32)
		if err != nil || n == 0 {
			return 0, fmt.Errorf("invalid id %q", t)
		}
		return uint(n), nil
	case int:
		if t <= 0 {
			return 0, fmt.Errorf("invalid id %d", t)
		}
		return uint(t), nil
	case float64:
		if t <= 0 || t != float64(uint(t)) {
			return 0, fmt.Errorf("invalid id %v", t)
		}
		return uint(t), nil
	default:
		return 0, fmt.Errorf("invalid id type %T", v)
	}
}

func intArg(args map[string]interface{}, key string) int {
	if v, ok := args[key].(int); ok {
		return v
	}
	return 0
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

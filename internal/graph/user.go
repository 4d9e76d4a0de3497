package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/kelechio/movieql/internal/auth"
	"github.com/kelechio/movieql/internal/middleware"
	"github.com/kelechio/movieql/internal/models"
	"github.com/kelechio/movieql/internal/repo"
)

// requesterID returns the authenticated user id from the request context, or
// zero for anonymous requests.
func requesterID(p graphql.ResolveParams) uint {
	id, _ := middleware.GetUserID(p.Context)
	return id
}

func (r *Resolver) resolveSignup(p graphql.ResolveParams) (interface{}, error) {
	in, err := decodeSignupInput(p.Args["data"])
	if err != nil {
		return nil, err
	}

	// The digest goes into the database; the plaintext never does.
	digest, err := auth.HashPassword(in.Password, r.BcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := r.Users.Create(p.Context, in.Username, in.Email, digest)
	if err != nil {
		return nil, mapUserError(err)
	}

	token, err := r.Tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthPayload{Token: token, User: user}, nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	in, err := decodeLoginInput(p.Args["data"])
	if err != nil {
		return nil, err
	}

	user, err := r.Users.GetByEmail(p.Context, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(in.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := r.Tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthPayload{Token: token, User: user}, nil
}

func (r *Resolver) resolveChangePassword(p graphql.ResolveParams) (interface{}, error) {
	uid := requesterID(p)
	if uid == 0 {
		return nil, auth.ErrAuthRequired
	}

	oldPassword := stringArg(p.Args, "oldPassword")
	newPassword := stringArg(p.Args, "newPassword")
	if newPassword == "" {
		return nil, errors.New("changePassword: newPassword is required")
	}

	user, err := r.Users.GetByID(p.Context, uid)
	if err != nil {
		return nil, mapUserError(err)
	}

	if !auth.CheckPassword(oldPassword, user.Password) {
		return nil, ErrInvalidPassword
	}

	digest, err := auth.HashPassword(newPassword, r.BcryptCost)
	if err != nil {
		return nil, err
	}

	updated, err := r.Users.UpdatePassword(p.Context, uid, digest)
	if err != nil {
		return nil, mapUserError(err)
	}
	return updated, nil
}

func (r *Resolver) resolveUpdateUser(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	in, err := decodeUpdateUserInput(p.Args["data"])
	if err != nil {
		return nil, err
	}

	// Users may only modify themselves.
	if err := auth.Authorize(requesterID(p), id); err != nil {
		return nil, err
	}

	user, err := r.Users.UpdateProfile(p.Context, id, in.Username, in.Email)
	if err != nil {
		return nil, mapUserError(err)
	}
	return user, nil
}

func (r *Resolver) resolveDeleteUser(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	if err := auth.Authorize(requesterID(p), id); err != nil {
		return nil, err
	}

	user, err := r.Users.GetByID(p.Context, id)
	if err != nil {
		return nil, mapUserError(err)
	}

	// Owned movies go with the user (ON DELETE CASCADE).
	if err := r.Users.Delete(p.Context, id); err != nil {
		return nil, mapUserError(err)
	}
	return user, nil
}

func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	uid := requesterID(p)
	if uid == 0 {
		return nil, nil
	}
	user, err := r.Users.GetByID(p.Context, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *Resolver) resolveUser(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	user, err := r.Users.GetByID(p.Context, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *Resolver) resolveUserMovies(p graphql.ResolveParams) (interface{}, error) {
	user, ok := userFromSource(p.Source)
	if !ok {
		return nil, nil
	}
	return r.Movies.ListByOwner(p.Context, user.ID)
}

func userFromSource(src interface{}) (*models.User, bool) {
	switch u := src.(type) {
	case *models.User:
		return u, true
	case models.User:
		return &u, true
	default:
		return nil, false
	}
}

package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/kelechio/movieql/internal/auth"
	"github.com/kelechio/movieql/internal/models"
	"github.com/kelechio/movieql/internal/repo"
)

func (r *Resolver) resolveMovies(p graphql.ResolveParams) (interface{}, error) {
	movies, err := r.Movies.List(p.Context, repo.ListParams{
		Filter: stringArg(p.Args, "filter"),
		SortBy: stringArg(p.Args, "sortBy"),
		Skip:   intArg(p.Args, "skip"),
		Take:   intArg(p.Args, "take"),
	})
	if err != nil {
		return nil, err
	}
	// Empty result is an empty list, never an error.
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

func (r *Resolver) resolveMovie(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	movie, err := r.Movies.GetByID(p.Context, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return movie, nil
}

func (r *Resolver) resolveCreateMovie(p graphql.ResolveParams) (interface{}, error) {
	uid := requesterID(p)
	if uid == 0 {
		return nil, auth.ErrAuthRequired
	}

	in, err := decodeCreateMovieInput(p.Args["data"])
	if err != nil {
		return nil, err
	}

	movie := &models.Movie{
		MovieName:   in.MovieName,
		Description: in.Description,
		Director:    in.Director,
		ReleaseDate: in.ReleaseDate,
		UserID:      uid,
	}
	return r.Movies.Create(p.Context, movie)
}

func (r *Resolver) resolveUpdateMovie(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	in, err := decodeUpdateMovieInput(p.Args["data"])
	if err != nil {
		return nil, err
	}

	movie, err := r.Movies.GetByID(p.Context, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if err := auth.Authorize(requesterID(p), movie.UserID); err != nil {
		return nil, err
	}

	if in.MovieName != nil {
		movie.MovieName = *in.MovieName
	}
	if in.Description != nil {
		movie.Description = *in.Description
	}
	if in.Director != nil {
		movie.Director = *in.Director
	}
	if in.ReleaseDate != nil {
		movie.ReleaseDate = *in.ReleaseDate
	}
	return r.Movies.Save(p.Context, movie)
}

func (r *Resolver) resolveDeleteMovie(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	movie, err := r.Movies.GetByID(p.Context, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if err := auth.Authorize(requesterID(p), movie.UserID); err != nil {
		return nil, err
	}

	if err := r.Movies.Delete(p.Context, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (r *Resolver) resolveMovieOwner(p graphql.ResolveParams) (interface{}, error) {
	movie, ok := movieFromSource(p.Source)
	if !ok {
		return nil, nil
	}
	user, err := r.Users.GetByID(p.Context, movie.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func movieFromSource(src interface{}) (*models.Movie, bool) {
	switch m := src.(type) {
	case *models.Movie:
		return m, true
	case models.Movie:
		return &m, true
	default:
		return nil, false
	}
}

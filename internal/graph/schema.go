// Package graph defines the GraphQL schema and resolvers for the movie
// catalog API. The schema is built in code; resolvers delegate to the repo
// layer and apply the ownership guard before every mutation.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/kelechio/movieql/internal/auth"
	"github.com/kelechio/movieql/internal/metrics"
	"github.com/kelechio/movieql/internal/models"
	"github.com/kelechio/movieql/internal/repo"
)

// Resolver holds everything the schema's resolve functions need.
type Resolver struct {
	Users      *repo.UserRepo
	Movies     *repo.MovieRepo
	Tokens     *auth.TokenIssuer
	BcryptCost int
}

// AuthPayload is returned by signup and login.
type AuthPayload struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// instrument wraps a resolver so each operation lands in the metrics counter.
func instrument(name string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		out, err := fn(p)
		metrics.RecordOperation(name, err)
		return out, err
	}
}

// NewSchema builds the executable schema around the given resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	movieType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Movie",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"movieName":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"director":    &graphql.Field{Type: graphql.String},
			"releaseDate": &graphql.Field{Type: graphql.DateTime},
			"userId":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"createdAt":   &graphql.Field{Type: graphql.DateTime},
			"updatedAt":   &graphql.Field{Type: graphql.DateTime},
		},
	})

	// Cross links are added after both types exist.
	movieType.AddFieldConfig("user", &graphql.Field{
		Type:    userType,
		Resolve: r.resolveMovieOwner,
	})
	userType.AddFieldConfig("movies", &graphql.Field{
		Type:    graphql.NewList(graphql.NewNonNull(movieType)),
		Resolve: r.resolveUserMovies,
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	signupInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SignupInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	loginInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LoginInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updateUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"username": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	createMovieInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateMovieInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"movieName":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"director":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"releaseDate": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	updateMovieInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateMovieInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"movieName":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"director":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"releaseDate": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"movies": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(movieType))),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: graphql.String},
					"sortBy": &graphql.ArgumentConfig{Type: graphql.String},
					"skip":   &graphql.ArgumentConfig{Type: graphql.Int},
					"take":   &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: instrument("movies", r.resolveMovies),
			},
			"movie": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: instrument("movie", r.resolveMovie),
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: instrument("user", r.resolveUser),
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: instrument("me", r.resolveMe),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signupInput)},
				},
				Resolve: instrument("signup", r.resolveSignup),
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)},
				},
				Resolve: instrument("login", r.resolveLogin),
			},
			"changePassword": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"oldPassword": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"newPassword": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: instrument("changePassword", r.resolveChangePassword),
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInput)},
				},
				Resolve: instrument("updateUser", r.resolveUpdateUser),
			},
			"deleteUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: instrument("deleteUser", r.resolveDeleteUser),
			},
			"createMovie": &graphql.Field{
				Type: graphql.NewNonNull(movieType),
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createMovieInput)},
				},
				Resolve: instrument("createMovie", r.resolveCreateMovie),
			},
			"updateMovie": &graphql.Field{
				Type: graphql.NewNonNull(movieType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateMovieInput)},
				},
				Resolve: instrument("updateMovie", r.resolveUpdateMovie),
			},
			"deleteMovie": &graphql.Field{
				Type: graphql.NewNonNull(movieType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: instrument("deleteMovie", r.resolveDeleteMovie),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

package movies

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kelechio/movieql/cmd/cli/config"
	"github.com/kelechio/movieql/cmd/cli/gqlclient"
	"github.com/kelechio/movieql/cmd/cli/output"
)

type movie struct {
	ID          string `json:"id"`
	MovieName   string `json:"movieName"`
	Description string `json:"description"`
	Director    string `json:"director"`
	ReleaseDate string `json:"releaseDate"`
	UserID      string `json:"userId"`
}

// InitMovies registers movie CRUD commands on the root command.
func InitMovies(rootCmd *cobra.Command) {
	moviesCmd := &cobra.Command{
		Use:   "movies",
		Short: "Browse and manage movies",
	}

	moviesCmd.AddCommand(
		listMoviesCmd(),
		getMovieCmd(),
		createMovieCmd(),
		updateMovieCmd(),
		deleteMovieCmd(),
	)

	rootCmd.AddCommand(moviesCmd)
}

func listMoviesCmd() *cobra.Command {
	var filter, sortBy string
	var skip, take int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movies",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Movies []movie `json:"movies"`
			}
			err := gqlclient.Do("", `
				query Movies($filter: String, $sortBy: String, $skip: Int, $take: Int) {
					movies(filter: $filter, sortBy: $sortBy, skip: $skip, take: $take) {
						id movieName director releaseDate userId
					}
				}`,
				map[string]interface{}{
					"filter": filter,
					"sortBy": sortBy,
					"skip":   skip,
					"take":   take,
				}, &out)
			if err != nil {
				return err
			}

			rows := make([][]interface{}, 0, len(out.Movies))
			for _, m := range out.Movies {
				rows = append(rows, []interface{}{m.ID, m.MovieName, m.Director, m.ReleaseDate, m.UserID})
			}
			output.RenderTable([]string{"ID", "Name", "Director", "Released", "Owner"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "case-insensitive substring filter")
	cmd.Flags().StringVar(&sortBy, "sort", "id", "sort column (id, movieName, director, releaseDate)")
	cmd.Flags().IntVar(&skip, "skip", 0, "rows to skip")
	cmd.Flags().IntVar(&take, "take", 10, "rows to return")

	return cmd
}

func getMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Movie *movie `json:"movie"`
			}
			err := gqlclient.Do("", `
				query Movie($id: ID!) {
					movie(id: $id) { id movieName description director releaseDate userId }
				}`,
				map[string]interface{}{"id": args[0]}, &out)
			if err != nil {
				return err
			}
			if out.Movie == nil {
				return fmt.Errorf("movie %s not found", args[0])
			}
			m := out.Movie
			fmt.Printf("%s  %s\n  director: %s\n  released: %s\n  owner:    %s\n  %s\n",
				m.ID, m.MovieName, m.Director, m.ReleaseDate, m.UserID, m.Description)
			return nil
		},
	}
}

func createMovieCmd() *cobra.Command {
	var name, description, director, release string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a movie (requires login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.ReadToken()
			if err != nil {
				return fmt.Errorf("please login first")
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			releaseDate, err := parseReleaseDate(release)
			if err != nil {
				return err
			}

			var out struct {
				CreateMovie movie `json:"createMovie"`
			}
			err = gqlclient.Do(token, `
				mutation CreateMovie($data: CreateMovieInput!) {
					createMovie(data: $data) { id movieName }
				}`,
				map[string]interface{}{
					"data": map[string]interface{}{
						"movieName":   name,
						"description": description,
						"director":    director,
						"releaseDate": releaseDate,
					},
				}, &out)
			if err != nil {
				return err
			}
			fmt.Printf("Created movie %s (id %s)\n", out.CreateMovie.MovieName, out.CreateMovie.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "movie name")
	cmd.Flags().StringVar(&description, "description", "", "movie description")
	cmd.Flags().StringVar(&director, "director", "", "director name")
	cmd.Flags().StringVar(&release, "release", "", "release date (YYYY-MM-DD or RFC3339)")

	return cmd
}

func updateMovieCmd() *cobra.Command {
	var name, description, director, release string

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a movie you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.ReadToken()
			if err != nil {
				return fmt.Errorf("please login first")
			}

			data := map[string]interface{}{}
			if name != "" {
				data["movieName"] = name
			}
			if description != "" {
				data["description"] = description
			}
			if director != "" {
				data["director"] = director
			}
			if release != "" {
				releaseDate, err := parseReleaseDate(release)
				if err != nil {
					return err
				}
				data["releaseDate"] = releaseDate
			}
			if len(data) == 0 {
				return fmt.Errorf("nothing to update")
			}

			var out struct {
				UpdateMovie movie `json:"updateMovie"`
			}
			err = gqlclient.Do(token, `
				mutation UpdateMovie($id: ID!, $data: UpdateMovieInput!) {
					updateMovie(id: $id, data: $data) { id movieName }
				}`,
				map[string]interface{}{"id": args[0], "data": data}, &out)
			if err != nil {
				return err
			}
			fmt.Printf("Updated movie %s (id %s)\n", out.UpdateMovie.MovieName, out.UpdateMovie.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "movie name")
	cmd.Flags().StringVar(&description, "description", "", "movie description")
	cmd.Flags().StringVar(&director, "director", "", "director name")
	cmd.Flags().StringVar(&release, "release", "", "release date (YYYY-MM-DD or RFC3339)")

	return cmd
}

func deleteMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a movie you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.ReadToken()
			if err != nil {
				return fmt.Errorf("please login first")
			}

			var out struct {
				DeleteMovie movie `json:"deleteMovie"`
			}
			err = gqlclient.Do(token, `
				mutation DeleteMovie($id: ID!) {
					deleteMovie(id: $id) { id movieName }
				}`,
				map[string]interface{}{"id": args[0]}, &out)
			if err != nil {
				return err
			}
			fmt.Printf("Deleted movie %s (id %s)\n", out.DeleteMovie.MovieName, out.DeleteMovie.ID)
			return nil
		},
	}
}

// parseReleaseDate accepts a bare date or a full RFC3339 timestamp.
func parseReleaseDate(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("--release is required")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format(time.RFC3339), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(time.RFC3339), nil
	}
	return "", fmt.Errorf("invalid release date %q: use YYYY-MM-DD or RFC3339", s)
}

package main

import (
	"fmt"
	"os"

	"github.com/kelechio/movieql/cmd/cli/auth"
	"github.com/kelechio/movieql/cmd/cli/movies"
	"github.com/kelechio/movieql/cmd/cli/root"
)

func main() {
	auth.InitAuth(root.RootCmd)
	movies.InitMovies(root.RootCmd)

	if err := root.RootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
